package frame

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/ember/pkg/uierror"
)

func TestOptionsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.toml")

	want := Options{
		AnimationTime:        0.25,
		WarnOnIDClash:        false,
		ResizeInteractMargin: 8,
		PredictedFrameTime:   1.0 / 120.0,
	}
	if err := SaveOptions(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := LoadOptions(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestLoadOptionsMissingFile(t *testing.T) {
	got, err := LoadOptions(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if got != DefaultOptions() {
		t.Errorf("missing file should yield defaults, got %+v", got)
	}
}

func TestLoadOptionsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.toml")
	if err := os.WriteFile(path, []byte("animation_time = [[["), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadOptions(path)
	if err == nil {
		t.Fatal("malformed file should error")
	}
	var uiErr *uierror.UIError
	if !errors.As(err, &uiErr) || uiErr.Kind != uierror.KindPersist {
		t.Errorf("err = %v, want a persist UIError", err)
	}
	if got != DefaultOptions() {
		t.Errorf("malformed file should still yield defaults, got %+v", got)
	}
}

func TestLoadOptionsPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.toml")
	if err := os.WriteFile(path, []byte("animation_time = 0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadOptions(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.AnimationTime != 0.5 {
		t.Errorf("AnimationTime = %v", got.AnimationTime)
	}
	// Unmentioned knobs keep their defaults.
	if got.ResizeInteractMargin != DefaultOptions().ResizeInteractMargin {
		t.Errorf("ResizeInteractMargin = %v", got.ResizeInteractMargin)
	}
}
