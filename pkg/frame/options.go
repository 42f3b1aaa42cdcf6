package frame

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/go-drift/ember/pkg/uierror"
)

// Options are the tunable knobs of the state engine. They are plain
// data: loading and saving them is the embedder's choice, the engine
// only reads them.
type Options struct {
	// AnimationTime is the default duration, in seconds, for bool
	// animations that don't specify their own.
	AnimationTime float64 `toml:"animation_time"`

	// WarnOnIDClash paints an on-screen warning when two widgets use
	// the same ID at different positions in one frame.
	WarnOnIDClash bool `toml:"warn_on_id_clash"`

	// ResizeInteractMargin is how far outside a layer's rectangle, in
	// logical units, a hit test still reaches it, so windows can be
	// resized by dragging just outside their edge.
	ResizeInteractMargin float64 `toml:"resize_interact_margin"`

	// PredictedFrameTime is the expected frame duration in seconds,
	// used to extrapolate animations on the frame their target flips.
	PredictedFrameTime float64 `toml:"predicted_frame_time"`
}

// DefaultOptions returns the options used when the embedder supplies
// none.
func DefaultOptions() Options {
	return Options{
		AnimationTime:        1.0 / 12.0,
		WarnOnIDClash:        true,
		ResizeInteractMargin: 5.0,
		PredictedFrameTime:   1.0 / 60.0,
	}
}

// LoadOptions reads options from a TOML file. A missing file yields the
// defaults without error; a malformed file yields the defaults and a
// KindPersist error.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, uierror.New("frame.LoadOptions", uierror.KindPersist, err)
	}
	if err := toml.Unmarshal(data, &opts); err != nil {
		return DefaultOptions(), uierror.New("frame.LoadOptions", uierror.KindPersist,
			fmt.Errorf("parsing %s: %w", path, err))
	}
	return opts, nil
}

// SaveOptions writes options to a TOML file.
func SaveOptions(path string, opts Options) error {
	data, err := toml.Marshal(opts)
	if err != nil {
		return uierror.New("frame.SaveOptions", uierror.KindPersist, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return uierror.New("frame.SaveOptions", uierror.KindPersist, err)
	}
	return nil
}
