package input

import (
	"testing"

	"github.com/go-drift/ember/pkg/geometry"
)

func TestNextDerivesEdges(t *testing.T) {
	var s State

	s = Next(s, Raw{PointerDown: true, Time: 1})
	if !s.JustPressed || s.JustReleased {
		t.Errorf("press frame: JustPressed=%v JustReleased=%v", s.JustPressed, s.JustReleased)
	}

	s = Next(s, Raw{PointerDown: true, Time: 1.016})
	if s.JustPressed || s.JustReleased {
		t.Error("held frame should have no edges")
	}

	s = Next(s, Raw{PointerDown: false, Time: 1.033})
	if s.JustPressed || !s.JustReleased {
		t.Errorf("release frame: JustPressed=%v JustReleased=%v", s.JustPressed, s.JustReleased)
	}
}

func TestNextDeltaTime(t *testing.T) {
	var s State
	s = Next(s, Raw{Time: 1})
	s = Next(s, Raw{Time: 1.25})
	if s.DeltaTime != 0.25 {
		t.Errorf("DeltaTime = %v", s.DeltaTime)
	}

	// A backend restarting its clock must not produce a negative delta.
	s = Next(s, Raw{Time: 0.5})
	if s.DeltaTime != 0 {
		t.Errorf("backwards time DeltaTime = %v", s.DeltaTime)
	}
}

func TestKeyPressed(t *testing.T) {
	s := State{Raw: Raw{Keys: []KeyEvent{
		{Key: KeyTab, Pressed: true},
		{Key: KeyEscape, Pressed: false},
	}}}
	if !s.KeyPressed(KeyTab) {
		t.Error("pressed key should report")
	}
	if s.KeyPressed(KeyEscape) {
		t.Error("release events should not count as presses")
	}
	if s.KeyPressed(KeyEnter) {
		t.Error("absent key should not report")
	}
}

func TestHasPointer(t *testing.T) {
	var s State
	if s.HasPointer() {
		t.Error("no pointer by default")
	}
	pos := geometry.Offset{X: 1, Y: 2}
	s.PointerPos = &pos
	if !s.HasPointer() {
		t.Error("pointer position should report present")
	}
}
