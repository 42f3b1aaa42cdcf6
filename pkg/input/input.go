// Package input defines the normalized per-frame input batch consumed
// by the state engine. Platform backends translate native events into a
// Raw batch once per frame; the engine derives edge information
// (press/release transitions) by comparing consecutive batches.
package input

import "github.com/go-drift/ember/pkg/geometry"

// Key identifies a keyboard key the state engine cares about. Widget
// code is free to define richer key handling on top of the raw events;
// the engine itself only dispatches on the keys below.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyEscape
	KeyEnter
	KeySpace
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
)

// Modifiers is the state of the modifier keys during an event.
type Modifiers struct {
	Alt     bool
	Ctrl    bool
	Shift   bool
	Command bool
}

// KeyEvent is a single key press or release with its modifier state.
type KeyEvent struct {
	Key       Key
	Pressed   bool
	Modifiers Modifiers
}

// Raw is what a platform backend hands the engine at the start of each
// frame: the pointer sample and the events gathered since last frame.
type Raw struct {
	// PointerPos is the pointer position in logical coordinates, or nil
	// when the pointer is outside the surface or absent.
	PointerPos *geometry.Offset

	// PointerDown reports whether any pointer button is held.
	PointerDown bool

	// Scroll is the accumulated scroll delta since last frame.
	Scroll geometry.Offset

	// Keys are the key events since last frame, in arrival order.
	Keys []KeyEvent

	// Text is the text typed since last frame.
	Text string

	// Time is monotonic wall-clock seconds.
	Time float64
}

// State is a Raw batch enriched with the transitions derived from the
// previous frame. It is what the arbiter and focus tracker consume.
type State struct {
	Raw

	// JustPressed is true on the frame the pointer transitions from up
	// to down.
	JustPressed bool

	// JustReleased is true on the frame the pointer transitions from
	// down to up.
	JustReleased bool

	// DeltaTime is seconds since the previous frame.
	DeltaTime float64
}

// Next derives this frame's State from the previous frame's and the new
// raw batch.
func Next(prev State, raw Raw) State {
	dt := raw.Time - prev.Time
	if dt < 0 {
		dt = 0
	}
	return State{
		Raw:          raw,
		JustPressed:  raw.PointerDown && !prev.PointerDown,
		JustReleased: !raw.PointerDown && prev.PointerDown,
		DeltaTime:    dt,
	}
}

// KeyPressed reports whether the key was pressed this frame with no
// modifier requirement.
func (s *State) KeyPressed(key Key) bool {
	for _, ev := range s.Keys {
		if ev.Pressed && ev.Key == key {
			return true
		}
	}
	return false
}

// HasPointer reports whether the pointer had a position this frame.
func (s *State) HasPointer() bool {
	return s.PointerPos != nil
}
