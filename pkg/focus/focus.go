// Package focus tracks which single widget owns keyboard focus across
// frames of an immediate-mode UI.
//
// Because the widget tree is re-declared every frame in one pass, focus
// hand-off cannot always be resolved within the frame it is requested:
// when Tab is pressed on the focused widget, the "next" widget is not
// known until it declares itself, and the "previous" widget was only
// known before the focused one ran. Both cases therefore use a
// two-phase protocol: note the hand-off this frame, commit it on the
// next. The tracker also runs a dead-man's switch — focus is released
// automatically when its owner stops being declared.
package focus

import (
	"github.com/go-drift/ember/pkg/geometry"
	"github.com/go-drift/ember/pkg/identity"
	"github.com/go-drift/ember/pkg/input"
)

// Tracker is the focus state machine.
type Tracker struct {
	// current is the widget with keyboard focus.
	current    identity.ID
	hasCurrent bool

	// prevFrame is what had focus last frame, for edge detection.
	prevFrame identity.ID
	hasPrev   bool

	// pendingNext receives focus at the start of the next frame. Used
	// for Shift+Tab hand-off so GainedFocus still fires exactly once.
	pendingNext    identity.ID
	hasPendingNext bool

	// locked prevents Tab/Shift+Tab from moving focus away, e.g. while
	// a text editor wants literal tab characters. Focus can only be
	// locked once it has survived a full frame.
	locked bool

	// Per-frame transient state.
	tabPressed      bool
	shiftTabPressed bool
	giveToNext      bool
	direction       direction

	// lastCandidate is the most recent widget to express focus
	// interest, i.e. the hand-off target for Shift+Tab.
	lastCandidate    identity.ID
	hasLastCandidate bool

	// rects caches the rectangle of every widget that expressed focus
	// interest, for directional navigation. Updated from the declared
	// rect set at end of frame; a widget whose geometry is not yet
	// known is entered as covering everything.
	rects identity.Map[geometry.Rect]
}

// NewTracker returns an unfocused tracker.
func NewTracker() *Tracker {
	return &Tracker{rects: make(identity.Map[geometry.Rect])}
}

// BeginFrame consumes this frame's key events and commits any hand-off
// armed last frame. Transition priority: escape clears, then a pending
// programmatic/deferred grant commits, then Tab/Shift+Tab/arrow flags
// are recorded for the interest pass.
func (t *Tracker) BeginFrame(in input.State) {
	t.prevFrame, t.hasPrev = t.current, t.hasCurrent

	if t.hasPendingNext {
		t.setFocus(t.pendingNext)
		t.hasPendingNext = false
	}

	t.tabPressed = false
	t.shiftTabPressed = false
	t.direction = dirNone

	for _, ev := range in.Keys {
		if !ev.Pressed {
			continue
		}
		switch ev.Key {
		case input.KeyEscape:
			t.clearFocus()
		case input.KeyTab:
			if ev.Modifiers.Shift {
				t.shiftTabPressed = true
			} else {
				t.tabPressed = true
			}
		case input.KeyArrowUp:
			t.direction = dirUp
		case input.KeyArrowDown:
			t.direction = dirDown
		case input.KeyArrowLeft:
			t.direction = dirLeft
		case input.KeyArrowRight:
			t.direction = dirRight
		}
	}
}

// InterestedInFocus registers a widget as focusable this frame. Widgets
// that never call this can never gain focus. Call order is declaration
// order; that order defines what "next" and "previous" mean for tab
// traversal.
func (t *Tracker) InterestedInFocus(id identity.ID) {
	if t.rects == nil {
		t.rects = make(identity.Map[geometry.Rect])
	}
	if _, ok := t.rects[id]; !ok {
		t.rects[id] = geometry.Everything()
	}

	switch {
	case t.giveToNext && !t.HadFocusLastFrame(id):
		// A hand-off armed earlier this frame (or last frame) lands on
		// the first interested widget that is not the one leaving.
		t.setFocus(id)
		t.giveToNext = false

	case t.hasCurrent && t.current == id:
		if t.tabPressed && !t.locked {
			// Whoever asks next gets it; resolved later this frame or,
			// if the focused widget was declared last, on a later frame.
			t.clearFocus()
			t.giveToNext = true
			t.tabPressed = false
		} else if t.shiftTabPressed && !t.locked && t.hasLastCandidate {
			// The previous widget already ran this frame, so commit the
			// hand-off next frame to keep the gained/lost edges clean.
			t.pendingNext = t.lastCandidate
			t.hasPendingNext = true
			t.shiftTabPressed = false
		}

	case t.tabPressed && !t.hasCurrent && !t.giveToNext:
		// Tab with nothing focused: the first interested widget wins.
		t.setFocus(id)
		t.tabPressed = false

	case t.shiftTabPressed && !t.hasCurrent && !t.giveToNext && t.hasLastCandidate:
		// Shift+Tab with nothing focused: the previous widget wins.
		t.setFocus(t.lastCandidate)
		t.shiftTabPressed = false
	}

	t.lastCandidate = id
	t.hasLastCandidate = true
}

// EndFrame resolves directional navigation against the rectangles
// declared this frame and runs the dead-man's switch: a focus owner
// that was not declared this frame loses focus, unless it gained focus
// this very frame (so a widget may be focused programmatically one
// frame before it first appears).
func (t *Tracker) EndFrame(usedRects identity.Map[geometry.Rect]) {
	if t.direction != dirNone {
		if found, ok := t.widgetInDirection(usedRects); ok {
			t.setFocus(found)
		}
		t.direction = dirNone
	}

	if t.hasCurrent {
		freshlyGained := !t.hasPrev || t.prevFrame != t.current
		if _, declared := usedRects[t.current]; !declared && !freshlyGained {
			t.clearFocus()
		}
	}
}

// RequestFocus gives keyboard focus to id immediately.
func (t *Tracker) RequestFocus(id identity.ID) {
	t.setFocus(id)
}

// SurrenderFocus removes focus from id if it currently has it.
func (t *Tracker) SurrenderFocus(id identity.ID) {
	if t.hasCurrent && t.current == id {
		t.clearFocus()
	}
}

// LockFocus locks or unlocks focus on id, preventing Tab and Shift+Tab
// from moving it. The call only takes effect if id both had focus last
// frame and has it now: a grab that has not settled for a frame cannot
// be locked.
func (t *Tracker) LockFocus(id identity.ID, lock bool) {
	if t.HadFocusLastFrame(id) && t.HasFocus(id) {
		t.locked = lock
	}
}

// HasFocus reports whether id owns keyboard focus this frame.
func (t *Tracker) HasFocus(id identity.ID) bool {
	return t.hasCurrent && t.current == id
}

// HadFocusLastFrame reports whether id owned focus on the previous
// frame.
func (t *Tracker) HadFocusLastFrame(id identity.ID) bool {
	return t.hasPrev && t.prevFrame == id
}

// GainedFocus reports whether id has focus this frame but not last.
func (t *Tracker) GainedFocus(id identity.ID) bool {
	return t.HasFocus(id) && !t.HadFocusLastFrame(id)
}

// LostFocus reports whether id had focus last frame but not this one.
func (t *Tracker) LostFocus(id identity.ID) bool {
	return t.HadFocusLastFrame(id) && !t.HasFocus(id)
}

// Focused returns the current focus owner, if any.
func (t *Tracker) Focused() (identity.ID, bool) {
	return t.current, t.hasCurrent
}

// setFocus grants focus. Any grant unlocks: the lock invariant is that
// focus may only be locked while current == previous frame.
func (t *Tracker) setFocus(id identity.ID) {
	t.current = id
	t.hasCurrent = true
	t.locked = false
}

func (t *Tracker) clearFocus() {
	t.current = identity.Null
	t.hasCurrent = false
	t.locked = false
}
