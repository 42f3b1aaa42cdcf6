// Package interaction arbitrates pointer gestures: which single widget
// owns the click in progress and which owns the drag in progress.
//
// Say there is a button inside a scrollable region. A press over the
// button registers the button as the potential click owner and the
// region as the potential drag owner. Release without movement: the
// button clicks. Move first: the region scrolls. The arbiter only
// tracks the ownership; the movement threshold is widget policy.
package interaction

import (
	"github.com/go-drift/ember/pkg/identity"
	"github.com/go-drift/ember/pkg/input"
)

// Sense describes what pointer gestures a widget reacts to.
type Sense struct {
	// Click: the widget wants press-release gestures.
	Click bool

	// Drag: the widget wants press-move gestures.
	Drag bool

	// LowPriorityDrag marks a drag claim that any later non-low-priority
	// claim may steal. Windows claim their title-bar drag this way so a
	// slider inside the window can take the drag away, even though the
	// window was declared (and therefore claimed) first.
	LowPriorityDrag bool
}

// SenseClick senses clicks only.
func SenseClick() Sense { return Sense{Click: true} }

// SenseDrag senses drags only.
func SenseDrag() Sense { return Sense{Drag: true} }

// SenseClickAndDrag senses both.
func SenseClickAndDrag() Sense { return Sense{Click: true, Drag: true} }

// Arbiter holds the per-gesture ownership state.
//
// At most one widget owns click and at most one owns drag at any
// instant. Ownership can only be gained on the frame the pointer is
// pressed while hovered, and only while the slot is still empty, so the
// first widget declared at a screen location wins simultaneous claims.
// Widgets are declared back-to-front consistently with the layer stack,
// which makes that tie-break match what is visually on top.
type Arbiter struct {
	clickOwner    identity.ID
	hasClickOwner bool

	dragOwner    identity.ID
	hasDragOwner bool

	// dragIsLowPriority records that the current drag owner made a
	// low-priority claim and may be pre-empted.
	dragIsLowPriority bool

	// Per-frame interest flags, cleared at the start of each frame.
	clickInterest bool
	dragInterest  bool
}

// NewArbiter creates an arbiter with no owners.
func NewArbiter() *Arbiter {
	return &Arbiter{}
}

// BeginFrame resets per-frame interest and drops stale ownership based
// on the previous frame's pointer: a click owner cannot survive a frame
// where the pointer was up or absent, and no owner of any kind survives
// once every button is released.
func (a *Arbiter) BeginFrame(prev input.State) {
	a.clickInterest = false
	a.dragInterest = false

	if !prev.PointerDown || !prev.HasPointer() {
		a.hasClickOwner = false
		a.clickOwner = identity.Null
	}
	if !prev.PointerDown {
		a.hasDragOwner = false
		a.dragOwner = identity.Null
		a.dragIsLowPriority = false
	}
}

// NoteInterest records that a hovered widget senses clicks or drags this
// frame. Window code uses the aggregate to decide whether a background
// drag should move the window or is spoken for by a foreground widget.
func (a *Arbiter) NoteInterest(id identity.ID, sense Sense) {
	a.clickInterest = a.clickInterest || sense.Click
	a.dragInterest = a.dragInterest || sense.Drag
}

// TryClaim attempts to take gesture ownership for a widget on the frame
// the pointer is pressed. It reports which ownerships were gained.
//
// A click claim requires the click slot to be empty. A drag claim
// requires the drag slot to be empty or held by a low-priority owner.
func (a *Arbiter) TryClaim(id identity.ID, sense Sense, hovered, justPressed bool) (gotClick, gotDrag bool) {
	if !hovered || !justPressed {
		return false, false
	}

	if sense.Click && !a.hasClickOwner {
		a.clickOwner = id
		a.hasClickOwner = true
		gotClick = true
	}

	if sense.Drag && (!a.hasDragOwner || a.dragIsLowPriority) {
		a.dragOwner = id
		a.hasDragOwner = true
		a.dragIsLowPriority = sense.LowPriorityDrag
		gotDrag = true
	}

	return gotClick, gotDrag
}

// IsClickOwner reports whether id owns the click in progress.
func (a *Arbiter) IsClickOwner(id identity.ID) bool {
	return a.hasClickOwner && a.clickOwner == id
}

// IsDragOwner reports whether id owns the drag in progress.
func (a *Arbiter) IsDragOwner(id identity.ID) bool {
	return a.hasDragOwner && a.dragOwner == id
}

// DragOwner returns the current drag owner, if any.
func (a *Arbiter) DragOwner() (identity.ID, bool) {
	return a.dragOwner, a.hasDragOwner
}

// ClickOwner returns the current click owner, if any.
func (a *Arbiter) ClickOwner() (identity.ID, bool) {
	return a.clickOwner, a.hasClickOwner
}

// AnyPointerInteraction reports whether any widget currently owns a
// click or a drag.
func (a *Arbiter) AnyPointerInteraction() bool {
	return a.hasClickOwner || a.hasDragOwner
}

// AnyClickInterest reports whether any hovered widget sensed clicks this
// frame.
func (a *Arbiter) AnyClickInterest() bool {
	return a.clickInterest
}

// AnyDragInterest reports whether any hovered widget sensed drags this
// frame.
func (a *Arbiter) AnyDragInterest() bool {
	return a.dragInterest
}

// StopDragging drops the current drag ownership, e.g. when window code
// cancels its own move gesture.
func (a *Arbiter) StopDragging() {
	a.hasDragOwner = false
	a.dragOwner = identity.Null
	a.dragIsLowPriority = false
}
