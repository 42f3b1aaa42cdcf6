package focus

import (
	"testing"

	"github.com/go-drift/ember/pkg/geometry"
	"github.com/go-drift/ember/pkg/identity"
	"github.com/go-drift/ember/pkg/input"
)

func press(key input.Key) input.State {
	return input.State{Raw: input.Raw{
		Keys: []input.KeyEvent{{Key: key, Pressed: true}},
	}}
}

func pressShift(key input.Key) input.State {
	return input.State{Raw: input.Raw{
		Keys: []input.KeyEvent{{Key: key, Pressed: true, Modifiers: input.Modifiers{Shift: true}}},
	}}
}

// runFrame declares the given widgets in order with the given input,
// using a unit rect for each, and completes the frame.
func runFrame(t *Tracker, in input.State, widgets ...identity.ID) {
	t.BeginFrame(in)
	rects := make(identity.Map[geometry.Rect], len(widgets))
	for i, id := range widgets {
		t.InterestedInFocus(id)
		rects[id] = geometry.RectFromLTWH(0, float64(i)*30, 100, 20)
	}
	t.EndFrame(rects)
}

func TestTabFocusesFirstWidget(t *testing.T) {
	tr := NewTracker()
	a := identity.New("a")
	b := identity.New("b")

	runFrame(tr, input.State{}, a, b)
	if _, ok := tr.Focused(); ok {
		t.Fatal("nothing should be focused initially")
	}

	runFrame(tr, press(input.KeyTab), a, b)
	if !tr.HasFocus(a) {
		t.Error("tab from unfocused should land on the first widget")
	}
	if !tr.GainedFocus(a) {
		t.Error("gained edge should fire")
	}
}

// Tab moves focus to the next widget in declaration order, resolved
// within the same frame because the next widget is declared after the
// focused one.
func TestTabAdvances(t *testing.T) {
	tr := NewTracker()
	a := identity.New("a")
	b := identity.New("b")
	c := identity.New("c")

	runFrame(tr, press(input.KeyTab), a, b, c)
	runFrame(tr, press(input.KeyTab), a, b, c)
	if !tr.HasFocus(b) {
		t.Fatal("tab should advance a → b")
	}
	runFrame(tr, press(input.KeyTab), a, b, c)
	if !tr.HasFocus(c) {
		t.Error("tab should advance b → c")
	}
}

// Tab on the last widget leaves the hand-off armed past the end of the
// frame; the first widget declared next frame picks it up, wrapping
// traversal around.
func TestTabWrapsAround(t *testing.T) {
	tr := NewTracker()
	a := identity.New("a")
	b := identity.New("b")

	runFrame(tr, press(input.KeyTab), a, b)
	runFrame(tr, press(input.KeyTab), a, b) // a → b
	runFrame(tr, press(input.KeyTab), a, b) // b → armed past end
	if _, ok := tr.Focused(); ok {
		t.Fatal("focus should be in flight at frame end")
	}
	runFrame(tr, input.State{}, a, b)
	if !tr.HasFocus(a) {
		t.Error("armed hand-off should wrap to the first widget")
	}
}

// Shift+Tab hands focus to the previously declared widget. That widget
// already ran this frame, so the move commits at the start of the next
// frame, and the gained/lost edges fire exactly once.
func TestShiftTabGoesBack(t *testing.T) {
	tr := NewTracker()
	a := identity.New("a")
	b := identity.New("b")

	runFrame(tr, press(input.KeyTab), a, b)
	runFrame(tr, press(input.KeyTab), a, b)
	if !tr.HasFocus(b) {
		t.Fatal("setup: b should be focused")
	}

	runFrame(tr, pressShift(input.KeyTab), a, b)
	if !tr.HasFocus(b) {
		t.Error("hand-off should not commit mid-frame")
	}
	runFrame(tr, input.State{}, a, b)
	if !tr.HasFocus(a) {
		t.Error("shift+tab should land back on a")
	}
	if !tr.GainedFocus(a) || !tr.LostFocus(b) {
		t.Error("edges should fire on the commit frame")
	}
}

func TestEscapeClearsFocus(t *testing.T) {
	tr := NewTracker()
	a := identity.New("a")

	runFrame(tr, press(input.KeyTab), a)
	runFrame(tr, press(input.KeyEscape), a)
	if _, ok := tr.Focused(); ok {
		t.Error("escape should clear focus")
	}
}

// A widget that stops being declared loses focus automatically: nothing
// else ever has to clean up after a window closes.
func TestFocusReleasedWhenWidgetDisappears(t *testing.T) {
	tr := NewTracker()
	a := identity.New("a")
	b := identity.New("b")

	runFrame(tr, press(input.KeyTab), a, b)
	if !tr.HasFocus(a) {
		t.Fatal("setup: a focused")
	}

	runFrame(tr, input.State{}, b)
	if _, ok := tr.Focused(); ok {
		t.Error("undeclared focus owner should lose focus")
	}
}

// RequestFocus may target a widget that appears only next frame: the
// dead-man's switch exempts freshly gained focus for one frame.
func TestRequestFocusBeforeFirstDeclaration(t *testing.T) {
	tr := NewTracker()
	a := identity.New("a")
	late := identity.New("late")

	runFrame(tr, input.State{}, a)

	tr.BeginFrame(input.State{})
	tr.InterestedInFocus(a)
	tr.RequestFocus(late)
	tr.EndFrame(identity.Map[geometry.Rect]{a: geometry.RectFromLTWH(0, 0, 10, 10)})
	if !tr.HasFocus(late) {
		t.Fatal("freshly requested focus should survive one undeclared frame")
	}

	// If it still is not declared the frame after, it is gone.
	runFrame(tr, input.State{}, a)
	if _, ok := tr.Focused(); ok {
		t.Error("focus owner absent for a full frame should be released")
	}
}

// Locked focus swallows tab traversal, e.g. a code editor inserting
// literal tabs. Escape still breaks out.
func TestLockFocusBlocksTab(t *testing.T) {
	tr := NewTracker()
	editor := identity.New("editor")
	other := identity.New("other")

	runFrame(tr, press(input.KeyTab), editor, other)
	runFrame(tr, input.State{}, editor, other)
	tr.LockFocus(editor, true)

	runFrame(tr, press(input.KeyTab), editor, other)
	if !tr.HasFocus(editor) {
		t.Error("locked focus should ignore tab")
	}

	runFrame(tr, press(input.KeyEscape), editor, other)
	if _, ok := tr.Focused(); ok {
		t.Error("escape should clear even locked focus")
	}
}

// A lock request on focus that has not survived a full frame is ignored:
// the widget cannot prove it is a stable focus owner yet.
func TestLockFocusRequiresSettledFocus(t *testing.T) {
	tr := NewTracker()
	editor := identity.New("editor")
	other := identity.New("other")

	runFrame(tr, press(input.KeyTab), editor, other)
	tr.LockFocus(editor, true) // focused this frame, not last — no effect

	runFrame(tr, press(input.KeyTab), editor, other)
	if !tr.HasFocus(other) {
		t.Error("unsettled lock should not block tab")
	}
}

func TestSurrenderFocus(t *testing.T) {
	tr := NewTracker()
	a := identity.New("a")

	runFrame(tr, press(input.KeyTab), a)
	tr.SurrenderFocus(a)
	if _, ok := tr.Focused(); ok {
		t.Error("surrendered focus should be gone")
	}
	// Surrendering focus one does not hold is a no-op.
	tr.SurrenderFocus(identity.New("other"))
}

// Arrow keys move focus geometrically: from the left widget, right-arrow
// lands on the widget whose rectangle lies to the right.
func TestArrowNavigation(t *testing.T) {
	tr := NewTracker()
	left := identity.New("left")
	right := identity.New("right")
	below := identity.New("below")

	rects := identity.Map[geometry.Rect]{
		left:  geometry.RectFromLTWH(0, 0, 50, 20),
		right: geometry.RectFromLTWH(100, 0, 50, 20),
		below: geometry.RectFromLTWH(0, 100, 50, 20),
	}
	declare := func(in input.State) {
		tr.BeginFrame(in)
		tr.InterestedInFocus(left)
		tr.InterestedInFocus(right)
		tr.InterestedInFocus(below)
		tr.EndFrame(rects)
	}

	declare(input.State{})
	tr.RequestFocus(left)
	declare(input.State{})

	declare(press(input.KeyArrowRight))
	if !tr.HasFocus(right) {
		t.Errorf("right-arrow should land on the right widget")
	}

	declare(press(input.KeyArrowLeft))
	if !tr.HasFocus(left) {
		t.Errorf("left-arrow should come back")
	}

	declare(press(input.KeyArrowDown))
	if !tr.HasFocus(below) {
		t.Errorf("down-arrow should land on the widget below")
	}

	declare(press(input.KeyArrowUp))
	if !tr.HasFocus(left) {
		t.Errorf("up from below should land on the aligned top-row widget")
	}
}
