// Package uitest provides a deterministic harness for exercising the
// state engine without a rendering backend: a fake clock, a recording
// diagnostic painter, and a frame pump that feeds synthetic input
// through the full begin/declare/end lifecycle.
package uitest

import (
	"testing"
	"time"

	"github.com/go-drift/ember/pkg/animation"
	"github.com/go-drift/ember/pkg/frame"
	"github.com/go-drift/ember/pkg/geometry"
	"github.com/go-drift/ember/pkg/input"
)

// FrameDuration is how far the fake clock advances after every pumped
// frame.
const FrameDuration = 16 * time.Millisecond

// WarnPainter records the diagnostics the identity registry would have
// painted on screen.
type WarnPainter struct {
	Rects []geometry.Rect
	Texts []string
}

// DebugRect records an outlined rectangle.
func (p *WarnPainter) DebugRect(rect geometry.Rect) {
	p.Rects = append(p.Rects, rect)
}

// DebugText records a warning label.
func (p *WarnPainter) DebugText(pos geometry.Offset, text string) {
	p.Texts = append(p.Texts, text)
}

// Reset forgets all recorded diagnostics.
func (p *WarnPainter) Reset() {
	p.Rects = p.Rects[:0]
	p.Texts = p.Texts[:0]
}

// Harness drives a frame.Memory through synthetic frames. Input is
// staged between frames with the pointer and key methods; Frame then
// assembles the raw batch, runs one full lifecycle inside a Borrow, and
// advances the fake clock.
type Harness struct {
	Mem     *frame.Memory
	Painter *WarnPainter

	clock     *FakeClock
	prevClock animation.Clock

	pointerPos  *geometry.Offset
	pointerDown bool
	keys        []input.KeyEvent
	text        string

	repaints int
}

// NewHarness creates a harness with a fresh Memory and installs the
// fake clock. The previous clock is restored via t.Cleanup.
func NewHarness(t *testing.T) *Harness {
	h := &Harness{
		Painter: &WarnPainter{},
		clock:   NewFakeClock(),
	}
	h.Mem = frame.NewMemory(frame.Config{
		Painter:   h.Painter,
		OnRepaint: func() { h.repaints++ },
	})
	h.prevClock = animation.SetClock(h.clock)
	t.Cleanup(func() { animation.SetClock(h.prevClock) })
	return h
}

// Clock returns the fake clock for manual time control.
func (h *Harness) Clock() *FakeClock {
	return h.clock
}

// PointerMove places the pointer at the given logical position for the
// following frames.
func (h *Harness) PointerMove(x, y float64) {
	pos := geometry.Offset{X: x, Y: y}
	h.pointerPos = &pos
}

// PointerGone removes the pointer from the surface.
func (h *Harness) PointerGone() {
	h.pointerPos = nil
}

// PointerDown presses the pointer button.
func (h *Harness) PointerDown() {
	h.pointerDown = true
}

// PointerUp releases the pointer button.
func (h *Harness) PointerUp() {
	h.pointerDown = false
}

// Press stages a key press for the next frame only.
func (h *Harness) Press(key input.Key) {
	h.PressMod(key, input.Modifiers{})
}

// PressMod stages a key press with modifiers for the next frame only.
func (h *Harness) PressMod(key input.Key, mods input.Modifiers) {
	h.keys = append(h.keys, input.KeyEvent{Key: key, Pressed: true, Modifiers: mods})
}

// Type stages typed text for the next frame only.
func (h *Harness) Type(text string) {
	h.text += text
}

// Frame runs one full frame: BeginFrame with the staged input, the
// declare callback (which stands in for the widget pass), then
// EndFrame. One-shot input (keys, text) is consumed; pointer state
// persists. The clock advances by FrameDuration afterwards.
func (h *Harness) Frame(declare func(m *frame.Memory)) {
	raw := input.Raw{
		PointerDown: h.pointerDown,
		Keys:        h.keys,
		Text:        h.text,
		Time:        animation.Seconds(),
	}
	if h.pointerPos != nil {
		pos := *h.pointerPos
		raw.PointerPos = &pos
	}
	h.keys = nil
	h.text = ""

	h.Mem.Borrow(func(m *frame.Memory) {
		m.BeginFrame(raw)
		if declare != nil {
			declare(m)
		}
		m.EndFrame()
	})
	h.clock.Advance(FrameDuration)
}

// Frames runs the same declaration for n consecutive frames.
func (h *Harness) Frames(n int, declare func(m *frame.Memory)) {
	for i := 0; i < n; i++ {
		h.Frame(declare)
	}
}

// Settle pumps frames until no animation requests another repaint, up
// to maxFrames. It reports whether the engine settled.
func (h *Harness) Settle(declare func(m *frame.Memory), maxFrames int) bool {
	for i := 0; i < maxFrames; i++ {
		before := h.repaints
		h.Frame(declare)
		if h.repaints == before {
			return true
		}
	}
	return false
}

// Repaints returns how many frames have requested a follow-up repaint
// so far.
func (h *Harness) Repaints() int {
	return h.repaints
}
