// Package frame composes the state engine: identity registry, typed
// state store, interaction arbiter, focus tracker, layer stack and
// animation manager, glued together by the two lifecycle hooks every
// frame passes through.
//
// A frame looks like:
//
//	mem.Borrow(func(m *frame.Memory) {
//		m.BeginFrame(raw)
//		// ... declare widgets: claims, focus interest, layers ...
//		m.EndFrame()
//	})
//
// Everything the engine persists between frames is owned here; widget
// code reaches it only through the component APIs.
package frame

import (
	"github.com/go-drift/ember/pkg/animation"
	"github.com/go-drift/ember/pkg/focus"
	"github.com/go-drift/ember/pkg/geometry"
	"github.com/go-drift/ember/pkg/identity"
	"github.com/go-drift/ember/pkg/input"
	"github.com/go-drift/ember/pkg/interaction"
	"github.com/go-drift/ember/pkg/layers"
	"github.com/go-drift/ember/pkg/state"
)

// Memory is the aggregate cross-frame state of one UI surface.
type Memory struct {
	// Options are the engine knobs. Mutable between frames.
	Options Options

	// Identity records per-frame ID usage and reports clashes.
	Identity *identity.Registry

	// Data is the typed per-widget store (scroll offsets, window
	// rects, open flags).
	Data *state.Store

	// Interaction arbitrates click and drag ownership.
	Interaction *interaction.Arbiter

	// Focus tracks keyboard focus.
	Focus *focus.Tracker

	// Layers tracks floating-region z-order and visibility.
	Layers *layers.Stack

	// Animation drives bool→scalar interpolation.
	Animation *animation.Manager

	// popup is the single open popup (combo box, menu, color picker).
	// At most one can be open at a time.
	popup    identity.ID
	hasPopup bool

	// everythingIsVisible forces all popups open, for testing and
	// pre-caching.
	everythingIsVisible bool

	guard guard

	prevInput input.State
	currInput input.State

	// onRepaint, when set, is invoked at end of frame if an animation
	// is still in flight. It must be safe to call from the frame
	// thread; cross-thread repaint requests are the embedder's
	// concern, not Memory's.
	onRepaint func()
}

// Config carries the constructor parameters of a Memory.
type Config struct {
	// Options for the engine; zero value selects DefaultOptions.
	Options Options

	// Painter receives ID-clash diagnostics. May be nil.
	Painter identity.Painter

	// Codec for the state store. Nil selects YAML.
	Codec state.Codec

	// OnRepaint is called when an animation needs another frame.
	OnRepaint func()
}

// NewMemory builds an empty engine.
func NewMemory(cfg Config) *Memory {
	opts := cfg.Options
	if opts == (Options{}) {
		opts = DefaultOptions()
	}
	registry := identity.NewRegistry(cfg.Painter)
	registry.Warn = opts.WarnOnIDClash
	return &Memory{
		Options:     opts,
		Identity:    registry,
		Data:        state.NewStore(cfg.Codec),
		Interaction: interaction.NewArbiter(),
		Focus:       focus.NewTracker(),
		Layers:      layers.NewStack(),
		Animation:   animation.NewManager(),
		onRepaint:   cfg.OnRepaint,
	}
}

// Borrow runs fn with exclusive access to the memory. Re-entrant
// borrows are a bug in the embedding application: they panic in debug
// mode and are unchecked in release mode.
func (m *Memory) Borrow(fn func(*Memory)) {
	m.guard.acquire()
	defer m.guard.release()
	fn(m)
}

// BeginFrame consumes the new raw input batch, derives this frame's
// input state from the previous frame's, and resets all per-frame
// flags. Call exactly once per frame, before any widget declarations.
func (m *Memory) BeginFrame(raw input.Raw) {
	if raw.Time == 0 {
		raw.Time = animation.Seconds()
	}
	m.currInput = input.Next(m.prevInput, raw)

	m.Identity.Warn = m.Options.WarnOnIDClash
	m.Identity.BeginFrame()
	m.Interaction.BeginFrame(m.prevInput)
	m.Focus.BeginFrame(m.currInput)
	m.Animation.BeginFrame(m.currInput.Time, m.Options.PredictedFrameTime)
}

// EndFrame finalizes the frame: the focus dead-man's switch runs
// against the rectangles registered this frame, pending layer
// promotions commit, the visibility double-buffer advances, unqueried
// animations are pruned, and a repaint is requested if any animation is
// still in flight. Call exactly once per frame, after all widget
// declarations.
//
// If EndFrame is never called the per-frame flags go stale, but the
// engine self-heals on the next BeginFrame, which always resets them.
func (m *Memory) EndFrame() {
	m.Focus.EndFrame(m.Identity.UsedRects())
	m.Layers.EndFrame()
	animating := m.Animation.Animating()
	m.Animation.EndFrame()

	m.prevInput = m.currInput

	if animating && m.onRepaint != nil {
		m.onRepaint()
	}
}

// Input returns this frame's derived input state.
func (m *Memory) Input() input.State {
	return m.currInput
}

// LayerAt returns the topmost visible interactable layer under pos,
// honoring the resize margin from Options.
func (m *Memory) LayerAt(pos geometry.Offset) (layers.LayerID, bool) {
	return m.Layers.HitTest(pos, m.Options.ResizeInteractMargin)
}

// IsPopupOpen reports whether the popup with the given ID is open.
// While EverythingIsVisible is set, every popup reports open.
func (m *Memory) IsPopupOpen(id identity.ID) bool {
	return (m.hasPopup && m.popup == id) || m.everythingIsVisible
}

// AnyPopupOpen reports whether any popup is open.
func (m *Memory) AnyPopupOpen() bool {
	return m.hasPopup || m.everythingIsVisible
}

// OpenPopup opens the given popup, closing whichever was open before.
func (m *Memory) OpenPopup(id identity.ID) {
	m.popup = id
	m.hasPopup = true
}

// ClosePopup closes the open popup, if any.
func (m *Memory) ClosePopup() {
	m.popup = identity.Null
	m.hasPopup = false
}

// TogglePopup closes the given popup if it is open, and opens it
// otherwise.
func (m *Memory) TogglePopup(id identity.ID) {
	if m.IsPopupOpen(id) {
		m.ClosePopup()
	} else {
		m.OpenPopup(id)
	}
}

// KeepPopupOpen marks the popup as still wanted this frame. Popup
// widgets call this while they are showing so click-elsewhere-to-close
// logic in the embedder can distinguish live popups from stale state.
func (m *Memory) KeepPopupOpen(id identity.ID) {
	if m.hasPopup && m.popup == id {
		return
	}
	if m.everythingIsVisible {
		m.OpenPopup(id)
	}
}

// EverythingIsVisible reports whether the show-everything debug switch
// is on.
func (m *Memory) EverythingIsVisible() bool {
	return m.everythingIsVisible
}

// SetEverythingIsVisible forces every popup to report open. Used by
// tests and by pre-caching passes that need to lay out the whole UI at
// once.
func (m *Memory) SetEverythingIsVisible(visible bool) {
	m.everythingIsVisible = visible
}

// Reset drops all cross-frame state, as after a fresh start. Options
// and the repaint hook survive.
func (m *Memory) Reset() {
	m.Data.ResetAll()
	m.Interaction = interaction.NewArbiter()
	m.Focus = focus.NewTracker()
	m.Layers.Reset()
	m.Animation = animation.NewManager()
	m.ClosePopup()
	m.prevInput = input.State{}
	m.currInput = input.State{}
}
