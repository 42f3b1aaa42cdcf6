// Package layers tracks the z-order and screen rectangle of every
// floating region — windows, popups, tooltips — and answers "which
// layer is under this point".
//
// Visibility is double-buffered: a layer counts as visible if it was
// declared this frame or the previous one. Hit-testing for input
// dispatch runs before the current frame's layout exists (interaction
// has to be able to influence layout), so "is this layer on screen"
// must be answerable from last frame's declarations while this frame's
// are still being assembled.
package layers

import (
	"sort"

	"github.com/go-drift/ember/pkg/geometry"
	"github.com/go-drift/ember/pkg/identity"
)

// Order is the coarse z-band a layer lives in. Within a band, layers
// are ordered by the stack's order list.
type Order int

const (
	// OrderBackground is painted and hit-tested below everything else.
	OrderBackground Order = iota
	// OrderMiddle is where regular windows live.
	OrderMiddle
	// OrderForeground is always above the windows, e.g. combo-box popups.
	OrderForeground
	// OrderTooltip is above the foreground.
	OrderTooltip
	// OrderDebug is on top of everything, for diagnostics overlays.
	OrderDebug

	numOrders int = iota
)

func (o Order) String() string {
	switch o {
	case OrderBackground:
		return "background"
	case OrderMiddle:
		return "middle"
	case OrderForeground:
		return "foreground"
	case OrderTooltip:
		return "tooltip"
	case OrderDebug:
		return "debug"
	default:
		return "order(?)"
	}
}

// LayerID identifies a floating region: a widget ID plus the z-band it
// lives in.
type LayerID struct {
	Order Order
	ID    identity.ID
}

// NewLayerID pairs an order with a widget ID.
func NewLayerID(order Order, id identity.ID) LayerID {
	return LayerID{Order: order, ID: id}
}

// State is what layout code declares for a layer each frame.
type State struct {
	// Rect is the layer's screen rectangle.
	Rect geometry.Rect

	// Interactable is false for layers that should never catch the
	// pointer, e.g. tooltips.
	Interactable bool
}

// Stack keeps every known layer in a back-to-front order list.
//
// The order is stable: it only changes when a layer asks to be moved to
// the top, and even then only relative to other layers that asked in
// the same frame. Reopening three windows in one frame sends all three
// to the top while preserving their prior mutual stacking.
type Stack struct {
	states identity.Map[State]

	// order is back-to-front; top is last.
	order []LayerID

	visibleLastFrame    map[LayerID]struct{}
	visibleCurrentFrame map[LayerID]struct{}

	// wantsOnTop collects move-to-top requests; they are applied as a
	// sort key at end of frame, not immediately.
	wantsOnTop map[LayerID]struct{}
}

// NewStack returns an empty layer stack.
func NewStack() *Stack {
	return &Stack{
		states:              make(identity.Map[State]),
		visibleLastFrame:    make(map[LayerID]struct{}),
		visibleCurrentFrame: make(map[LayerID]struct{}),
		wantsOnTop:          make(map[LayerID]struct{}),
	}
}

// SetState declares a layer for this frame: records its rectangle and
// interactability, marks it visible, and appends it to the order list
// if it is new.
func (s *Stack) SetState(layer LayerID, state State) {
	s.visibleCurrentFrame[layer] = struct{}{}
	s.states[layer.ID] = state
	s.ensureOrdered(layer)
}

// Get returns the declared state for a layer's widget ID.
func (s *Stack) Get(id identity.ID) (State, bool) {
	st, ok := s.states[id]
	return st, ok
}

// MoveToTop requests that the layer be promoted within its z-band at
// the end of the frame. The reorder is deferred so that several layers
// promoted in the same frame keep their relative order.
func (s *Stack) MoveToTop(layer LayerID) {
	s.visibleCurrentFrame[layer] = struct{}{}
	s.wantsOnTop[layer] = struct{}{}
	s.ensureOrdered(layer)
}

// HitTest returns the topmost visible interactable layer whose
// rectangle, expanded by resizeMargin, contains pos. The margin lets
// windows be resized by dragging just outside their edge.
func (s *Stack) HitTest(pos geometry.Offset, resizeMargin float64) (LayerID, bool) {
	for i := len(s.order) - 1; i >= 0; i-- {
		layer := s.order[i]
		if !s.IsVisible(layer) {
			continue
		}
		state, ok := s.states[layer.ID]
		if !ok || !state.Interactable {
			continue
		}
		if state.Rect.Expand(resizeMargin).Contains(pos) {
			return layer, true
		}
	}
	return LayerID{}, false
}

// IsVisible reports whether the layer was declared this frame or last.
func (s *Stack) IsVisible(layer LayerID) bool {
	if _, ok := s.visibleCurrentFrame[layer]; ok {
		return true
	}
	_, ok := s.visibleLastFrame[layer]
	return ok
}

// VisibleLastFrame reports whether the layer was declared last frame.
func (s *Stack) VisibleLastFrame(layer LayerID) bool {
	_, ok := s.visibleLastFrame[layer]
	return ok
}

// VisibleLayers returns the set of layers visible under the double
// buffer.
func (s *Stack) VisibleLayers() map[LayerID]struct{} {
	visible := make(map[LayerID]struct{}, len(s.visibleLastFrame)+len(s.visibleCurrentFrame))
	for layer := range s.visibleLastFrame {
		visible[layer] = struct{}{}
	}
	for layer := range s.visibleCurrentFrame {
		visible[layer] = struct{}{}
	}
	return visible
}

// Order returns the order list, back-to-front. Top is last. The slice
// is owned by the stack; callers must not modify it.
func (s *Stack) Order() []LayerID {
	return s.order
}

// OrderMap returns each layer's index in the order list.
func (s *Stack) OrderMap() map[LayerID]int {
	m := make(map[LayerID]int, len(s.order))
	for i, layer := range s.order {
		m[layer] = i
	}
	return m
}

// TopLayer returns the topmost layer in the given z-band, if any.
func (s *Stack) TopLayer(order Order) (LayerID, bool) {
	for i := len(s.order) - 1; i >= 0; i-- {
		if s.order[i].Order == order {
			return s.order[i], true
		}
	}
	return LayerID{}, false
}

// Count returns the number of layers with declared state.
func (s *Stack) Count() int {
	return len(s.states)
}

// Reset forgets all layers, e.g. to auto-relayout every window.
func (s *Stack) Reset() {
	clear(s.states)
	s.order = s.order[:0]
	clear(s.visibleLastFrame)
	clear(s.visibleCurrentFrame)
	clear(s.wantsOnTop)
}

// EndFrame advances the visibility double buffer and commits the
// pending promotions: a stable sort by (z-band, promoted-this-frame)
// moves every promoted layer above the rest of its band while keeping
// the relative order inside both groups.
func (s *Stack) EndFrame() {
	s.visibleLastFrame, s.visibleCurrentFrame = s.visibleCurrentFrame, s.visibleLastFrame
	clear(s.visibleCurrentFrame)

	sort.SliceStable(s.order, func(i, j int) bool {
		a, b := s.order[i], s.order[j]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		_, aTop := s.wantsOnTop[a]
		_, bTop := s.wantsOnTop[b]
		return !aTop && bTop
	})
	clear(s.wantsOnTop)
}

func (s *Stack) ensureOrdered(layer LayerID) {
	for _, existing := range s.order {
		if existing == layer {
			return
		}
	}
	s.order = append(s.order, layer)
}
