package identity

import (
	"fmt"

	"github.com/go-drift/ember/pkg/geometry"
)

// Painter is the diagnostic drawing capability used to surface ID
// clashes on screen. It is the only rendering dependency of the state
// engine; a real backend draws, tests capture.
type Painter interface {
	// DebugRect outlines the rectangle of an offending widget.
	DebugRect(rect geometry.Rect)

	// DebugText draws a warning label anchored at the given position.
	DebugText(pos geometry.Offset, text string)
}

// clashRadius is how far apart (in logical units) two uses of the same
// ID must be before they are reported as two separate diagnostics. Uses
// closer than this are assumed to be the same widget registered twice,
// e.g. a frame drawn around the widget it decorates, and produce one
// combined message.
const clashRadius = 4.0

// Registry records every unique ID used during a frame together with
// the rectangle it was declared at, and reports accidental collisions.
//
// Collisions are a bug in the embedding application, but never a fatal
// one: the warning is painted on screen and the frame keeps running with
// both widgets sharing the ID (last writer wins for ownership purposes).
type Registry struct {
	used    Map[geometry.Rect]
	painter Painter

	// Warn controls whether clashes are painted. Registration always
	// happens so the used-rect set stays complete for the focus
	// dead-man's switch.
	Warn bool
}

// NewRegistry creates a registry reporting through the given painter.
// A nil painter disables on-screen warnings but keeps registration.
func NewRegistry(painter Painter) *Registry {
	return &Registry{
		used:    make(Map[geometry.Rect]),
		painter: painter,
		Warn:    true,
	}
}

// BeginFrame clears the per-frame registration map.
func (r *Registry) BeginFrame() {
	clear(r.used)
}

// UsedRects exposes the rectangles of every ID registered this frame.
// The focus tracker consumes this at end of frame.
func (r *Registry) UsedRects() Map[geometry.Rect] {
	return r.used
}

// RegisterUnique records that id was used at rect this frame. If the
// same ID was already registered at a meaningfully different position, a
// diagnostic is painted at both positions; within clashRadius a single
// combined message is painted. The ID is returned unchanged either way.
func (r *Registry) RegisterUnique(id ID, what string, rect geometry.Rect) ID {
	prev, clashed := r.used[id]
	r.used[id] = rect

	if !clashed || !r.Warn || r.painter == nil {
		return id
	}

	// Reusing an ID for a decoration around the same widget is fine.
	if prev.Expand(0.1).ContainsRect(rect) || rect.Expand(0.1).ContainsRect(prev) {
		return id
	}

	if prev.Min().Distance(rect.Min()) < clashRadius {
		r.warnAt(rect, fmt.Sprintf("Double use of %s ID %s", what, id.ShortString()))
	} else {
		r.warnAt(prev, fmt.Sprintf("First use of %s ID %s", what, id.ShortString()))
		r.warnAt(rect, fmt.Sprintf("Second use of %s ID %s", what, id.ShortString()))
	}
	return id
}

func (r *Registry) warnAt(rect geometry.Rect, text string) {
	r.painter.DebugRect(rect)
	r.painter.DebugText(rect.Min(), text)
}
