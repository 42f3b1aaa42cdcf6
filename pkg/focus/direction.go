package focus

import (
	"math"

	"github.com/go-drift/ember/pkg/geometry"
	"github.com/go-drift/ember/pkg/identity"
)

// direction is the navigational intent recorded from arrow keys.
type direction int

const (
	dirNone direction = iota
	dirUp
	dirDown
	dirLeft
	dirRight
)

func (d direction) vector() geometry.Offset {
	switch d {
	case dirUp:
		return geometry.Up
	case dirDown:
		return geometry.Down
	case dirLeft:
		return geometry.Left
	case dirRight:
		return geometry.Right
	}
	return geometry.Offset{}
}

// rangeDiff compares two 1D extents: negative if a is before b,
// positive if after, zero when they overlap significantly. Treating
// overlapping extents as aligned keeps navigation in a column of
// widgets moving straight down instead of drifting to a wide neighbor.
func rangeDiff(a, b geometry.Range) float64 {
	significant := 0.5 * math.Min(a.Span(), b.Span())
	if a.Intersection(b).Span() >= significant {
		return 0
	}
	return a.Center() - b.Center()
}

// widgetInDirection finds the best focus candidate in the recorded
// arrow direction. Candidates are the widgets that have expressed focus
// interest; their cached rectangles are refreshed from (and pruned
// against) the rectangles actually declared this frame. Only candidates
// inside a 90° cone of the search direction count, scored by distance
// penalized by misalignment.
func (t *Tracker) widgetInDirection(usedRects identity.Map[geometry.Rect]) (identity.ID, bool) {
	if !t.hasCurrent {
		return identity.Null, false
	}

	searchDir := t.direction.vector()

	for id := range t.rects {
		if newRect, ok := usedRects[id]; ok {
			t.rects[id] = newRect
		} else {
			delete(t.rects, id)
		}
	}

	currentRect, ok := t.rects[t.current]
	if !ok {
		return identity.Null, false
	}

	bestScore := math.Inf(1)
	bestID := identity.Null
	found := false

	for candidate, candidateRect := range t.rects {
		if candidate == t.current {
			continue
		}

		toCandidate := geometry.Offset{
			X: rangeDiff(candidateRect.XRange(), currentRect.XRange()),
			Y: rangeDiff(candidateRect.YRange(), currentRect.YRange()),
		}

		cosAngle := toCandidate.Normalized().Dot(searchDir)

		// Only candidates within ±45° of the search direction.
		if cosAngle < math.Sqrt(0.5) {
			continue
		}

		score := toCandidate.Length() / (cosAngle * cosAngle)
		if score < bestScore {
			bestScore = score
			bestID = candidate
			found = true
		}
	}

	return bestID, found
}
