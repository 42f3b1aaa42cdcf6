// Package animation converts per-widget boolean inputs into smoothly
// interpolated scalars in [0, 1], e.g. to fade a focus highlight in and
// out. Animated values live only while they are being queried; entries
// no frame asks about are pruned.
package animation

import (
	"math"

	"github.com/go-drift/ember/pkg/identity"
)

// boolAnim interpolates toward 0 or 1 depending on a boolean target.
type boolAnim struct {
	target bool

	// toggleTime is when target last flipped, in frame-time seconds.
	toggleTime float64
}

// valueAnim interpolates between arbitrary float values.
type valueAnim struct {
	fromValue float64
	toValue   float64

	// toggleTime is when the target last changed.
	toggleTime float64
}

// Manager holds every live animation, keyed by widget ID.
//
// Time advances once per frame through BeginFrame; every query within
// a frame sees the same instant, so a value sampled twice in one frame
// cannot disagree with itself.
type Manager struct {
	bools  identity.Map[*boolAnim]
	values identity.Map[*valueAnim]

	// now and predictedDT come from the frame's input batch. On the
	// frame a target flips we extrapolate by predictedDT so the caller
	// never sees one stale frame of the old value.
	now         float64
	predictedDT float64

	touched   identity.Set
	animating bool
}

// NewManager returns an empty animation manager.
func NewManager() *Manager {
	return &Manager{
		bools:   make(identity.Map[*boolAnim]),
		values:  make(identity.Map[*valueAnim]),
		touched: make(identity.Set),
	}
}

// BeginFrame advances the manager to the frame's time. predictedDT is
// the expected duration of this frame, used to extrapolate on toggle
// frames.
func (m *Manager) BeginFrame(now, predictedDT float64) {
	m.now = now
	m.predictedDT = predictedDT
	clear(m.touched)
	m.animating = false
}

// AnimateBool returns a value moving linearly toward 1 while target is
// true and toward 0 while it is false, covering the full range in
// duration seconds. The first query for an id starts already settled at
// the target, so widgets appear without an opening animation.
func (m *Manager) AnimateBool(id identity.ID, duration float64, target bool) float64 {
	return m.AnimateBoolEased(id, duration, target, LinearCurve)
}

// AnimateBoolEased is AnimateBool with an easing curve applied to the
// linear progress.
func (m *Manager) AnimateBoolEased(id identity.ID, duration float64, target bool, curve Curve) float64 {
	m.touched[id] = struct{}{}

	anim, ok := m.bools[id]
	if !ok {
		m.bools[id] = &boolAnim{target: target, toggleTime: math.Inf(-1)}
		if target {
			return 1
		}
		return 0
	}

	if anim.target != target {
		anim.target = target
		anim.toggleTime = m.now
	}

	var progress float64
	if duration <= 0 {
		progress = 1
	} else {
		sinceToggle := m.now - anim.toggleTime + m.predictedDT
		progress = clampUnit(sinceToggle / duration)
	}
	value := curve(progress)

	if !target {
		value = 1 - value
	}
	if value > 0 && value < 1 {
		// Still in flight: the host must keep repainting.
		m.animating = true
	}
	return value
}

// AnimateValue returns a value moving toward target, covering the
// distance from where the previous animation stood in duration seconds.
// The first query for an id snaps to the target; retargeting mid-flight
// restarts from the current interpolated position, so the value never
// jumps.
func (m *Manager) AnimateValue(id identity.ID, duration, target float64) float64 {
	m.touched[id] = struct{}{}

	anim, ok := m.values[id]
	if !ok {
		m.values[id] = &valueAnim{fromValue: target, toValue: target, toggleTime: math.Inf(-1)}
		return target
	}

	var progress float64
	if duration <= 0 {
		progress = 1
	} else {
		sinceToggle := m.now - anim.toggleTime + m.predictedDT
		progress = clampUnit(sinceToggle / duration)
	}
	current := anim.fromValue + (anim.toValue-anim.fromValue)*progress

	if anim.toValue != target {
		anim.fromValue = current
		anim.toValue = target
		anim.toggleTime = m.now
	}
	if duration <= 0 {
		anim.fromValue = target
		anim.toValue = target
		current = target
	}
	if current != anim.toValue {
		m.animating = true
	}
	return current
}

// Animating reports whether any value queried this frame is still
// strictly between its endpoints, i.e. whether another repaint must be
// scheduled for the animation to progress.
func (m *Manager) Animating() bool {
	return m.animating
}

// EndFrame prunes animations that were not queried this frame.
func (m *Manager) EndFrame() {
	for id := range m.bools {
		if _, ok := m.touched[id]; !ok {
			delete(m.bools, id)
		}
	}
	for id := range m.values {
		if _, ok := m.touched[id]; !ok {
			delete(m.values, id)
		}
	}
}
