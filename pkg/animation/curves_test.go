package animation

import (
	"math"
	"testing"
)

func TestCurveEndpoints(t *testing.T) {
	curves := map[string]Curve{
		"linear":            LinearCurve,
		"ease":              Ease,
		"ease-in":           EaseIn,
		"ease-out":          EaseOut,
		"ease-in-out":       EaseInOut,
		"material-standard": MaterialStandard,
	}
	for name, curve := range curves {
		if got := curve(0); got != 0 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := curve(1); got != 1 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
		// Out-of-range progress clamps rather than extrapolating.
		if got := curve(-0.5); got != 0 {
			t.Errorf("%s(-0.5) = %v, want 0", name, got)
		}
		if got := curve(1.5); got != 1 {
			t.Errorf("%s(1.5) = %v, want 1", name, got)
		}
	}
}

func TestCubicBezierMatchesKnownValues(t *testing.T) {
	// cubic-bezier(0.4, 0, 0.2, 1): x(t)=0.5 solves at t≈0.6937, where
	// y≈0.775.
	got := EaseInOut(0.5)
	if math.Abs(got-0.775) > 0.005 {
		t.Errorf("EaseInOut(0.5) = %v, want ≈0.775", got)
	}

	// An identity-control-point bezier reduces to linear.
	linearish := CubicBezier(1.0/3.0, 1.0/3.0, 2.0/3.0, 2.0/3.0)
	for _, x := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		if got := linearish(x); math.Abs(got-x) > 1e-4 {
			t.Errorf("linear bezier(%v) = %v", x, got)
		}
	}
}

func TestCurvesAreMonotonic(t *testing.T) {
	for name, curve := range map[string]Curve{
		"ease":        Ease,
		"ease-in":     EaseIn,
		"ease-out":    EaseOut,
		"ease-in-out": EaseInOut,
	} {
		prev := curve(0)
		for i := 1; i <= 100; i++ {
			v := curve(float64(i) / 100)
			if v < prev-1e-9 {
				t.Fatalf("%s not monotonic at %d/100: %v < %v", name, i, v, prev)
			}
			prev = v
		}
	}
}
