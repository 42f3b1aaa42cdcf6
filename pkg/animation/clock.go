package animation

import "time"

// Clock provides time for animations. The default implementation uses
// system time. Tests can inject a fake clock via SetClock to control
// animation timing deterministically.
type Clock interface {
	Now() time.Time
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// clock is the package-level time source, replaceable for testing.
var clock Clock = realClock{}

// epoch anchors Seconds so times stay small and precise.
var epoch = clock.Now()

// SetClock replaces the animation clock. Returns the previous clock
// so callers can restore it during cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	epoch = c.Now()
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }

// Seconds returns monotonic seconds since the clock was installed. The
// frame driver uses this to stamp input batches whose backend supplied
// no time of its own.
func Seconds() float64 {
	return clock.Now().Sub(epoch).Seconds()
}
