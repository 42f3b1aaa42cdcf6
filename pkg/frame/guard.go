package frame

import "sync/atomic"

// Debug controls whether lifecycle misuse fails loudly. When true,
// re-entrant access to a Memory panics with a diagnostic; when false
// the checks are skipped entirely. Mirrors the debug/release contract:
// exactly one logical owner of the borrow at a time, enforced
// best-effort in development.
var Debug = true

// SetDebug enables or disables the development-time lifecycle checks.
func SetDebug(debug bool) {
	Debug = debug
}

// guard is the runtime-checked exclusive-access token for a Memory.
//
// The engine is single-threaded by contract; the guard exists to catch
// the embedding bug where widget code re-enters the memory borrow it is
// already inside (e.g. a callback that calls back into the frame pass).
// Acquire panics on re-entry in debug mode and costs one uncontended
// atomic operation in release mode.
type guard struct {
	held atomic.Bool
}

func (g *guard) acquire() {
	if g.held.Swap(true) && Debug {
		panic("ember: re-entrant access to frame.Memory; " +
			"finish the current Borrow before starting another")
	}
}

func (g *guard) release() {
	g.held.Store(false)
}
