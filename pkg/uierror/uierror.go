// Package uierror provides structured reporting for the state engine's
// non-fatal failures.
//
// Nothing in the engine returns a recoverable error to widget code: a
// malformed frame must never crash the application loop, so every
// internal failure degrades to a default behavior. This package is the
// side channel those degradations are reported through, so embedding
// applications can log or collect them.
package uierror

import (
	"fmt"
	"time"
)

// Kind identifies the category of a reported failure.
type Kind int

const (
	// KindUnknown indicates a failure of unknown type.
	KindUnknown Kind = iota
	// KindCodec indicates a state-slot encode or decode failure.
	KindCodec
	// KindPersist indicates a snapshot or options-file failure.
	KindPersist
	// KindLifecycle indicates frame lifecycle misuse.
	KindLifecycle
)

func (k Kind) String() string {
	switch k {
	case KindCodec:
		return "codec"
	case KindPersist:
		return "persist"
	case KindLifecycle:
		return "lifecycle"
	default:
		return "unknown"
	}
}

// UIError is a structured non-fatal failure inside the state engine.
type UIError struct {
	// Op is the operation that degraded (e.g. "state.GetOrInsertWith").
	Op string
	// Kind categorizes the failure.
	Kind Kind
	// Err is the underlying error.
	Err error
	// Timestamp is when the failure occurred.
	Timestamp time.Time
}

func (e *UIError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *UIError) Unwrap() error {
	return e.Err
}

// New constructs a UIError for the given operation.
func New(op string, kind Kind, err error) *UIError {
	return &UIError{Op: op, Kind: kind, Err: err}
}
