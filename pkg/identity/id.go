// Package identity derives and validates the stable 64-bit identifiers
// that distinguish one widget's cross-frame state from another's.
//
// The engine tracks widgets frame-to-frame using these IDs. If you start
// dragging a slider one frame, its ID is recorded as the current drag
// owner so that next frame the same slider keeps responding even if the
// pointer has left its rectangle. IDs also key persistent widget state
// such as window positions and scroll offsets, so they must be stable
// across frames and, for persisted state, across program runs.
//
// Simple widgets that hold no state can derive their ID from their
// position in the declaration tree. Widgets that persist state across
// layout changes (windows, collapsing headers) should derive it from a
// caller-chosen name instead.
package identity

import (
	"encoding/binary"
	"fmt"

	"github.com/zeebo/blake3"
)

// ID is an opaque content-hashed widget identifier.
type ID uint64

// Null is the ID used when there is no particular widget to attach
// state to, e.g. for singletons in the state store. It is a valid ID in
// all circumstances, though using it for many widgets will obviously
// collide.
const Null ID = 0

// Background identifies the implicit background layer behind all
// floating regions.
const Background ID = 1

// idDomainKey is the BLAKE3 key for ID derivation. Keyed hashing gives
// IDs stable across program runs (required for persisted widget state)
// without exposing a raw unkeyed hash of user strings. The bytes are the
// ASCII name of the domain, zero-padded to 32 bytes.
var idDomainKey = [32]byte{
	'e', 'm', 'b', 'e', 'r', '.', 'w', 'i', 'd', 'g', 'e', 't', '.', 'i', 'd', 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

func hashID(parent ID, seed []byte) ID {
	h, err := blake3.NewKeyed(idDomainKey[:])
	if err != nil {
		// The key is a compile-time constant of the right size;
		// NewKeyed cannot fail on it.
		panic(err)
	}
	var p [8]byte
	binary.LittleEndian.PutUint64(p[:], uint64(parent))
	h.Write(p[:])
	h.Write(seed)
	var digest [8]byte
	d := h.Digest()
	d.Read(digest[:])
	return ID(binary.LittleEndian.Uint64(digest[:]))
}

// New derives an ID from a string seed, e.g. a window title.
func New(seed string) ID {
	return hashID(Null, []byte(seed))
}

// With derives a child ID from a parent scope and a string seed.
func (id ID) With(seed string) ID {
	return hashID(id, []byte(seed))
}

// WithIndex derives a child ID from a parent scope and a loop index.
func (id ID) WithIndex(i int) ID {
	var seed [8]byte
	binary.LittleEndian.PutUint64(seed[:], uint64(i))
	return hashID(id, seed[:])
}

// WithID combines two IDs, e.g. a scope ID with a widget ID.
func (id ID) WithID(other ID) ID {
	var seed [8]byte
	binary.LittleEndian.PutUint64(seed[:], uint64(other))
	return hashID(id, seed[:])
}

// String formats the full 64-bit value in hex.
func (id ID) String() string {
	return fmt.Sprintf("%016X", uint64(id))
}

// ShortString is a short and readable summary, for diagnostics.
func (id ID) ShortString() string {
	return fmt.Sprintf("%04X", uint64(id)&0xFFFF)
}

// Map is a map keyed by widget ID. IDs already have good entropy, so the
// runtime's map hash on uint64 is all that is needed.
type Map[V any] map[ID]V

// Set is a set of widget IDs.
type Set map[ID]struct{}
