// Package state is the typed per-widget memory that survives between
// frames: scroll offsets, open/closed flags, drag anchors, window
// rectangles.
//
// Each widget ID owns at most one slot. A slot is either materialized —
// a live Go value plus the tag of its type — or pending: the serialized
// bytes it was loaded from, not yet decoded. Pending slots are decoded
// lazily on the first typed access, so loading a large snapshot costs
// nothing for the slots a frame never reads.
//
// Access never fails from the widget's point of view: a missing slot, a
// type mismatch or an undecodable pending slot all degrade to the
// caller's default. Decode failures are additionally reported through
// uierror so embeddings can notice corrupted snapshots.
package state

import (
	"fmt"
	"reflect"

	"github.com/go-drift/ember/pkg/identity"
	"github.com/go-drift/ember/pkg/uierror"
)

// slot is the two-state representation: pending bytes before the first
// typed access, a tagged value after. Exactly one of the two forms is
// populated at a time.
type slot struct {
	// Materialized form.
	tag   string
	value any

	// Pending form: serialized bytes awaiting first typed access.
	pending []byte
}

func (s *slot) materialized() bool {
	return s.pending == nil
}

// Store holds one slot per widget ID.
//
// The store is single-threaded, like everything else in the engine:
// last writer wins, no internal locking.
type Store struct {
	slots identity.Map[*slot]
	codec Codec
}

// NewStore creates an empty store using the given codec for pending
// slots and snapshots. A nil codec selects YAML.
func NewStore(codec Codec) *Store {
	if codec == nil {
		codec = YAML()
	}
	return &Store{
		slots: make(identity.Map[*slot]),
		codec: codec,
	}
}

// tagOf is the runtime type tag for T: the fully qualified type name.
// Using the name rather than an opaque hash keeps snapshots inspectable.
func tagOf[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// materialize transitions a pending slot to the typed form, or reports
// why it could not. The pending bytes are kept untouched on failure so
// a later access with the right type can still succeed.
func materialize[T any](st *Store, s *slot) (T, bool) {
	var v T
	if err := st.codec.Unmarshal(s.pending, &v); err != nil {
		var zero T
		return zero, false
	}
	s.tag = tagOf[T]()
	s.value = v
	s.pending = nil
	return v, true
}

// Get returns the value stored for id as type T, if there is one and it
// has (or decodes to) that type. It never inserts.
func Get[T any](st *Store, id identity.ID) (T, bool) {
	var zero T
	s, ok := st.slots[id]
	if !ok {
		return zero, false
	}
	if !s.materialized() {
		return materialize[T](st, s)
	}
	if s.tag != tagOf[T]() {
		return zero, false
	}
	return s.value.(T), true
}

// GetOrInsertWith returns the value stored for id as type T,
// materializing or repairing the slot with def() when necessary:
// a missing slot is created, a slot of a different type is overwritten,
// and a pending slot that fails to decode as T is replaced (the decode
// failure is reported through uierror).
func GetOrInsertWith[T any](st *Store, id identity.ID, def func() T) T {
	s, ok := st.slots[id]
	if !ok {
		v := def()
		st.slots[id] = &slot{tag: tagOf[T](), value: v}
		return v
	}
	if !s.materialized() {
		var v T
		if err := st.codec.Unmarshal(s.pending, &v); err != nil {
			uierror.Report(uierror.New("state.GetOrInsertWith", uierror.KindCodec,
				fmt.Errorf("decoding slot %s as %s: %w", id, tagOf[T](), err)))
			v = def()
		}
		s.tag = tagOf[T]()
		s.value = v
		s.pending = nil
		return v
	}
	if s.tag != tagOf[T]() {
		v := def()
		s.tag = tagOf[T]()
		s.value = v
		return v
	}
	return s.value.(T)
}

// GetOr is GetOrInsertWith with an eager default value.
func GetOr[T any](st *Store, id identity.ID, def T) T {
	return GetOrInsertWith(st, id, func() T { return def })
}

// Insert stores value for id, replacing any previous slot regardless of
// its type or representation.
func Insert[T any](st *Store, id identity.ID, value T) {
	st.slots[id] = &slot{tag: tagOf[T](), value: value}
}

// Remove deletes the slot for id, if any.
func (st *Store) Remove(id identity.ID) {
	delete(st.slots, id)
}

// Count returns how many materialized slots currently hold a T.
// Pending slots are not counted; their type is unknown until decoded.
func Count[T any](st *Store) int {
	tag := tagOf[T]()
	n := 0
	for _, s := range st.slots {
		if s.materialized() && s.tag == tag {
			n++
		}
	}
	return n
}

// Reset removes every materialized slot holding a T.
func Reset[T any](st *Store) {
	tag := tagOf[T]()
	for id, s := range st.slots {
		if s.materialized() && s.tag == tag {
			delete(st.slots, id)
		}
	}
}

// ResetAll removes every slot.
func (st *Store) ResetAll() {
	clear(st.slots)
}

// Len returns the total number of slots, pending included.
func (st *Store) Len() int {
	return len(st.slots)
}

// PendingLen returns the number of slots still in serialized form.
func (st *Store) PendingLen() int {
	n := 0
	for _, s := range st.slots {
		if !s.materialized() {
			n++
		}
	}
	return n
}
