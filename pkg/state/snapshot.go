package state

import (
	"fmt"
	"sort"

	"github.com/go-drift/ember/pkg/identity"
	"github.com/go-drift/ember/pkg/uierror"
)

// snapshotVersion is bumped when the snapshot layout changes.
const snapshotVersion = 1

// snapshotDoc is the on-disk shape of a store snapshot. Slot payloads
// are nested documents in the same codec as the envelope, stored as
// strings so YAML snapshots stay readable.
type snapshotDoc struct {
	Version int             `yaml:"version" cbor:"version"`
	Codec   string          `yaml:"codec" cbor:"codec"`
	Slots   []snapshotEntry `yaml:"slots" cbor:"slots"`
}

type snapshotEntry struct {
	ID uint64 `yaml:"id" cbor:"id"`

	// Type is the tag the slot had when snapshotted, or empty if it was
	// still pending. Informational: materialization is always driven by
	// the type the reader asks for, never by this field.
	Type string `yaml:"type,omitempty" cbor:"type,omitempty"`

	Data string `yaml:"data" cbor:"data"`
}

// Snapshot serializes the whole store. Materialized slots are encoded
// with the store codec; pending slots are passed through verbatim, so a
// snapshot never loses data the current run did not touch. Slots whose
// value fails to encode are skipped and reported.
func (st *Store) Snapshot() ([]byte, error) {
	doc := snapshotDoc{
		Version: snapshotVersion,
		Codec:   st.codec.Name(),
		Slots:   make([]snapshotEntry, 0, len(st.slots)),
	}
	for id, s := range st.slots {
		if !s.materialized() {
			doc.Slots = append(doc.Slots, snapshotEntry{ID: uint64(id), Data: string(s.pending)})
			continue
		}
		data, err := st.codec.Marshal(s.value)
		if err != nil {
			uierror.Report(uierror.New("state.Snapshot", uierror.KindCodec,
				fmt.Errorf("encoding slot %s (%s): %w", id, s.tag, err)))
			continue
		}
		doc.Slots = append(doc.Slots, snapshotEntry{ID: uint64(id), Type: s.tag, Data: string(data)})
	}
	sort.Slice(doc.Slots, func(i, j int) bool { return doc.Slots[i].ID < doc.Slots[j].ID })
	return st.codec.Marshal(doc)
}

// Load replaces the store content with the snapshot's slots, all in
// pending form. Nothing is decoded here; each slot materializes on its
// first typed access.
func (st *Store) Load(data []byte) error {
	var doc snapshotDoc
	if err := st.codec.Unmarshal(data, &doc); err != nil {
		return uierror.New("state.Load", uierror.KindPersist, err)
	}
	if doc.Version != snapshotVersion {
		return uierror.New("state.Load", uierror.KindPersist,
			fmt.Errorf("unsupported snapshot version %d", doc.Version))
	}
	slots := make(identity.Map[*slot], len(doc.Slots))
	for _, entry := range doc.Slots {
		slots[identity.ID(entry.ID)] = &slot{pending: []byte(entry.Data)}
	}
	st.slots = slots
	return nil
}
