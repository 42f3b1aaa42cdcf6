package state

import (
	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Codec turns slot values and store snapshots into bytes and back. The
// store never interprets the bytes itself; a pending slot is carried
// verbatim until the first typed access decodes it.
type Codec interface {
	// Name identifies the codec in snapshot headers.
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// YAML returns the human-readable text codec. It is the default: state
// snapshots stay inspectable and hand-editable.
func YAML() Codec { return yamlCodec{} }

// CBOR returns the compact binary codec, for embeddings that snapshot
// large stores frequently.
func CBOR() Codec { return cborCodec{} }

type yamlCodec struct{}

func (yamlCodec) Name() string                       { return "yaml" }
func (yamlCodec) Marshal(v any) ([]byte, error)      { return yaml.Marshal(v) }
func (yamlCodec) Unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }

type cborCodec struct{}

func (cborCodec) Name() string                       { return "cbor" }
func (cborCodec) Marshal(v any) ([]byte, error)      { return cbor.Marshal(v) }
func (cborCodec) Unmarshal(data []byte, v any) error { return cbor.Unmarshal(data, v) }
