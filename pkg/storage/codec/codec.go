// Package codec provides the per-format encode/decode implementations
// backing the storage package.
package codec

import (
	"bytes"
	"encoding/json"

	"github.com/BurntSushi/toml"
)

// indent is the indentation unit for pretty output in both formats.
const indent = "  "

// Codec encodes and decodes values in one serialization format.
type Codec interface {
	// Marshal renders v as indented, human-readable text.
	Marshal(v any) ([]byte, error)

	// Unmarshal parses data into the value pointed to by v.
	Unmarshal(data []byte, v any) error
}

// JSON is the JSON codec. Output is always pretty-printed.
type JSON struct{}

var _ Codec = JSON{}

// Marshal implements Codec.
func (JSON) Marshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", indent)
}

// Unmarshal implements Codec.
func (JSON) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// TOML is the TOML codec. Output is always pretty-printed.
type TOML struct{}

var _ Codec = TOML{}

// Marshal implements Codec.
func (TOML) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = indent
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal implements Codec.
func (TOML) Unmarshal(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}
