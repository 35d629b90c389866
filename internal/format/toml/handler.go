// Package toml provides a TOML format handler for dfconfig.
package toml

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/iancoleman/orderedmap"

	"github.com/thirteen37/dfconfig/internal/format"
)

// Handler implements format.Handler for flat TOML documents.
type Handler struct{}

// New creates a new TOML handler.
func New() *Handler {
	return &Handler{}
}

// Name returns "toml".
func (h *Handler) Name() string { return "toml" }

// Decode reads top-level TOML keys in document order.
// Tables and arrays are rejected.
func (h *Handler) Decode(data []byte) (*orderedmap.OrderedMap, error) {
	var raw map[string]any
	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	result := orderedmap.New()
	for _, key := range getKeysInOrder(meta, raw) {
		s, err := format.ToString(raw[key])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		result.Set(key, s)
	}
	return result, nil
}

// getKeysInOrder returns the top-level keys of m in document order using TOML metadata.
func getKeysInOrder(meta toml.MetaData, m map[string]any) []string {
	var ordered []string
	seen := make(map[string]bool)
	for _, key := range meta.Keys() {
		if len(key) == 0 {
			continue
		}
		k := key[0]
		if _, ok := m[k]; ok && !seen[k] {
			seen[k] = true
			ordered = append(ordered, k)
		}
	}
	return ordered
}

// Encode writes values as TOML string assignments, one per line, in order.
func (h *Handler) Encode(values *orderedmap.OrderedMap) ([]byte, error) {
	var buf bytes.Buffer
	// The encoder sorts map keys, so each pair is written on its own.
	for _, key := range values.Keys() {
		pair := map[string]string{key: format.StringValue(values, key)}
		if err := toml.NewEncoder(&buf).Encode(pair); err != nil {
			return nil, fmt.Errorf("failed to serialize TOML: %w", err)
		}
	}
	return buf.Bytes(), nil
}

// Ensure Handler implements format.Handler.
var _ format.Handler = (*Handler)(nil)
