// Package ini provides an INI format handler for dfconfig.
package ini

import (
	"bytes"
	"fmt"

	"github.com/iancoleman/orderedmap"
	"gopkg.in/ini.v1"

	"github.com/thirteen37/dfconfig/internal/format"
)

// Handler implements format.Handler for INI files without sections.
type Handler struct{}

// New creates a new INI handler.
func New() *Handler {
	return &Handler{}
}

// Name returns "ini".
func (h *Handler) Name() string { return "ini" }

// Decode reads the keys of the global section in order.
// Named sections are rejected: config keys are not grouped.
func (h *Handler) Decode(data []byte) (*orderedmap.OrderedMap, error) {
	cfg, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse INI: %w", err)
	}

	result := orderedmap.New()
	for _, section := range cfg.Sections() {
		if section.Name() != ini.DefaultSection {
			if len(section.Keys()) > 0 {
				return nil, fmt.Errorf("section %q is not supported; keys must be global", section.Name())
			}
			continue
		}
		for _, key := range section.Keys() {
			result.Set(key.Name(), key.Value())
		}
	}
	return result, nil
}

// Encode writes values as global INI keys.
func (h *Handler) Encode(values *orderedmap.OrderedMap) ([]byte, error) {
	cfg := ini.Empty()
	section := cfg.Section(ini.DefaultSection)

	for _, keyName := range values.Keys() {
		if _, err := section.NewKey(keyName, format.StringValue(values, keyName)); err != nil {
			return nil, fmt.Errorf("failed to create key %q: %w", keyName, err)
		}
	}

	var buf bytes.Buffer
	if _, err := cfg.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize INI: %w", err)
	}
	return buf.Bytes(), nil
}

// Ensure Handler implements format.Handler.
var _ format.Handler = (*Handler)(nil)
