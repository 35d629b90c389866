// Package native provides a handler for the config file format itself.
package native

import (
	"fmt"

	"github.com/iancoleman/orderedmap"

	"github.com/thirteen37/dfconfig"
	"github.com/thirteen37/dfconfig/internal/format"
	"github.com/thirteen37/dfconfig/line"
)

// Handler implements format.Handler for [KEY:VALUE] files.
type Handler struct {
	Syntax line.Syntax
}

// New creates a native handler classifying lines with syn.
func New(syn line.Syntax) *Handler {
	return &Handler{Syntax: syn}
}

// Name returns "native".
func (h *Handler) Name() string { return "native" }

// Decode parses data and returns the effective value of each key.
func (h *Handler) Decode(data []byte) (*orderedmap.OrderedMap, error) {
	doc, err := dfconfig.Parse(data, dfconfig.WithSyntax(h.Syntax))
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return format.Values(doc), nil
}

// Encode writes one [KEY:VALUE] line per pair.
func (h *Handler) Encode(values *orderedmap.OrderedMap) ([]byte, error) {
	doc := dfconfig.New(dfconfig.WithSyntax(h.Syntax))
	for _, key := range values.Keys() {
		doc.Set(key, format.StringValue(values, key))
	}
	return doc.Bytes()
}

// Ensure Handler implements format.Handler.
var _ format.Handler = (*Handler)(nil)
