// Package json provides a JSON format handler for dfconfig.
package json

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/iancoleman/orderedmap"

	"github.com/thirteen37/dfconfig/internal/format"
)

// Handler implements format.Handler for JSON/JSONC objects of scalar values.
type Handler struct {
	// StripComments removes // comments before decoding.
	StripComments bool
	// Indent is the indentation used when encoding; defaults to two spaces.
	Indent string
}

// New creates a new JSON handler.
func New() *Handler {
	return &Handler{}
}

// commentRegex matches single-line // comments.
var commentRegex = regexp.MustCompile(`(?m)^\s*//.*$|//[^"]*$`)

// StripComments removes single-line // comments from JSON.
// This allows parsing JSONC (JSON with comments) files.
func StripComments(data []byte) []byte {
	return commentRegex.ReplaceAll(data, nil)
}

// Name returns "json".
func (h *Handler) Name() string { return "json" }

// Decode reads a JSON object. Key order is preserved; values are converted to strings.
func (h *Handler) Decode(data []byte) (*orderedmap.OrderedMap, error) {
	if h.StripComments {
		data = StripComments(data)
	}

	raw := orderedmap.New()
	if err := json.Unmarshal(data, raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	result := orderedmap.New()
	for _, key := range raw.Keys() {
		v, _ := raw.Get(key)
		s, err := format.ToString(v)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		result.Set(key, s)
	}
	return result, nil
}

// Encode writes values as an indented JSON object.
func (h *Handler) Encode(values *orderedmap.OrderedMap) ([]byte, error) {
	indent := h.Indent
	if indent == "" {
		indent = "  "
	}

	data, err := json.MarshalIndent(values, "", indent)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize JSON: %w", err)
	}
	// Add trailing newline
	return append(data, '\n'), nil
}

// Ensure Handler implements format.Handler.
var _ format.Handler = (*Handler)(nil)
