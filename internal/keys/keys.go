// Package keys provides selectors for choosing config entries by key.
package keys

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"
)

// Selector matches entry keys.
type Selector interface {
	// Match reports whether key is selected.
	Match(key string) bool

	// String returns the selector as written.
	String() string
}

// Pattern selects keys equal to a literal or matching a glob.
// Example: "SOUND", "G_FPS_*"
type Pattern struct {
	pattern string
}

// NewPattern creates a Pattern. Malformed globs match their literal text only.
func NewPattern(pattern string) *Pattern {
	return &Pattern{pattern: pattern}
}

// Match reports whether key equals the pattern or matches it as a glob.
func (p *Pattern) Match(key string) bool {
	if key == p.pattern {
		return true
	}
	if !strings.ContainsAny(p.pattern, "*?[") {
		return false
	}
	ok, err := path.Match(p.pattern, key)
	return err == nil && ok
}

// String returns the pattern.
func (p *Pattern) String() string {
	return p.pattern
}

// ParseList parses a JSON array of patterns, or a single bare pattern.
// Example inputs: `["SOUND", "G_FPS_*"]`, `VOLUME`
func ParseList(s string) ([]Selector, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty key list")
	}
	if !strings.HasPrefix(s, "[") {
		return []Selector{NewPattern(s)}, nil
	}

	var patterns []string
	if err := json.Unmarshal([]byte(s), &patterns); err != nil {
		return nil, fmt.Errorf("invalid key list: %w", err)
	}
	return FromStrings(patterns), nil
}

// FromStrings wraps each string in a Pattern.
func FromStrings(patterns []string) []Selector {
	result := make([]Selector, len(patterns))
	for i, p := range patterns {
		result[i] = NewPattern(p)
	}
	return result
}

// FormatList returns patterns as a JSON array.
func FormatList(selectors []Selector) string {
	patterns := make([]string, len(selectors))
	for i, s := range selectors {
		patterns[i] = s.String()
	}
	data, _ := json.Marshal(patterns)
	return string(data)
}

// Any reports whether any selector matches key.
func Any(selectors []Selector, key string) bool {
	for _, s := range selectors {
		if s.Match(key) {
			return true
		}
	}
	return false
}
