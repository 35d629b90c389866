// Package config provides profile file handling for dfconfig.
package config

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/viant/afs"
	"github.com/viant/afs/file"

	"github.com/thirteen37/dfconfig/internal/keys"
)

// DefaultName is the profile file name looked up next to a config.
const DefaultName = ".dfconfig.json"

// Profile represents a .dfconfig.json file.
type Profile struct {
	// Preserve lists user-owned keys (exact or glob) that merges never overwrite.
	Preserve []string `json:"preserve"`

	// Options contains parsing settings.
	Options Options `json:"options,omitempty"`
}

// Options contains optional settings.
type Options struct {
	Syntax   string `json:"syntax,omitempty"`
	Encoding string `json:"encoding,omitempty"`
}

// Load reads a Profile from a file or URL.
func Load(ctx context.Context, fs afs.Service, URL string) (*Profile, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}

	return &p, nil
}

// LoadOrEmpty reads a Profile, returning an empty one if URL does not exist.
func LoadOrEmpty(ctx context.Context, fs afs.Service, URL string) (*Profile, error) {
	exists, err := fs.Exists(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to check profile: %w", err)
	}
	if !exists {
		return &Profile{}, nil
	}
	return Load(ctx, fs, URL)
}

// Save writes the Profile to a file or URL.
func (p *Profile) Save(ctx context.Context, fs afs.Service, URL string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(append(data, '\n'))); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}

	return nil
}

// Selectors returns the preserved keys as selectors.
func (p *Profile) Selectors() []keys.Selector {
	return keys.FromStrings(p.Preserve)
}

// AddKey adds a preserved key pattern.
// Returns true if the key was added, false if it already exists.
func (p *Profile) AddKey(key string) bool {
	if slices.Contains(p.Preserve, key) {
		return false
	}
	p.Preserve = append(p.Preserve, key)
	return true
}

// RemoveKey removes a preserved key pattern.
// Returns true if the key was removed, false if it wasn't found.
func (p *Profile) RemoveKey(key string) bool {
	i := slices.Index(p.Preserve, key)
	if i < 0 {
		return false
	}
	p.Preserve = slices.Delete(p.Preserve, i, i+1)
	return true
}
