package config

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/viant/afs"
)

func TestProfile_SaveLoad(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := filepath.Join(t.TempDir(), DefaultName)

	p := &Profile{
		Preserve: []string{"SOUND", "KEY*"},
		Options:  Options{Syntax: "df", Encoding: "cp437"},
	}
	if err := p.Save(ctx, fs, URL); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(ctx, fs, URL)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got.Preserve) != 2 || got.Preserve[0] != "SOUND" || got.Preserve[1] != "KEY*" {
		t.Errorf("Load() Preserve = %v", got.Preserve)
	}
	if got.Options != p.Options {
		t.Errorf("Load() Options = %+v, want %+v", got.Options, p.Options)
	}

	selectors := got.Selectors()
	if len(selectors) != 2 || !selectors[1].Match("KEYBINDINGS") {
		t.Errorf("Selectors() = %v", selectors)
	}
}

func TestLoadOrEmpty(t *testing.T) {
	ctx := context.Background()
	p, err := LoadOrEmpty(ctx, afs.New(), filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadOrEmpty() error = %v", err)
	}
	if len(p.Preserve) != 0 {
		t.Errorf("LoadOrEmpty() Preserve = %v, want empty", p.Preserve)
	}
}

func TestLoad_Invalid(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := filepath.Join(t.TempDir(), "bad.json")
	if err := fs.Upload(ctx, URL, 0644, strings.NewReader("{")); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if _, err := Load(ctx, fs, URL); err == nil {
		t.Error("Load() error = nil, want parse error")
	}
}

func TestProfile_AddRemoveKey(t *testing.T) {
	p := &Profile{}

	if !p.AddKey("SOUND") {
		t.Error("AddKey() = false for new key")
	}
	if p.AddKey("SOUND") {
		t.Error("AddKey() = true for existing key")
	}
	if !p.AddKey("VOLUME") {
		t.Error("AddKey() = false for second key")
	}
	if !p.RemoveKey("SOUND") {
		t.Error("RemoveKey() = false for existing key")
	}
	if p.RemoveKey("SOUND") {
		t.Error("RemoveKey() = true for removed key")
	}
	if len(p.Preserve) != 1 || p.Preserve[0] != "VOLUME" {
		t.Errorf("Preserve = %v, want [VOLUME]", p.Preserve)
	}
}
