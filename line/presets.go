package line

import (
	"fmt"
	"sort"
	"strings"
)

// Syntax controls how Classify recognises lines.
type Syntax struct {
	// CommentMarkers start a comment when they open a line's non-whitespace text.
	CommentMarkers []string
	// Bracketed accepts [KEY:VALUE] entries.
	Bracketed bool
	// Bare accepts key:value entries.
	Bare bool
	// TextIsComment classifies unrecognised text as Comment rather than Malformed.
	TextIsComment bool
	// Indented accepts [KEY:VALUE] entries preceded by whitespace.
	Indented bool
}

// Presets maps preset names to syntaxes.
var Presets = map[string]Syntax{
	// Comment markers, both entry forms, anything else is malformed.
	"default": {
		CommentMarkers: []string{"#", ";", "//"},
		Bracketed:      true,
		Bare:           true,
		Indented:       true,
	},
	// How the game reads its files: tokens at the start of a line, everything
	// else is commentary.
	"df": {
		Bracketed:     true,
		TextIsComment: true,
	},
	// Tokens only, any other text is reported as malformed.
	"strict": {
		Bracketed: true,
	},
}

// DefaultSyntax is the syntax used when none is given.
var DefaultSyntax = Presets["default"]

// ResolveSyntax returns the preset with the given name. An empty name
// resolves to the default preset.
func ResolveSyntax(name string) (Syntax, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultSyntax, nil
	}
	if syn, ok := Presets[name]; ok {
		return syn, nil
	}
	return Syntax{}, fmt.Errorf("unknown syntax %q (known: %s)", name, strings.Join(PresetNames(), ", "))
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
