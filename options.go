package dfconfig

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/thirteen37/dfconfig/line"
)

// Policy selects which entry a key refers to when it occurs more than once.
type Policy int

const (
	// LastWins selects the last occurrence, matching how the game reads its files.
	LastWins Policy = iota
	// FirstWins selects the first occurrence.
	FirstWins
)

func (p Policy) String() string {
	if p == FirstWins {
		return "first-wins"
	}
	return "last-wins"
}

// ParsePolicy parses "last", "first", or their String forms.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "last", "last-wins":
		return LastWins, nil
	case "first", "first-wins":
		return FirstWins, nil
	default:
		return LastWins, fmt.Errorf("dfconfig: unknown policy %q", name)
	}
}

// DefaultPolicy is the duplicate-key policy of documents created without WithPolicy.
const DefaultPolicy = LastWins

// DefaultLineEnding terminates inserted entries when the document has no
// terminated line to copy from.
const DefaultLineEnding = line.CRLF

// Option configures a Document.
type Option func(d *Document)

// WithSyntax sets the rules used to classify lines.
func WithSyntax(syn line.Syntax) Option {
	return func(d *Document) {
		d.syntax = syn
	}
}

// WithPolicy sets the duplicate-key policy used by Get, Set and Remove.
func WithPolicy(p Policy) Option {
	return func(d *Document) {
		d.policy = p
	}
}

// WithLineEnding sets the terminator for inserted entries in a document
// that has no terminated line of its own.
func WithLineEnding(eol string) Option {
	return func(d *Document) {
		if eol == line.CRLF || eol == line.LF {
			d.defaultEOL = eol
		}
	}
}

// WithEncoding reads and writes the document in a legacy text encoding, such
// as charmap.CodePage437. Without it, input must be UTF-8.
func WithEncoding(enc encoding.Encoding) Option {
	return func(d *Document) {
		d.enc = enc
	}
}

// LookupEncoding returns the encoding registered with IANA under name, such
// as "IBM437", "cp437" or "windows-1252". UTF-8 and the empty name return a
// nil encoding, which Parse treats as strict UTF-8.
func LookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "utf8") {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("dfconfig: unknown encoding %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("dfconfig: unsupported encoding %q", name)
	}
	if canonical, _ := ianaindex.IANA.Name(enc); canonical == "UTF-8" {
		return nil, nil
	}
	return enc, nil
}
