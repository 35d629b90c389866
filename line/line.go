// Package line classifies the lines of a Dwarf Fortress style init file.
//
// Classification is total: every line becomes exactly one Line, and every
// Line renders back to the exact text it was classified from.
package line

import (
	"strings"
	"unicode"
)

// Kind indicates what a line holds.
type Kind int

const (
	// Blank is an empty or whitespace-only line.
	Blank Kind = iota
	// Comment is commentary, kept verbatim including its marker.
	Comment
	// KeyValue is a key/value entry.
	KeyValue
	// Malformed is a line matching no other kind, kept verbatim.
	Malformed
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Comment:
		return "comment"
	case KeyValue:
		return "key-value"
	case Malformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Style is the written shape of a KeyValue line.
type Style int

const (
	// Bracketed is the game's token form: [KEY:VALUE].
	Bracketed Style = iota
	// Bare is the unbracketed form: key:value.
	Bare
)

// Separator divides a key from its value.
const Separator = ":"

// Line is one classified line of input.
type Line struct {
	Kind Kind
	// Num is the 1-based source line number, 0 for lines inserted after parsing.
	Num int
	// Raw holds the verbatim text of Blank, Comment and Malformed lines.
	Raw   string
	Key   string
	Value string
	Style Style
	// EOL is the terminator that followed the line: "\r\n", "\n", or "" at end of input.
	EOL string

	prefix string // text before the value
	suffix string // text after the value
}

// NewKeyValue creates an entry written in the canonical form for style.
func NewKeyValue(key, value string, style Style) Line {
	l := Line{Kind: KeyValue, Key: key, Value: value, Style: style}
	if style == Bracketed {
		l.prefix = "[" + key + Separator
		l.suffix = "]"
	} else {
		l.prefix = key + Separator
	}
	return l
}

// WithValue returns a copy of a KeyValue line holding value. The text around
// the value is kept as written.
func (l Line) WithValue(value string) Line {
	l.Value = value
	if l.Kind == KeyValue && l.prefix == "" && l.suffix == "" {
		return NewKeyValue(l.Key, value, l.Style).withPosition(l)
	}
	return l
}

func (l Line) withPosition(from Line) Line {
	l.Num = from.Num
	l.EOL = from.EOL
	return l
}

// Text returns the line as written, without its terminator.
func (l Line) Text() string {
	if l.Kind != KeyValue {
		return l.Raw
	}
	return l.prefix + l.Value + l.suffix
}

// String returns the line as written, including its terminator.
func (l Line) String() string {
	return l.Text() + l.EOL
}

// Classify turns a single line of text, without its terminator, into a Line.
func Classify(text string, syn Syntax) Line {
	body := strings.TrimSpace(text)
	if body == "" {
		return Line{Kind: Blank, Raw: text}
	}

	for _, marker := range syn.CommentMarkers {
		if marker != "" && strings.HasPrefix(body, marker) {
			return Line{Kind: Comment, Raw: text}
		}
	}

	if syn.Bracketed {
		if l, ok := classifyBracketed(text, syn.Indented); ok {
			return l
		}
	}

	if syn.Bare {
		if l, ok := classifyBare(text); ok {
			return l
		}
	}

	if syn.TextIsComment {
		return Line{Kind: Comment, Raw: text}
	}
	return Line{Kind: Malformed, Raw: text}
}

// classifyBracketed matches [KEY:VALUE]. Key and value are taken verbatim;
// the value runs from the first separator to the closing bracket. Trailing
// whitespace is allowed, leading whitespace only when indented is set.
func classifyBracketed(text string, indented bool) (Line, bool) {
	start := len(text) - len(strings.TrimLeftFunc(text, unicode.IsSpace))
	if start > 0 && !indented {
		return Line{}, false
	}
	end := len(strings.TrimRightFunc(text, unicode.IsSpace))
	body := text[start:end]

	if len(body) < 2 || body[0] != '[' || body[len(body)-1] != ']' {
		return Line{}, false
	}
	inner := body[1 : len(body)-1]
	sep := strings.Index(inner, Separator)
	if sep < 0 {
		return Line{}, false
	}

	valueStart := start + 1 + sep + len(Separator)
	valueEnd := end - 1
	return Line{
		Kind:   KeyValue,
		Key:    inner[:sep],
		Value:  text[valueStart:valueEnd],
		Style:  Bracketed,
		prefix: text[:valueStart],
		suffix: text[valueEnd:],
	}, true
}

// classifyBare matches key:value with a key free of whitespace and brackets.
// Surrounding whitespace is trimmed from key and value.
func classifyBare(text string) (Line, bool) {
	sep := strings.Index(text, Separator)
	if sep < 0 {
		return Line{}, false
	}
	key := strings.TrimSpace(text[:sep])
	if key == "" || strings.ContainsFunc(key, invalidBareKeyRune) {
		return Line{}, false
	}

	afterSep := sep + len(Separator)
	rest := text[afterSep:]
	valueStart := afterSep + len(rest) - len(strings.TrimLeftFunc(rest, unicode.IsSpace))
	valueEnd := len(strings.TrimRightFunc(text, unicode.IsSpace))
	if valueEnd < valueStart {
		valueEnd = valueStart
	}

	return Line{
		Kind:   KeyValue,
		Key:    key,
		Value:  text[valueStart:valueEnd],
		Style:  Bare,
		prefix: text[:valueStart],
		suffix: text[valueEnd:],
	}, true
}

func invalidBareKeyRune(r rune) bool {
	return unicode.IsSpace(r) || r == '[' || r == ']'
}
