package dfconfig

import (
	"bytes"
	"io"
	"iter"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"

	"github.com/thirteen37/dfconfig/line"
)

// Entry is one classified line of a document.
type Entry = line.Line

const utf8BOM = "\xef\xbb\xbf"

// Document is an ordered, editable init file.
type Document struct {
	lines      []Entry
	syntax     line.Syntax
	policy     Policy
	defaultEOL string
	enc        encoding.Encoding
	bom        bool
}

// New returns an empty document.
func New(opts ...Option) *Document {
	d := &Document{
		syntax:     line.DefaultSyntax,
		policy:     DefaultPolicy,
		defaultEOL: DefaultLineEnding,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Parse decodes data and classifies each of its lines. It fails only when
// data is not valid text in the document's encoding, returning a
// *DecodingError.
func Parse(data []byte, opts ...Option) (*Document, error) {
	d := New(opts...)

	var text string
	if d.enc == nil {
		if bytes.HasPrefix(data, []byte(utf8BOM)) {
			d.bom = true
			data = data[len(utf8BOM):]
		}
		if off := invalidUTF8Offset(data); off >= 0 {
			err := newDecodingError(data, off)
			if d.bom {
				err.Offset += len(utf8BOM)
			}
			return nil, err
		}
		text = string(data)
	} else {
		decoded, err := d.enc.NewDecoder().Bytes(data)
		if err != nil {
			return nil, &DecodingError{Err: err}
		}
		text = string(decoded)
	}

	d.lines = line.Tokenize(text, d.syntax)
	return d, nil
}

// ParseString classifies the lines of text. A leading byte order mark is
// stripped and restored by Bytes.
func ParseString(text string, opts ...Option) *Document {
	d := New(opts...)
	if d.enc == nil && strings.HasPrefix(text, utf8BOM) {
		d.bom = true
		text = text[len(utf8BOM):]
	}
	d.lines = line.Tokenize(text, d.syntax)
	return d
}

// invalidUTF8Offset returns the offset of the first byte that is not part of
// a valid UTF-8 sequence, or -1.
func invalidUTF8Offset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}

// newDecodingError locates off within data by line and column.
func newDecodingError(data []byte, off int) *DecodingError {
	before := data[:off]
	return &DecodingError{
		Offset: off,
		Line:   bytes.Count(before, []byte("\n")) + 1,
		Column: len(before) - bytes.LastIndexByte(before, '\n'),
		Err:    ErrInvalidEncoding,
	}
}

// Get returns the value of the entry selected for key by the document's
// policy.
func (d *Document) Get(key string) (string, bool) {
	i := d.find(key)
	if i < 0 {
		return "", false
	}
	return d.lines[i].Value, true
}

// Has reports whether any entry has key.
func (d *Document) Has(key string) bool {
	return d.find(key) >= 0
}

// GetAll returns the values of every entry with key, in file order.
func (d *Document) GetAll(key string) []string {
	var values []string
	for _, l := range d.lines {
		if l.Kind == line.KeyValue && l.Key == key {
			values = append(values, l.Value)
		}
	}
	return values
}

// Set updates the value of the entry selected for key, keeping its position
// and surrounding text. Other entries with the same key are left alone. If
// there is no entry with key, one is appended.
func (d *Document) Set(key, value string) {
	if i := d.find(key); i >= 0 {
		d.lines[i] = d.lines[i].WithValue(value)
		return
	}
	d.appendEntry(key, value)
}

// SetAll updates every entry with key, appending one if there is none. It
// returns the number of entries written.
func (d *Document) SetAll(key, value string) int {
	n := 0
	for i, l := range d.lines {
		if l.Kind == line.KeyValue && l.Key == key {
			d.lines[i] = l.WithValue(value)
			n++
		}
	}
	if n == 0 {
		d.appendEntry(key, value)
		n = 1
	}
	return n
}

// Remove deletes the entry selected for key and reports whether there was one.
func (d *Document) Remove(key string) bool {
	i := d.find(key)
	if i < 0 {
		return false
	}
	d.lines = slices.Delete(d.lines, i, i+1)
	return true
}

// RemoveAll deletes every entry with key and returns how many were removed.
func (d *Document) RemoveAll(key string) int {
	before := len(d.lines)
	d.lines = slices.DeleteFunc(d.lines, func(l Entry) bool {
		return l.Kind == line.KeyValue && l.Key == key
	})
	return before - len(d.lines)
}

// find returns the index of the entry selected for key, or -1.
func (d *Document) find(key string) int {
	match := func(i int) bool {
		return d.lines[i].Kind == line.KeyValue && d.lines[i].Key == key
	}
	if d.policy == FirstWins {
		for i := range d.lines {
			if match(i) {
				return i
			}
		}
		return -1
	}
	for i := len(d.lines) - 1; i >= 0; i-- {
		if match(i) {
			return i
		}
	}
	return -1
}

// appendEntry adds a new entry at the end, written in the style of the
// document's other entries. An unterminated last line is terminated first
// and the new entry takes its place as the unterminated one.
func (d *Document) appendEntry(key, value string) {
	l := line.NewKeyValue(key, value, d.entryStyle())
	eol := d.lineEnding()
	if n := len(d.lines); n > 0 && d.lines[n-1].EOL == "" {
		d.lines[n-1].EOL = eol
	} else {
		l.EOL = eol
	}
	d.lines = append(d.lines, l)
}

func (d *Document) entryStyle() line.Style {
	for i := len(d.lines) - 1; i >= 0; i-- {
		if d.lines[i].Kind == line.KeyValue {
			return d.lines[i].Style
		}
	}
	if d.syntax.Bare && !d.syntax.Bracketed {
		return line.Bare
	}
	return line.Bracketed
}

// lineEnding returns the first terminator used in the document, or the
// configured default.
func (d *Document) lineEnding() string {
	for _, l := range d.lines {
		if l.EOL != "" {
			return l.EOL
		}
	}
	return d.defaultEOL
}

// Entries returns a copy of the document's lines.
func (d *Document) Entries() []Entry {
	return slices.Clone(d.lines)
}

// All iterates over the document's lines with their indexes.
func (d *Document) All() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, l := range d.lines {
			if !yield(i, l) {
				return
			}
		}
	}
}

// Keys returns each distinct key in order of first appearance.
func (d *Document) Keys() []string {
	seen := make(map[string]bool)
	var keys []string
	for _, l := range d.lines {
		if l.Kind == line.KeyValue && !seen[l.Key] {
			seen[l.Key] = true
			keys = append(keys, l.Key)
		}
	}
	return keys
}

// Comments returns the text of every comment line.
func (d *Document) Comments() []string {
	var comments []string
	for _, l := range d.lines {
		if l.Kind == line.Comment {
			comments = append(comments, l.Raw)
		}
	}
	return comments
}

// Malformed returns the lines that could not be classified.
func (d *Document) Malformed() []Entry {
	var bad []Entry
	for _, l := range d.lines {
		if l.Kind == line.Malformed {
			bad = append(bad, l)
		}
	}
	return bad
}

// Len returns the number of key/value entries, duplicates included.
func (d *Document) Len() int {
	n := 0
	for _, l := range d.lines {
		if l.Kind == line.KeyValue {
			n++
		}
	}
	return n
}

// IsEmpty reports whether the document has no key/value entries.
func (d *Document) IsEmpty() bool {
	return d.Len() == 0
}

// Policy returns the document's duplicate-key policy.
func (d *Document) Policy() Policy {
	return d.policy
}

// Clone returns an independent copy of the document.
func (d *Document) Clone() *Document {
	c := *d
	c.lines = slices.Clone(d.lines)
	return &c
}

// String returns the document as text.
func (d *Document) String() string {
	var sb strings.Builder
	for _, l := range d.lines {
		sb.WriteString(l.String())
	}
	return sb.String()
}

// Bytes returns the document encoded the way it was read: with its byte
// order mark, or in its legacy encoding.
func (d *Document) Bytes() ([]byte, error) {
	if d.enc == nil {
		text := d.String()
		if d.bom {
			text = utf8BOM + text
		}
		return []byte(text), nil
	}

	out, err := d.enc.NewEncoder().String(d.String())
	if err != nil {
		return nil, d.encodingError(err)
	}
	return []byte(out), nil
}

// encodingError finds the first line that cannot be encoded.
func (d *Document) encodingError(err error) *EncodingError {
	for i, l := range d.lines {
		if _, lineErr := d.enc.NewEncoder().String(l.String()); lineErr != nil {
			return &EncodingError{Line: i + 1, Err: lineErr}
		}
	}
	return &EncodingError{Err: err}
}

// WriteTo writes the encoded document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	b, err := d.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	return int64(n), err
}
