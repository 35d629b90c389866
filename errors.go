package dfconfig

import (
	"errors"
	"fmt"
)

// ErrInvalidEncoding is wrapped by every DecodingError.
var ErrInvalidEncoding = errors.New("dfconfig: input is not valid text")

// A DecodingError reports input bytes that cannot be read as text in the
// document's encoding.
type DecodingError struct {
	Offset int // byte offset of the first bad byte
	Line   int // 1-based
	Column int // 1-based, in bytes
	Err    error
}

func (e *DecodingError) Error() string {
	msg := fmt.Sprintf("dfconfig: cannot decode input at line %d, column %d (offset %d)", e.Line, e.Column, e.Offset)
	if e.Err != nil && e.Err != ErrInvalidEncoding {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodingError) Unwrap() []error {
	if e.Err == nil || e.Err == ErrInvalidEncoding {
		return []error{ErrInvalidEncoding}
	}
	return []error{ErrInvalidEncoding, e.Err}
}

// An EncodingError reports a line whose text cannot be written in the
// document's encoding.
type EncodingError struct {
	Line int // index of the entry, 1-based
	Err  error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("dfconfig: cannot encode entry %d: %v", e.Line, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }
