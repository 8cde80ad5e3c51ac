package credit

import (
	"errors"
	"fmt"
)

// Record-level validation errors.
var (
	ErrNotObject   = errors.New("record is not a JSON object")
	ErrBadCategory = errors.New("category value is not a list of names")
)

// IOError reports that a credit source could not be opened or read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// FormatError reports a line that is not a well-formed credit record.
// Line is 1-based.
type FormatError struct {
	Path string
	Line int
	Err  error
}

func (e *FormatError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parsing line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("parsing %s line %d: %v", e.Path, e.Line, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
