package obj

import (
	"errors"
	"fmt"
)

// Loading errors. Each reaches the caller wrapped in a *LineError that
// records where in the document the load failed.
var (
	ErrInvalidLine            = errors.New("invalid line")
	ErrWrongNumberOfArguments = errors.New("wrong number of arguments")
	ErrParse                  = errors.New("parse error")
)

// LineError is a loading failure tied to one directive line. Line is
// the zero-based index of the line among processed directive lines;
// comment and blank lines are not counted.
type LineError struct {
	Line   int
	Err    error  // one of the sentinel errors above
	Detail string // short context, usually the offending token
}

// Error implements the error interface.
func (e *LineError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("line %d: %v: %s", e.Line, e.Err, e.Detail)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap exposes the error kind to errors.Is and errors.As.
func (e *LineError) Unwrap() error {
	return e.Err
}

// lineErr builds a LineError of the given kind at line n.
func lineErr(n int, kind error, detail string) error {
	return &LineError{Line: n, Err: kind, Detail: detail}
}
