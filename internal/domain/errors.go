package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColumn is wrapped by ParseError when a required header is absent.
	ErrMissingColumn = errors.New("missing required column")
	// ErrEmptyInput is wrapped by ParseError when the input has no header row.
	ErrEmptyInput = errors.New("empty input")
	// ErrSessionNotFound is returned by session stores for unknown or expired ids.
	ErrSessionNotFound = errors.New("session not found")
)

// ParseError reports input that could not be turned into a Dataset.
// Line is 1-based and counts the header; zero means the whole input.
type ParseError struct {
	Line   int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.Column != "":
		return fmt.Sprintf("parse error: line %d column %q: %v", e.Line, e.Column, e.Err)
	case e.Column != "":
		return fmt.Sprintf("parse error: column %q: %v", e.Column, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("parse error: line %d: %v", e.Line, e.Err)
	default:
		return fmt.Sprintf("parse error: %v", e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }
