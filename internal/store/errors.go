package store

import (
	"errors"
	"fmt"
)

var (
	ErrMissingID       = errors.New("no id was provided in input")
	ErrAmbiguousID     = errors.New("more than one id was given as input")
	ErrInvalidPriority = errors.New("priority can only be 1, 2, or 3")
)

// NotFoundError reports an id token that names no item of the list.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unable to find item with id: %s", e.ID)
}

// NotATaskError reports a task-only change requested on a note.
type NotATaskError struct {
	ID uint64
}

func (e *NotATaskError) Error() string {
	return fmt.Sprintf("item %d is a note and has no priority", e.ID)
}

// ParseError reports a malformed task list document.
type ParseError struct {
	Path string // location inside the document, empty for syntax errors
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("parse task list: %s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("parse task list: %s", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
