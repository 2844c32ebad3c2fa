package nav

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by index queries for paths that do not resolve,
// including paths excluded by the requested channel. It is recoverable;
// callers typically render a 404 equivalent.
var ErrNotFound = errors.New("nav: path not found")

// ErrUnknownChannel is returned when a channel string cannot be parsed.
var ErrUnknownChannel = errors.New("nav: unknown channel")

// Build-time violation reasons, carried inside ValidationError so callers
// can classify failures with errors.Is. Invalid paths carry the navpath
// sentinel instead.
var (
	// ErrDuplicatePath marks a path claimed by more than one entry.
	ErrDuplicatePath = errors.New("nav: duplicate path")

	// ErrSectionHeaderShape marks a section header carrying a path or
	// child routes.
	ErrSectionHeaderShape = errors.New("nav: malformed section header")

	// ErrMissingField marks an entry without its required title or label.
	ErrMissingField = errors.New("nav: missing required field")
)

// ValidationError describes a malformed or contradictory specification.
// It is returned only at build time and is fatal to that build: no partial
// tree is produced, and the process must not start serving with it.
type ValidationError struct {
	// Path is the offending page path, when the problem concerns one.
	Path string

	// Title is the offending entry title, when known.
	Title string

	// Msg describes the violation.
	Msg string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	switch {
	case e.Path != "":
		return fmt.Sprintf("nav: invalid specification at %q: %s", e.Path, e.Msg)
	case e.Title != "":
		return fmt.Sprintf("nav: invalid specification at entry %q: %s", e.Title, e.Msg)
	default:
		return fmt.Sprintf("nav: invalid specification: %s", e.Msg)
	}
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *ValidationError) Unwrap() error { return e.Wrapped }
