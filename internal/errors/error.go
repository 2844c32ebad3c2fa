package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryManifest   Category = "manifest"
	CategoryValidation Category = "validation"
	CategoryConfig     Category = "config"
	CategoryCLI        Category = "cli"
)

// Error is a structured docnav error with code, detail, and documentation.
type Error struct {
	// Code is a unique error identifier (e.g., "N001").
	Code string

	// Category is the error type (manifest, validation, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Path is the manifest path or file the error concerns, if any.
	Path string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// WithPath records the manifest path or file the error concerns.
func (e *Error) WithPath(path string) *Error {
	e.Path = path
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *Error) WithDetail(d string) *Error {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// New creates an Error from a registered error code.
func New(code string) *Error {
	template, ok := registry[code]
	if !ok {
		return &Error{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &Error{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// FromError wraps a standard error in a coded Error.
func FromError(err error, code string) *Error {
	if err == nil {
		return nil
	}
	if de, ok := err.(*Error); ok {
		return de
	}
	return New(code).Wrap(err)
}
