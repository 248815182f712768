// Package errors provides structured error handling for the runtime.
package errors

import (
	"errors"
	"fmt"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindResource indicates a resource loading or decoding failure.
	KindResource
	// KindConfig indicates a project configuration error.
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindResource:
		return "resource"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// Error is a structured runtime error with an operation tag and category.
type Error struct {
	// Op is the operation that failed, e.g. "resource.Decode".
	Op string
	// Kind is the error category.
	Kind Kind
	// Err is the underlying error.
	Err error
}

// Error returns the formatted error message.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s [%s]", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error for errors.Is/errors.As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a structured error wrapping err.
func New(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// Newf creates a structured error from a format string.
func Newf(op string, kind Kind, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
