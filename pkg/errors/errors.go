// Package errors defines the exception values raised by the object
// model core. They carry no source position: this subsystem sits
// below the parser and has none to report.
package errors

import "fmt"

// Error is the interface implemented by every exception this core raises.
type Error interface {
	error
	Kind() string // "Type" or "Reference"
	Message() string
}

// TypeError covers extensibility, configurability, writability,
// accessor-absence, static-builtin-override and prototype-cycle failures.
type TypeError struct {
	Msg string
}

func (e *TypeError) Error() string   { return fmt.Sprintf("TypeError: %s", e.Msg) }
func (e *TypeError) Kind() string    { return "Type" }
func (e *TypeError) Message() string { return e.Msg }

// NewTypeError constructs a TypeError with a formatted message.
func NewTypeError(format string, args ...any) *TypeError {
	return &TypeError{Msg: fmt.Sprintf(format, args...)}
}

// ReferenceError covers missing-property lookups under mustExist.
type ReferenceError struct {
	Msg string
}

func (e *ReferenceError) Error() string   { return fmt.Sprintf("ReferenceError: %s", e.Msg) }
func (e *ReferenceError) Kind() string    { return "Reference" }
func (e *ReferenceError) Message() string { return e.Msg }

// NewReferenceError constructs a ReferenceError with a formatted message.
func NewReferenceError(format string, args ...any) *ReferenceError {
	return &ReferenceError{Msg: fmt.Sprintf(format, args...)}
}
