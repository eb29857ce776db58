// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values and the structured error type shared across the module.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrSlotUnsupported = fmt.Errorf("per-thread slot not supported on this platform")
	ErrSlotOccupied    = fmt.Errorf("control block already installed for this thread")
	ErrNotAdopted      = fmt.Errorf("calling thread has no control block installed")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrNotSupported    = fmt.Errorf("operation not supported")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeUnsupported
	ErrCodeExhausted
	ErrCodeInternal
)

// Error is a structured error with a code and free-form context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
