package errors

import (
	"errors"
	"fmt"
)

// Error represents a typed domain error carrying a process exit code.
type Error struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	ExitCode int    `json:"exitCode"`
	Err      error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, exitCode int, message string) *Error {
	return &Error{Code: code, ExitCode: exitCode, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, exitCode int, message string) *Error {
	return &Error{Code: code, ExitCode: exitCode, Message: message, Err: err}
}

// Predefined errors covering the scheduler failure taxonomy.
var (
	// ErrConfiguration: malformed or missing input detected before model
	// construction (role mismatch, empty domain, non-positive hour limit).
	ErrConfiguration = New("CONFIGURATION_ERROR", 2, "invalid scheduler input")
	// ErrValidation: structurally invalid request or weight table.
	ErrValidation = New("VALIDATION_ERROR", 2, "validation failed")
	// ErrInfeasible: the hard-constraint conjunction has no satisfying
	// assignment; retrying without changing the input cannot succeed.
	ErrInfeasible = New("MODEL_INFEASIBLE", 3, "scheduling model is infeasible")
	// ErrTimeout: the time budget elapsed with no feasible assignment found.
	ErrTimeout = New("SOLVE_TIMEOUT", 4, "solver time budget elapsed with no solution")
	// ErrInvariant: the extracted schedule failed post-solve re-validation,
	// which indicates an encoding bug. Never silently repaired.
	ErrInvariant = New("INVARIANT_VIOLATION", 5, "solved schedule violates a hard invariant")
	ErrInternal  = New("INTERNAL_ERROR", 1, "internal error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.ExitCode, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// HasCode reports whether err carries the same code as target.
func HasCode(err error, target *Error) bool {
	if err == nil || target == nil {
		return false
	}
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Code == target.Code
}
