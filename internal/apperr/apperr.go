// Package apperr defines the error categories shared across echemfair.
//
// Error taxonomy
//
//	UserError    – caused by missing or invalid user input (wrong flag, bad
//	               parameter value, unreadable metadata file, …).
//	               The CLI prints only the message; usage help is NOT repeated.
//	               Exit code: 1.
//
//	ErrCancelled – the user deliberately aborted an interactive form.
//	               Exit code: 0 (not a failure).
//
//	ErrNilTable  – a precondition violation: a table argument was required
//	               but nil. Callers are expected to never trigger it.
//
// Validation findings are NOT errors in this sense; they are reported as
// strings inside a validation report. Everything else is a plain Go error
// (I/O, YAML, SQLite, …) propagated with fmt.Errorf("context: %w", err).
package apperr

import (
	"errors"
	"fmt"
)

// ErrCancelled is returned when the user explicitly aborts an interactive
// operation. The CLI should exit 0 rather than 1 when it sees this error.
var ErrCancelled = errors.New("operation cancelled")

// ErrNilTable is returned when column inference is asked to work on a nil table.
var ErrNilTable = errors.New("table is nil")

// UserError represents an error caused by invalid or missing user input.
// Cobra command handlers return this instead of a bare fmt.Errorf so that
// the root command can suppress repeated usage output.
type UserError struct {
	Message string
}

func (e *UserError) Error() string { return e.Message }

// User creates a UserError with the given message.
func User(msg string) error { return &UserError{Message: msg} }

// Userf creates a formatted UserError.
func Userf(format string, args ...any) error {
	return &UserError{Message: fmt.Sprintf(format, args...)}
}

// IsUser reports whether err is (or wraps) a *UserError.
func IsUser(err error) bool {
	var u *UserError
	return errors.As(err, &u)
}
