package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorMismatch = 3   // Indicates a count mismatch between reduction strategies.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect
// user input. Invalid values are rejected, never silently clamped.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input validation failure detected before any
// timing begins. It identifies which field failed validation and provides a
// human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for the given field.
//
// Parameters:
//   - field: The name of the offending field.
//   - format: A format string for the explanation.
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ValidationError instance.
func NewValidationError(field, format string, a ...any) error {
	return ValidationError{Field: field, Message: fmt.Sprintf(format, a...)}
}

// MismatchError reports an inconsistency between the counts produced by the
// reduction strategies for the same dataset and threshold. A mismatch
// invalidates the whole measurement pass: timing two computations that do not
// agree on the answer is meaningless.
type MismatchError struct {
	// Want is the reference count (single-threaded oracle or first strategy).
	Want int64
	// Got is the diverging count.
	Got int64
	// Strategy is the name of the diverging strategy.
	Strategy string
}

// Error returns a formatted message describing the mismatch.
func (e MismatchError) Error() string {
	return fmt.Sprintf("strategy %q returned %d, want %d", e.Strategy, e.Got, e.Want)
}

// SinkError represents a failure to write the benchmark report to its output
// sink. Already-collected in-memory measurements remain valid; callers may
// still present them even when the file write failed.
type SinkError struct {
	// Path is the output destination that could not be written.
	Path string
	// Cause is the underlying I/O error.
	Cause error
}

// Error returns a formatted message describing the sink failure.
func (e SinkError) Error() string {
	return fmt.Sprintf("cannot write report to %q: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying I/O error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e SinkError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error to the process exit code that Run should return.
// Configuration and validation failures map to ExitErrorConfig, strategy
// mismatches to ExitErrorMismatch, context cancellation to ExitErrorCanceled,
// and anything else to ExitErrorGeneric.
//
// Parameters:
//   - err: The error to classify (nil yields ExitSuccess).
//
// Returns:
//   - int: The corresponding exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cfgErr ConfigError
	var valErr ValidationError
	var mismatch MismatchError
	switch {
	case errors.As(err, &cfgErr), errors.As(err, &valErr):
		return ExitErrorConfig
	case errors.As(err, &mismatch):
		return ExitErrorMismatch
	case IsContextError(err):
		return ExitErrorCanceled
	default:
		return ExitErrorGeneric
	}
}
