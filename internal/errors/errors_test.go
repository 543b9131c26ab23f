package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

// TestConfigError tests ConfigError construction and formatting.
func TestConfigError(t *testing.T) {
	t.Run("NewConfigError formats the message", func(t *testing.T) {
		err := NewConfigError("bad value %d for %s", 0, "threads")
		want := "bad value 0 for threads"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})

	t.Run("errors.As recognizes ConfigError", func(t *testing.T) {
		err := WrapError(NewConfigError("boom"), "parsing flags")
		var cfgErr ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("errors.As failed to unwrap ConfigError from %v", err)
		}
	})
}

// TestValidationError tests ValidationError construction and formatting.
func TestValidationError(t *testing.T) {
	err := NewValidationError("trials", "must be >= 1, got %d", 0)
	want := `validation error for "trials": must be >= 1, got 0`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

// TestMismatchError tests MismatchError formatting.
func TestMismatchError(t *testing.T) {
	err := MismatchError{Want: 250000, Got: 249999, Strategy: "LocalCounter"}
	want := `strategy "LocalCounter" returned 249999, want 250000`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

// TestSinkError tests SinkError formatting and unwrapping.
func TestSinkError(t *testing.T) {
	cause := fs.ErrPermission
	err := SinkError{Path: "benchmarks.csv", Cause: cause}

	t.Run("message includes path and cause", func(t *testing.T) {
		want := `cannot write report to "benchmarks.csv": permission denied`
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})

	t.Run("Unwrap exposes the cause", func(t *testing.T) {
		if !errors.Is(err, fs.ErrPermission) {
			t.Errorf("errors.Is(err, fs.ErrPermission) = false, want true")
		}
	})
}

// TestWrapError tests the error wrapping helper.
func TestWrapError(t *testing.T) {
	t.Run("nil error stays nil", func(t *testing.T) {
		if got := WrapError(nil, "context"); got != nil {
			t.Errorf("WrapError(nil) = %v, want nil", got)
		}
	})

	t.Run("wrapped error keeps the chain", func(t *testing.T) {
		base := errors.New("disk full")
		wrapped := WrapError(base, "writing %s", "report")
		if !errors.Is(wrapped, base) {
			t.Errorf("errors.Is(wrapped, base) = false, want true")
		}
		want := "writing report: disk full"
		if wrapped.Error() != want {
			t.Errorf("Error() = %q, want %q", wrapped.Error(), want)
		}
	})
}

// TestIsContextError tests context error detection.
func TestIsContextError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"canceled", context.Canceled, true},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"wrapped canceled", fmt.Errorf("sweep: %w", context.Canceled), true},
		{"generic", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsContextError(tc.err); got != tc.want {
				t.Errorf("IsContextError(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

// TestExitCodeFor tests the error-to-exit-code mapping.
func TestExitCodeFor(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"config", NewConfigError("bad flag"), ExitErrorConfig},
		{"validation", NewValidationError("rows", "negative"), ExitErrorConfig},
		{"mismatch", MismatchError{Strategy: "Container"}, ExitErrorMismatch},
		{"canceled", context.Canceled, ExitErrorCanceled},
		{"generic", errors.New("boom"), ExitErrorGeneric},
		{"wrapped validation", WrapError(NewValidationError("cols", "negative"), "config"), ExitErrorConfig},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExitCodeFor(tc.err); got != tc.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}
