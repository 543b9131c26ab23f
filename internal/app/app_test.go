package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agbru/chunkbench/internal/dataset"
	apperrors "github.com/agbru/chunkbench/internal/errors"
	"github.com/agbru/chunkbench/internal/logging"
	"github.com/agbru/chunkbench/internal/reduction"
)

// TestNewParsesConfig tests that New resolves the command line into the
// application configuration.
func TestNewParsesConfig(t *testing.T) {
	a, err := New([]string{"chunkbench", "-rows", "10", "-cols", "20"}, io.Discard)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if a.Config.Rows != 10 || a.Config.Cols != 20 {
		t.Errorf("dimensions = %dx%d, want 10x20", a.Config.Rows, a.Config.Cols)
	}
	if len(a.Strategies) != 2 {
		t.Errorf("len(Strategies) = %d, want 2", len(a.Strategies))
	}
}

// TestNewHelp tests that -h surfaces as a help error.
func TestNewHelp(t *testing.T) {
	_, err := New([]string{"chunkbench", "-h"}, io.Discard)
	if !IsHelpError(err) {
		t.Errorf("New(-h) error = %v, want help error", err)
	}
}

// TestNewRejectsInvalidConfig tests that validation failures map to the
// configuration exit code.
func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New([]string{"chunkbench", "-workers", "0"}, io.Discard)
	if err == nil {
		t.Fatal("New(-workers 0) succeeded, want error")
	}
	if code := apperrors.ExitCodeFor(err); code != apperrors.ExitErrorConfig {
		t.Errorf("ExitCodeFor = %d, want %d", code, apperrors.ExitErrorConfig)
	}
}

// TestRunFullPass tests a complete tiny benchmark pass end to end.
func TestRunFullPass(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "out.csv")
	a, err := New([]string{
		"chunkbench",
		"-rows", "4", "-cols", "4", "-workers", "2", "-trials", "2",
		"-o", outFile, "-quiet",
	}, io.Discard, WithLogger(logging.NopLogger{}))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	var out strings.Builder
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	if !strings.Contains(out.String(), outFile) {
		t.Errorf("output %q does not name the report file", out.String())
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 5 {
		t.Fatalf("report has %d lines, want 5 (header + 2 rows per strategy)", len(lines))
	}
	if lines[0] != "ThreadCount,1,2" {
		t.Errorf("header = %q, want ThreadCount,1,2", lines[0])
	}
	if !strings.HasPrefix(lines[1], "ContainerAvg,") || !strings.HasPrefix(lines[3], "LocalCounterAvg,") {
		t.Errorf("unexpected row labels: %q / %q", lines[1], lines[3])
	}
}

// divergingStrategy always returns a count that disagrees with the oracle.
type divergingStrategy struct{}

func (divergingStrategy) Name() string { return "Diverging" }

func (divergingStrategy) Count(dataset.Matrix, int, int) (int64, error) {
	return -1, nil
}

// TestRunMismatchExitCode tests that a strategy disagreeing with the
// sequential oracle aborts the pass with the mismatch exit code.
func TestRunMismatchExitCode(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "out.csv")
	a, err := New([]string{
		"chunkbench",
		"-rows", "4", "-cols", "4", "-workers", "2", "-trials", "1",
		"-o", outFile, "-quiet",
	}, io.Discard,
		WithLogger(logging.NopLogger{}),
		WithStrategies([]reduction.Strategy{divergingStrategy{}}),
	)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if code := a.Run(context.Background(), io.Discard); code != apperrors.ExitErrorMismatch {
		t.Errorf("Run exit code = %d, want %d", code, apperrors.ExitErrorMismatch)
	}
	if _, statErr := os.Stat(outFile); !os.IsNotExist(statErr) {
		t.Error("report file written despite mismatch")
	}
}

// TestRunReportsSinkFailure tests that an unwritable report path yields the
// generic error exit code after the sweeps complete.
func TestRunReportsSinkFailure(t *testing.T) {
	blocked := filepath.Join(t.TempDir(), "blocked")
	if err := os.WriteFile(blocked, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	// A path whose parent is a regular file cannot be created.
	outFile := filepath.Join(blocked, "out.csv")

	a, err := New([]string{
		"chunkbench",
		"-rows", "2", "-cols", "2", "-workers", "1", "-trials", "1",
		"-o", outFile, "-quiet",
	}, io.Discard, WithLogger(logging.NopLogger{}))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if code := a.Run(context.Background(), io.Discard); code != apperrors.ExitErrorGeneric {
		t.Errorf("Run exit code = %d, want %d", code, apperrors.ExitErrorGeneric)
	}
}

// TestHasVersionFlag tests version flag detection.
func TestHasVersionFlag(t *testing.T) {
	if !HasVersionFlag([]string{"--version"}) || !HasVersionFlag([]string{"-version"}) {
		t.Error("version flag not detected")
	}
	if HasVersionFlag([]string{"-rows", "10"}) {
		t.Error("version flag falsely detected")
	}
}
