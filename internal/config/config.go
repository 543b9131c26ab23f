// Package config defines the application configuration and its resolution
// chain: CLI flags take priority over environment variables, which take
// priority over defaults. Invalid values are rejected before any timing
// begins, never silently clamped.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"

	"github.com/agbru/chunkbench/internal/dataset"
	apperrors "github.com/agbru/chunkbench/internal/errors"
	"github.com/agbru/chunkbench/internal/report"
)

// Default configuration values. Rows, columns, sweep width, trial count, and
// threshold follow the original benchmark defaults.
const (
	DefaultRows       = 1000
	DefaultCols       = 1000
	DefaultMaxWorkers = 30
	DefaultTrials     = 5
	DefaultThreshold  = 128
	DefaultFill       = "constant"
	DefaultSeed       = 1
)

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// Rows and Cols are the benchmark matrix dimensions.
	Rows int
	Cols int
	// MaxWorkers is the upper bound of the swept worker-count range [1, MaxWorkers].
	MaxWorkers int
	// Trials is the number of timed trials per worker count.
	Trials int
	// Threshold is the strict lower bound for counting a cell.
	Threshold int
	// Fill names the dataset fill policy (see dataset.Policies).
	Fill string
	// Seed seeds the "random" fill policy.
	Seed uint64
	// OutputFile is the report destination; empty selects the default
	// OS/arch-labeled name.
	OutputFile string
	// Compress forces zstd compression of the report.
	Compress bool
	// Quiet suppresses everything but the report path.
	Quiet bool
	// Verbose enables debug-level logging.
	Verbose bool
	// NoColor disables terminal colors.
	NoColor bool
	// MetricsAddr enables the prometheus endpoint when non-empty (e.g. ":9090").
	MetricsAddr string
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment variable overrides for flags not explicitly set, and validates
// the result.
//
// Parameters:
//   - progName: The program name used in usage output.
//   - args: The command-line arguments (without the program name).
//   - errWriter: The writer for flag parsing and usage messages.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp, a flag parsing error, or a validation error.
func ParseConfig(progName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{
		Rows:       DefaultRows,
		Cols:       DefaultCols,
		MaxWorkers: DefaultMaxWorkers,
		Trials:     DefaultTrials,
		Threshold:  DefaultThreshold,
		Fill:       DefaultFill,
		Seed:       DefaultSeed,
	}

	fs := flag.NewFlagSet(progName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.IntVar(&cfg.Rows, "rows", cfg.Rows, "matrix row count")
	fs.IntVar(&cfg.Cols, "cols", cfg.Cols, "matrix column count")
	fs.IntVar(&cfg.MaxWorkers, "workers", cfg.MaxWorkers, "maximum worker count of the sweep (swept 1..N)")
	fs.IntVar(&cfg.Trials, "trials", cfg.Trials, "timed trials per worker count")
	fs.IntVar(&cfg.Threshold, "threshold", cfg.Threshold, "count cells strictly greater than this value")
	fs.StringVar(&cfg.Fill, "fill", cfg.Fill, fmt.Sprintf("dataset fill policy %v", dataset.Policies()))
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed for the random fill policy")
	fs.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "report file path (default benchmarks_<os>_<arch>.csv)")
	fs.StringVar(&cfg.OutputFile, "o", cfg.OutputFile, "shorthand for -output")
	fs.BoolVar(&cfg.Compress, "compress", cfg.Compress, "zstd-compress the report")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "suppress everything but the report path")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "shorthand for -quiet")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "shorthand for -verbose")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable terminal colors")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "serve prometheus metrics on this address (disabled when empty)")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %v", fs.Args())
	}

	applyEnvOverrides(&cfg, fs)

	if cfg.OutputFile == "" {
		cfg.OutputFile = report.DefaultFileName()
	}

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration bounds.
//
// Returns:
//   - error: A ValidationError or ConfigError naming the offending value, or nil.
func (c AppConfig) Validate() error {
	if c.Rows < 0 {
		return apperrors.NewValidationError("rows", "must be >= 0, got %d", c.Rows)
	}
	if c.Cols < 0 {
		return apperrors.NewValidationError("cols", "must be >= 0, got %d", c.Cols)
	}
	if c.MaxWorkers < 1 {
		return apperrors.NewValidationError("workers", "must be >= 1, got %d", c.MaxWorkers)
	}
	if c.Trials < 1 {
		return apperrors.NewValidationError("trials", "must be >= 1, got %d", c.Trials)
	}
	if !slices.Contains(dataset.Policies(), c.Fill) {
		return apperrors.NewConfigError("unknown fill policy %q (available: %v)", c.Fill, dataset.Policies())
	}
	return nil
}
