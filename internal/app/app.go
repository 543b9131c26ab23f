// Package app wires the benchmark engine together: configuration, logging,
// metrics, the strategy sweeps, and report emission.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/chunkbench/internal/config"
	apperrors "github.com/agbru/chunkbench/internal/errors"
	"github.com/agbru/chunkbench/internal/logging"
	"github.com/agbru/chunkbench/internal/reduction"
	"github.com/agbru/chunkbench/internal/ui"
)

// Application represents the chunkbench application instance.
type Application struct {
	Config     config.AppConfig
	Strategies []reduction.Strategy
	ErrWriter  io.Writer
	Log        logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithStrategies overrides the reduction strategies under measurement.
// Primarily used by tests.
func WithStrategies(strategies []reduction.Strategy) AppOption {
	return func(a *Application) { a.Strategies = strategies }
}

// WithLogger overrides the application logger.
func WithLogger(log logging.Logger) AppOption {
	return func(a *Application) { a.Log = log }
}

// New creates a new Application instance by parsing command-line arguments.
//
// Parameters:
//   - args: The full command line, os.Args style (args[0] is the program name).
//   - errWriter: The writer for parse errors and usage output.
//   - opts: Optional overrides.
//
// Returns:
//   - *Application: The configured application.
//   - error: A parse or validation error (flag.ErrHelp when --help was used).
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Strategies == nil {
		app.Strategies = reduction.DefaultStrategies()
	}

	progName := "chunkbench"
	var cmdArgs []string
	if len(args) > 0 {
		progName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(progName, cmdArgs, errWriter)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(errWriter, "Error: %v\n", err)
		}
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the benchmark pass and returns the process exit code.
//
// Parameters:
//   - ctx: The root context (tracing and metrics-server lifecycle only; a
//     running trial is never canceled).
//   - out: The writer for the report table and status lines.
//
// Returns:
//   - int: The exit code (see apperrors).
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)

	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	if a.Log == nil {
		if a.Config.Quiet {
			a.Log = logging.NopLogger{}
		} else {
			a.Log = logging.NewDefaultLogger()
		}
	}

	err := a.runBenchmarks(ctx, out)
	if err != nil {
		a.Log.Error("benchmark pass failed", logging.Err(err))
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
	}
	return apperrors.ExitCodeFor(err)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
