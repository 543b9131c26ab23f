// Command chunkbench benchmarks two parallel chunked-reduction disciplines
// over an integer matrix: per-worker result slots versus a shared atomic
// accumulator. It sweeps the worker count, times a fixed number of trials per
// configuration, and writes mean and population stddev per configuration to a
// CSV report.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/agbru/chunkbench/internal/app"
	apperrors "github.com/agbru/chunkbench/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		os.Exit(apperrors.ExitSuccess)
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		os.Exit(apperrors.ExitCodeFor(err))
	}

	// The context carries tracing and the metrics-server lifecycle; a
	// running trial is never canceled.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(application.Run(ctx, os.Stdout))
}
