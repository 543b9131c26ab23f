package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/agbru/chunkbench/internal/cli"
	"github.com/agbru/chunkbench/internal/dataset"
	apperrors "github.com/agbru/chunkbench/internal/errors"
	"github.com/agbru/chunkbench/internal/harness"
	"github.com/agbru/chunkbench/internal/logging"
	"github.com/agbru/chunkbench/internal/metrics"
	"github.com/agbru/chunkbench/internal/reduction"
	"github.com/agbru/chunkbench/internal/report"
	"github.com/agbru/chunkbench/internal/server"
	"github.com/agbru/chunkbench/internal/sysmon"
)

// serverShutdownTimeout bounds the graceful stop of the metrics endpoint.
const serverShutdownTimeout = 2 * time.Second

// runBenchmarks executes the full measurement pass: one sweep per strategy,
// a consistency check of every strategy against the sequential oracle, the
// terminal summary, and the report file.
func (a *Application) runBenchmarks(ctx context.Context, out io.Writer) error {
	cfg := a.Config
	runID := uuid.NewString()
	passStart := time.Now()

	a.Log.Info("starting benchmark pass",
		logging.String("run_id", runID),
		logging.Int("rows", cfg.Rows),
		logging.Int("cols", cfg.Cols),
		logging.Int("max_workers", cfg.MaxWorkers),
		logging.Int("trials", cfg.Trials),
		logging.Int("threshold", cfg.Threshold),
		logging.String("fill", cfg.Fill),
	)

	trialMetrics := metrics.NewTrialMetrics()
	if cfg.MetricsAddr != "" {
		srv := server.New(cfg.MetricsAddr, trialMetrics.Registry(), a.Log)
		srv.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				a.Log.Warn("metrics endpoint shutdown failed", logging.Err(err))
			}
		}()
	}

	before := sysmon.Sample()
	a.Log.Debug("system load before sweep",
		logging.Float64("cpu_percent", before.CPUPercent),
		logging.Float64("mem_percent", before.MemPercent),
	)

	// Every fill policy is deterministic for a fixed seed, so the oracle
	// count of one generated matrix is the reference for all trials.
	oracleMatrix, err := dataset.Generate(cfg.Fill, cfg.Rows, cfg.Cols, cfg.Seed)
	if err != nil {
		return err
	}
	want := reduction.SequentialCount(oracleMatrix, cfg.Threshold)
	oracleMatrix = nil

	sweep := harness.Sweep{Start: 1, End: cfg.MaxWorkers, Step: 1, Trials: cfg.Trials}

	reports := make([]report.StrategyReport, 0, len(a.Strategies))
	for _, strategy := range a.Strategies {
		rep, err := a.runSweep(ctx, strategy, sweep, trialMetrics, want)
		if err != nil {
			return err
		}
		reports = append(reports, rep)
	}

	after := sysmon.Sample()
	heap := metrics.NewMemoryCollector().Snapshot()
	a.Log.Debug("system load after sweep",
		logging.Float64("cpu_percent", after.CPUPercent),
		logging.Float64("mem_percent", after.MemPercent),
		logging.Uint64("heap_alloc", heap.HeapAlloc),
		logging.Uint64("gc_cycles", uint64(heap.NumGC)),
	)

	if !cfg.Quiet {
		cli.CLIResultPresenter{}.PresentComparisonTable(reports, out)
	}

	if err := report.WriteFile(cfg.OutputFile, cfg.Compress, reports); err != nil {
		return err
	}
	fmt.Fprintf(out, "Benchmark results written to %s\n", cfg.OutputFile)

	a.Log.Info("benchmark pass complete",
		logging.String("run_id", runID),
		logging.Dur("elapsed", time.Since(passStart)),
	)
	return nil
}

// runSweep runs one strategy's full worker-count sweep and reduces its
// samples to aggregates. The strategy's final count must match the oracle;
// a divergence invalidates the pass.
func (a *Application) runSweep(ctx context.Context, strategy reduction.Strategy, sweep harness.Sweep, trialMetrics *metrics.TrialMetrics, want int64) (report.StrategyReport, error) {
	cfg := a.Config
	a.Log.Info("sweep starting", logging.String("strategy", strategy.Name()))

	opts := []harness.Option{
		harness.WithLogger(a.Log),
		harness.WithObserver(trialMetrics.ObserverFor(strategy.Name())),
	}
	if !cfg.Quiet {
		progress := cli.NewSweepProgress(strategy.Name(), sweep.End, sweep.Trials)
		progress.Start()
		defer progress.Stop()
		opts = append(opts, harness.WithProgress(progress.Observe))
	}
	h := harness.New(opts...)

	// Errors inside the measured region are captured here rather than
	// returned through the harness, which only times the call.
	var sweepErr error
	preCalc := func(int) dataset.Matrix {
		m, err := dataset.Generate(cfg.Fill, cfg.Rows, cfg.Cols, cfg.Seed)
		if err != nil && sweepErr == nil {
			sweepErr = err
		}
		return m
	}
	fn := func(m dataset.Matrix, workers int) int64 {
		count, err := strategy.Count(m, cfg.Threshold, workers)
		if err != nil && sweepErr == nil {
			sweepErr = err
		}
		return count
	}

	sink := &harness.Sink[int64]{}
	results, err := harness.Run(ctx, h, sweep, preCalc, fn, sink)
	if err != nil {
		return report.StrategyReport{}, err
	}
	if sweepErr != nil {
		return report.StrategyReport{}, sweepErr
	}
	if got := sink.Last(); got != want {
		return report.StrategyReport{}, apperrors.MismatchError{
			Want:     want,
			Got:      got,
			Strategy: strategy.Name(),
		}
	}

	a.Log.Info("sweep complete",
		logging.String("strategy", strategy.Name()),
		logging.Int("trials", sink.Consumed()),
	)
	return report.StrategyReport{
		Strategy:   strategy.Name(),
		Aggregates: report.Summarize(results),
	}, nil
}
