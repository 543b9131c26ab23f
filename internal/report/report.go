// Package report turns raw trial samples into per-configuration aggregates
// and serializes them in the tabular CSV layout consumed by the plotting
// tooling. All values are microseconds.
package report

import (
	"fmt"
	"runtime"

	"github.com/agbru/chunkbench/internal/harness"
	"github.com/agbru/chunkbench/internal/stats"
)

// Aggregate is the (worker count) -> (mean, population stddev) pair for one
// configuration of one strategy. Immutable once built.
type Aggregate struct {
	// Workers is the worker count of the configuration.
	Workers int
	// Mean is the mean trial duration in microseconds.
	Mean float64
	// StdDev is the population standard deviation in microseconds.
	StdDev float64
}

// StrategyReport groups one strategy's aggregates across the whole sweep, in
// ascending worker order.
type StrategyReport struct {
	// Strategy is the strategy name; also the stem of its CSV row labels.
	Strategy string
	// Aggregates holds one entry per swept worker count.
	Aggregates []Aggregate
}

// Summarize reduces raw sweep samples to per-configuration aggregates.
//
// Parameters:
//   - results: The harness output, one entry per parameter value; every
//     entry must hold at least one sample (the harness guarantees this for
//     any validated sweep).
//
// Returns:
//   - []Aggregate: Mean and population stddev per configuration, in the
//     input order (ascending worker count).
func Summarize(results []harness.ParamSamples) []Aggregate {
	aggregates := make([]Aggregate, 0, len(results))
	for _, ps := range results {
		xs := make([]float64, len(ps.Samples))
		for i, d := range ps.Samples {
			xs[i] = d.Seconds() * 1e6
		}
		mean := stats.Mean(xs)
		aggregates = append(aggregates, Aggregate{
			Workers: ps.Param,
			Mean:    mean,
			StdDev:  stats.PopStdDev(xs, mean),
		})
	}
	return aggregates
}

// DefaultFileName returns the default report path, labeled with the build's
// OS and architecture (e.g. "benchmarks_linux_amd64.csv").
func DefaultFileName() string {
	return fmt.Sprintf("benchmarks_%s_%s.csv", runtime.GOOS, runtime.GOARCH)
}
