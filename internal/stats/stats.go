// Package stats provides the timing-sample statistics used by the benchmark
// report: arithmetic mean and population standard deviation.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of xs.
//
// The input must not be empty; callers guarantee len(xs) >= 1. Calling Mean
// with an empty slice panics, because a mean of zero samples has no defined
// value and silently returning one would corrupt the report.
//
// Parameters:
//   - xs: The samples.
//
// Returns:
//   - float64: The arithmetic mean.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		panic("stats: Mean of empty sample set")
	}
	return stat.Mean(xs, nil)
}

// PopStdDev returns the population standard deviation of xs about the given
// mean: sqrt(sum((x-mean)^2) / n).
//
// The population form (divide by n, not n-1) matches the report consumers;
// the trials of a configuration are the whole population of interest, not a
// sample drawn from a larger one.
//
// Parameters:
//   - xs: The samples (must not be empty).
//   - mean: The precomputed arithmetic mean of xs.
//
// Returns:
//   - float64: The population standard deviation.
func PopStdDev(xs []float64, mean float64) float64 {
	if len(xs) == 0 {
		panic("stats: PopStdDev of empty sample set")
	}
	// Second central moment with nil weights is sum((x-mean)^2)/n.
	return math.Sqrt(stat.MomentAbout(2, xs, mean, nil))
}
