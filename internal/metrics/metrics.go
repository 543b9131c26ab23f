// Package metrics instruments the benchmark engine: prometheus collectors
// for trial counts and durations, and runtime memory snapshots. Collection
// is off the measurement path; a trial observation is one counter increment
// and one histogram observation.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/agbru/chunkbench/internal/harness"
)

// TrialMetrics holds the prometheus collectors for a benchmark run. All
// collectors live on a private registry so repeated runs in one process
// (tests, mainly) never collide on global registration.
type TrialMetrics struct {
	registry *prometheus.Registry
	trials   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewTrialMetrics creates the collectors on a fresh registry.
func NewTrialMetrics() *TrialMetrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &TrialMetrics{
		registry: reg,
		trials: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chunkbench",
			Name:      "trials_total",
			Help:      "Number of timed trials executed.",
		}, []string{"strategy", "workers"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "chunkbench",
			Name:      "trial_duration_seconds",
			Help:      "Elapsed time of individual timed trials.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 2, 20),
		}, []string{"strategy"}),
	}
}

// Registry returns the registry holding the collectors, for exposition.
func (m *TrialMetrics) Registry() *prometheus.Registry { return m.registry }

// ObserverFor returns a harness.TrialObserver that records trials under the
// given strategy label.
//
// Parameters:
//   - strategy: The strategy name used as the metric label.
//
// Returns:
//   - harness.TrialObserver: The labeled observer.
func (m *TrialMetrics) ObserverFor(strategy string) harness.TrialObserver {
	return &strategyObserver{metrics: m, strategy: strategy}
}

// strategyObserver feeds one strategy's trials into the shared collectors.
type strategyObserver struct {
	metrics  *TrialMetrics
	strategy string
}

// ObserveTrial records one trial duration.
func (o *strategyObserver) ObserveTrial(param int, elapsed time.Duration) {
	o.metrics.trials.WithLabelValues(o.strategy, strconv.Itoa(param)).Inc()
	o.metrics.duration.WithLabelValues(o.strategy).Observe(elapsed.Seconds())
}
