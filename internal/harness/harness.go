// Package harness runs timed trial sweeps. It is generic over the measured
// computation: a sweep steps one integer parameter across a range, runs a
// fixed number of timed trials per value, and hands back the raw duration
// samples. The harness knows nothing about matrices or reduction strategies.
package harness

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	apperrors "github.com/agbru/chunkbench/internal/errors"
	"github.com/agbru/chunkbench/internal/logging"
)

// tracerName identifies the harness spans in trace output.
const tracerName = "chunkbench/harness"

// Sweep describes one parameter sweep: the inclusive parameter range, the
// step, and the number of timed trials per parameter value.
type Sweep struct {
	// Start is the first parameter value (>= 1).
	Start int
	// End is the last parameter value (>= Start); inclusive.
	End int
	// Step is the parameter increment (>= 1).
	Step int
	// Trials is the number of timed invocations per parameter value (>= 1).
	Trials int
}

// Validate checks the sweep bounds before any timing begins. Invalid values
// are rejected, never clamped, so a mistyped flag cannot silently produce a
// misleading report.
//
// Returns:
//   - error: A ValidationError naming the offending field, or nil.
func (s Sweep) Validate() error {
	if s.Start < 1 {
		return apperrors.NewValidationError("paramStart", "must be >= 1, got %d", s.Start)
	}
	if s.End < s.Start {
		return apperrors.NewValidationError("paramEnd", "must be >= paramStart (%d), got %d", s.Start, s.End)
	}
	if s.Step < 1 {
		return apperrors.NewValidationError("paramStep", "must be >= 1, got %d", s.Step)
	}
	if s.Trials < 1 {
		return apperrors.NewValidationError("trials", "must be >= 1, got %d", s.Trials)
	}
	return nil
}

// params returns the swept parameter values in ascending order.
func (s Sweep) params() []int {
	var ps []int
	for p := s.Start; p <= s.End; p += s.Step {
		ps = append(ps, p)
	}
	return ps
}

// ParamSamples holds the raw trial durations collected for one parameter
// value. Sample order within a configuration carries no meaning.
type ParamSamples struct {
	// Param is the swept parameter value (e.g. a worker count).
	Param int
	// Samples are the per-trial elapsed durations.
	Samples []time.Duration
}

// PreCalcFunc produces fresh input data for one parameter value. It runs
// once per value, outside the timed region.
type PreCalcFunc[D any] func(param int) D

// MeasuredFunc is the computation under measurement. It receives the
// pre-computed data and the current parameter value; its result must be
// consumed through a Sink so the computation cannot be proven dead.
type MeasuredFunc[D, R any] func(data D, param int) R

// TrialObserver receives every trial duration as it is measured. Used to
// feed metrics without coupling the harness to a metrics backend.
type TrialObserver interface {
	// ObserveTrial records one trial of the given parameter value.
	ObserveTrial(param int, elapsed time.Duration)
}

// ProgressFunc is invoked after every completed trial with the current
// parameter value and the 1-based trial index.
type ProgressFunc func(param, trial int)

// Harness carries the ambient collaborators of a sweep: logger, metrics
// observer, and progress callback. The zero value is usable and silent.
type Harness struct {
	log      logging.Logger
	observer TrialObserver
	progress ProgressFunc
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger sets the structured logger for sweep events.
func WithLogger(log logging.Logger) Option {
	return func(h *Harness) { h.log = log }
}

// WithObserver sets the per-trial duration observer.
func WithObserver(obs TrialObserver) Option {
	return func(h *Harness) { h.observer = obs }
}

// WithProgress sets the per-trial progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(h *Harness) { h.progress = fn }
}

// New creates a Harness with the given options.
func New(opts ...Option) *Harness {
	h := &Harness{log: logging.NopLogger{}}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes the sweep and returns one ParamSamples per parameter value,
// in ascending parameter order.
//
// For each value, preCalc (if non-nil) runs once outside the timed region to
// produce that configuration's input data; the harness then times Trials
// invocations of fn, passing every result to sink.Consume. Configurations
// run strictly sequentially: a value never starts before all trials of the
// previous one finish. The context is used for tracing and logging only; a
// running trial is never canceled, because aborting mid-measurement would
// bias the samples.
//
// Parameters:
//   - ctx: The context carrying the active trace.
//   - h: The harness collaborators (must not be nil).
//   - sweep: The validated parameter range and trial count.
//   - preCalc: Optional untimed per-parameter data producer (may be nil).
//   - fn: The computation under measurement.
//   - sink: The result sink (must not be nil).
//
// Returns:
//   - []ParamSamples: One entry per parameter value, ascending.
//   - error: A ValidationError if the sweep bounds or sink are invalid.
func Run[D, R any](ctx context.Context, h *Harness, sweep Sweep, preCalc PreCalcFunc[D], fn MeasuredFunc[D, R], sink *Sink[R]) ([]ParamSamples, error) {
	if err := sweep.Validate(); err != nil {
		return nil, err
	}
	if sink == nil {
		return nil, apperrors.NewValidationError("sink", "must not be nil")
	}

	tracer := otel.Tracer(tracerName)
	ctx, sweepSpan := tracer.Start(ctx, "harness.sweep")
	sweepSpan.SetAttributes(
		attribute.Int("sweep.start", sweep.Start),
		attribute.Int("sweep.end", sweep.End),
		attribute.Int("sweep.step", sweep.Step),
		attribute.Int("sweep.trials", sweep.Trials),
	)
	defer sweepSpan.End()

	params := sweep.params()
	results := make([]ParamSamples, 0, len(params))

	for _, param := range params {
		_, cfgSpan := tracer.Start(ctx, "harness.configuration")
		cfgSpan.SetAttributes(attribute.Int("param", param))

		var data D
		if preCalc != nil {
			data = preCalc(param)
		}

		samples := make([]time.Duration, 0, sweep.Trials)
		for trial := 1; trial <= sweep.Trials; trial++ {
			start := time.Now()
			result := fn(data, param)
			elapsed := time.Since(start)

			sink.Consume(result)
			samples = append(samples, elapsed)

			if h.observer != nil {
				h.observer.ObserveTrial(param, elapsed)
			}
			if h.progress != nil {
				h.progress(param, trial)
			}
		}

		h.log.Debug("configuration complete",
			logging.Int("param", param),
			logging.Int("trials", len(samples)),
		)
		cfgSpan.End()
		results = append(results, ParamSamples{Param: param, Samples: samples})
	}

	return results, nil
}
