package cli

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
)

// ProgressRefreshRate defines the refresh frequency of the sweep spinner.
const ProgressRefreshRate = 200 * time.Millisecond

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows the progress reporter to be decoupled from a specific spinner
// implementation, facilitating easier testing. It defines the essential
// controls: starting, stopping, and updating the status message.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	//
	// Parameters:
	//   - suffix: The text string to display.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the `spinner.Spinner` that implements the
// `Spinner` interface. This adapter allows the `spinner` library to be used
// within the application's CLI framework.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

// newSpinner builds the default spinner; overridable in tests.
var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// SweepProgress displays a spinner while one strategy's sweep runs, updating
// the suffix with the current worker count and trial index. It implements
// the shape expected by harness.WithProgress.
type SweepProgress struct {
	sp        Spinner
	label     string
	maxParam  int
	trials    int
	completed int
}

// NewSweepProgress creates a progress display for one strategy's sweep.
//
// Parameters:
//   - label: The strategy name shown in the suffix.
//   - maxParam: The last swept parameter value.
//   - trials: The trial count per parameter value.
//
// Returns:
//   - *SweepProgress: The progress display, not yet started.
func NewSweepProgress(label string, maxParam, trials int) *SweepProgress {
	return &SweepProgress{sp: newSpinner(), label: label, maxParam: maxParam, trials: trials}
}

// Start begins the spinner animation.
func (p *SweepProgress) Start() {
	p.sp.UpdateSuffix(fmt.Sprintf(" %s: starting", p.label))
	p.sp.Start()
}

// Observe updates the spinner after a completed trial. It matches
// harness.ProgressFunc.
//
// Parameters:
//   - param: The current parameter value (worker count).
//   - trial: The 1-based trial index within the configuration.
func (p *SweepProgress) Observe(param, trial int) {
	p.completed++
	p.sp.UpdateSuffix(fmt.Sprintf(" %s: workers %d/%d, trial %d/%d",
		p.label, param, p.maxParam, trial, p.trials))
}

// Stop halts the spinner animation.
func (p *SweepProgress) Stop() {
	p.sp.Stop()
}

// Completed returns the number of trials observed so far.
func (p *SweepProgress) Completed() int { return p.completed }
