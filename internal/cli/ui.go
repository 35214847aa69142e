//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/bigshift/internal/format"
)

const (
	// ProgressRefreshRate is the spinner frame interval.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth is the width in characters of the progress bar.
	ProgressBarWidth = 30
)

// Spinner abstracts a terminal spinner so progress display can be tested
// without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to Spinner.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// BenchProgress shows a spinner with a progress bar and ETA while a
// benchmark runs. Update is safe for concurrent use.
type BenchProgress struct {
	mu      sync.Mutex
	spinner Spinner
	out     io.Writer
	start   time.Time
	last    float64
	stopped bool
}

// NewBenchProgress starts a spinner writing to out.
func NewBenchProgress(out io.Writer) *BenchProgress {
	bp := &BenchProgress{
		spinner: newSpinner(spinner.WithWriter(out)),
		out:     out,
		start:   time.Now(),
	}
	bp.spinner.UpdateSuffix(" " + format.FormatProgressBarWithETA(0, 0, ProgressBarWidth))
	bp.spinner.Start()
	return bp
}

// Update records the completed fraction of the run.
func (bp *BenchProgress) Update(progress float64) {
	bp.mu.Lock()
	defer bp.mu.Unlock()
	if bp.stopped || progress < bp.last {
		return
	}
	bp.last = progress
	eta := format.EstimateETA(progress, time.Since(bp.start))
	bp.spinner.UpdateSuffix(" " + format.FormatProgressBarWithETA(progress, eta, ProgressBarWidth))
}

// Progress returns the last recorded fraction.
func (bp *BenchProgress) Progress() float64 {
	bp.mu.Lock()
	defer bp.mu.Unlock()
	return bp.last
}

// Stop halts the spinner and prints the final bar. It is idempotent.
func (bp *BenchProgress) Stop() {
	bp.mu.Lock()
	defer bp.mu.Unlock()
	if bp.stopped {
		return
	}
	bp.stopped = true
	bp.spinner.Stop()
	fmt.Fprintf(bp.out, "%s %s\n", format.ProgressBar(bp.last, ProgressBarWidth),
		format.FormatExecutionDuration(time.Since(bp.start)))
}
