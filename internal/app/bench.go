package app

import (
	"context"
	"errors"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/bigshift/internal/bench"
	"github.com/agbru/bigshift/internal/cli"
	apperrors "github.com/agbru/bigshift/internal/errors"
)

// runBench runs the concurrent stress benchmark.
func (a *Application) runBench(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	opts := bench.Options{
		Workers:    a.Config.Workers,
		Iterations: a.Config.Iterations,
		PoolSize:   a.Config.PoolSize,
		Seed:       a.Config.Seed,
	}

	var progress *cli.BenchProgress
	if !a.Config.Quiet {
		progress = cli.NewBenchProgress(out)
		opts.Progress = progress.Update
	}

	report, err := bench.Run(ctx, opts, a.Logger)
	if progress != nil {
		progress.Stop()
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = apperrors.TimeoutError{Operation: "bench", Limit: a.Config.Timeout}
		}
		return a.fail(err)
	}

	cli.DisplayBenchReport(out, report, cli.OutputConfig{Quiet: a.Config.Quiet, Verbose: a.Config.Verbose})
	return apperrors.ExitSuccess
}
