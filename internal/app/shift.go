package app

import (
	"context"
	"io"
	"time"

	"github.com/agbru/bigshift/internal/bignum"
	"github.com/agbru/bigshift/internal/cli"
	apperrors "github.com/agbru/bigshift/internal/errors"
	"github.com/agbru/bigshift/internal/logging"
)

// runShift performs the single shift requested on the command line.
func (a *Application) runShift(ctx context.Context, out io.Writer) int {
	if err := ctx.Err(); err != nil {
		return a.fail(err)
	}

	x, err := a.Config.ParseValue()
	if err != nil {
		return a.fail(err)
	}
	before, err := bignum.FromBig(x)
	if err != nil {
		return a.fail(apperrors.WrapError(err, "value"))
	}

	after := before
	start := time.Now()
	err = a.Shifter.ShiftLeft(&after, a.Config.Shift)
	elapsed := time.Since(start)

	a.Logger.Debug("shift done",
		logging.Uint("shift", a.Config.Shift),
		logging.Int("bitlen_before", before.BitLen()),
		logging.Int("bitlen_after", after.BitLen()),
		logging.Duration("elapsed", elapsed),
	)

	if _, known := bignum.StatusOf(err); !known {
		return a.fail(apperrors.ShiftError{Op: "cli", Shift: a.Config.Shift, Cause: err})
	}

	cli.DisplayShiftResult(out, cli.ShiftResult{
		Before:   before,
		After:    after,
		Shift:    a.Config.Shift,
		Err:      err,
		Duration: elapsed,
	}, cli.OutputConfig{Quiet: a.Config.Quiet, Verbose: a.Config.Verbose})

	if err != nil {
		return apperrors.ExitCodeFor(apperrors.ShiftError{Op: "cli", Shift: a.Config.Shift, Cause: err})
	}
	return apperrors.ExitSuccess
}
