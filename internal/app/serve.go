package app

import (
	"context"
	"os/signal"
	"syscall"

	apperrors "github.com/agbru/bigshift/internal/errors"
	"github.com/agbru/bigshift/internal/logging"
	"github.com/agbru/bigshift/internal/server"
)

// runServe starts the HTTP service and blocks until SIGINT/SIGTERM or ctx
// cancellation.
func (a *Application) runServe(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	cfg := server.DefaultConfig(a.Config.Serve)
	cfg.Version = VersionString()
	cfg.VersionNumber = VersionNumber()

	srv := server.New(cfg,
		server.WithLogger(a.Logger),
		server.WithShifter(a.Shifter),
	)
	a.Logger.Info("starting HTTP service",
		logging.String("addr", a.Config.Serve), logging.String("version", cfg.Version))

	if err := srv.Start(ctx); err != nil {
		return a.fail(err)
	}
	return apperrors.ExitSuccess
}
