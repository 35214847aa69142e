package app

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/agbru/bigshift/internal/bignum"
	"github.com/agbru/bigshift/internal/cli"
	"github.com/agbru/bigshift/internal/config"
	apperrors "github.com/agbru/bigshift/internal/errors"
	"github.com/agbru/bigshift/internal/logging"
	"github.com/agbru/bigshift/internal/server"
	"github.com/agbru/bigshift/internal/ui"
)

// Application represents the bigshift application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    logging.Logger
	Shifter   server.Shifter
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger overrides the logger built from the configuration.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithShifter replaces the shift implementation used by every mode.
func WithShifter(s server.Shifter) AppOption {
	return func(a *Application) { a.Shifter = s }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "bigshift"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		app.Logger = logging.NewConsoleLogger(errWriter, "bigshift", cfg.NoColor)
	}
	if app.Shifter == nil {
		app.Shifter = server.ShifterFunc(bignum.ShiftLeft)
	}
	return app, nil
}

// Run executes the application based on the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Version {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}

	if err := logging.SetLevel(a.Config.LogLevel); err != nil {
		cli.DisplayError(a.ErrWriter, apperrors.NewConfigError("%v", err))
		return apperrors.ExitErrorConfig
	}
	ui.InitTheme(a.Config.Theme, a.Config.NoColor)

	switch {
	case a.Config.Serve != "":
		return a.runServe(ctx)
	case a.Config.Bench:
		return a.runBench(ctx, out)
	}
	return a.runShift(ctx, out)
}

// fail reports err on the error writer and maps it to an exit code.
func (a *Application) fail(err error) int {
	cli.DisplayError(a.ErrWriter, err)
	return apperrors.ExitCodeFor(err)
}

// StartupExitCode maps an error returned by New to the exit code. New has
// already reported the error on its error writer.
func StartupExitCode(err error) int {
	if IsHelpError(err) {
		return apperrors.ExitSuccess
	}
	return apperrors.ExitErrorConfig
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
