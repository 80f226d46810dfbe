// Package app wires configuration, diagnostics, metrics and the styled
// output layer into the colorize command.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/colorize/internal/cli"
	"github.com/agbru/colorize/internal/config"
	apperrors "github.com/agbru/colorize/internal/errors"
	"github.com/agbru/colorize/internal/format"
	"github.com/agbru/colorize/internal/logging"
	"github.com/agbru/colorize/internal/metrics"
	"github.com/agbru/colorize/internal/ui"
)

const metricsShutdownTimeout = 2 * time.Second

// Application represents the colorize application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Registry  *ui.Registry
	Diag      logging.Logger
	Recorder  *metrics.Recorder
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithRegistry sets the theme registry. Defaults to ui.DefaultRegistry().
func WithRegistry(r *ui.Registry) AppOption {
	return func(a *Application) { a.Registry = r }
}

// WithDiagnostics sets the diagnostic logger. Defaults to a zerolog logger on
// the error writer.
func WithDiagnostics(l logging.Logger) AppOption {
	return func(a *Application) { a.Diag = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "colorize"
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

	if app.Registry == nil {
		app.Registry = ui.DefaultRegistry()
	}
	app.Registry.Register(OceanThemeName, OceanTheme())
	if app.Diag == nil {
		app.Diag = logging.NewLogger(errWriter, "app")
	}
	app.Recorder = metrics.NewRecorder()
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}
	if a.Config.ShowVersion {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}

	level := zerolog.InfoLevel
	if a.Config.Verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	logger := cli.New(
		cli.WithOutput(out),
		cli.WithRegistry(a.Registry),
		cli.WithTheme(a.Config.Theme),
		cli.WithEnabled(!a.Config.NoColor),
		cli.WithObserver(a.Recorder),
	)
	if logger.ThemeName() != a.Config.Theme {
		a.Diag.Debug("unknown theme, using fallback",
			logging.String("requested", a.Config.Theme),
			logging.String("theme", logger.ThemeName()))
	}

	if a.Config.MetricsAddr != "" {
		srv, err := a.Recorder.Serve(a.Config.MetricsAddr)
		if err != nil {
			a.Diag.Error("starting metrics server", err, logging.String("addr", a.Config.MetricsAddr))
			return apperrors.ExitErrorGeneric
		}
		a.Diag.Info("serving metrics", logging.String("url", srv.URL()))
		defer a.stopMetricsServer(srv)
	}

	start := time.Now()
	err := a.runDemo(ctx, logger)
	elapsed := time.Since(start)
	exitCode := exitCodeFor(err)

	snap := a.Recorder.Snapshot()
	a.Diag.Debug("demo finished",
		logging.String("demo", a.Config.Demo),
		logging.String("duration", format.FormatExecutionDuration(elapsed)),
		logging.Uint64("messages", snap.TotalMessages()),
		logging.Uint64("progress_renders", snap.ProgressRenders),
		logging.Uint64("spinner_ticks", snap.SpinnerTicks),
		logging.Int("exit_code", exitCode))
	if err != nil && exitCode != apperrors.ExitErrorCanceled {
		a.Diag.Error("demo failed", err, logging.String("demo", a.Config.Demo))
	}

	if a.Config.MetricsFile != "" {
		if err := a.Recorder.WriteTextfile(a.Config.MetricsFile); err != nil {
			a.Diag.Error("writing metrics file", err, logging.String("path", a.Config.MetricsFile))
			if exitCode == apperrors.ExitSuccess {
				exitCode = apperrors.ExitErrorGeneric
			}
		}
	}
	return exitCode
}

// stopMetricsServer shuts srv down, giving in-flight scrapes a short grace period.
func (a *Application) stopMetricsServer(srv *metrics.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		a.Diag.Error("stopping metrics server", err)
	}
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Registry.Names()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// exitCodeFor maps a demo error to the process exit code.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return apperrors.ExitSuccess
	case apperrors.IsContextError(err):
		return apperrors.ExitErrorCanceled
	default:
		return apperrors.ExitErrorGeneric
	}
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
