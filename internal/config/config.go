// Package config defines the command-line configuration of the colorize
// binary: flag parsing, COLORIZE_ environment overrides and validation.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/agbru/colorize/internal/cli"
	apperrors "github.com/agbru/colorize/internal/errors"
	"github.com/agbru/colorize/internal/ui"
)

// EnvPrefix is prepended to every environment variable read by the configuration.
const EnvPrefix = "COLORIZE_"

// noColorEnv is the cross-tool convention for disabling colored output.
const noColorEnv = "NO_COLOR"

// Demo sections selectable with --demo.
const (
	DemoAll      = "all"
	DemoThemes   = "themes"
	DemoProgress = "progress"
	DemoSpinner  = "spinner"
	DemoWorkflow = "workflow"
	DemoTable    = "table"
	DemoPreview  = "preview"
)

// DemoSections lists the accepted --demo values.
var DemoSections = []string{DemoAll, DemoThemes, DemoProgress, DemoSpinner, DemoWorkflow, DemoTable, DemoPreview}

// DefaultCharSet selects the built-in braille spinner frames.
const DefaultCharSet = -1

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Theme is the theme name used by the demo. Unknown names fall back to "default".
	Theme string
	// NoColor disables every escape code.
	NoColor bool
	// Demo selects the demo section to run.
	Demo string
	// Steps is the number of progress bar updates in the progress demo.
	Steps int
	// Width is the progress bar width in characters.
	Width int
	// Delay is the pause between two simulated work units.
	Delay time.Duration
	// CharSet is a briandowns/spinner character set index, or DefaultCharSet.
	CharSet int
	// MetricsFile, when set, receives the render metrics on exit.
	MetricsFile string
	// MetricsAddr, when set, serves the render metrics over HTTP while the demo runs.
	MetricsAddr string
	// Verbose enables debug diagnostics on the error stream.
	Verbose bool
	// ShowVersion prints the version and exits.
	ShowVersion bool
	// Completion generates a completion script for the named shell and exits.
	Completion string
}

// Default returns the configuration used when no flag or variable is set.
func Default() AppConfig {
	return AppConfig{
		Theme:   ui.DefaultThemeName,
		Demo:    DemoAll,
		Steps:   20,
		Width:   cli.DefaultProgressBarWidth,
		Delay:   50 * time.Millisecond,
		CharSet: DefaultCharSet,
	}
}

// ParseConfig parses command-line arguments, applies environment overrides
// for flags that were not given, and validates the result.
//
// Parameters:
//   - programName: The name used in usage messages.
//   - args: The arguments without the program name.
//   - errWriter: Receives usage and parse errors.
//
// Returns:
//   - AppConfig: The resulting configuration.
//   - error: flag.ErrHelp for --help, a parse error, or an apperrors.ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	cfg := Default()
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "Theme used by the demo.")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable ANSI escape codes (also set by NO_COLOR).")
	fs.StringVar(&cfg.Demo, "demo", cfg.Demo, "Demo section to run ("+strings.Join(DemoSections, ", ")+").")
	fs.IntVar(&cfg.Steps, "steps", cfg.Steps, "Number of progress bar updates.")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Progress bar width in characters.")
	fs.DurationVar(&cfg.Delay, "delay", cfg.Delay, "Delay between simulated work units.")
	fs.IntVar(&cfg.CharSet, "charset", cfg.CharSet, "Spinner character set index (-1 for the default frames).")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", "", "Write render metrics in Prometheus text format to this file.")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "Serve render metrics at http://<addr>/metrics while the demo runs.")
	fs.BoolVar(&cfg.Verbose, "v", false, "Shorthand for --verbose.")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Log diagnostics at debug level.")
	fs.BoolVar(&cfg.ShowVersion, "V", false, "Shorthand for --version.")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Show version information.")
	fs.StringVar(&cfg.Completion, "completion", "", "Generate a completion script (bash, zsh, fish).")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected argument: %q", fs.Arg(0))
	}

	applyEnvOverrides(&cfg, fs)
	if !isFlagSet(fs, "no-color") && os.Getenv(noColorEnv) != "" {
		cfg.NoColor = true
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(errWriter, err)
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the numeric ranges and enumerated values of the configuration.
func (c AppConfig) Validate() error {
	if !slices.Contains(DemoSections, c.Demo) {
		return apperrors.NewConfigError("unknown demo section %q (accepted values: %s)", c.Demo, strings.Join(DemoSections, ", "))
	}
	if c.Steps < 1 {
		return apperrors.NewConfigError("--steps must be at least 1, got %d", c.Steps)
	}
	if c.Width < 1 {
		return apperrors.NewConfigError("--width must be at least 1, got %d", c.Width)
	}
	if c.Delay < 0 {
		return apperrors.NewConfigError("--delay must not be negative, got %s", c.Delay)
	}
	if c.CharSet != DefaultCharSet {
		if _, ok := cli.CharSetFrames(c.CharSet); !ok {
			return apperrors.NewConfigError("unknown spinner character set %d", c.CharSet)
		}
	}
	return nil
}

// SpinnerFrames returns the frames selected by CharSet, or nil for the defaults.
func (c AppConfig) SpinnerFrames() []string {
	if c.CharSet == DefaultCharSet {
		return nil
	}
	frames, _ := cli.CharSetFrames(c.CharSet)
	return frames
}
