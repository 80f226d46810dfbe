package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/colorize/internal/cli"
	"github.com/agbru/colorize/internal/config"
	"github.com/agbru/colorize/internal/format"
	"github.com/agbru/colorize/internal/logging"
	"github.com/agbru/colorize/internal/tui"
	"github.com/agbru/colorize/internal/ui"
	"github.com/agbru/colorize/internal/workflow"
)

// errSimulatedFailure drives the error path of the spinner demo.
var errSimulatedFailure = errors.New("connection refused (simulated)")

// demoSection renders one part of the demo through l.
type demoSection func(a *Application, ctx context.Context, l *cli.Logger) error

// demoSections maps --demo values to their sections. "all" runs every
// non-interactive section in this order.
var demoSections = map[string]demoSection{
	config.DemoThemes:   (*Application).demoThemes,
	config.DemoProgress: (*Application).demoProgress,
	config.DemoSpinner:  (*Application).demoSpinner,
	config.DemoWorkflow: (*Application).demoWorkflow,
	config.DemoTable:    (*Application).demoTable,
	config.DemoPreview:  (*Application).demoPreview,
}

var allSections = []string{
	config.DemoThemes,
	config.DemoProgress,
	config.DemoSpinner,
	config.DemoWorkflow,
	config.DemoTable,
}

// runDemo runs the configured section, or every non-interactive section for
// "all", stopping at the first error.
func (a *Application) runDemo(ctx context.Context, l *cli.Logger) error {
	names := []string{a.Config.Demo}
	if a.Config.Demo == config.DemoAll {
		names = allSections
	}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.Diag.Debug("running demo section", logging.String("section", name))
		if err := demoSections[name](a, ctx, l); err != nil {
			return fmt.Errorf("%s demo: %w", name, err)
		}
	}
	return nil
}

// demoThemes prints every category in every registered theme, then shows a
// runtime registration and an inline theme. The configured theme is restored.
func (a *Application) demoThemes(_ context.Context, l *cli.Logger) error {
	defer l.SetTheme(a.Config.Theme)

	l.CreateTheme(SunsetThemeName, SunsetTheme())
	for _, name := range a.Registry.Names() {
		l.SetTheme(name)
		showcase(l, fmt.Sprintf("Theme: %s", name))
	}

	l.SetCustomTheme(inlineTheme())
	showcase(l, "Inline theme (not registered)")
	return nil
}

// showcase writes one line per category with the logger's current theme.
func showcase(l *cli.Logger, title string) {
	l.Info("").
		Info(title, ui.Bright).
		Success("  ✓ Operation completed").
		Error("  ✗ Something went wrong").
		Warning("  ⚠ Proceed with caution").
		Info("  ℹ For your information").
		Debug("  · Internal details").
		Log("  "+l.FormatPrompt("? Continue [y/N]"), "", "", "")
}

// demoProgress advances a progress bar from a worker goroutine's updates.
func (a *Application) demoProgress(ctx context.Context, l *cli.Logger) error {
	steps := a.Config.Steps
	l.Info("").Info("Progress bar", ui.Bright)

	bar := l.NewProgressBar(steps, cli.ProgressBarOptions{Width: a.Config.Width})
	eta := format.NewETA(steps)
	updates := make(chan int)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(updates)
		for i := 1; i <= steps; i++ {
			if err := sleep(gctx, a.Config.Delay); err != nil {
				return err
			}
			select {
			case updates <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	bar.Update(0, "starting")
	for i := range updates {
		bar.Update(i, fmt.Sprintf("%d/%d, ETA %s", i, steps, format.FormatETA(eta.Estimate(i))))
	}
	if err := g.Wait(); err != nil {
		l.Info("")
		l.Warning("  Progress interrupted")
		return err
	}
	bar.Complete(fmt.Sprintf("done in %s", format.FormatExecutionDuration(eta.Elapsed())))
	return nil
}

// demoSpinner runs a spinner over simulated work twice: once succeeding and
// once failing.
func (a *Application) demoSpinner(ctx context.Context, l *cli.Logger) error {
	l.Info("").Info("Spinner", ui.Bright)
	opts := cli.SpinnerOptions{Frames: a.Config.SpinnerFrames()}

	err := a.spin(ctx, l.NewSpinner("Fetching themes", opts), "Fetching themes", nil)
	if err != nil {
		return err
	}
	return a.spin(ctx, l.NewSpinner("Connecting to registry", opts), "Connecting to registry", errSimulatedFailure)
}

// spin animates s while three work units run; the last one fails with
// failure when it is non-nil. Only context errors are returned.
func (a *Application) spin(ctx context.Context, s *cli.Spinner, text string, failure error) error {
	const units = 3
	s.Start()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for i := 1; i <= units; i++ {
			if err := sleep(gctx, a.Config.Delay); err != nil {
				return err
			}
			if i == units && failure != nil {
				return failure
			}
			s.Update(fmt.Sprintf("%s (%d/%d)", text, i, units))
		}
		return nil
	})

	switch err := g.Wait(); {
	case err == nil:
		s.Success(text + ": done")
	case errors.Is(err, failure):
		s.Error(fmt.Sprintf("%s: %v", text, err))
	default:
		s.Stop("")
		return err
	}
	return nil
}

// demoWorkflow walks through a short sequence of numbered steps.
func (a *Application) demoWorkflow(ctx context.Context, l *cli.Logger) error {
	w := workflow.New(ctx, l).Start("Publishing theme pack")

	w.Step("Resolve theme")
	w.Success(fmt.Sprintf("Using theme %q", l.ThemeName()))

	w.Step("Validate custom themes")
	for _, name := range []string{OceanThemeName, SunsetThemeName} {
		theme, ok := a.Registry.Lookup(name)
		if !ok {
			w.Warning(fmt.Sprintf("Theme %q is not registered", name))
			continue
		}
		if err := theme.Validate(); err != nil {
			w.Error(err.Error())
			continue
		}
		w.Success(fmt.Sprintf("Theme %q defines every category", name))
	}

	w.Step("Render widgets")
	if err := sleep(ctx, a.Config.Delay); err != nil {
		return err
	}
	w.Warning("Terminal capabilities are not detected")

	w.End(fmt.Sprintf("Finished %d steps", w.Steps()))
	return nil
}

// demoTable renders the registry and style table with each strategy.
func (a *Application) demoTable(_ context.Context, l *cli.Logger) error {
	themes := make(cli.Records, 0)
	for _, name := range a.Registry.Names() {
		theme := a.Registry.Resolve(name, nil)
		rec := cli.Record{{Key: "theme", Value: name}}
		for _, c := range []ui.Category{ui.CategorySuccess, ui.CategoryError, ui.CategoryPrompt} {
			cfg, _ := theme.Slot(c)
			rec = append(rec, cli.Cell{Key: string(c), Value: l.Colorize(describe(cfg), cfg)})
		}
		themes = append(themes, rec)
	}
	l.Table(themes, "Registered themes", cli.TableOptions{Strategy: cli.TableBordered})

	styles := make(cli.Scalars, 0)
	for _, name := range ui.StyleNames() {
		styles = append(styles, l.Format(string(name), name, "", ""))
	}
	l.Table(styles, "Style names", cli.TableOptions{})

	l.Table(cli.Record{
		{Key: "theme", Value: l.ThemeName()},
		{Key: "color", Value: l.Enabled()},
		{Key: "progress width", Value: a.Config.Width},
		{Key: "delay", Value: a.Config.Delay},
	}, "Configuration", cli.TableOptions{Strategy: cli.TableAligned})

	l.Table(cli.Records{}, "Empty table", cli.TableOptions{})
	return nil
}

// describe renders a StyleConfig as "style bg color", skipping empty axes.
func describe(cfg ui.StyleConfig) string {
	var parts []string
	for _, name := range []ui.StyleName{cfg.Style, cfg.BgColor, cfg.Color} {
		if name != "" {
			parts = append(parts, string(name))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

// demoPreview opens the interactive previewer and switches to the chosen theme.
func (a *Application) demoPreview(ctx context.Context, l *cli.Logger) error {
	selected, err := tui.Run(ctx, a.Registry, l.ThemeName(), l.Enabled(), Version)
	if err != nil {
		return err
	}
	if selected == "" {
		l.Info("No theme selected")
		return nil
	}
	l.SetTheme(selected).Success(fmt.Sprintf("Switched to theme %q", selected))
	return nil
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
