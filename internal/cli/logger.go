// Package cli provides the user-facing terminal output layer: the themed
// Logger facade, the line-redrawing ProgressBar and Spinner widgets, table
// rendering, and shell completion scripts for the colorize command.
//
// # Naming Conventions
//
//   - Category methods (Success, Error, Warning, Info, Debug) and Log write
//     exactly one newline-terminated line to the logger's output.
//   - Format* methods return a styled string without performing I/O.
//   - Widgets (ProgressBar, Spinner) redraw the current line in place and
//     never add a newline until they are finalized.
package cli

import (
	"errors"
	"io"
	"os"
	"sync"

	apperrors "github.com/agbru/colorize/internal/errors"
	"github.com/agbru/colorize/internal/ui"
)

// Observer receives notifications about rendered output. It is used to feed
// metrics and must not write to the logger.
type Observer interface {
	// MessageWritten is called after a category method wrote its line.
	MessageWritten(category ui.Category)
	// ProgressRendered is called after a progress bar redraw.
	ProgressRendered()
	// SpinnerTicked is called after a spinner frame was drawn.
	SpinnerTicked()
}

// Logger styles text according to its current theme and writes it to an
// output stream. Its methods return the receiver so calls can be chained;
// later calls observe the state changed by earlier ones.
//
// The theme and enabled flag belong to the Logger, while theme registration
// goes to the shared Registry and is visible to every Logger using it.
type Logger struct {
	registry *ui.Registry
	observer Observer

	// outMu serializes writes; spinners draw from their own goroutine.
	outMu sync.Mutex
	out   io.Writer

	mu        sync.RWMutex
	enabled   bool
	theme     ui.Theme
	themeName string
	custom    ui.Theme
}

// settings collects construction-time configuration.
type settings struct {
	theme       string
	inlineTheme ui.Theme
	customTheme ui.Theme
	enabled     bool
	out         io.Writer
	registry    *ui.Registry
	observer    Observer
}

// Option configures a Logger during construction.
type Option func(*settings)

// WithTheme selects the initial theme by name.
func WithTheme(name string) Option {
	return func(s *settings) { s.theme = name }
}

// WithInlineTheme uses t directly as the initial theme, bypassing the registry.
func WithInlineTheme(t ui.Theme) Option {
	return func(s *settings) { s.inlineTheme = t }
}

// WithCustomTheme supplies the theme selected by the name "custom".
func WithCustomTheme(t ui.Theme) Option {
	return func(s *settings) { s.customTheme = t }
}

// WithEnabled sets the master switch for escape code emission. Defaults to true.
func WithEnabled(enabled bool) Option {
	return func(s *settings) { s.enabled = enabled }
}

// WithOutput sets the output stream. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(s *settings) { s.out = w }
}

// WithRegistry sets the theme registry. Defaults to ui.DefaultRegistry().
func WithRegistry(r *ui.Registry) Option {
	return func(s *settings) { s.registry = r }
}

// WithObserver attaches an Observer notified of every render.
func WithObserver(o Observer) Option {
	return func(s *settings) { s.observer = o }
}

// New creates a Logger. Without options it uses the default theme of the
// process-wide registry, writes to os.Stdout and has colors enabled.
func New(opts ...Option) *Logger {
	s := settings{
		theme:   ui.DefaultThemeName,
		enabled: true,
		out:     os.Stdout,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.registry == nil {
		s.registry = ui.DefaultRegistry()
	}
	if s.out == nil {
		s.out = io.Discard
	}

	l := &Logger{
		registry: s.registry,
		observer: s.observer,
		out:      s.out,
		enabled:  s.enabled,
		custom:   s.customTheme,
	}
	if s.inlineTheme != nil {
		l.SetCustomTheme(s.inlineTheme)
	} else {
		l.SetTheme(s.theme)
	}
	return l
}

var defaultLogger = sync.OnceValue(func() *Logger { return New() })

// Default returns the process-wide Logger writing to os.Stdout.
func Default() *Logger {
	return defaultLogger()
}

// SetTheme switches to the theme registered under name. "custom" selects the
// custom theme given at construction, and unknown names fall back to the
// default theme.
func (l *Logger) SetTheme(name string) *Logger {
	t, resolved := l.registry.ResolveNamed(name, l.custom)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.theme = t
	l.themeName = resolved
	return l
}

// SetCustomTheme switches to an inline theme. The theme is not validated;
// a missing slot panics when that category is first used.
func (l *Logger) SetCustomTheme(t ui.Theme) *Logger {
	resolved := l.registry.ResolveTheme(t)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.theme = resolved
	l.themeName = ""
	if t == nil {
		l.themeName = ui.DefaultThemeName
	}
	return l
}

// CreateTheme registers t under name in the logger's registry. The current
// theme is unchanged.
func (l *Logger) CreateTheme(name string, t ui.Theme) *Logger {
	l.registry.Register(name, t)
	return l
}

// SetEnabled turns escape code emission on or off.
func (l *Logger) SetEnabled(enabled bool) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
	return l
}

// Enabled reports whether escape codes are emitted.
func (l *Logger) Enabled() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.enabled
}

// Theme returns the current theme.
func (l *Logger) Theme() ui.Theme {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.theme
}

// ThemeName returns the name of the current theme, or "" for inline themes.
func (l *Logger) ThemeName() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.themeName
}

// Registry returns the registry the logger resolves theme names against.
func (l *Logger) Registry() *ui.Registry {
	return l.registry
}

// Success logs text with the theme's success style. A non-empty style
// replaces the slot's style axis; colors are never overridden.
func (l *Logger) Success(text string, style ...ui.StyleName) *Logger {
	return l.category(ui.CategorySuccess, text, style)
}

// Error logs text with the theme's error style.
func (l *Logger) Error(text string, style ...ui.StyleName) *Logger {
	return l.category(ui.CategoryError, text, style)
}

// Warning logs text with the theme's warning style.
func (l *Logger) Warning(text string, style ...ui.StyleName) *Logger {
	return l.category(ui.CategoryWarning, text, style)
}

// Info logs text with the theme's info style.
func (l *Logger) Info(text string, style ...ui.StyleName) *Logger {
	return l.category(ui.CategoryInfo, text, style)
}

// Debug logs text with the theme's debug style.
func (l *Logger) Debug(text string, style ...ui.StyleName) *Logger {
	return l.category(ui.CategoryDebug, text, style)
}

// Log writes text styled with the given names. Empty names are not applied.
func (l *Logger) Log(text string, color, bgColor, style ui.StyleName) *Logger {
	l.writeLine(l.Format(text, color, bgColor, style))
	return l
}

// Format styles text like Log without writing it.
func (l *Logger) Format(text string, color, bgColor, style ui.StyleName) string {
	return l.Colorize(text, ui.StyleConfig{Color: color, BgColor: bgColor, Style: style})
}

// FormatPrompt styles text with the theme's prompt slot without writing it.
func (l *Logger) FormatPrompt(text string) string {
	return l.Colorize(text, l.slot(ui.CategoryPrompt))
}

// Colorize applies cfg to text, honoring the enabled flag.
func (l *Logger) Colorize(text string, cfg ui.StyleConfig) string {
	return ui.Colorize(text, cfg, l.Enabled())
}

func (l *Logger) category(c ui.Category, text string, style []ui.StyleName) *Logger {
	cfg := l.slot(c)
	if len(style) > 0 {
		cfg = cfg.WithStyle(style[0])
	}
	l.writeLine(l.Colorize(text, cfg))
	if l.observer != nil {
		l.observer.MessageWritten(c)
	}
	return l
}

// slot returns the current theme's configuration for c. A theme without that
// slot is a programming error and panics with *apperrors.ThemeSlotError.
func (l *Logger) slot(c ui.Category) ui.StyleConfig {
	l.mu.RLock()
	theme, name := l.theme, l.themeName
	l.mu.RUnlock()

	cfg, err := theme.Slot(c)
	if err != nil {
		var slotErr *apperrors.ThemeSlotError
		if errors.As(err, &slotErr) {
			slotErr.Theme = name
		}
		panic(err)
	}
	return cfg
}

func (l *Logger) writeLine(s string) {
	l.write(s + "\n")
}

// write performs a single write to the output stream. Write errors are
// dropped: terminal output is best effort.
func (l *Logger) write(s string) {
	l.outMu.Lock()
	defer l.outMu.Unlock()
	_, _ = io.WriteString(l.out, s)
}
