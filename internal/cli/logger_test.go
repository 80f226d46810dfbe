package cli

import (
	"errors"
	"testing"

	apperrors "github.com/agbru/colorize/internal/errors"
	"github.com/agbru/colorize/internal/ui"
)

func TestNew_Defaults(t *testing.T) {
	t.Parallel()
	l, _ := newTestLogger()

	if !l.Enabled() {
		t.Error("logger should be enabled by default")
	}
	if l.ThemeName() != ui.DefaultThemeName {
		t.Errorf("ThemeName() = %q, want default", l.ThemeName())
	}
	if err := l.Theme().Validate(); err != nil {
		t.Errorf("default theme should be complete: %v", err)
	}
}

func TestLogger_CategoryMethods(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		theme string
		call  func(*Logger) *Logger
		want  string
	}{
		{"default success", "default", func(l *Logger) *Logger { return l.Success("ok") }, "\x1b[32mok\x1b[0m\n"},
		{"default info", "default", func(l *Logger) *Logger { return l.Info("i") }, "\x1b[36mi\x1b[0m\n"},
		{"dark error", "dark", func(l *Logger) *Logger { return l.Error("X") }, "\x1b[1m\x1b[31mX\x1b[0m\n"},
		{"dark debug", "dark", func(l *Logger) *Logger { return l.Debug("d") }, "\x1b[2m\x1b[35md\x1b[0m\n"},
		{"vibrant warning", "vibrant", func(l *Logger) *Logger { return l.Warning("w") }, "\x1b[43m\x1b[30mw\x1b[0m\n"},
		{"style override keeps colors", "vibrant", func(l *Logger) *Logger { return l.Error("e", ui.Underscore) }, "\x1b[4m\x1b[41m\x1b[37me\x1b[0m\n"},
		{"empty override keeps slot style", "dark", func(l *Logger) *Logger { return l.Success("s", "") }, "\x1b[1m\x1b[32ms\x1b[0m\n"},
		{"unknown override is dropped", "dark", func(l *Logger) *Logger { return l.Info("n", "sparkly") }, "\x1b[34mn\x1b[0m\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l, buf := newTestLogger(WithTheme(tt.theme))
			if got := tt.call(l); got != l {
				t.Error("category methods must return the receiver")
			}
			if buf.String() != tt.want {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
			if buf.Writes() != 1 {
				t.Errorf("expected exactly one write, got %d", buf.Writes())
			}
		})
	}
}

func TestLogger_Disabled(t *testing.T) {
	t.Parallel()
	l, buf := newTestLogger(WithTheme("vibrant"), WithEnabled(false))

	l.Success("a").Error("b", ui.Bright).Log("c", ui.Red, ui.BgBlue, ui.Blink)
	if want := "a\nb\nc\n"; buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
	if got := l.FormatPrompt("p"); got != "p" {
		t.Errorf("FormatPrompt = %q, want plain text", got)
	}
}

func TestLogger_ChainingObservesMutations(t *testing.T) {
	t.Parallel()
	l, buf := newTestLogger()

	l.SetTheme("dark").Success("a").SetEnabled(false).Success("b").SetEnabled(true).SetTheme("minimal").Info("c")

	want := "\x1b[1m\x1b[32ma\x1b[0m\n" + "b\n" + "\x1b[37mc\x1b[0m\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestLogger_SetThemeFallback(t *testing.T) {
	t.Parallel()
	l, _ := newTestLogger(WithTheme("dark"))

	l.SetTheme("nonexistent-theme")
	if l.ThemeName() != ui.DefaultThemeName {
		t.Errorf("ThemeName() = %q, want default", l.ThemeName())
	}
	cfg, _ := l.Theme().Slot(ui.CategoryInfo)
	if cfg.Color != ui.Cyan {
		t.Errorf("fallback theme info color = %q, want cyan", cfg.Color)
	}
}

func TestLogger_CustomTheme(t *testing.T) {
	t.Parallel()
	custom := ui.Theme{
		ui.CategorySuccess: {Color: ui.Blue},
		ui.CategoryError:   {Color: ui.Red},
		ui.CategoryWarning: {Color: ui.Yellow},
		ui.CategoryInfo:    {Color: ui.Gray},
		ui.CategoryDebug:   {Color: ui.Gray, Style: ui.Dim},
		ui.CategoryPrompt:  {Color: ui.Cyan},
	}

	t.Run("custom name with custom theme", func(t *testing.T) {
		t.Parallel()
		l, buf := newTestLogger(WithTheme(ui.CustomThemeName), WithCustomTheme(custom))
		l.Info("x")
		if want := "\x1b[90mx\x1b[0m\n"; buf.String() != want {
			t.Errorf("output = %q, want %q", buf.String(), want)
		}
		if l.ThemeName() != ui.CustomThemeName {
			t.Errorf("ThemeName() = %q, want custom", l.ThemeName())
		}
	})

	t.Run("custom name without custom theme falls back", func(t *testing.T) {
		t.Parallel()
		l, _ := newTestLogger(WithTheme(ui.CustomThemeName))
		if l.ThemeName() != ui.DefaultThemeName {
			t.Errorf("ThemeName() = %q, want default", l.ThemeName())
		}
	})

	t.Run("inline theme", func(t *testing.T) {
		t.Parallel()
		l, buf := newTestLogger(WithInlineTheme(custom))
		l.Success("y")
		if want := "\x1b[34my\x1b[0m\n"; buf.String() != want {
			t.Errorf("output = %q, want %q", buf.String(), want)
		}
		if l.ThemeName() != "" {
			t.Errorf("inline theme should have no name, got %q", l.ThemeName())
		}
	})

	t.Run("SetCustomTheme nil selects default", func(t *testing.T) {
		t.Parallel()
		l, _ := newTestLogger(WithInlineTheme(custom))
		l.SetCustomTheme(nil)
		if l.ThemeName() != ui.DefaultThemeName {
			t.Errorf("ThemeName() = %q, want default", l.ThemeName())
		}
	})
}

func TestLogger_CreateThemeSharedAcrossLoggers(t *testing.T) {
	t.Parallel()
	registry := ui.NewRegistry()
	a, _ := newTestLogger(WithRegistry(registry), WithTheme("dark"))
	b, bufB := newTestLogger(WithRegistry(registry), WithEnabled(false))

	ocean := ui.Theme{
		ui.CategorySuccess: {Color: ui.Cyan},
		ui.CategoryError:   {Color: ui.Magenta},
		ui.CategoryWarning: {Color: ui.Yellow},
		ui.CategoryInfo:    {Color: ui.Blue},
		ui.CategoryDebug:   {Color: ui.Gray},
		ui.CategoryPrompt:  {Color: ui.White},
	}
	if got := a.CreateTheme("ocean", ocean); got != a {
		t.Error("CreateTheme must return the receiver")
	}
	if a.ThemeName() != "dark" {
		t.Error("CreateTheme must not switch the current theme")
	}

	b.SetTheme("ocean").Success("s")
	if b.ThemeName() != "ocean" {
		t.Errorf("registration should be visible to other loggers, got %q", b.ThemeName())
	}
	if bufB.String() != "s\n" {
		t.Errorf("b keeps its own enabled flag, got %q", bufB.String())
	}
	if !a.Enabled() {
		t.Error("a's enabled flag must be independent of b's")
	}
}

func TestLogger_MissingSlotPanics(t *testing.T) {
	t.Parallel()
	partial := ui.Theme{ui.CategorySuccess: {Color: ui.Green}}

	tests := []struct {
		name      string
		opts      []Option
		wantTheme string
	}{
		{"inline theme", []Option{WithInlineTheme(partial)}, ""},
		{"registered theme", nil, "partial"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l, buf := newTestLogger(tt.opts...)
			if tt.wantTheme != "" {
				l.CreateTheme(tt.wantTheme, partial).SetTheme(tt.wantTheme)
			}

			l.Success("fine")

			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok {
					t.Fatalf("expected panic with error, got %v", r)
				}
				var slotErr *apperrors.ThemeSlotError
				if !errors.As(err, &slotErr) {
					t.Fatalf("expected ThemeSlotError, got %v", err)
				}
				if slotErr.Slot != "warning" || slotErr.Theme != tt.wantTheme {
					t.Errorf("got %+v", slotErr)
				}
				if buf.Writes() != 1 {
					t.Errorf("nothing should be written for the failing call, got %d writes", buf.Writes())
				}
			}()
			l.Warning("boom")
		})
	}
}

func TestLogger_FormatAndLog(t *testing.T) {
	t.Parallel()
	l, buf := newTestLogger(WithTheme("vibrant"))

	if got, want := l.Format("f", ui.Red, "", ui.Bright), "\x1b[1m\x1b[31mf\x1b[0m"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
	if got, want := l.FormatPrompt("?"), "\x1b[1m\x1b[46m\x1b[30m?\x1b[0m"; got != want {
		t.Errorf("FormatPrompt = %q, want %q", got, want)
	}
	if buf.Writes() != 0 {
		t.Error("Format methods must not write")
	}

	l.Log("plain", "", "", "")
	if want := "plain\x1b[0m\n"; buf.String() != want {
		t.Errorf("Log with no styles = %q, want %q", buf.String(), want)
	}
}

func TestLogger_Observer(t *testing.T) {
	t.Parallel()
	obs := newRecordingObserver()
	l, _ := newTestLogger(WithObserver(obs))

	l.Success("a").Success("b").Error("c").Log("d", ui.Red, "", "")

	if obs.count(ui.CategorySuccess) != 2 || obs.count(ui.CategoryError) != 1 {
		t.Errorf("unexpected counts: %v", obs.messages)
	}
	if obs.count(ui.CategoryInfo) != 0 {
		t.Error("Log is not a category write")
	}
}

func TestDefault(t *testing.T) {
	if Default() != Default() {
		t.Fatal("Default should return a single shared logger")
	}
	if Default().Registry() != ui.DefaultRegistry() {
		t.Error("Default logger should use the process-wide registry")
	}
}

func TestNew_NilOutputDiscards(t *testing.T) {
	t.Parallel()
	l := New(WithOutput(nil), WithRegistry(ui.NewRegistry()))
	l.Info("dropped")
}
