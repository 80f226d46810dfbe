package ui

import (
	"sort"
	"sync"

	apperrors "github.com/agbru/colorize/internal/errors"
)

// Category is the semantic classification of a logged message.
type Category string

// Message categories. Every theme supplies one StyleConfig per category.
const (
	CategorySuccess Category = "success"
	CategoryError   Category = "error"
	CategoryWarning Category = "warning"
	CategoryInfo    Category = "info"
	CategoryDebug   Category = "debug"
	CategoryPrompt  Category = "prompt"
)

// Categories lists the six theme slots in canonical order.
var Categories = []Category{
	CategorySuccess,
	CategoryError,
	CategoryWarning,
	CategoryInfo,
	CategoryDebug,
	CategoryPrompt,
}

// StyleConfig requests up to three escape codes. An empty field means the
// axis is not applied.
type StyleConfig struct {
	// Color is the foreground color.
	Color StyleName `json:"color,omitempty"`
	// BgColor is the background color.
	BgColor StyleName `json:"bgColor,omitempty"`
	// Style is the text style (bright, dim, underscore...).
	Style StyleName `json:"style,omitempty"`
}

// WithStyle returns a copy of c whose style axis is replaced by style.
// An empty style leaves c unchanged.
func (c StyleConfig) WithStyle(style StyleName) StyleConfig {
	if style != "" {
		c.Style = style
	}
	return c
}

// Theme maps each Category to its StyleConfig. A complete theme defines all
// six categories; see Validate.
type Theme map[Category]StyleConfig

// Slot returns the configuration for category c, or a *apperrors.ThemeSlotError
// when the theme does not define it.
func (t Theme) Slot(c Category) (StyleConfig, error) {
	cfg, ok := t[c]
	if !ok {
		return StyleConfig{}, &apperrors.ThemeSlotError{Slot: string(c)}
	}
	return cfg, nil
}

// Validate reports the first category, in canonical order, missing from t.
func (t Theme) Validate() error {
	for _, c := range Categories {
		if _, err := t.Slot(c); err != nil {
			return err
		}
	}
	return nil
}

// Built-in theme names.
const (
	DefaultThemeName = "default"
	// CustomThemeName selects the caller-supplied custom theme during resolution.
	CustomThemeName = "custom"
)

// builtinThemes returns fresh copies of the themes every registry starts with.
func builtinThemes() map[string]Theme {
	return map[string]Theme{
		DefaultThemeName: {
			CategorySuccess: {Color: Green},
			CategoryError:   {Color: Red},
			CategoryWarning: {Color: Yellow},
			CategoryInfo:    {Color: Cyan},
			CategoryDebug:   {Color: Magenta},
			CategoryPrompt:  {Color: White, Style: Bright},
		},
		"dark": {
			CategorySuccess: {Color: Green, Style: Bright},
			CategoryError:   {Color: Red, Style: Bright},
			CategoryWarning: {Color: Yellow, Style: Bright},
			CategoryInfo:    {Color: Blue, Style: Bright},
			CategoryDebug:   {Color: Magenta, Style: Dim},
			CategoryPrompt:  {Color: White, Style: Underscore},
		},
		"light": {
			CategorySuccess: {Color: Green, Style: Dim},
			CategoryError:   {Color: Red, Style: Dim},
			CategoryWarning: {Color: Yellow, Style: Dim},
			CategoryInfo:    {Color: Blue, Style: Dim},
			CategoryDebug:   {Color: Magenta, Style: Dim},
			CategoryPrompt:  {Color: Black, Style: Bright},
		},
		"minimal": {
			CategorySuccess: {Color: Green},
			CategoryError:   {Color: Red},
			CategoryWarning: {Color: Yellow},
			CategoryInfo:    {Color: White},
			CategoryDebug:   {Color: White, Style: Dim},
			CategoryPrompt:  {Color: White},
		},
		"vibrant": {
			CategorySuccess: {Color: Green, BgColor: BgBlack, Style: Bright},
			CategoryError:   {Color: White, BgColor: BgRed, Style: Bright},
			CategoryWarning: {Color: Black, BgColor: BgYellow},
			CategoryInfo:    {Color: White, BgColor: BgBlue, Style: Bright},
			CategoryDebug:   {Color: White, BgColor: BgMagenta},
			CategoryPrompt:  {Color: Black, BgColor: BgCyan, Style: Bright},
		},
	}
}

// Registry maps theme names to themes. It starts with the built-in themes and
// grows through Register; entries are overwritten but never removed.
// A Registry is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	themes map[string]Theme
}

// NewRegistry creates a registry holding only the built-in themes.
func NewRegistry() *Registry {
	return &Registry{themes: builtinThemes()}
}

// defaultRegistry is the process-wide registry shared by loggers that are not
// given one explicitly.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register stores theme under name, replacing any existing entry.
//
// Parameters:
//   - name: The theme name. Registering "default" replaces the fallback theme.
//   - theme: The theme, stored as given and not validated.
func (r *Registry) Register(name string, theme Theme) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.themes[name] = theme
}

// Lookup returns the theme registered under name.
func (r *Registry) Lookup(name string) (Theme, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.themes[name]
	return t, ok
}

// Resolve returns the theme selected by name.
//
// The name "custom" selects the custom theme when one is supplied. Otherwise
// a registered theme with that name is returned, and any unknown name falls
// back to the default theme.
func (r *Registry) Resolve(name string, custom Theme) Theme {
	t, _ := r.ResolveNamed(name, custom)
	return t
}

// ResolveNamed is Resolve that also reports the name the theme was found
// under: name itself, or "default" after a fallback.
func (r *Registry) ResolveNamed(name string, custom Theme) (Theme, string) {
	if name == CustomThemeName && custom != nil {
		return custom, name
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if t, ok := r.themes[name]; ok {
		return t, name
	}
	return r.themes[DefaultThemeName], DefaultThemeName
}

// ResolveTheme returns an inline theme as-is, or the default theme when t is nil.
// Slot completeness is not checked here; missing slots surface on first use.
func (r *Registry) ResolveTheme(t Theme) Theme {
	if t != nil {
		return t
	}
	return r.Resolve(DefaultThemeName, nil)
}

// Names returns the registered theme names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
