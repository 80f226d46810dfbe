package ui

import "strings"

// Colorize wraps text in the escape codes requested by cfg.
//
// Codes are emitted style first, then background, then foreground; names that
// are empty or unknown are skipped. The reset code is always appended when
// enabled, even if no code was applied. When enabled is false the text is
// returned unchanged.
func Colorize(text string, cfg StyleConfig, enabled bool) string {
	if !enabled {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + 16)
	for _, name := range [...]StyleName{cfg.Style, cfg.BgColor, cfg.Color} {
		if code, ok := Code(name); ok {
			b.WriteString(code)
		}
	}
	b.WriteString(text)
	b.WriteString(ResetCode)
	return b.String()
}
