package ui

import "github.com/charmbracelet/lipgloss"

// ansiIndex maps color names to the 4-bit ANSI palette index understood by
// lipgloss.Color. Background names share the foreground palette.
var ansiIndex = map[StyleName]string{
	Black: "0", Red: "1", Green: "2", Yellow: "3",
	Blue: "4", Magenta: "5", Cyan: "6", White: "7", Gray: "8",

	BgBlack: "0", BgRed: "1", BgGreen: "2", BgYellow: "3",
	BgBlue: "4", BgMagenta: "5", BgCyan: "6", BgWhite: "7", BgGray: "8",
}

// Lipgloss converts the configuration to an equivalent lipgloss.Style for
// components rendered through lipgloss (bordered tables, the previewer).
// As with Colorize, each name acts according to what it is, whatever axis it
// was given on; hidden and unknown names have no lipgloss equivalent and are
// ignored.
func (c StyleConfig) Lipgloss() lipgloss.Style {
	s := lipgloss.NewStyle()
	for _, name := range [...]StyleName{c.Style, c.BgColor, c.Color} {
		s = applyLipgloss(s, name)
	}
	return s
}

func applyLipgloss(s lipgloss.Style, name StyleName) lipgloss.Style {
	switch name {
	case Bright:
		return s.Bold(true)
	case Dim:
		return s.Faint(true)
	case Underscore:
		return s.Underline(true)
	case Blink:
		return s.Blink(true)
	case Reverse:
		return s.Reverse(true)
	case BgBlack, BgRed, BgGreen, BgYellow, BgBlue, BgMagenta, BgCyan, BgWhite, BgGray:
		return s.Background(lipgloss.Color(ansiIndex[name]))
	}
	if idx, ok := ansiIndex[name]; ok {
		return s.Foreground(lipgloss.Color(idx))
	}
	return s
}
