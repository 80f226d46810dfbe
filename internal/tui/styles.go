package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/colorize/internal/ui"
)

// styles holds the previewer chrome, derived from the theme under the cursor
// so the frame follows the preview.
type styles struct {
	panel    lipgloss.Style
	header   lipgloss.Style
	title    lipgloss.Style
	version  lipgloss.Style
	cursor   lipgloss.Style
	item     lipgloss.Style
	label    lipgloss.Style
	missing  lipgloss.Style
	selected lipgloss.Style
}

// newStyles builds the chrome styles from t. Missing slots yield plain styles.
func newStyles(t ui.Theme) styles {
	accent := slotStyle(t, ui.CategoryPrompt)
	info := slotStyle(t, ui.CategoryInfo)
	dim := slotStyle(t, ui.CategoryDebug)

	return styles{
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(info.GetForeground()).
			Padding(0, 1),
		header: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1),
		title:    accent.Bold(true),
		version:  dim,
		cursor:   accent.Bold(true),
		item:     lipgloss.NewStyle(),
		label:    dim.Width(labelWidth),
		missing:  slotStyle(t, ui.CategoryError).Italic(true),
		selected: info.Bold(true),
	}
}

// slotStyle converts the theme slot for c to lipgloss, or a plain style when
// the slot is missing.
func slotStyle(t ui.Theme, c ui.Category) lipgloss.Style {
	cfg, err := t.Slot(c)
	if err != nil {
		return lipgloss.NewStyle()
	}
	return cfg.Lipgloss()
}
