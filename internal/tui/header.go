package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderModel renders the top bar: title, version and theme position.
type HeaderModel struct {
	version string
	width   int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{version: version}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header for the theme at position index of count.
func (h HeaderModel) View(s styles, index, count int) string {
	titleText := "colorize theme preview"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	left := s.title.Render(titleText)
	right := s.version.Render(fmt.Sprintf("theme %d/%d", index+1, count))

	gap := max(h.width-2-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return s.header.Render(left + strings.Repeat(" ", gap) + right)
}
