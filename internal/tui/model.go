// Package tui implements the interactive theme previewer: a list of the
// registered themes next to a sample line for every message category,
// rendered with the real colorizer.
package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/agbru/colorize/internal/errors"
	"github.com/agbru/colorize/internal/ui"
)

// labelWidth is the column width of the category labels in the preview.
const labelWidth = 9

// SampleText is the preview line shown for each category.
var SampleText = map[ui.Category]string{
	ui.CategorySuccess: "Operation completed",
	ui.CategoryError:   "Something went wrong",
	ui.CategoryWarning: "Proceed with caution",
	ui.CategoryInfo:    "For your information",
	ui.CategoryDebug:   "Internal details",
	ui.CategoryPrompt:  "Continue? [y/N]",
}

// Model is the root bubbletea model of the theme previewer.
type Model struct {
	registry *ui.Registry
	names    []string
	cursor   int
	enabled  bool
	selected string

	keymap KeyMap
	help   help.Model
	header HeaderModel
	styles styles

	width  int
	height int
}

// NewModel creates a previewer over the themes of registry with the cursor on
// current, or on the default theme when current is not registered.
func NewModel(registry *ui.Registry, current string, enabled bool, version string) Model {
	names := registry.Names()
	cursor := slices.Index(names, current)
	if cursor < 0 {
		cursor = max(slices.Index(names, ui.DefaultThemeName), 0)
	}

	m := Model{
		registry: registry,
		names:    names,
		cursor:   cursor,
		enabled:  enabled,
		keymap:   DefaultKeyMap(),
		help:     help.New(),
		header:   NewHeaderModel(version),
	}
	m.styles = newStyles(m.theme())
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and terminal resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Select):
		m.selected = m.Current()
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Up):
		m.move(-1)
		return m, nil

	case key.Matches(msg, m.keymap.Down):
		m.move(1)
		return m, nil

	case key.Matches(msg, m.keymap.Toggle):
		m.enabled = !m.enabled
		return m, nil

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m, nil
}

// move shifts the cursor by delta, wrapping around the list.
func (m *Model) move(delta int) {
	if len(m.names) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.names)) % len(m.names)
	m.styles = newStyles(m.theme())
}

// Current returns the name of the theme under the cursor.
func (m Model) Current() string {
	if len(m.names) == 0 {
		return ui.DefaultThemeName
	}
	return m.names[m.cursor]
}

// Selected returns the theme chosen with the select key, or "" when the
// previewer was quit without choosing.
func (m Model) Selected() string {
	return m.selected
}

// Enabled reports whether the preview currently shows escape codes.
func (m Model) Enabled() bool {
	return m.enabled
}

func (m Model) theme() ui.Theme {
	return m.registry.Resolve(m.Current(), nil)
}

// View renders the header, the theme list, the preview and the help footer.
func (m Model) View() string {
	header := m.header.View(m.styles, m.cursor, len(m.names))
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.panel.Render(m.list()),
		m.styles.panel.Render(m.preview()),
	)
	footer := m.help.View(m.keymap)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// list renders the theme names with the cursor marker.
func (m Model) list() string {
	lines := make([]string, len(m.names))
	for i, name := range m.names {
		if i == m.cursor {
			lines[i] = m.styles.cursor.Render("› " + name)
			continue
		}
		lines[i] = m.styles.item.Render("  " + name)
	}
	return strings.Join(lines, "\n")
}

// preview renders one sample line per category through ui.Colorize. A theme
// missing a slot shows the slot error instead of failing.
func (m Model) preview() string {
	theme := m.theme()
	lines := make([]string, 0, len(ui.Categories))
	for _, c := range ui.Categories {
		label := m.styles.label.Render(string(c))
		cfg, err := theme.Slot(c)
		if err != nil {
			var slotErr *apperrors.ThemeSlotError
			if errors.As(err, &slotErr) {
				slotErr.Theme = m.Current()
			}
			lines = append(lines, label+m.styles.missing.Render(err.Error()))
			continue
		}
		lines = append(lines, label+ui.Colorize(SampleText[c], cfg, m.enabled))
	}
	return strings.Join(lines, "\n")
}

// Run starts the previewer and blocks until the user quits or ctx is done.
// It returns the selected theme name, or "" when none was chosen.
func Run(ctx context.Context, registry *ui.Registry, current string, enabled bool, version string) (string, error) {
	p := tea.NewProgram(NewModel(registry, current, enabled, version), tea.WithContext(ctx), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("theme preview: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.Selected(), nil
	}
	return "", nil
}
