package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/agbru/colorize/internal/ui"
)

const (
	// DefaultProgressBarWidth is the bar width in characters when none is given.
	DefaultProgressBarWidth = 30
	// DefaultCompleteChar fills the completed part of the bar.
	DefaultCompleteChar = "█"
	// DefaultIncompleteChar fills the remaining part of the bar.
	DefaultIncompleteChar = "░"
)

// DefaultProgressStyle is applied to the bar when no style is given.
var DefaultProgressStyle = ui.StyleConfig{Color: ui.Green, Style: ui.Bright}

// ProgressBarOptions configures a ProgressBar. Zero values select the defaults.
type ProgressBarOptions struct {
	// Width is the number of characters of the bar itself.
	Width int
	// CompleteChar and IncompleteChar fill the two parts of the bar.
	CompleteChar   string
	IncompleteChar string
	// Style applies to the bracketed bar and percentage.
	Style *ui.StyleConfig
}

// ProgressBar renders "[█████░░░░░] 50%" on the current terminal line,
// overwriting the previous render on each update.
type ProgressBar struct {
	logger *Logger

	current        int
	total          int
	width          int
	completeChar   string
	incompleteChar string
	style          ui.StyleConfig
}

// NewProgressBar creates a progress bar drawn through this logger. A total
// below 1 is raised to 1.
func (l *Logger) NewProgressBar(total int, opts ProgressBarOptions) *ProgressBar {
	p := &ProgressBar{
		logger:         l,
		total:          max(1, total),
		width:          opts.Width,
		completeChar:   opts.CompleteChar,
		incompleteChar: opts.IncompleteChar,
		style:          DefaultProgressStyle,
	}
	if p.width <= 0 {
		p.width = DefaultProgressBarWidth
	}
	if p.completeChar == "" {
		p.completeChar = DefaultCompleteChar
	}
	if p.incompleteChar == "" {
		p.incompleteChar = DefaultIncompleteChar
	}
	if opts.Style != nil {
		p.style = *opts.Style
	}
	return p
}

// Update moves the bar to value, clamped into [0, total], and redraws it.
// Values need not be monotonic. A non-empty text is appended after the
// percentage.
func (p *ProgressBar) Update(value int, text string) *ProgressBar {
	p.current = min(max(value, 0), p.total)

	var b strings.Builder
	b.WriteString(ui.ClearLine)
	b.WriteString(p.logger.Colorize(p.render(), p.style))
	if text != "" {
		b.WriteString(" ")
		b.WriteString(text)
	}
	p.logger.write(b.String())

	if p.logger.observer != nil {
		p.logger.observer.ProgressRendered()
	}
	return p
}

// Complete draws the bar at 100% and ends the line. It may be called again;
// each call redraws the full bar.
func (p *ProgressBar) Complete(text string) *ProgressBar {
	p.Update(p.total, text)
	p.logger.write("\n")
	return p
}

// Current returns the last clamped value.
func (p *ProgressBar) Current() int { return p.current }

// Total returns the bar's total.
func (p *ProgressBar) Total() int { return p.total }

// widths splits the bar width between completed and remaining characters.
func (p *ProgressBar) widths() (complete, incomplete int) {
	percent := float64(p.current) / float64(p.total)
	complete = int(math.Round(float64(p.width) * percent))
	return complete, p.width - complete
}

// render returns the unstyled bar and percentage for the current value.
func (p *ProgressBar) render() string {
	complete, incomplete := p.widths()
	percent := float64(p.current) / float64(p.total)
	return fmt.Sprintf("[%s%s] %d%%",
		strings.Repeat(p.completeChar, complete),
		strings.Repeat(p.incompleteChar, incomplete),
		int(math.Round(percent*100)))
}
