package cli

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/liggitt/tabwriter"

	"github.com/agbru/colorize/internal/ui"
)

// TableData is the input of Logger.Table: Records, Scalars or a single Record.
type TableData interface {
	tableLen() int
}

// Cell is one key/value pair of a Record.
type Cell struct {
	Key   string
	Value any
}

// Record is an ordered set of key/value pairs.
type Record []Cell

// Records is an ordered sequence of records. Column headers are taken from
// the keys of the first record.
type Records []Record

// Scalars is an ordered sequence of plain values, rendered with their index.
type Scalars []any

func (r Record) tableLen() int  { return len(r) }
func (r Records) tableLen() int { return len(r) }
func (s Scalars) tableLen() int { return len(s) }

// Get returns the value stored under key.
func (r Record) Get(key string) (any, bool) {
	for _, c := range r {
		if c.Key == key {
			return c.Value, true
		}
	}
	return nil, false
}

// Keys returns the record's keys in order.
func (r Record) Keys() []string {
	keys := make([]string, len(r))
	for i, c := range r {
		keys[i] = c.Key
	}
	return keys
}

// TableStrategy selects how rows are laid out.
type TableStrategy int

const (
	// TablePlain joins cells with tabs, one write per line.
	TablePlain TableStrategy = iota
	// TableAligned pads cells into aligned columns.
	TableAligned
	// TableBordered draws a box table with lipgloss.
	TableBordered
)

// DefaultHeaderStyle applies to headers and record keys when none is given.
var DefaultHeaderStyle = ui.StyleConfig{Color: ui.White, Style: ui.Bright}

// TableOptions configures Logger.Table.
type TableOptions struct {
	// HeaderStyle applies to the header row, its separator and record keys.
	HeaderStyle *ui.StyleConfig
	// Strategy selects the layout. Defaults to TablePlain.
	Strategy TableStrategy
}

// NoDataMessage is logged as a warning for empty table input.
const NoDataMessage = "  No data to display"

// Table prints data with an optional title. Empty or nil data logs a single
// NoDataMessage warning and renders nothing else.
func (l *Logger) Table(data TableData, title string, opts TableOptions) *Logger {
	if title != "" {
		l.Info("")
		l.Info(title)
	}
	if data == nil || data.tableLen() == 0 {
		return l.Warning(NoDataMessage)
	}

	header := DefaultHeaderStyle
	if opts.HeaderStyle != nil {
		header = *opts.HeaderStyle
	}
	head, rows := tableCells(data)

	switch opts.Strategy {
	case TableAligned:
		l.alignedTable(data, head, rows, header)
	case TableBordered:
		l.borderedTable(data, head, rows, header)
	default:
		l.plainTable(data, head, rows, header)
	}
	return l.Info("")
}

// tableCells flattens data into an optional header row and string rows.
// Records yield a header; scalars and single records do not. Every cell is
// single-line and tab-free, so each row renders as exactly one line.
func tableCells(data TableData) (head []string, rows [][]string) {
	switch d := data.(type) {
	case Records:
		keys := d[0].Keys()
		head = make([]string, len(keys))
		for i, key := range keys {
			head[i] = flattenCell(key)
		}
		for _, rec := range d {
			row := make([]string, len(keys))
			for i, key := range keys {
				if v, ok := rec.Get(key); ok {
					row[i] = cellString(v)
				}
			}
			rows = append(rows, row)
		}
	case Scalars:
		for i, v := range d {
			rows = append(rows, []string{fmt.Sprint(i), cellString(v)})
		}
	case Record:
		for _, c := range d {
			rows = append(rows, []string{flattenCell(c.Key), cellString(c.Value)})
		}
	}
	return head, rows
}

func cellString(v any) string {
	if v == nil {
		return ""
	}
	return flattenCell(fmt.Sprint(v))
}

// cellReplacer turns line breaks and tabwriter cell terminators into spaces.
var cellReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ", "\v", " ", "\f", " ")

func flattenCell(s string) string {
	return cellReplacer.Replace(s)
}

func (l *Logger) plainTable(data TableData, head []string, rows [][]string, header ui.StyleConfig) {
	if head != nil {
		headerRow := strings.Join(head, "\t")
		l.writeLine(l.Colorize(headerRow, header))
		l.writeLine(l.Colorize(strings.Repeat("-", utf8.RuneCountInString(headerRow)), header))
	}
	_, keyed := data.(Record)
	for _, row := range rows {
		if keyed {
			l.writeLine(l.Colorize(row[0], header) + "\t" + row[1])
			continue
		}
		l.writeLine(strings.Join(row, "\t"))
	}
}

// alignedTable pads the plain cells with tabwriter, then styles the header
// lines and key column of the padded output so escape codes do not count
// toward column widths.
func (l *Logger) alignedTable(data TableData, head []string, rows [][]string, header ui.StyleConfig) {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	if head != nil {
		fmt.Fprintln(tw, strings.Join(head, "\t"))
		seps := make([]string, len(head))
		for i, h := range head {
			seps[i] = strings.Repeat("-", max(utf8.RuneCountInString(h), 1))
		}
		fmt.Fprintln(tw, strings.Join(seps, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	_ = tw.Flush()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	headLines := 0
	if head != nil {
		headLines = 2
	}
	_, keyed := data.(Record)
	var out strings.Builder
	for i, line := range lines {
		row := i - headLines
		switch {
		case row < 0:
			line = l.Colorize(line, header)
		case keyed && row < len(rows):
			// tabwriter leaves the last cell untouched, so the value is an
			// exact suffix of the padded line.
			if key, ok := strings.CutSuffix(line, rows[row][1]); ok {
				line = l.Colorize(key, header) + rows[row][1]
			}
		}
		out.WriteString(line)
		out.WriteString("\n")
	}
	l.write(out.String())
}

func (l *Logger) borderedTable(data TableData, head []string, rows [][]string, header ui.StyleConfig) {
	headerStyle := lipgloss.NewStyle()
	if l.Enabled() {
		headerStyle = header.Lipgloss()
	}
	_, keyed := data.(Record)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || (keyed && col == 0) {
				return headerStyle.Padding(0, 1)
			}
			return cell
		})
	if head != nil {
		t = t.Headers(head...)
	}
	l.writeLine(t.Render())
}
