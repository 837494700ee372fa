package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column defines a table column. Amount-like columns set AlignRight so the
// decimal points line up down the page.
type Column struct {
	Title      string
	Width      int
	AlignRight bool
}

// Row is a slice of cell values.
type Row []string

// Table renders a lipgloss-styled table.
type Table struct {
	Columns []Column
	Rows    []Row
	SelIdx  int // selected row index (-1 = none)
}

// NewTable creates a new table.
func NewTable(cols []Column) *Table {
	return &Table{Columns: cols, SelIdx: -1}
}

// ReceiptColumns is the standard column layout for transfer history views.
func ReceiptColumns() []Column {
	return []Column{
		{Title: "Date", Width: 16},
		{Title: "Dir", Width: 9},
		{Title: "Amount", Width: 14, AlignRight: true},
		{Title: "Counterparty", Width: 14},
		{Title: "Status", Width: 11},
		{Title: "Signature", Width: 14},
	}
}

// AddRow appends a row.
func (t *Table) AddRow(r Row) {
	t.Rows = append(t.Rows, r)
}

// fit forces s into exactly col.Width cells: overlong values are cut with a
// trailing ellipsis, short ones padded on the side the column dictates.
// Styling exact-width plain strings sidesteps the lipgloss Width+Padding
// interaction that wraps content when (content + padding) > Width.
func fit(s string, col Column) string {
	runes := []rune(s)
	if len(runes) > col.Width {
		if col.Width <= 1 {
			return string(runes[:col.Width])
		}
		return string(runes[:col.Width-1]) + "…"
	}
	gap := strings.Repeat(" ", col.Width-len(runes))
	if col.AlignRight {
		return gap + s
	}
	return s + gap
}

// Render returns the full table as a string.
func (t *Table) Render() string {
	headerStyle := lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	cellStyle := lipgloss.NewStyle().Foreground(ColorValue)

	var sb strings.Builder
	writeLine := func(cells []string) {
		sb.WriteString(strings.Join(cells, " "))
		sb.WriteString("\n")
	}

	cells := make([]string, 0, len(t.Columns))
	for _, col := range t.Columns {
		cells = append(cells, headerStyle.Render(fit(col.Title, col)))
	}
	writeLine(cells)

	cells = cells[:0]
	for _, col := range t.Columns {
		cells = append(cells, StyleMeta.Render(strings.Repeat("-", col.Width)))
	}
	writeLine(cells)

	for i, row := range t.Rows {
		style := cellStyle
		if i == t.SelIdx {
			style = StyleSelected
		}
		cells = cells[:0]
		for j, col := range t.Columns {
			val := ""
			if j < len(row) {
				val = row[j]
			}
			cells = append(cells, style.Render(fit(val, col)))
		}
		writeLine(cells)
	}

	return sb.String()
}

// KeyValueBlock renders labeled values in a bordered box. The label column
// sizes itself to the longest label.
func KeyValueBlock(title string, pairs [][2]string) string {
	labelWidth := 0
	for _, p := range pairs {
		if len(p[0]) > labelWidth {
			labelWidth = len(p[0])
		}
	}

	var sb strings.Builder
	if title != "" {
		sb.WriteString(StyleTitle.Render(title))
		sb.WriteString("\n")
	}
	for _, p := range pairs {
		label := p[0] + ":" + strings.Repeat(" ", labelWidth-len(p[0]))
		sb.WriteString("  " + StyleMeta.Render(label) + " " + StyleValue.Render(p[1]) + "\n")
	}
	return StyleBorder.Render(sb.String())
}
