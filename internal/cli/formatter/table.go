package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Alignment of a table column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column describes a table column header and its alignment.
type Column struct {
	Title string
	Align Alignment
}

// RenderTable renders an aligned table with a header separator line.
// A non-nil footer is set off by a second separator, which is how totals
// rows are drawn. Widths are measured on visible text so styled cells
// line up.
func RenderTable(cols []Column, rows [][]string, footer []string) string {
	if len(cols) == 0 {
		return ""
	}

	widths := make([]int, len(cols))
	measure := func(row []string) {
		for i := 0; i < len(cols) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i, c := range cols {
		widths[i] = lipgloss.Width(c.Title)
	}
	for _, row := range rows {
		measure(row)
	}
	measure(footer)

	const colGap = 2

	var b strings.Builder
	writeRow := func(row []string, style func(...string) string) {
		for i := range cols {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pad := max(widths[i]-lipgloss.Width(cell), 0)
			if style != nil {
				cell = style(cell)
			}
			if cols[i].Align == AlignRight {
				b.WriteString(strings.Repeat(" ", pad) + cell)
			} else {
				b.WriteString(cell)
				if i < len(cols)-1 {
					b.WriteString(strings.Repeat(" ", pad))
				}
			}
			if i < len(cols)-1 {
				b.WriteString(strings.Repeat(" ", colGap))
			}
		}
		b.WriteString("\n")
	}
	writeSeparator := func() {
		for i, w := range widths {
			b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
			if i < len(cols)-1 {
				b.WriteString(strings.Repeat(" ", colGap))
			}
		}
		b.WriteString("\n")
	}

	titles := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = c.Title
	}
	writeRow(titles, StyleHeader.Render)
	writeSeparator()
	for _, row := range rows {
		writeRow(row, nil)
	}
	if footer != nil {
		writeSeparator()
		writeRow(footer, StyleBold.Render)
	}

	return b.String()
}
