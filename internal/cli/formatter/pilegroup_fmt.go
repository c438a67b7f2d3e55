package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/tubepile/internal/calc"
	"github.com/alexanderramin/tubepile/internal/contract"
	"github.com/alexanderramin/tubepile/internal/domain"
)

var groupColumns = []Column{
	{Title: "ID"},
	{Title: "NAME"},
	{Title: "PILES", Align: AlignRight},
	{Title: "OD x WT"},
	{Title: "LENGTH", Align: AlignRight},
	{Title: "PAINT", Align: AlignRight},
	{Title: "WT/PILE", Align: AlignRight},
	{Title: "TOTAL WT", Align: AlignRight},
	{Title: "PAINT AREA", Align: AlignRight},
}

// GroupTableOptions controls the interactive decorations of the group table.
type GroupTableOptions struct {
	// Cursor is the selected row index; negative hides the cursor column.
	Cursor int
	// Highlight marks rows touched by the latest change.
	Highlight map[string]bool
}

// FormatGroupList renders the plain group table with a totals footer.
func FormatGroupList(report *contract.GroupReport) string {
	return FormatGroupTable(report, GroupTableOptions{Cursor: -1})
}

// FormatGroupTable renders one row per group plus a totals footer.
func FormatGroupTable(report *contract.GroupReport, opts GroupTableOptions) string {
	rows := make([][]string, 0, len(report.Rows))
	for i, row := range report.Rows {
		g := row.Group
		id := g.DisplayID()
		name := Truncate(g.Name, 28)
		switch {
		case i == opts.Cursor:
			id = StyleGreen.Render("▸ ") + id
			name = StyleBold.Render(name)
		case opts.Cursor >= 0:
			id = "  " + StyleDim.Render(id)
		default:
			id = StyleDim.Render(id)
		}
		if opts.Highlight[g.ID] {
			name = StyleYellow.Render(name)
		}
		rows = append(rows, []string{
			id,
			name,
			strconv.Itoa(g.PileCount),
			trimFloat(g.OuterDiameter) + " x " + trimFloat(g.WallThickness),
			Metres(g.PileLength),
			paintLength(g),
			Tonnes(row.Metrics.SinglePileWeight),
			Tonnes(row.Metrics.TotalWeight),
			SquareMetres(row.Metrics.TotalPaintArea),
		})
	}

	footer := []string{
		"", "Total", strconv.Itoa(report.TotalPiles()), "", "", "", "",
		Tonnes(report.Totals.TotalWeight),
		SquareMetres(report.Totals.TotalPaintArea),
	}
	return RenderTable(groupColumns, rows, footer)
}

func paintLength(g *domain.PileGroup) string {
	if !g.Painted() {
		return Dim("--")
	}
	return Metres(g.PaintLength)
}

// FormatMetrics renders the six derived quantities in a titled box.
func FormatMetrics(title string, m calc.Metrics) string {
	lines := [][2]string{
		{"Inner diameter", fmt.Sprintf("%.2f mm", m.InnerDiameter)},
		{"Cross-section area", fmt.Sprintf("%.2f mm²", m.CrossSectionArea)},
		{"Weight per pile", Tonnes(m.SinglePileWeight)},
		{"Paint area per pile", SquareMetres(m.PaintAreaPerPile)},
		{"Total weight", Tonnes(m.TotalWeight)},
		{"Total paint area", SquareMetres(m.TotalPaintArea)},
	}
	return RenderBox(title, labelled(lines))
}

// FormatGroupDetail renders a single group's inputs and metrics.
func FormatGroupDetail(row contract.GroupRow) string {
	g := row.Group
	inputs := labelled([][2]string{
		{"ID", g.ID},
		{"Piles", strconv.Itoa(g.PileCount)},
		{"Outer diameter", Millimetres(g.OuterDiameter)},
		{"Wall thickness", Millimetres(g.WallThickness)},
		{"Pile length", Metres(g.PileLength)},
		{"Paint length", paintLength(g)},
	})
	return RenderBox(g.Name, inputs) + "\n" + FormatMetrics("Metrics", row.Metrics)
}

// FormatTotals renders the store-wide sums.
func FormatTotals(report *contract.GroupReport) string {
	return RenderBox("Totals", labelled([][2]string{
		{"Groups", strconv.Itoa(len(report.Rows))},
		{"Piles", strconv.Itoa(report.TotalPiles())},
		{"Total weight", Tonnes(report.Totals.TotalWeight)},
		{"Total paint area", SquareMetres(report.Totals.TotalPaintArea)},
	}))
}

// FormatGroupSaved renders the one-line confirmation after add or update.
func FormatGroupSaved(verb string, g *domain.PileGroup) string {
	m := calc.ForGroup(g)
	return Success(fmt.Sprintf("%s %s [%s]  %s, %s",
		verb, Bold(g.Name), g.DisplayID(), Tonnes(m.TotalWeight), SquareMetres(m.TotalPaintArea)))
}

func labelled(lines [][2]string) string {
	width := 0
	for _, l := range lines {
		width = max(width, len(l[0]))
	}
	var b strings.Builder
	for i, l := range lines {
		b.WriteString(Dim(l[0] + strings.Repeat(" ", width-len(l[0])+2)))
		b.WriteString(StyleFg.Render(l[1]))
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
