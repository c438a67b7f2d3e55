package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/tubepile/internal/calc"
	"github.com/alexanderramin/tubepile/internal/contract"
	"github.com/alexanderramin/tubepile/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func referenceGroup() *domain.PileGroup {
	return &domain.PileGroup{
		ID:            "0f8fad5b-d9cb-469f-a165-70867728950e",
		Name:          "Berth A",
		PileCount:     2,
		OuterDiameter: 500,
		WallThickness: 10,
		PileLength:    12,
		PaintLength:   12,
	}
}

func TestTonnesAndSquareMetres(t *testing.T) {
	assert.Equal(t, "2.900 t", Tonnes(2900.19))
	assert.Equal(t, "1.451 t", Tonnes(1450.5))
	assert.Equal(t, "0.000 t", Tonnes(0))
	assert.Equal(t, "37.70 m²", SquareMetres(37.699))
	assert.Equal(t, "812.5 mm", Millimetres(812.5))
	assert.Equal(t, "12 m", Metres(12))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "…", Truncate("abc", 1))
}

func TestRenderTable_AlignsColumnsAndFooter(t *testing.T) {
	cols := []Column{{Title: "NAME"}, {Title: "QTY", Align: AlignRight}}
	out := stripANSI(RenderTable(cols, [][]string{{"a", "1"}, {"long name", "100"}}, []string{"Total", "101"}))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "NAME       QTY", lines[0])
	assert.Equal(t, "a            1", lines[2])
	assert.Equal(t, "long name  100", lines[3])
	assert.Equal(t, "Total      101", lines[5])
}

func TestRenderTable_NoColumns(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil, nil))
}

func TestFormatGroupList_IncludesTotalsRow(t *testing.T) {
	report := contract.BuildGroupReport([]*domain.PileGroup{referenceGroup()})
	out := stripANSI(FormatGroupList(report))

	assert.Contains(t, out, "0f8fad5b")
	assert.NotContains(t, out, "0f8fad5b-d9cb")
	assert.Contains(t, out, "Berth A")
	assert.Contains(t, out, "500 x 10")
	assert.Contains(t, out, "1.450 t")
	assert.Contains(t, out, "Total")
	assert.Contains(t, out, "2.900 t")
	assert.Contains(t, out, "37.70 m²")
}

func TestFormatGroupTable_CursorMarksSelectedRow(t *testing.T) {
	second := referenceGroup()
	second.ID = "aaaaaaaa-0000-0000-0000-000000000000"
	second.Name = "Trestle"
	report := contract.BuildGroupReport([]*domain.PileGroup{referenceGroup(), second})

	out := stripANSI(FormatGroupTable(report, GroupTableOptions{Cursor: 1}))
	assert.Contains(t, out, "▸ aaaaaaaa")
	assert.NotContains(t, out, "▸ 0f8fad5b")
}

func TestFormatGroupList_UnpaintedShowsPlaceholder(t *testing.T) {
	g := referenceGroup()
	g.PaintLength = 0
	out := stripANSI(FormatGroupList(contract.BuildGroupReport([]*domain.PileGroup{g})))
	assert.Contains(t, out, "--")
	assert.Contains(t, out, "0.00 m²")
}

func TestFormatMetrics(t *testing.T) {
	out := stripANSI(FormatMetrics("Preview", calc.ForGroup(referenceGroup())))
	assert.Contains(t, out, "PREVIEW")
	assert.Contains(t, out, "480.00 mm")
	assert.Contains(t, out, "15393.80 mm²")
	assert.Contains(t, out, "18.85 m²")
	assert.Contains(t, out, "37.70 m²")
}

func TestFormatTotals_Empty(t *testing.T) {
	out := stripANSI(FormatTotals(contract.BuildGroupReport(nil)))
	assert.Contains(t, out, "0.000 t")
	assert.Contains(t, out, "0.00 m²")
}

func TestFormatGroupDetail(t *testing.T) {
	report := contract.BuildGroupReport([]*domain.PileGroup{referenceGroup()})
	out := stripANSI(FormatGroupDetail(report.Rows[0]))
	assert.Contains(t, out, "BERTH A")
	assert.Contains(t, out, "0f8fad5b-d9cb-469f-a165-70867728950e")
	assert.Contains(t, out, "500 mm")
	assert.Contains(t, out, "2.900 t")
}

func TestSetAccent(t *testing.T) {
	orig := ColorHeader
	t.Cleanup(func() { SetAccent(string(orig)) })

	SetAccent("")
	assert.Equal(t, orig, ColorHeader)
	SetAccent("#123456")
	assert.Equal(t, "#123456", string(ColorHeader))
}
