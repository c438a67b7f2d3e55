package contract

import (
	"testing"

	"github.com/alexanderramin/tubepile/internal/calc"
	"github.com/alexanderramin/tubepile/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGroupReport(t *testing.T) {
	groups := []*domain.PileGroup{
		{ID: "a", Name: "A", PileCount: 2, OuterDiameter: 500, WallThickness: 10, PileLength: 12, PaintLength: 12},
		{ID: "b", Name: "B", PileCount: 3, OuterDiameter: 610, WallThickness: 12, PileLength: 20},
	}
	report := BuildGroupReport(groups)

	require.Len(t, report.Rows, 2)
	assert.Equal(t, "a", report.Rows[0].Group.ID)
	assert.Equal(t, calc.ForGroup(groups[1]), report.Rows[1].Metrics)
	assert.Equal(t, calc.Sum(groups), report.Totals)
	assert.Equal(t, 5, report.TotalPiles())
}

func TestBuildGroupReport_Empty(t *testing.T) {
	report := BuildGroupReport(nil)
	assert.Empty(t, report.Rows)
	assert.Equal(t, calc.Totals{}, report.Totals)
	assert.Zero(t, report.TotalPiles())
}
