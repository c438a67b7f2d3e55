package contract

import (
	"github.com/alexanderramin/tubepile/internal/calc"
	"github.com/alexanderramin/tubepile/internal/domain"
)

// GroupRow pairs a stored pile group with its recomputed metrics.
type GroupRow struct {
	Group   *domain.PileGroup
	Metrics calc.Metrics
}

// GroupReport is the derived view over the whole store: one row per group
// in insertion order plus the running totals.
type GroupReport struct {
	Rows   []GroupRow
	Totals calc.Totals
}

// TotalPiles counts individual piles across all rows.
func (r *GroupReport) TotalPiles() int {
	var n int
	for _, row := range r.Rows {
		n += row.Group.PileCount
	}
	return n
}

// BuildGroupReport recomputes metrics for every group.
func BuildGroupReport(groups []*domain.PileGroup) *GroupReport {
	report := &GroupReport{Rows: make([]GroupRow, 0, len(groups))}
	for _, g := range groups {
		m := calc.ForGroup(g)
		report.Rows = append(report.Rows, GroupRow{Group: g, Metrics: m})
		report.Totals = report.Totals.Add(m)
	}
	return report
}
