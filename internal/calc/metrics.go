// Package calc computes derived quantities for tubular steel piles.
package calc

import (
	"math"

	"github.com/alexanderramin/tubepile/internal/domain"
)

const (
	// SteelDensity is the mass density of structural steel (kg/m³).
	SteelDensity = 7850.0

	mmPerM     = 1000.0
	mm2PerM2   = 1_000_000.0
	kgPerTonne = 1000.0
)

// Input holds the geometry of a single pile and the number of piles.
type Input struct {
	OuterDiameter float64 // mm
	WallThickness float64 // mm
	PileLength    float64 // m
	PaintLength   float64 // m, 0 skips paint area
	PileCount     int
}

// Metrics holds the derived quantities for one pile group.
type Metrics struct {
	InnerDiameter    float64 // mm
	CrossSectionArea float64 // mm²
	SinglePileWeight float64 // kg
	PaintAreaPerPile float64 // m²
	TotalWeight      float64 // kg
	TotalPaintArea   float64 // m²
}

// Totals is the sum of TotalWeight and TotalPaintArea across groups.
type Totals struct {
	TotalWeight    float64 // kg
	TotalPaintArea float64 // m²
}

// Calculate maps pile geometry to its derived metrics. Inputs are not
// validated: a wall thicker than the radius yields a negative inner
// diameter and the remaining quantities follow from it.
func Calculate(in Input) Metrics {
	outerRadius := in.OuterDiameter / (2 * mmPerM)
	innerRadius := (in.OuterDiameter - 2*in.WallThickness) / (2 * mmPerM)
	innerDiameter := innerRadius * 2 * mmPerM

	area := math.Pi * (math.Pow(outerRadius, 2) - math.Pow(innerRadius, 2)) * mm2PerM2

	volume := area / mm2PerM2 * in.PileLength
	weight := volume * SteelDensity

	var paint float64
	if in.PaintLength > 0 {
		paint = math.Pi * in.OuterDiameter / mmPerM * in.PaintLength
	}

	count := float64(in.PileCount)
	return Metrics{
		InnerDiameter:    innerDiameter,
		CrossSectionArea: area,
		SinglePileWeight: weight,
		PaintAreaPerPile: paint,
		TotalWeight:      weight * count,
		TotalPaintArea:   paint * count,
	}
}

// InputFor extracts calculator input from a stored group.
func InputFor(g *domain.PileGroup) Input {
	return Input{
		OuterDiameter: g.OuterDiameter,
		WallThickness: g.WallThickness,
		PileLength:    g.PileLength,
		PaintLength:   g.PaintLength,
		PileCount:     g.PileCount,
	}
}

// ForGroup computes metrics for a stored group.
func ForGroup(g *domain.PileGroup) Metrics {
	return Calculate(InputFor(g))
}

// Add accumulates a group's totals.
func (t Totals) Add(m Metrics) Totals {
	return Totals{
		TotalWeight:    t.TotalWeight + m.TotalWeight,
		TotalPaintArea: t.TotalPaintArea + m.TotalPaintArea,
	}
}

// Sum folds the calculator over every group. An empty slice yields zero totals.
func Sum(groups []*domain.PileGroup) Totals {
	var t Totals
	for _, g := range groups {
		t = t.Add(ForGroup(g))
	}
	return t
}

// KgToTonnes converts kilograms to metric tons.
func KgToTonnes(kg float64) float64 {
	return kg / kgPerTonne
}
