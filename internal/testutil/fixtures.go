package testutil

import (
	"time"

	"github.com/alexanderramin/tubepile/internal/domain"
	"github.com/google/uuid"
)

// PileGroupOption customises a fixture group.
type PileGroupOption func(*domain.PileGroup)

func WithCount(n int) PileGroupOption {
	return func(g *domain.PileGroup) {
		g.PileCount = n
	}
}

// WithGeometry sets outer diameter and wall thickness in millimetres.
func WithGeometry(od, wt float64) PileGroupOption {
	return func(g *domain.PileGroup) {
		g.OuterDiameter = od
		g.WallThickness = wt
	}
}

// WithLengths sets pile and paint lengths in metres.
func WithLengths(pile, paint float64) PileGroupOption {
	return func(g *domain.PileGroup) {
		g.PileLength = pile
		g.PaintLength = paint
	}
}

func WithID(id string) PileGroupOption {
	return func(g *domain.PileGroup) {
		g.ID = id
	}
}

// NewTestPileGroup returns the reference group (Ø500x10, 12 m, painted
// 12 m, 2 piles) with a fresh ID, adjusted by opts.
func NewTestPileGroup(name string, opts ...PileGroupOption) *domain.PileGroup {
	now := time.Now().UTC()
	g := &domain.PileGroup{
		ID:            uuid.New().String(),
		Name:          name,
		PileCount:     2,
		OuterDiameter: 500,
		WallThickness: 10,
		PileLength:    12,
		PaintLength:   12,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Fields returns the user-editable part of g, with identity cleared.
func Fields(g *domain.PileGroup) domain.PileGroup {
	return domain.PileGroup{
		Name:          g.Name,
		PileCount:     g.PileCount,
		OuterDiameter: g.OuterDiameter,
		WallThickness: g.WallThickness,
		PileLength:    g.PileLength,
		PaintLength:   g.PaintLength,
	}
}
