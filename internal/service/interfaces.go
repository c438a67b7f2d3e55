package service

import (
	"context"

	"github.com/alexanderramin/tubepile/internal/calc"
	"github.com/alexanderramin/tubepile/internal/contract"
	"github.com/alexanderramin/tubepile/internal/domain"
	"github.com/alexanderramin/tubepile/internal/importer"
)

// PileGroupService is the group store: an ordered collection of pile
// groups with CRUD, a totals query, and change notification.
//
// Update and Remove on an unknown ID leave the collection unchanged and
// return false with a nil error.
type PileGroupService interface {
	Add(ctx context.Context, g *domain.PileGroup) error
	AddAll(ctx context.Context, groups []domain.PileGroup) ([]*domain.PileGroup, error)
	Get(ctx context.Context, id string) (*domain.PileGroup, error)
	List(ctx context.Context) ([]*domain.PileGroup, error)
	Update(ctx context.Context, id string, fields domain.PileGroup) (bool, error)
	Remove(ctx context.Context, id string) (bool, error)
	Totals(ctx context.Context) (calc.Totals, error)
	Report(ctx context.Context) (*contract.GroupReport, error)
	Subscribe(l ChangeListener) (unsubscribe func())
}

// ImportResult holds the outcome of a pile group import.
type ImportResult struct {
	Groups []*domain.PileGroup
	Totals calc.Totals
}

type ImportService interface {
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
	ImportGroupFile(ctx context.Context, file *importer.GroupFile) (*ImportResult, error)
	Export(ctx context.Context, format importer.Format) ([]byte, error)
}
