package repository

import (
	"context"

	"github.com/alexanderramin/tubepile/internal/domain"
)

// PileGroupRepo is an insertion-ordered collection of pile groups.
//
// Update and Delete report whether a record with the given ID existed.
// An unknown ID is not an error: the call leaves the collection unchanged
// and returns false.
type PileGroupRepo interface {
	Create(ctx context.Context, g *domain.PileGroup) error
	GetByID(ctx context.Context, id string) (*domain.PileGroup, error)
	List(ctx context.Context) ([]*domain.PileGroup, error)
	Update(ctx context.Context, g *domain.PileGroup) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Atomic runs fn against a repository whose writes either all land or
// none do.
type Atomic interface {
	Do(ctx context.Context, fn func(ctx context.Context, repo PileGroupRepo) error) error
}
