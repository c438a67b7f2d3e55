package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/alexanderramin/tubepile/internal/domain"
)

// MemoryPileGroupRepo keeps pile groups in process memory, in insertion order.
type MemoryPileGroupRepo struct {
	mu     sync.RWMutex
	groups []*domain.PileGroup
}

// NewMemoryPileGroupRepo creates an empty in-memory repository.
func NewMemoryPileGroupRepo() *MemoryPileGroupRepo {
	return &MemoryPileGroupRepo{}
}

func (r *MemoryPileGroupRepo) Create(_ context.Context, g *domain.PileGroup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(g.ID) >= 0 {
		return fmt.Errorf("inserting pile group: id %q already exists", g.ID)
	}
	r.groups = append(r.groups, clone(g))
	return nil
}

func (r *MemoryPileGroupRepo) GetByID(_ context.Context, id string) (*domain.PileGroup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, notFound(id)
	}
	return clone(r.groups[i]), nil
}

func (r *MemoryPileGroupRepo) List(_ context.Context) ([]*domain.PileGroup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.PileGroup, len(r.groups))
	for i, g := range r.groups {
		out[i] = clone(g)
	}
	return out, nil
}

func (r *MemoryPileGroupRepo) Update(_ context.Context, g *domain.PileGroup) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(g.ID)
	if i < 0 {
		return false, nil
	}
	r.groups[i] = clone(g)
	return true, nil
}

func (r *MemoryPileGroupRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.groups = slices.Delete(r.groups, i, i+1)
	return true, nil
}

// snapshot and restore back the memory Atomic implementation.
func (r *MemoryPileGroupRepo) snapshot() []*domain.PileGroup {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.groups)
}

func (r *MemoryPileGroupRepo) restore(groups []*domain.PileGroup) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.groups = groups
}

// indexOf must be called with r.mu held.
func (r *MemoryPileGroupRepo) indexOf(id string) int {
	return slices.IndexFunc(r.groups, func(g *domain.PileGroup) bool { return g.ID == id })
}
