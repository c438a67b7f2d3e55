package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/tubepile/internal/calc"
	"github.com/alexanderramin/tubepile/internal/contract"
	"github.com/alexanderramin/tubepile/internal/domain"
	"github.com/alexanderramin/tubepile/internal/repository"
	"github.com/google/uuid"
)

type pileGroupService struct {
	groups    repository.PileGroupRepo
	atomic    repository.Atomic
	observer  UseCaseObserver
	newID     func() string
	now       func() time.Time
	listeners listenerSet
}

// Option configures a PileGroupService.
type Option func(*pileGroupService)

// WithIDGenerator replaces the UUIDv4 generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *pileGroupService) { s.newID = fn }
}

// WithClock replaces time.Now for CreatedAt/UpdatedAt stamps.
func WithClock(fn func() time.Time) Option {
	return func(s *pileGroupService) { s.now = fn }
}

func WithObserver(obs UseCaseObserver) Option {
	return func(s *pileGroupService) {
		if obs != nil {
			s.observer = obs
		}
	}
}

// NewPileGroupService wires the group store over a repository. atomic
// backs AddAll; it must wrap the same underlying storage as groups.
func NewPileGroupService(groups repository.PileGroupRepo, atomic repository.Atomic, opts ...Option) PileGroupService {
	s := &pileGroupService{
		groups:   groups,
		atomic:   atomic,
		observer: NoopUseCaseObserver{},
		newID:    func() string { return uuid.New().String() },
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add stores g under a freshly generated ID, overwriting any ID the caller set.
func (s *pileGroupService) Add(ctx context.Context, g *domain.PileGroup) (err error) {
	defer observe(ctx, s.observer, "add-group", time.Now(), map[string]any{"name": g.Name}, &err)

	s.stamp(g)
	if err = s.groups.Create(ctx, g); err != nil {
		return fmt.Errorf("adding pile group %q: %w", g.Name, err)
	}
	s.listeners.notify(ChangeEvent{Kind: ChangeAdded, IDs: []string{g.ID}})
	return nil
}

// AddAll appends every group in order; either all are stored or none.
func (s *pileGroupService) AddAll(ctx context.Context, groups []domain.PileGroup) (created []*domain.PileGroup, err error) {
	fields := map[string]any{"count": len(groups)}
	defer observe(ctx, s.observer, "add-groups", time.Now(), fields, &err)

	err = s.atomic.Do(ctx, func(ctx context.Context, repo repository.PileGroupRepo) error {
		created = created[:0]
		for i := range groups {
			g := groups[i]
			s.stamp(&g)
			if err := repo.Create(ctx, &g); err != nil {
				return fmt.Errorf("adding pile group %q: %w", g.Name, err)
			}
			created = append(created, &g)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(created))
	for i, g := range created {
		ids[i] = g.ID
	}
	if len(ids) > 0 {
		s.listeners.notify(ChangeEvent{Kind: ChangeAdded, IDs: ids})
	}
	return created, nil
}

func (s *pileGroupService) Get(ctx context.Context, id string) (*domain.PileGroup, error) {
	return s.groups.GetByID(ctx, id)
}

func (s *pileGroupService) List(ctx context.Context) ([]*domain.PileGroup, error) {
	return s.groups.List(ctx)
}

// Update replaces every field of the group except its ID.
func (s *pileGroupService) Update(ctx context.Context, id string, fields domain.PileGroup) (found bool, err error) {
	obsFields := map[string]any{"id": id}
	defer observe(ctx, s.observer, "update-group", time.Now(), obsFields, &err)

	current, err := s.groups.GetByID(ctx, id)
	if errors.Is(err, domain.ErrGroupNotFound) {
		obsFields["found"] = false
		return false, nil
	}
	if err != nil {
		return false, err
	}

	current.ReplaceFields(fields)
	current.UpdatedAt = s.now()
	found, err = s.groups.Update(ctx, current)
	obsFields["found"] = found
	if err != nil {
		return false, fmt.Errorf("updating pile group %s: %w", id, err)
	}
	if found {
		s.listeners.notify(ChangeEvent{Kind: ChangeUpdated, IDs: []string{id}})
	}
	return found, nil
}

func (s *pileGroupService) Remove(ctx context.Context, id string) (found bool, err error) {
	obsFields := map[string]any{"id": id}
	defer observe(ctx, s.observer, "remove-group", time.Now(), obsFields, &err)

	found, err = s.groups.Delete(ctx, id)
	obsFields["found"] = found
	if err != nil {
		return false, fmt.Errorf("removing pile group %s: %w", id, err)
	}
	if found {
		s.listeners.notify(ChangeEvent{Kind: ChangeRemoved, IDs: []string{id}})
	}
	return found, nil
}

func (s *pileGroupService) Totals(ctx context.Context) (totals calc.Totals, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "totals", time.Now(), fields, &err)

	groups, err := s.groups.List(ctx)
	if err != nil {
		return calc.Totals{}, err
	}
	fields["groups"] = len(groups)
	return calc.Sum(groups), nil
}

func (s *pileGroupService) Report(ctx context.Context) (*contract.GroupReport, error) {
	groups, err := s.groups.List(ctx)
	if err != nil {
		return nil, err
	}
	return contract.BuildGroupReport(groups), nil
}

func (s *pileGroupService) Subscribe(l ChangeListener) func() {
	return s.listeners.add(l)
}

func (s *pileGroupService) stamp(g *domain.PileGroup) {
	now := s.now()
	g.ID = s.newID()
	g.CreatedAt = now
	g.UpdatedAt = now
}
