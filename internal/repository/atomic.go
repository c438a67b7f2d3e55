package repository

import (
	"context"

	"github.com/alexanderramin/tubepile/internal/db"
)

type sqliteAtomic struct {
	uow db.UnitOfWork
}

// NewSQLiteAtomic runs each batch inside a database transaction.
func NewSQLiteAtomic(uow db.UnitOfWork) Atomic {
	return &sqliteAtomic{uow: uow}
}

func (a *sqliteAtomic) Do(ctx context.Context, fn func(ctx context.Context, repo PileGroupRepo) error) error {
	return a.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, NewSQLitePileGroupRepo(tx))
	})
}

type memoryAtomic struct {
	repo *MemoryPileGroupRepo
}

// NewMemoryAtomic restores the previous collection when a batch fails.
// Batches must not run concurrently with other writers.
func NewMemoryAtomic(repo *MemoryPileGroupRepo) Atomic {
	return &memoryAtomic{repo: repo}
}

func (a *memoryAtomic) Do(ctx context.Context, fn func(ctx context.Context, repo PileGroupRepo) error) error {
	before := a.repo.snapshot()
	if err := fn(ctx, a.repo); err != nil {
		a.repo.restore(before)
		return err
	}
	return nil
}
