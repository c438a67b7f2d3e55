package service

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/alexanderramin/tubepile/internal/repository"
	"github.com/alexanderramin/tubepile/internal/testutil"
)

// sequentialIDs yields g-1, g-2, ... for deterministic assertions.
func sequentialIDs() func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("g-%d", n.Add(1))
	}
}

func newMemoryService(t *testing.T, opts ...Option) PileGroupService {
	t.Helper()
	repo := repository.NewMemoryPileGroupRepo()
	return NewPileGroupService(repo, repository.NewMemoryAtomic(repo), opts...)
}

func newSQLiteService(t *testing.T, opts ...Option) PileGroupService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewPileGroupService(
		repository.NewSQLitePileGroupRepo(database),
		repository.NewSQLiteAtomic(testutil.NewTestUoW(database)),
		opts...,
	)
}

// forEachBackend runs fn against the memory and SQLite stores.
func forEachBackend(t *testing.T, fn func(t *testing.T, svc PileGroupService), opts ...Option) {
	t.Run("memory", func(t *testing.T) { fn(t, newMemoryService(t, opts...)) })
	t.Run("sqlite", func(t *testing.T) { fn(t, newSQLiteService(t, opts...)) })
}
