package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/tubepile/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryAtomic_RestoresOnError(t *testing.T) {
	repo := NewMemoryPileGroupRepo()
	ctx := context.Background()
	keep := testutil.NewTestPileGroup("Keep")
	require.NoError(t, repo.Create(ctx, keep))

	err := NewMemoryAtomic(repo).Do(ctx, func(ctx context.Context, r PileGroupRepo) error {
		require.NoError(t, r.Create(ctx, testutil.NewTestPileGroup("Temp")))
		_, err := r.Delete(ctx, keep.ID)
		require.NoError(t, err)
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Equal(t, []string{keep.ID}, listIDs(t, repo))
}

func TestMemoryAtomic_KeepsOnSuccess(t *testing.T) {
	repo := NewMemoryPileGroupRepo()
	ctx := context.Background()

	err := NewMemoryAtomic(repo).Do(ctx, func(ctx context.Context, r PileGroupRepo) error {
		return r.Create(ctx, testutil.NewTestPileGroup("New"))
	})
	require.NoError(t, err)
	assert.Len(t, listIDs(t, repo), 1)
}

func TestSQLiteAtomic_RollsBackOnError(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLitePileGroupRepo(database)
	ctx := context.Background()
	atomic := NewSQLiteAtomic(testutil.NewTestUoW(database))

	err := atomic.Do(ctx, func(ctx context.Context, r PileGroupRepo) error {
		require.NoError(t, r.Create(ctx, testutil.NewTestPileGroup("A")))
		require.NoError(t, r.Create(ctx, testutil.NewTestPileGroup("B")))
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Empty(t, listIDs(t, repo))

	err = atomic.Do(ctx, func(ctx context.Context, r PileGroupRepo) error {
		return r.Create(ctx, testutil.NewTestPileGroup("C"))
	})
	require.NoError(t, err)
	assert.Len(t, listIDs(t, repo), 1)
}
