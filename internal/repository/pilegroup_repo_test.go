package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/tubepile/internal/domain"
	"github.com/alexanderramin/tubepile/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// repoFactories lets every behaviour test run against both backends.
func repoFactories() map[string]func(t *testing.T) PileGroupRepo {
	return map[string]func(t *testing.T) PileGroupRepo{
		"memory": func(t *testing.T) PileGroupRepo {
			return NewMemoryPileGroupRepo()
		},
		"sqlite": func(t *testing.T) PileGroupRepo {
			return NewSQLitePileGroupRepo(testutil.NewTestDB(t))
		},
	}
}

func forEachRepo(t *testing.T, fn func(t *testing.T, repo PileGroupRepo)) {
	for name, factory := range repoFactories() {
		t.Run(name, func(t *testing.T) {
			fn(t, factory(t))
		})
	}
}

func listIDs(t *testing.T, repo PileGroupRepo) []string {
	t.Helper()
	groups, err := repo.List(context.Background())
	require.NoError(t, err)
	ids := make([]string, len(groups))
	for i, g := range groups {
		ids[i] = g.ID
	}
	return ids
}

func TestPileGroupRepo_CreateAndGetByID(t *testing.T) {
	forEachRepo(t, func(t *testing.T, repo PileGroupRepo) {
		ctx := context.Background()
		g := testutil.NewTestPileGroup("Berth A", testutil.WithCount(7), testutil.WithLengths(18.5, 0))
		require.NoError(t, repo.Create(ctx, g))

		fetched, err := repo.GetByID(ctx, g.ID)
		require.NoError(t, err)
		assert.Equal(t, g.ID, fetched.ID)
		assert.True(t, g.SameFields(fetched))
		assert.Equal(t, g.CreatedAt.Unix(), fetched.CreatedAt.Unix())
	})
}

func TestPileGroupRepo_GetByID_NotFound(t *testing.T) {
	forEachRepo(t, func(t *testing.T, repo PileGroupRepo) {
		_, err := repo.GetByID(context.Background(), "nonexistent")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrGroupNotFound))
	})
}

func TestPileGroupRepo_List_InsertionOrder(t *testing.T) {
	forEachRepo(t, func(t *testing.T, repo PileGroupRepo) {
		ctx := context.Background()
		var want []string
		for _, name := range []string{"C", "A", "B"} {
			g := testutil.NewTestPileGroup(name)
			require.NoError(t, repo.Create(ctx, g))
			want = append(want, g.ID)
		}
		assert.Equal(t, want, listIDs(t, repo))
	})
}

func TestPileGroupRepo_List_Empty(t *testing.T) {
	forEachRepo(t, func(t *testing.T, repo PileGroupRepo) {
		groups, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, groups)
	})
}

func TestPileGroupRepo_Update_KeepsPositionAndID(t *testing.T) {
	forEachRepo(t, func(t *testing.T, repo PileGroupRepo) {
		ctx := context.Background()
		a := testutil.NewTestPileGroup("A")
		b := testutil.NewTestPileGroup("B")
		c := testutil.NewTestPileGroup("C")
		for _, g := range []*domain.PileGroup{a, b, c} {
			require.NoError(t, repo.Create(ctx, g))
		}

		b.Name = "B2"
		b.PileCount = 11
		b.OuterDiameter = 813
		b.WallThickness = 16
		b.PileLength = 30
		b.PaintLength = 0
		b.UpdatedAt = time.Now().UTC()
		found, err := repo.Update(ctx, b)
		require.NoError(t, err)
		assert.True(t, found)

		fetched, err := repo.GetByID(ctx, b.ID)
		require.NoError(t, err)
		assert.True(t, b.SameFields(fetched))
		assert.Equal(t, []string{a.ID, b.ID, c.ID}, listIDs(t, repo))
	})
}

func TestPileGroupRepo_Update_UnknownIDIsNoop(t *testing.T) {
	forEachRepo(t, func(t *testing.T, repo PileGroupRepo) {
		ctx := context.Background()
		a := testutil.NewTestPileGroup("A")
		require.NoError(t, repo.Create(ctx, a))

		ghost := testutil.NewTestPileGroup("Ghost")
		found, err := repo.Update(ctx, ghost)
		require.NoError(t, err)
		assert.False(t, found)

		groups, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.True(t, a.SameFields(groups[0]))
	})
}

func TestPileGroupRepo_Delete(t *testing.T) {
	forEachRepo(t, func(t *testing.T, repo PileGroupRepo) {
		ctx := context.Background()
		a := testutil.NewTestPileGroup("A")
		b := testutil.NewTestPileGroup("B")
		require.NoError(t, repo.Create(ctx, a))
		require.NoError(t, repo.Create(ctx, b))

		found, err := repo.Delete(ctx, a.ID)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []string{b.ID}, listIDs(t, repo))

		found, err = repo.Delete(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, []string{b.ID}, listIDs(t, repo))
	})
}

func TestPileGroupRepo_CreateAfterDeleteAppends(t *testing.T) {
	forEachRepo(t, func(t *testing.T, repo PileGroupRepo) {
		ctx := context.Background()
		a := testutil.NewTestPileGroup("A")
		b := testutil.NewTestPileGroup("B")
		require.NoError(t, repo.Create(ctx, a))
		require.NoError(t, repo.Create(ctx, b))
		_, err := repo.Delete(ctx, b.ID)
		require.NoError(t, err)

		c := testutil.NewTestPileGroup("C")
		require.NoError(t, repo.Create(ctx, c))
		assert.Equal(t, []string{a.ID, c.ID}, listIDs(t, repo))
	})
}

func TestPileGroupRepo_Create_DuplicateID(t *testing.T) {
	forEachRepo(t, func(t *testing.T, repo PileGroupRepo) {
		ctx := context.Background()
		a := testutil.NewTestPileGroup("A", testutil.WithID("dup"))
		require.NoError(t, repo.Create(ctx, a))
		assert.Error(t, repo.Create(ctx, testutil.NewTestPileGroup("B", testutil.WithID("dup"))))
	})
}

func TestMemoryPileGroupRepo_ReturnsDetachedCopies(t *testing.T) {
	repo := NewMemoryPileGroupRepo()
	ctx := context.Background()
	g := testutil.NewTestPileGroup("A")
	require.NoError(t, repo.Create(ctx, g))

	g.Name = "mutated after create"
	fetched, err := repo.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", fetched.Name)

	fetched.PileCount = 99
	again, err := repo.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, again.PileCount)
}
