package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMigratedDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openMigratedDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesPileGroupsTable(t *testing.T) {
	db := openMigratedDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='pile_groups'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "pile_groups", name)

	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name='idx_pile_groups_seq'`).Scan(&name)
	require.NoError(t, err)
}

func TestMigrate_PaintLengthDefaultsToZero(t *testing.T) {
	db := openMigratedDB(t)

	_, err := db.Exec(`INSERT INTO pile_groups (id, seq, name, pile_count, outer_diameter_mm, wall_thickness_mm, pile_length_m, created_at, updated_at)
		VALUES ('g1', 1, 'A', 1, 500, 10, 12, '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	var paint float64
	require.NoError(t, db.QueryRow(`SELECT paint_length_m FROM pile_groups WHERE id='g1'`).Scan(&paint))
	assert.Zero(t, paint)
}

func TestOpenDB_FileCreatesDirectory(t *testing.T) {
	path := t.TempDir() + "/nested/piles.db"
	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM pile_groups`).Scan(&n))
	assert.Zero(t, n)
}
