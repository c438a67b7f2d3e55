package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// whole list is replayed on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS pile_groups (
		id                TEXT PRIMARY KEY,
		seq               INTEGER NOT NULL,
		name              TEXT NOT NULL,
		pile_count        INTEGER NOT NULL,
		outer_diameter_mm REAL NOT NULL,
		wall_thickness_mm REAL NOT NULL,
		pile_length_m     REAL NOT NULL,
		paint_length_m    REAL NOT NULL DEFAULT 0,
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_pile_groups_seq ON pile_groups(seq)`,
}
