package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/tubepile/internal/db"
	"github.com/alexanderramin/tubepile/internal/domain"
)

// SQLitePileGroupRepo implements PileGroupRepo on the pile_groups table.
// Insertion order is tracked by the seq column.
type SQLitePileGroupRepo struct {
	db db.DBTX
}

// NewSQLitePileGroupRepo creates a repository over a *sql.DB or *sql.Tx.
func NewSQLitePileGroupRepo(conn db.DBTX) *SQLitePileGroupRepo {
	return &SQLitePileGroupRepo{db: conn}
}

const pileGroupColumns = `id, name, pile_count, outer_diameter_mm, wall_thickness_mm, pile_length_m, paint_length_m, created_at, updated_at`

func (r *SQLitePileGroupRepo) Create(ctx context.Context, g *domain.PileGroup) error {
	query := `INSERT INTO pile_groups (id, seq, name, pile_count, outer_diameter_mm, wall_thickness_mm, pile_length_m, paint_length_m, created_at, updated_at)
		VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM pile_groups), ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.Name,
		g.PileCount,
		g.OuterDiameter,
		g.WallThickness,
		g.PileLength,
		g.PaintLength,
		formatTime(g.CreatedAt),
		formatTime(g.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting pile group: %w", err)
	}
	return nil
}

func (r *SQLitePileGroupRepo) GetByID(ctx context.Context, id string) (*domain.PileGroup, error) {
	query := `SELECT ` + pileGroupColumns + ` FROM pile_groups WHERE id = ?`
	g, err := scanPileGroup(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *SQLitePileGroupRepo) List(ctx context.Context) ([]*domain.PileGroup, error) {
	query := `SELECT ` + pileGroupColumns + ` FROM pile_groups ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing pile groups: %w", err)
	}
	defer rows.Close()

	var groups []*domain.PileGroup
	for rows.Next() {
		g, err := scanPileGroup(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pile groups: %w", err)
	}
	return groups, nil
}

func (r *SQLitePileGroupRepo) Update(ctx context.Context, g *domain.PileGroup) (bool, error) {
	query := `UPDATE pile_groups SET name = ?, pile_count = ?, outer_diameter_mm = ?, wall_thickness_mm = ?,
		pile_length_m = ?, paint_length_m = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		g.Name,
		g.PileCount,
		g.OuterDiameter,
		g.WallThickness,
		g.PileLength,
		g.PaintLength,
		formatTime(g.UpdatedAt),
		g.ID,
	)
	if err != nil {
		return false, fmt.Errorf("updating pile group: %w", err)
	}
	return affected(res)
}

func (r *SQLitePileGroupRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pile_groups WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting pile group: %w", err)
	}
	return affected(res)
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading rows affected: %w", err)
	}
	return n > 0, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPileGroup(row rowScanner) (*domain.PileGroup, error) {
	var g domain.PileGroup
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&g.ID, &g.Name, &g.PileCount,
		&g.OuterDiameter, &g.WallThickness,
		&g.PileLength, &g.PaintLength,
		&createdAtStr, &updatedAtStr,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning pile group: %w", err)
	}

	if g.CreatedAt, err = parseTime("created_at", createdAtStr); err != nil {
		return nil, err
	}
	if g.UpdatedAt, err = parseTime("updated_at", updatedAtStr); err != nil {
		return nil, err
	}
	return &g, nil
}
