package categories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dkuzmenko/wisdomvault/internal/common"
	"github.com/dkuzmenko/wisdomvault/internal/dbx"
	"github.com/dkuzmenko/wisdomvault/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Upsert inserts a category by id. On conflict, display attributes are
// overwritten with the incoming values.
func (r *SQLiteRepository) Upsert(ctx context.Context, c *models.Category) error {
	query := `INSERT INTO categories (id, name, icon, color, created_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET name = excluded.name,
				icon = excluded.icon,
				color = excluded.color,
				created_at = excluded.created_at
	`
	_, err := r.db.ExecContext(ctx, query, c.Id, c.Name, c.Icon, c.Color, c.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to upsert category: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.Category, error) {
	query := `SELECT id, name, icon, color, created_at FROM categories ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select categories: %w", err)
	}
	defer rows.Close()

	var result []models.Category
	for rows.Next() {
		var item models.Category
		if err := rows.Scan(&item.Id, &item.Name, &item.Icon, &item.Color, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	query := `SELECT id, name, icon, color, created_at FROM categories WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	c := &models.Category{}
	if err := row.Scan(&c.Id, &c.Name, &c.Icon, &c.Color, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return c, nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrNotFound
	}
	return nil
}
