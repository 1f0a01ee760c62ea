package comments

import (
	"context"
	"fmt"

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

func (r *SQLiteRepository) Upsert(ctx context.Context, c *models.Comment) error {
	query := `INSERT INTO comments (id, entry_id, device_id, text, created_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET entry_id = excluded.entry_id,
				device_id = excluded.device_id,
				text = excluded.text,
				created_at = excluded.created_at
	`
	_, err := r.db.ExecContext(ctx, query, c.Id, c.EntryId, c.DeviceId, c.Text, c.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to upsert comment: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.Comment, error) {
	return r.list(ctx, `SELECT id, entry_id, device_id, text, created_at FROM comments ORDER BY created_at, id`)
}

func (r *SQLiteRepository) ListByEntry(ctx context.Context, entryID string) ([]models.Comment, error) {
	return r.list(ctx, `SELECT id, entry_id, device_id, text, created_at FROM comments WHERE entry_id = ? ORDER BY created_at, id`, entryID)
}

func (r *SQLiteRepository) list(ctx context.Context, query string, args ...any) ([]models.Comment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select comments: %w", err)
	}
	defer rows.Close()

	var result []models.Comment
	for rows.Next() {
		var item models.Comment
		if err := rows.Scan(&item.Id, &item.EntryId, &item.DeviceId, &item.Text, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
