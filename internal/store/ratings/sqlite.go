package ratings

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

// Upsert inserts a rating. The first conflict target keeps re-imports of the
// same record idempotent; the second enforces one rating per device per entry
// when the incoming record carries a different id.
func (r *SQLiteRepository) Upsert(ctx context.Context, m *models.Rating) error {
	query := `INSERT INTO ratings (id, entry_id, device_id, rating, created_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET entry_id = excluded.entry_id,
				device_id = excluded.device_id,
				rating = excluded.rating,
				created_at = excluded.created_at
			ON CONFLICT(entry_id, device_id) DO UPDATE SET id = excluded.id,
				rating = excluded.rating,
				created_at = excluded.created_at
	`
	_, err := r.db.ExecContext(ctx, query, m.Id, m.EntryId, m.DeviceId, m.Rating, m.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to upsert rating: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.Rating, error) {
	return r.list(ctx, `SELECT id, entry_id, device_id, rating, created_at FROM ratings ORDER BY created_at, id`)
}

func (r *SQLiteRepository) ListByEntry(ctx context.Context, entryID string) ([]models.Rating, error) {
	return r.list(ctx, `SELECT id, entry_id, device_id, rating, created_at FROM ratings WHERE entry_id = ? ORDER BY created_at, id`, entryID)
}

func (r *SQLiteRepository) list(ctx context.Context, query string, args ...any) ([]models.Rating, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select ratings: %w", err)
	}
	defer rows.Close()

	var result []models.Rating
	for rows.Next() {
		var item models.Rating
		if err := rows.Scan(&item.Id, &item.EntryId, &item.DeviceId, &item.Rating, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
