package entries

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

// Upsert upserts an entry by id and replaces its attachment references.
func (r *SQLiteRepository) Upsert(ctx context.Context, e *models.Entry) error {
	query := `INSERT INTO entries (id, category_id, title, description, wisdom, tags, device_id, created_at, updated_at, view_count)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET category_id = excluded.category_id,
				title = excluded.title,
				description = excluded.description,
				wisdom = excluded.wisdom,
				tags = excluded.tags,
				device_id = excluded.device_id,
				created_at = excluded.created_at,
				updated_at = excluded.updated_at,
				view_count = excluded.view_count
	`
	_, err := r.db.ExecContext(ctx, query,
		e.Id, e.CategoryId, e.Title, e.Description, e.Wisdom, e.Tags, e.DeviceId,
		e.CreatedAt.UTC(), e.UpdatedAt.UTC(), e.ViewCount)
	if err != nil {
		return fmt.Errorf("failed to upsert entry: %w", err)
	}

	// Attachment references exist only as part of an entry write: the
	// incoming set replaces whatever was there.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM attachments WHERE entry_id = ?`, e.Id); err != nil {
		return fmt.Errorf("failed to clear attachments: %w", err)
	}
	for _, a := range e.Attachments {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO attachments (entry_id, file_name, file_path) VALUES (?, ?, ?)`,
			e.Id, a.FileName, a.FilePath)
		if err != nil {
			return fmt.Errorf("failed to insert attachment: %w", err)
		}
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.Entry, error) {
	query := `SELECT id, category_id, title, description, wisdom, tags, device_id, created_at, updated_at, view_count
			FROM entries ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	var result []models.Entry
	for rows.Next() {
		var item models.Entry
		if err := rows.Scan(&item.Id, &item.CategoryId, &item.Title, &item.Description,
			&item.Wisdom, &item.Tags, &item.DeviceId, &item.CreatedAt, &item.UpdatedAt, &item.ViewCount); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		atts, err := r.listAttachments(ctx, result[i].Id)
		if err != nil {
			return nil, err
		}
		result[i].Attachments = atts
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Entry, error) {
	query := `SELECT id, category_id, title, description, wisdom, tags, device_id, created_at, updated_at, view_count
			FROM entries WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	e := &models.Entry{}
	if err := row.Scan(&e.Id, &e.CategoryId, &e.Title, &e.Description,
		&e.Wisdom, &e.Tags, &e.DeviceId, &e.CreatedAt, &e.UpdatedAt, &e.ViewCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}

	atts, err := r.listAttachments(ctx, e.Id)
	if err != nil {
		return nil, err
	}
	e.Attachments = atts
	return e, nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
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

func (r *SQLiteRepository) IncrementViewCount(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE entries SET view_count = view_count + 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to increment view count: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) listAttachments(ctx context.Context, entryID string) ([]models.Attachment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT entry_id, file_name, file_path FROM attachments WHERE entry_id = ? ORDER BY file_path`, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to select attachments: %w", err)
	}
	defer rows.Close()

	var result []models.Attachment
	for rows.Next() {
		var a models.Attachment
		if err := rows.Scan(&a.EntryId, &a.FileName, &a.FilePath); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
