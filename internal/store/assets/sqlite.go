package assets

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

func (r *SQLiteRepository) UpsertType(ctx context.Context, t *models.AssetType) error {
	fields, err := marshalDefs(t.Fields)
	if err != nil {
		return err
	}
	query := `INSERT INTO asset_types (id, name, fields, created_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET name = excluded.name,
				fields = excluded.fields,
				created_at = excluded.created_at
	`
	if _, err := r.db.ExecContext(ctx, query, t.Id, t.Name, fields, t.CreatedAt.UTC()); err != nil {
		return fmt.Errorf("failed to upsert asset type: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ListTypes(ctx context.Context) ([]models.AssetType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, fields, created_at FROM asset_types ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select asset types: %w", err)
	}
	defer rows.Close()

	var result []models.AssetType
	for rows.Next() {
		var item models.AssetType
		var fields []byte
		if err := rows.Scan(&item.Id, &item.Name, &fields, &item.CreatedAt); err != nil {
			return nil, err
		}
		if item.Fields, err = unmarshalDefs(fields); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetTypeByID(ctx context.Context, id string) (*models.AssetType, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, fields, created_at FROM asset_types WHERE id = ?`, id)

	t := &models.AssetType{}
	var fields []byte
	if err := row.Scan(&t.Id, &t.Name, &fields, &t.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	var err error
	if t.Fields, err = unmarshalDefs(fields); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *SQLiteRepository) Upsert(ctx context.Context, a *models.Asset) error {
	for _, v := range a.Fields {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("%w: %v", common.ErrValidation, err)
		}
	}
	fields, err := models.MarshalFields(a.Fields)
	if err != nil {
		return fmt.Errorf("encode asset fields: %w", err)
	}
	query := `INSERT INTO assets (id, type_id, name, fields, created_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET type_id = excluded.type_id,
				name = excluded.name,
				fields = excluded.fields,
				created_at = excluded.created_at
	`
	if _, err := r.db.ExecContext(ctx, query, a.Id, a.TypeId, a.Name, fields, a.CreatedAt.UTC()); err != nil {
		return fmt.Errorf("failed to upsert asset: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.Asset, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, type_id, name, fields, created_at FROM assets ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select assets: %w", err)
	}
	defer rows.Close()

	var result []models.Asset
	for rows.Next() {
		var item models.Asset
		var fields []byte
		if err := rows.Scan(&item.Id, &item.TypeId, &item.Name, &fields, &item.CreatedAt); err != nil {
			return nil, err
		}
		if item.Fields, err = models.UnmarshalFields(fields); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Asset, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, type_id, name, fields, created_at FROM assets WHERE id = ?`, id)

	a := &models.Asset{}
	var fields []byte
	if err := row.Scan(&a.Id, &a.TypeId, &a.Name, &fields, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	var err error
	if a.Fields, err = models.UnmarshalFields(fields); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM assets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
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
