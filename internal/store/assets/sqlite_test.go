package assets

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkuzmenko/wisdomvault/internal/common"
	"github.com/dkuzmenko/wisdomvault/internal/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE asset_types (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  fields TEXT NOT NULL,
  created_at TIMESTAMP NOT NULL
);
CREATE TABLE assets (
  id TEXT PRIMARY KEY,
  type_id TEXT NOT NULL,
  name TEXT NOT NULL,
  fields TEXT NOT NULL,
  created_at TIMESTAMP NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestAssetType_FieldOrderSurvivesRoundTrip(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	typ := &models.AssetType{
		Id:   "t1",
		Name: "camera",
		Fields: []models.FieldDef{
			{Name: "brand", Type: models.FieldTypeText},
			{Name: "price", Type: models.FieldTypeNumber},
			{Name: "bought", Type: models.FieldTypeDate},
			{Name: "insured", Type: models.FieldTypeBool},
		},
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, r.UpsertType(ctx, typ))

	got, err := r.GetTypeByID(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, got.Fields, 4)
	assert.Equal(t, typ.Fields, got.Fields, "declared order and types must survive")
}

func TestAsset_RoundTripAndTypedValidation(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	a := &models.Asset{
		Id:     "a1",
		TypeId: "t1",
		Name:   "X100",
		Fields: []models.FieldValue{
			{Name: "brand", Type: models.FieldTypeText, Value: "Fuji"},
			{Name: "price", Type: models.FieldTypeNumber, Value: "1299.99"},
		},
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, r.Upsert(ctx, a))

	got, err := r.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, a.Fields, got.Fields)

	bad := &models.Asset{
		Id: "a2", TypeId: "t1", Name: "bad",
		Fields:    []models.FieldValue{{Name: "price", Type: models.FieldTypeNumber, Value: "cheap"}},
		CreatedAt: time.Now().UTC(),
	}
	require.ErrorIs(t, r.Upsert(ctx, bad), common.ErrValidation)
}

func TestAsset_DeleteByID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	a := &models.Asset{Id: "a1", TypeId: "t1", Name: "n", CreatedAt: time.Now().UTC()}
	require.NoError(t, r.Upsert(ctx, a))
	require.NoError(t, r.DeleteByID(ctx, "a1"))
	require.ErrorIs(t, r.DeleteByID(ctx, "a1"), common.ErrNotFound)
}
