package categories

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
CREATE TABLE categories (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  icon TEXT NOT NULL DEFAULT '',
  color TEXT NOT NULL DEFAULT '',
  created_at TIMESTAMP NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestUpsert_InsertAndOverwrite(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	c := &models.Category{Id: "c1", Name: "books", Icon: "book", Color: "#aabbcc", CreatedAt: created}
	require.NoError(t, r.Upsert(ctx, c))

	// same id, new display attributes: overwrite, no duplicate
	c2 := &models.Category{Id: "c1", Name: "library", Icon: "shelf", Color: "#001122", CreatedAt: created}
	require.NoError(t, r.Upsert(ctx, c2))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM categories`).Scan(&n))
	assert.Equal(t, 1, n)

	got, err := r.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "library", got.Name)
	assert.Equal(t, "shelf", got.Icon)
	assert.Equal(t, "#001122", got.Color)
	assert.True(t, got.CreatedAt.Equal(created))
}

func TestList_OrderedByCreation(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, r.Upsert(ctx, &models.Category{Id: "b", Name: "second", CreatedAt: newer}))
	require.NoError(t, r.Upsert(ctx, &models.Category{Id: "a", Name: "first", CreatedAt: older}))

	got, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Name)
	assert.Equal(t, "second", got[1].Name)
}

func TestGetByID_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, err := r.GetByID(context.Background(), "nope")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteByID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, &models.Category{Id: "c1", Name: "x", CreatedAt: time.Now().UTC()}))
	require.NoError(t, r.DeleteByID(ctx, "c1"))
	require.ErrorIs(t, r.DeleteByID(ctx, "c1"), common.ErrNotFound)
}
