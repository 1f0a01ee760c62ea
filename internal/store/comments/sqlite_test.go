package comments

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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
CREATE TABLE comments (
  id TEXT PRIMARY KEY,
  entry_id TEXT NOT NULL,
  device_id TEXT NOT NULL,
  text TEXT NOT NULL,
  created_at TIMESTAMP NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestUpsert_AppendsAndStaysIdempotent(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	c1 := &models.Comment{Id: "c1", EntryId: "e1", DeviceId: "dev1", Text: "useful", CreatedAt: created}
	c2 := &models.Comment{Id: "c2", EntryId: "e1", DeviceId: "dev1", Text: "very", CreatedAt: created.Add(time.Minute)}

	require.NoError(t, r.Upsert(ctx, c1))
	require.NoError(t, r.Upsert(ctx, c2))
	// same id again: no duplicate
	require.NoError(t, r.Upsert(ctx, c1))

	got, err := r.ListByEntry(ctx, "e1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "useful", got[0].Text)
	assert.Equal(t, "very", got[1].Text)
}

func TestList_AllEntries(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, r.Upsert(ctx, &models.Comment{Id: "c1", EntryId: "e1", DeviceId: "d", Text: "a", CreatedAt: created}))
	require.NoError(t, r.Upsert(ctx, &models.Comment{Id: "c2", EntryId: "e2", DeviceId: "d", Text: "b", CreatedAt: created}))

	got, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
