package ratings

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
CREATE TABLE ratings (
  id TEXT PRIMARY KEY,
  entry_id TEXT NOT NULL,
  device_id TEXT NOT NULL,
  rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
  created_at TIMESTAMP NOT NULL,
  UNIQUE (entry_id, device_id)
);
`)
	require.NoError(t, err)
	return db
}

func testRating(id, entry, device string, value int) *models.Rating {
	return &models.Rating{
		Id:        id,
		EntryId:   entry,
		DeviceId:  device,
		Rating:    value,
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestUpsert_IdempotentById(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, testRating("r1", "e1", "dev1", 4)))
	require.NoError(t, r.Upsert(ctx, testRating("r1", "e1", "dev1", 4)))

	got, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].Rating)
}

func TestUpsert_OneRatingPerDevice(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, testRating("r1", "e1", "dev1", 2)))

	// different id, same (entry, device): the existing row is updated
	require.NoError(t, r.Upsert(ctx, testRating("r2", "e1", "dev1", 5)))

	got, err := r.ListByEntry(ctx, "e1")
	require.NoError(t, err)
	require.Len(t, got, 1, "one row per device")
	assert.Equal(t, 5, got[0].Rating)
	assert.Equal(t, "r2", got[0].Id)
}

func TestUpsert_DistinctDevices(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, testRating("r1", "e1", "dev1", 3)))
	require.NoError(t, r.Upsert(ctx, testRating("r2", "e1", "dev2", 4)))

	got, err := r.ListByEntry(ctx, "e1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestUpsert_RejectsOutOfRange(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	require.Error(t, r.Upsert(context.Background(), testRating("r1", "e1", "dev1", 6)))
}
