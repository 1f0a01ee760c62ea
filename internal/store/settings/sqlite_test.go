package settings

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE settings (key TEXT PRIMARY KEY, value BLOB);`)
	require.NoError(t, err)
	return db
}

func TestSetGetDelete(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	got, err := r.Get(ctx, DeviceIDKey)
	require.NoError(t, err)
	assert.Nil(t, got, "missing key reads as nil")

	require.NoError(t, r.Set(ctx, DeviceIDKey, []byte("dev1")))
	require.NoError(t, r.Set(ctx, DeviceIDKey, []byte("dev2")))

	got, err = r.Get(ctx, DeviceIDKey)
	require.NoError(t, err)
	assert.Equal(t, []byte("dev2"), got)

	require.NoError(t, r.Delete(ctx, DeviceIDKey))
	got, err = r.Get(ctx, DeviceIDKey)
	require.NoError(t, err)
	assert.Nil(t, got)
}
