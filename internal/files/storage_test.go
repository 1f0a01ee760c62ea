package files

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkuzmenko/wisdomvault/internal/common"
	"github.com/dkuzmenko/wisdomvault/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := NewStorage(filepath.Join(t.TempDir(), "files"), testLogger())
	require.NoError(t, err)
	return s
}

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o660))
	return path
}

func TestStore_NameCollision(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	first, err := s.Store(ctx, "report.pdf", writeSource(t, "report.pdf", "first"))
	require.NoError(t, err)
	second, err := s.Store(ctx, "report.pdf", writeSource(t, "report.pdf", "second"))
	require.NoError(t, err)

	assert.Equal(t, "report.pdf", first)
	assert.Equal(t, "report-1.pdf", second)

	b1, err := os.ReadFile(s.Resolve(first))
	require.NoError(t, err)
	b2, err := os.ReadFile(s.Resolve(second))
	require.NoError(t, err)
	assert.Equal(t, "first", string(b1))
	assert.Equal(t, "second", string(b2))

	third, err := s.Store(ctx, "report.pdf", writeSource(t, "report.pdf", "third"))
	require.NoError(t, err)
	assert.Equal(t, "report-2.pdf", third)
}

func TestStore_UnreadableSourceCreatesPlaceholder(t *testing.T) {
	s := setupStorage(t)

	name, err := s.Store(context.Background(), "notes.txt", filepath.Join(t.TempDir(), "missing.txt"))
	require.NoError(t, err, "unreadable source must not fail the store")

	fi, err := os.Stat(s.Resolve(name))
	require.NoError(t, err)
	assert.Equal(t, int64(0), fi.Size(), "placeholder must be empty")
}

func TestStore_StripsDirectoryComponents(t *testing.T) {
	s := setupStorage(t)

	name, err := s.Store(context.Background(), "../../etc/passwd.txt", writeSource(t, "x.txt", "x"))
	require.NoError(t, err)
	assert.Equal(t, "passwd.txt", name)
}

func TestResolve_DoesNotStat(t *testing.T) {
	s := setupStorage(t)
	got := s.Resolve("anything.bin")
	assert.Equal(t, filepath.Join(s.Dir(), "anything.bin"), got)
}

func TestOpen_NotFound(t *testing.T) {
	s := setupStorage(t)
	_, err := s.Open("missing.bin")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	name, err := s.Store(ctx, "a.txt", writeSource(t, "a.txt", "a"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(name))
	_, err = os.Stat(s.Resolve(name))
	require.True(t, os.IsNotExist(err))

	require.ErrorIs(t, s.Delete(name), common.ErrNotFound)
}

func TestImportDir_MergesByName(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	// local file that must keep its content
	_, err := s.Store(ctx, "keep.txt", writeSource(t, "keep.txt", "local"))
	require.NoError(t, err)

	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "keep.txt"), []byte("incoming"), 0o660))
	require.NoError(t, os.WriteFile(filepath.Join(src, "new.txt"), []byte("fresh"), 0o660))

	copied, err := s.ImportDir(ctx, src)
	require.NoError(t, err)
	assert.Equal(t, []string{"new.txt"}, copied)

	b, err := os.ReadFile(s.Resolve("keep.txt"))
	require.NoError(t, err)
	assert.Equal(t, "local", string(b), "existing names stay untouched")

	b, err = os.ReadFile(s.Resolve("new.txt"))
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(b))
}
