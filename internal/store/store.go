// Package store opens the local SQLite database, applies migrations and
// wires the per-family repositories.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dkuzmenko/wisdomvault/internal/dbx"
	"github.com/dkuzmenko/wisdomvault/internal/store/assets"
	"github.com/dkuzmenko/wisdomvault/internal/store/categories"
	"github.com/dkuzmenko/wisdomvault/internal/store/comments"
	"github.com/dkuzmenko/wisdomvault/internal/store/entries"
	"github.com/dkuzmenko/wisdomvault/internal/store/migrations"
	"github.com/dkuzmenko/wisdomvault/internal/store/ratings"
	"github.com/dkuzmenko/wisdomvault/internal/store/settings"
)

// Repositories bundles the typed accessors for every record family, all bound
// to the same handle. Binding to a *sql.Tx scopes the whole set to one
// transaction, which is how the import orchestrator applies an archive
// atomically.
type Repositories struct {
	Categories categories.Repository
	Entries    entries.Repository
	Ratings    ratings.Repository
	Comments   comments.Repository
	Assets     assets.Repository
	Settings   settings.Repository
}

// NewRepositories binds all repositories to db (either *sql.DB or *sql.Tx).
func NewRepositories(db dbx.DBTX) *Repositories {
	return &Repositories{
		Categories: categories.NewSQLiteRepository(db),
		Entries:    entries.NewSQLiteRepository(db),
		Ratings:    ratings.NewSQLiteRepository(db),
		Comments:   comments.NewSQLiteRepository(db),
		Assets:     assets.NewSQLiteRepository(db),
		Settings:   settings.NewSQLiteRepository(db),
	}
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if necessary) the SQLite database at dsn with foreign
// keys enforced and migrations applied.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", "file:"+dsn+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return db, nil
}
