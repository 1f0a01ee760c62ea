// Package cli implements the wisdomvault command-line interface.
package cli

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dkuzmenko/wisdomvault/internal/backup"
	"github.com/dkuzmenko/wisdomvault/internal/config"
	"github.com/dkuzmenko/wisdomvault/internal/files"
	"github.com/dkuzmenko/wisdomvault/internal/logging"
	"github.com/dkuzmenko/wisdomvault/internal/service"
	"github.com/dkuzmenko/wisdomvault/internal/store"
)

// App carries the wired application state. The store handle is threaded
// explicitly through commands instead of living in a package global.
type App struct {
	cfg     *config.Config
	log     logging.Logger
	db      *sql.DB
	repos   *store.Repositories
	files   *files.Storage
	entries *service.EntryService
	assets  *service.AssetService
}

// Execute builds the command tree and runs it.
func Execute() error {
	app := &App{}

	var cfgFile, dataDir, logLevel string

	rootCmd := &cobra.Command{
		Use:   "wisdomvault",
		Short: "Personal knowledge base with portable export/import",
		Long: `wisdomvault stores categorized notes with attachments, per-device
ratings, comments and user-defined asset records in a local SQLite
database, and exchanges the whole dataset between devices as a single
portable archive.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd, cfgFile, dataDir, logLevel)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.db != nil {
				_ = app.db.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "JSON config file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (database and attachments)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newCategoryCmd(app))
	rootCmd.AddCommand(newEntryCmd(app))
	rootCmd.AddCommand(newRateCmd(app))
	rootCmd.AddCommand(newCommentCmd(app))
	rootCmd.AddCommand(newAssetCmd(app))
	rootCmd.AddCommand(newExportCmd(app))
	rootCmd.AddCommand(newImportCmd(app))

	return rootCmd.Execute()
}

func (a *App) init(cmd *cobra.Command, cfgFile, dataDir, logLevel string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	a.cfg = cfg

	a.log = logging.NewDefault(parseLevel(cfg.LogLevel))

	ctx := cmd.Context()
	db, err := store.Open(ctx, cfg.DatabasePath())
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	a.db = db
	a.repos = store.NewRepositories(db)

	fs, err := files.NewStorage(cfg.FilesPath(), a.log)
	if err != nil {
		return fmt.Errorf("open attachment store: %w", err)
	}
	a.files = fs

	a.entries = service.NewEntryService(a.repos, a.files, a.log)
	a.assets = service.NewAssetService(a.repos)
	return nil
}

// backupService builds the export/import orchestrator over a picker.
func (a *App) backupService(p backup.Picker) *backup.Service {
	return backup.NewService(a.db, a.files, p, a.log)
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
