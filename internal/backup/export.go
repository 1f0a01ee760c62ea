package backup

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dkuzmenko/wisdomvault/internal/common"
	"github.com/dkuzmenko/wisdomvault/internal/files"
	"github.com/dkuzmenko/wisdomvault/internal/logging"
	"github.com/dkuzmenko/wisdomvault/internal/store"
)

// Picker supplies archive locations from the surrounding shell (a file
// dialog, a CLI argument, a test double). Returning ok=false means the user
// backed out; the orchestrators report that as common.ErrCancelled.
type Picker interface {
	// ChooseDestination returns the path the export archive should be
	// written to.
	ChooseDestination(ctx context.Context) (path string, ok bool, err error)

	// ChooseSource returns the path of the archive to import.
	ChooseSource(ctx context.Context) (path string, ok bool, err error)
}

// Service is the export/import orchestrator pair over one store.
type Service struct {
	db     *sql.DB
	files  *files.Storage
	picker Picker
	log    logging.Logger

	// mu is the store-wide advisory lock: at most one export or import
	// runs at a time.
	mu sync.Mutex
}

func NewService(db *sql.DB, fs *files.Storage, picker Picker, log logging.Logger) *Service {
	return &Service{db: db, files: fs, picker: picker, log: log}
}

// Export snapshots all four record families (and, when includeFiles is set,
// the attachment store) into a fresh archive at a destination supplied by
// the picker. It returns the archive path. The store is never mutated and a
// failed export leaves no partial archive behind.
func (s *Service) Export(ctx context.Context, includeFiles bool) (string, error) {
	if !s.mu.TryLock() {
		return "", common.ErrBusy
	}
	defer s.mu.Unlock()

	dest, ok, err := s.picker.ChooseDestination(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrExportFailed, err)
	}
	if !ok {
		return "", common.ErrCancelled
	}

	doc, err := s.snapshot(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrExportFailed, err)
	}

	filesDir := ""
	if includeFiles {
		filesDir = s.files.Dir()
	}
	if err := writeArchive(dest, doc, filesDir); err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrExportFailed, err)
	}

	s.log.Info(ctx, "export finished", "dest", dest,
		"categories", len(doc.Categories), "entries", len(doc.Entries),
		"ratings", len(doc.Ratings), "comments", len(doc.Comments),
		"include_files", includeFiles)
	return dest, nil
}

// snapshot reads the four families in full. The reads are independent and
// run concurrently, but all of them finish before the codec starts writing.
func (s *Service) snapshot(ctx context.Context) (*Document, error) {
	repos := store.NewRepositories(s.db)
	doc := &Document{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		doc.Categories, err = repos.Categories.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		doc.Entries, err = repos.Entries.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		doc.Ratings, err = repos.Ratings.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		doc.Comments, err = repos.Comments.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return doc, nil
}
