package backup

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkuzmenko/wisdomvault/internal/common"
	"github.com/dkuzmenko/wisdomvault/internal/dbx"
	"github.com/dkuzmenko/wisdomvault/internal/store"
)

// Summary reports what an import applied.
type Summary struct {
	Records     int
	Attachments int
}

// Import merges the archive chosen by the picker into the store. The whole
// merge — all four families plus the attachment copy — is one unit of work:
// any failure rolls back every relational change and removes the files
// copied so far, so no partial import is ever observable. Re-importing the
// same archive is a no-op.
func (s *Service) Import(ctx context.Context) (*Summary, error) {
	if !s.mu.TryLock() {
		return nil, common.ErrBusy
	}
	defer s.mu.Unlock()

	src, ok, err := s.picker.ChooseSource(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrImportFailed, err)
	}
	if !ok {
		return nil, common.ErrCancelled
	}

	doc, extractedFiles, cleanup, err := readArchive(src)
	if err != nil {
		if errors.Is(err, common.ErrInvalidArchive) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", common.ErrImportFailed, err)
	}
	defer cleanup()

	sum := &Summary{}
	var copied []string
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.applyDocument(ctx, tx, doc, sum); err != nil {
			return err
		}
		// Attachment copy runs before commit so a copy failure still rolls
		// the relational changes back.
		if extractedFiles != "" {
			copied, err = s.files.ImportDir(ctx, extractedFiles)
			if err != nil {
				return err
			}
			sum.Attachments = len(copied)
		}
		return nil
	})
	if err != nil {
		for _, name := range copied {
			_ = s.files.Delete(name)
		}
		return nil, fmt.Errorf("%w: %w", common.ErrImportFailed, err)
	}

	s.log.Info(ctx, "import finished", "src", src,
		"records", sum.Records, "attachments", sum.Attachments)
	return sum, nil
}

// applyDocument merges all incoming records inside one transaction. Families
// go in dependency order — categories, entries, ratings, comments — so a
// reference to a record arriving in the same archive is already satisfied
// when the referencing row lands. Identity is the record id: unknown ids
// insert, known ids are overwritten wholesale (replace-wins); ratings
// additionally collapse onto the existing (entry, device) row.
func (s *Service) applyDocument(ctx context.Context, tx dbx.DBTX, doc *Document, sum *Summary) error {
	repos := store.NewRepositories(tx)

	for i := range doc.Categories {
		if err := repos.Categories.Upsert(ctx, &doc.Categories[i]); err != nil {
			return err
		}
		sum.Records++
	}
	for i := range doc.Entries {
		if err := repos.Entries.Upsert(ctx, &doc.Entries[i]); err != nil {
			return err
		}
		sum.Records++
	}
	for i := range doc.Ratings {
		if err := repos.Ratings.Upsert(ctx, &doc.Ratings[i]); err != nil {
			return err
		}
		sum.Records++
	}
	for i := range doc.Comments {
		if err := repos.Comments.Upsert(ctx, &doc.Comments[i]); err != nil {
			return err
		}
		sum.Records++
	}
	return nil
}
