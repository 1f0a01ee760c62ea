// Package service wires repositories and the attachment store into the
// application-level operations the CLI exposes.
package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/dkuzmenko/wisdomvault/internal/common"
	"github.com/dkuzmenko/wisdomvault/internal/files"
	"github.com/dkuzmenko/wisdomvault/internal/logging"
	"github.com/dkuzmenko/wisdomvault/internal/models"
	"github.com/dkuzmenko/wisdomvault/internal/store"
	"github.com/dkuzmenko/wisdomvault/internal/store/settings"
)

type EntryService struct {
	repos *store.Repositories
	files *files.Storage
	log   logging.Logger
}

func NewEntryService(repos *store.Repositories, fs *files.Storage, log logging.Logger) *EntryService {
	return &EntryService{repos: repos, files: fs, log: log}
}

// DeviceID returns this installation's stable device id, generating and
// persisting one on first use.
func (s *EntryService) DeviceID(ctx context.Context) (string, error) {
	v, err := s.repos.Settings.Get(ctx, settings.DeviceIDKey)
	if err != nil {
		return "", err
	}
	if len(v) > 0 {
		return string(v), nil
	}

	id := uuid.NewString()
	if err := s.repos.Settings.Set(ctx, settings.DeviceIDKey, []byte(id)); err != nil {
		return "", err
	}
	return id, nil
}

func (s *EntryService) Add(ctx context.Context, categoryID, title, description, wisdom, tags string) (*models.Entry, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrValidation)
	}
	if _, err := s.repos.Categories.GetByID(ctx, categoryID); err != nil {
		return nil, fmt.Errorf("category %s: %w", categoryID, err)
	}

	deviceID, err := s.DeviceID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	e := &models.Entry{
		Id:          uuid.NewString(),
		CategoryId:  categoryID,
		Title:       title,
		Description: description,
		Wisdom:      wisdom,
		Tags:        tags,
		DeviceId:    deviceID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repos.Entries.Upsert(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Attach stores the file at sourcePath in the attachment store and links it
// to the entry.
func (s *EntryService) Attach(ctx context.Context, entryID, sourcePath string) (*models.Entry, error) {
	e, err := s.repos.Entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	originalName := filepath.Base(sourcePath)
	storedName, err := s.files.Store(ctx, originalName, sourcePath)
	if err != nil {
		return nil, err
	}

	e.Attachments = append(e.Attachments, models.Attachment{
		EntryId:  e.Id,
		FileName: originalName,
		FilePath: storedName,
	})
	e.UpdatedAt = time.Now().UTC()
	if err := s.repos.Entries.Upsert(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Show returns an entry and bumps its view counter.
func (s *EntryService) Show(ctx context.Context, id string) (*models.Entry, error) {
	e, err := s.repos.Entries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repos.Entries.IncrementViewCount(ctx, id); err != nil {
		return nil, err
	}
	e.ViewCount++
	return e, nil
}

// Delete removes an entry with its dependent rows and then best-effort
// deletes the stored files. A file already missing does not abort the
// cascade; it is logged and skipped.
func (s *EntryService) Delete(ctx context.Context, id string) error {
	e, err := s.repos.Entries.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repos.Entries.DeleteByID(ctx, id); err != nil {
		return err
	}

	for _, a := range e.Attachments {
		if err := s.files.Delete(a.FilePath); err != nil {
			s.log.Warn(ctx, "could not delete attachment file", "path", a.FilePath, "error", err)
		}
	}
	return nil
}

// Rate records this device's rating for an entry, replacing an earlier one.
func (s *EntryService) Rate(ctx context.Context, entryID string, value int) (*models.Rating, error) {
	if value < 1 || value > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", common.ErrValidation)
	}
	if _, err := s.repos.Entries.GetByID(ctx, entryID); err != nil {
		return nil, err
	}

	deviceID, err := s.DeviceID(ctx)
	if err != nil {
		return nil, err
	}

	r := &models.Rating{
		Id:        uuid.NewString(),
		EntryId:   entryID,
		DeviceId:  deviceID,
		Rating:    value,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repos.Ratings.Upsert(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Comment appends a comment from this device to an entry.
func (s *EntryService) Comment(ctx context.Context, entryID, text string) (*models.Comment, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: comment text is required", common.ErrValidation)
	}
	if _, err := s.repos.Entries.GetByID(ctx, entryID); err != nil {
		return nil, err
	}

	deviceID, err := s.DeviceID(ctx)
	if err != nil {
		return nil, err
	}

	c := &models.Comment{
		Id:        uuid.NewString(),
		EntryId:   entryID,
		DeviceId:  deviceID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repos.Comments.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
