package entries

import (
	"context"

	"github.com/dkuzmenko/wisdomvault/internal/models"
)

// Repository describes read/write operations for the entries family,
// including the entry's attachment references.
type Repository interface {
	// Upsert inserts an entry or overwrites all fields of an existing one
	// by id, replacing its attachment-reference set with e.Attachments.
	// Idempotent by id.
	Upsert(ctx context.Context, e *models.Entry) error

	// List returns every entry with attachments loaded, ordered by creation
	// time.
	List(ctx context.Context) ([]models.Entry, error)

	// GetByID returns one entry with attachments or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Entry, error)

	// DeleteByID removes an entry; attachment references cascade at the
	// schema level. Deleting stored file bytes is the caller's concern.
	DeleteByID(ctx context.Context, id string) error

	// IncrementViewCount bumps the entry's view counter.
	IncrementViewCount(ctx context.Context, id string) error
}
