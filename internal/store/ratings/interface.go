package ratings

import (
	"context"

	"github.com/dkuzmenko/wisdomvault/internal/models"
)

// Repository describes read/write operations for the ratings family.
type Repository interface {
	// Upsert inserts a rating or overwrites an existing one. Conflicts are
	// resolved both by id and by the one-rating-per-device rule: a second
	// rating for the same (entry_id, device_id) pair updates the existing
	// row instead of inserting. Idempotent.
	Upsert(ctx context.Context, r *models.Rating) error

	// List returns every rating, ordered by creation time.
	List(ctx context.Context) ([]models.Rating, error)

	// ListByEntry returns the ratings of one entry, one row per device.
	ListByEntry(ctx context.Context, entryID string) ([]models.Rating, error)
}
