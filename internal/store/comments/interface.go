package comments

import (
	"context"

	"github.com/dkuzmenko/wisdomvault/internal/models"
)

// Repository describes read/write operations for the comments family.
// Comments are append-only; upsert-by-id exists so archive merges stay
// idempotent.
type Repository interface {
	Upsert(ctx context.Context, c *models.Comment) error
	List(ctx context.Context) ([]models.Comment, error)
	ListByEntry(ctx context.Context, entryID string) ([]models.Comment, error)
}
