package categories

import (
	"context"

	"github.com/dkuzmenko/wisdomvault/internal/models"
)

// Repository describes read/write operations for the categories family.
type Repository interface {
	// Upsert inserts a category or, when the id already exists, overwrites
	// its display attributes. Idempotent by id.
	Upsert(ctx context.Context, c *models.Category) error

	// List returns every category, ordered by creation time.
	List(ctx context.Context) ([]models.Category, error)

	// GetByID returns one category or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Category, error)

	// DeleteByID removes a category. It fails while entries still reference it.
	DeleteByID(ctx context.Context, id string) error
}
