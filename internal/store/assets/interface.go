package assets

import (
	"context"

	"github.com/dkuzmenko/wisdomvault/internal/models"
)

// Repository describes operations over user-defined asset types and their
// records. Field lists are stored as ordered JSON so round-trips preserve
// both field order and declared types.
type Repository interface {
	UpsertType(ctx context.Context, t *models.AssetType) error
	ListTypes(ctx context.Context) ([]models.AssetType, error)
	GetTypeByID(ctx context.Context, id string) (*models.AssetType, error)

	Upsert(ctx context.Context, a *models.Asset) error
	List(ctx context.Context) ([]models.Asset, error)
	GetByID(ctx context.Context, id string) (*models.Asset, error)
	DeleteByID(ctx context.Context, id string) error
}
