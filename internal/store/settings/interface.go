package settings

import "context"

// Repository is a small key/value store for installation-local state such as
// the device id. Values never travel through backup archives.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
