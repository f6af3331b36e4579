package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// CatalogRepository provides read access to the product catalog
type CatalogRepository interface {
	All(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int) (*Product, error)
}

// Sleeper waits for a duration or until the context is done.
// Production code uses wall-clock time; tests substitute an instant sleeper.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}
