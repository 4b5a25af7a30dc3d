package cache

import (
	"context"
	"time"
)

// interface for basic cache operations.
type CacheOperations interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, key string) error
}

// interface for generation-checked cache fills.
type ListingOperations interface {
	Generation(ctx context.Context, genKey string) (string, error)
	SetIfGeneration(ctx context.Context, key, genKey, gen string, value interface{}, expiration time.Duration) (bool, error)
	SetListing(ctx context.Context, key, genKey, gen string, value interface{}, propertyIDs []string, expiration time.Duration) (bool, error)
	InvalidateKey(ctx context.Context, key, genKey string) error
}

// interface for property-specific cache operations.
type PropertyOperations interface {
	InvalidatePropertyCacheKeys(ctx context.Context, propertyID string) error
}

// interface for distributed locks.
type LockOperations interface {
	AcquireLock(ctx context.Context, key, token string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key, token string) error
}
