package adapter

import (
	"context"
	"time"
)

// Cache stores JSON-serialisable values by key.
type Cache interface {
	// Get decodes the cached value into dest and reports whether it was present.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error
}
