package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/spendtrack/backend/internal/application/adapter"
)

// memoryCache is the in-process fallback used when no Redis URL is configured.
// Values are stored encoded so callers never share memory with the cache.
type memoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates an in-process cache.
func NewMemoryCache(defaultTTL time.Duration) adapter.Cache {
	return &memoryCache{
		store: gocache.New(defaultTTL, 2*defaultTTL),
	}
}

func (c *memoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	value, ok := c.store.Get(key)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(value.([]byte), dest); err != nil {
		return false, fmt.Errorf("failed to decode cached %s: %w", key, err)
	}
	return true, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	c.store.Set(key, raw, ttl)
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		c.store.Delete(k)
	}
	return nil
}
