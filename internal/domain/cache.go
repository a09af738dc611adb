package domain

import (
	"context"
	"time"
)

// Cache defines the interface (port) for caching operations.
type Cache interface {
	// Ping checks the health of the cache service.
	Ping(ctx context.Context) error

	// HGetAll returns every field of the hash at key. A missing key yields
	// an empty map.
	HGetAll(ctx context.Context, key string) (map[string]string, error)

	// HSet sets field in the hash stored at key to value.
	HSet(ctx context.Context, key string, field string, value string) error

	// Expire sets an expiration time on key.
	Expire(ctx context.Context, key string, expiration time.Duration) error
}
