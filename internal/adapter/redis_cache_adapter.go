package adapter

import (
	"context"
	"errors"
	"time"

	"interview-prep/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores evaluator results in Redis hashes.
type RedisCache struct {
	client    *redis.Client
	opTimeout time.Duration
}

// NewRedisCache wraps a connected client. Each operation is bounded by
// opTimeout when it is positive.
func NewRedisCache(client *redis.Client, opTimeout time.Duration) *RedisCache {
	return &RedisCache{client: client, opTimeout: opTimeout}
}

var _ domain.Cache = (*RedisCache)(nil)

func (r *RedisCache) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.opTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.opTimeout)
}

func (r *RedisCache) Ping(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	val, err := r.client.HGetAll(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (r *RedisCache) HSet(ctx context.Context, key string, field string, value string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.client.HSet(ctx, key, field, value).Err()
}

func (r *RedisCache) Expire(ctx context.Context, key string, expiration time.Duration) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.client.Expire(ctx, key, expiration).Err()
}
