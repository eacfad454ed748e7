// Package cache implements the calculation result cache on Redis.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/smart-paisa/backend/internal/application/adapter"
)

// redisCache implements adapter.CalculationCache over a Redis client.
type redisCache struct {
	client *redis.Client
}

// NewRedisCache creates a calculation cache backed by the given Redis client.
func NewRedisCache(client *redis.Client) adapter.CalculationCache {
	return &redisCache{client: client}
}

// Get retrieves a cached value, returning adapter.ErrCacheMiss when the key
// is absent.
func (c *redisCache) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, adapter.ErrCacheMiss
		}
		return nil, err
	}
	return raw, nil
}

// Set stores a value under the key with the given TTL.
func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}
