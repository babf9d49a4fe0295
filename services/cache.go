package services

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ContextCache is the cache collaborator for eligibility contexts. Any failure it
// returns is recoverable — callers log and fall back to the database.
type ContextCache interface {
	// Get returns the cached value for key, or "" when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	// SetEx stores value under key with an expiry.
	SetEx(ctx context.Context, key, value string, ttl time.Duration) error
}

// RedisContextCache backs ContextCache with a shared Redis client.
type RedisContextCache struct {
	Client *redis.Client
}

func NewRedisContextCache(client *redis.Client) *RedisContextCache {
	return &RedisContextCache{Client: client}
}

func (c *RedisContextCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (c *RedisContextCache) SetEx(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.Client.Set(ctx, key, value, ttl).Err()
}
