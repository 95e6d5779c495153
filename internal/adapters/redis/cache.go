package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/boardgamehub/boardgame-ui/internal/core"
	"github.com/redis/go-redis/v9"
)

const defaultCachePrefix = "bgcache:"

// Cache implements core.CacheRepository using Redis strings.
type Cache struct {
	client redis.UniversalClient
	prefix string
}

var _ core.CacheRepository = (*Cache)(nil)

// NewCache creates a Redis cache. An empty prefix defaults to "bgcache:".
func NewCache(client redis.UniversalClient, prefix string) *Cache {
	if prefix == "" {
		prefix = defaultCachePrefix
	}
	return &Cache{client: client, prefix: prefix}
}

// Set stores a value in Redis with the given key and TTL.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Get retrieves a value from Redis by key.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}

	result, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return result, nil
}

// Delete removes a key from Redis.
func (c *Cache) Delete(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.New("key cannot be empty")
	}

	result, err := c.client.Del(ctx, c.prefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("redis del: %w", err)
	}
	return result > 0, nil
}

// Health checks the health of the Redis connection.
func (c *Cache) Health(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
