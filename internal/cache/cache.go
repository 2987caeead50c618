package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a small JSON-over-redis cache used for public job listings.
// A nil Cache is valid and behaves as a permanent miss, so callers can
// run without redis.
type Cache struct {
	client *redis.Client
}

// New wraps an existing redis client.
func New(client *redis.Client) *Cache {
	if client == nil {
		return nil
	}
	return &Cache{client: client}
}

// Get unmarshals the cached value into result, reporting whether the key
// was present.
func (c *Cache) Get(ctx context.Context, key string, result any) (bool, error) {
	if c == nil || c.client == nil {
		return false, nil
	}
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), result); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores value as JSON with the given TTL.
func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

// InvalidatePrefix drops all keys under the prefix.
func (c *Cache) InvalidatePrefix(ctx context.Context, prefix string) error {
	if c == nil || c.client == nil {
		return nil
	}
	iter := c.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
