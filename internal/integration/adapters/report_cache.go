// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/time-tracker/backend/internal/application/adapter"
)

// reportCachePattern matches every key the cache writes.
const reportCachePattern = "report:*"

// redisReportCache implements the adapter.ReportCache interface using Redis.
type redisReportCache struct {
	client *redis.Client
}

// NewRedisReportCache creates a new Redis-backed report cache.
func NewRedisReportCache(client *redis.Client) adapter.ReportCache {
	return &redisReportCache{
		client: client,
	}
}

// Get retrieves a cached report by key. A miss returns nil without error.
func (c *redisReportCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return value, nil
}

// Set stores a report under the given key with a TTL.
func (c *redisReportCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Invalidate removes all cached reports.
func (c *redisReportCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, reportCachePattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
