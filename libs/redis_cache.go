package libs

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisListingCache stores encoded product listings in Redis with a TTL.
type RedisListingCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisListingCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisListingCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisListingCache{client: client, ttl: ttl, logger: logger.Named("listing_cache")}
}

func (c *RedisListingCache) Get(ctx context.Context, key string) ([]byte, bool) {
	cached, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return cached, true
}

func (c *RedisListingCache) Set(ctx context.Context, key string, value []byte) {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}
