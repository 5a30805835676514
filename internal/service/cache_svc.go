package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Cache TTLs. Channel rows change rarely; leaderboards are recomputed on a
// short fuse so the dashboard stays close to live.
const (
	ChannelCacheTTL = 15 * time.Minute
	RankingCacheTTL = time.Minute
)

// CacheService provides a Redis cache-aside layer for channel lookups and
// ranking responses. OnHit/OnMiss are optional counters wired at startup.
type CacheService struct {
	rdb    *redis.Client
	OnHit  func()
	OnMiss func()
}

// NewCacheService creates a CacheService. If redisURL is empty or the
// connection fails, the returned service has a nil client and every
// operation becomes a no-op.
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Info().Msg("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn().Err(err).Str("url", redisURL).Msg("redis: invalid URL, caching disabled")
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis: connection failed, caching disabled")
		return &CacheService{}
	}

	log.Info().Msg("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client for health checks. May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// Get retrieves a cached value. Returns nil when not cached or disabled.
func (c *CacheService) Get(ctx context.Context, key string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		c.miss()
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.hit()
	return data, nil
}

// Set stores a JSON-encoded value under the key with the given TTL.
func (c *CacheService) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, ttl).Err()
}

// Invalidate removes a key from cache (called after channel upserts).
func (c *CacheService) Invalidate(ctx context.Context, key string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, key).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func (c *CacheService) hit() {
	if c.OnHit != nil {
		c.OnHit()
	}
}

func (c *CacheService) miss() {
	if c.OnMiss != nil {
		c.OnMiss()
	}
}

// ChannelKey is the cache key for a single channel lookup.
func ChannelKey(channelID string) string {
	return fmt.Sprintf("channel:%s", channelID)
}

// RankingKey is the cache key for one leaderboard variant.
func RankingKey(kind, period string, limit int) string {
	return fmt.Sprintf("rankings:%s:%s:%d", kind, period, limit)
}
