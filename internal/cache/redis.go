package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"encly/internal/config"
	"encly/internal/domain"
)

const keyPrefix = "link:"

type redisEntry struct {
	ID          uuid.UUID  `json:"id"`
	ShortCode   string     `json:"short_code"`
	OriginalURL string     `json:"original_url"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// RedisCache shares link records between instances. Redis failures degrade
// to cache misses.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
	hits   atomic.Uint64
	misses atomic.Uint64
}

func NewRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

func NewRedis(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, logger: logger}
}

func (c *RedisCache) Get(ctx context.Context, shortCode string) (*domain.Link, bool) {
	data, err := c.client.Get(ctx, keyPrefix+shortCode).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("redis get failed",
				slog.String("short_code", shortCode),
				slog.String("error", err.Error()))
		}
		c.misses.Add(1)
		return nil, false
	}

	var entry redisEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		c.logger.Warn("discarding malformed cache entry",
			slog.String("short_code", shortCode),
			slog.String("error", err.Error()))
		c.misses.Add(1)
		return nil, false
	}

	c.hits.Add(1)
	return &domain.Link{
		ID:          entry.ID,
		ShortCode:   entry.ShortCode,
		OriginalURL: entry.OriginalURL,
		CreatedAt:   entry.CreatedAt,
		ExpiresAt:   entry.ExpiresAt,
	}, true
}

func (c *RedisCache) Set(ctx context.Context, link *domain.Link) {
	data, err := json.Marshal(redisEntry{
		ID:          link.ID,
		ShortCode:   link.ShortCode,
		OriginalURL: link.OriginalURL,
		CreatedAt:   link.CreatedAt,
		ExpiresAt:   link.ExpiresAt,
	})
	if err != nil {
		c.logger.Warn("failed to encode cache entry", slog.String("error", err.Error()))
		return
	}
	if err := c.client.Set(ctx, keyPrefix+link.ShortCode, data, c.ttl).Err(); err != nil {
		c.logger.Warn("redis set failed",
			slog.String("short_code", link.ShortCode),
			slog.String("error", err.Error()))
	}
}

func (c *RedisCache) Delete(ctx context.Context, shortCode string) {
	if err := c.client.Del(ctx, keyPrefix+shortCode).Err(); err != nil {
		c.logger.Warn("redis del failed",
			slog.String("short_code", shortCode),
			slog.String("error", err.Error()))
	}
}

func (c *RedisCache) Close() {
	_ = c.client.Close()
}

func (c *RedisCache) Stats() (hits, misses uint64, ratio float64) {
	hits = c.hits.Load()
	misses = c.misses.Load()
	if total := hits + misses; total > 0 {
		ratio = float64(hits) / float64(total)
	}
	return
}
