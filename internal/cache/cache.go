package cache

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto"

	"encly/internal/domain"
)

// LinkCache is an in-process cache of link records. Only the fields that never
// change after creation are kept.
type LinkCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func New(maxSizePow2 int, ttl time.Duration) (*LinkCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/100) // ~100 bytes per entry estimate

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &LinkCache{cache: cache, ttl: ttl}, nil
}

func (c *LinkCache) Get(_ context.Context, shortCode string) (*domain.Link, bool) {
	val, found := c.cache.Get(shortCode)
	if !found {
		return nil, false
	}
	link := val.(domain.Link)
	return &link, true
}

func (c *LinkCache) Set(_ context.Context, link *domain.Link) {
	entry := immutable(link)
	cost := int64(len(entry.ShortCode) + len(entry.OriginalURL) + 64)
	c.cache.SetWithTTL(entry.ShortCode, entry, cost, c.ttl)
}

func (c *LinkCache) Delete(_ context.Context, shortCode string) {
	c.cache.Del(shortCode)
}

// Wait blocks until buffered writes are applied.
func (c *LinkCache) Wait() {
	c.cache.Wait()
}

func (c *LinkCache) Close() {
	c.cache.Close()
}

func (c *LinkCache) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}

func immutable(link *domain.Link) domain.Link {
	entry := domain.Link{
		ID:          link.ID,
		ShortCode:   link.ShortCode,
		OriginalURL: link.OriginalURL,
		CreatedAt:   link.CreatedAt,
	}
	if link.ExpiresAt != nil {
		expiresAt := *link.ExpiresAt
		entry.ExpiresAt = &expiresAt
	}
	return entry
}
