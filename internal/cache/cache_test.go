package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encly/internal/cache"
	"encly/internal/domain"
)

func newLink(code, url string) *domain.Link {
	expiresAt := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	lastAccessed := time.Date(2029, 6, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Link{
		ID:           uuid.New(),
		ShortCode:    code,
		OriginalURL:  url,
		CreatedAt:    time.Date(2029, 1, 1, 0, 0, 0, 0, time.UTC),
		ExpiresAt:    &expiresAt,
		ClickCount:   42,
		LastAccessed: &lastAccessed,
	}
}

func TestNew_ValidSize(t *testing.T) {
	c, err := cache.New(10, time.Hour) // 2^10 = 1KB
	require.NoError(t, err)
	require.NotNil(t, c)
	defer c.Close()
}

func TestNew_ZeroSize(t *testing.T) {
	c, err := cache.New(0, 0) // 2^0 = 1 byte (min)
	require.NoError(t, err)
	require.NotNil(t, c)
	defer c.Close()
}

func TestGet_MissingKey(t *testing.T) {
	c, err := cache.New(10, time.Hour)
	require.NoError(t, err)
	defer c.Close()

	val, found := c.Get(context.Background(), "nonexistent")
	assert.False(t, found)
	assert.Nil(t, val)
}

func TestSetThenGet_DropsCounters(t *testing.T) {
	c, err := cache.New(20, time.Hour) // 2^20 = 1MB
	require.NoError(t, err)
	defer c.Close()
	ctx := context.Background()

	link := newLink("abc123", "https://example.com/very/long/path")
	c.Set(ctx, link)
	c.Wait()

	got, found := c.Get(ctx, "abc123")
	require.True(t, found)
	assert.Equal(t, link.ID, got.ID)
	assert.Equal(t, link.OriginalURL, got.OriginalURL)
	assert.Equal(t, *link.ExpiresAt, *got.ExpiresAt)
	assert.Equal(t, int64(0), got.ClickCount)
	assert.Nil(t, got.LastAccessed)
}

func TestGet_ReturnsCopy(t *testing.T) {
	c, err := cache.New(20, time.Hour)
	require.NoError(t, err)
	defer c.Close()
	ctx := context.Background()

	c.Set(ctx, newLink("abc123", "https://example.com"))
	c.Wait()

	first, found := c.Get(ctx, "abc123")
	require.True(t, found)
	first.ClickCount = 100
	first.OriginalURL = "https://mutated.example"

	second, found := c.Get(ctx, "abc123")
	require.True(t, found)
	assert.Equal(t, int64(0), second.ClickCount)
	assert.Equal(t, "https://example.com", second.OriginalURL)
}

func TestDelete(t *testing.T) {
	c, err := cache.New(20, time.Hour)
	require.NoError(t, err)
	defer c.Close()
	ctx := context.Background()

	c.Set(ctx, newLink("abc123", "https://example.com"))
	c.Wait()
	c.Delete(ctx, "abc123")
	c.Wait()

	_, found := c.Get(ctx, "abc123")
	assert.False(t, found)
}

func TestSet_MultipleKeys(t *testing.T) {
	c, err := cache.New(20, time.Hour)
	require.NoError(t, err)
	defer c.Close()
	ctx := context.Background()

	entries := map[string]string{
		"code01": "https://example.com/1",
		"code02": "https://example.com/2",
		"code03": "https://example.com/3",
	}

	for k, v := range entries {
		c.Set(ctx, newLink(k, v))
	}
	c.Wait()

	for k, want := range entries {
		got, found := c.Get(ctx, k)
		assert.True(t, found, "key %q should be found", k)
		if found {
			assert.Equal(t, want, got.OriginalURL, "key %q value mismatch", k)
		}
	}
}

func TestStats_AfterOperations(t *testing.T) {
	c, err := cache.New(20, time.Hour)
	require.NoError(t, err)
	defer c.Close()
	ctx := context.Background()

	hits, misses, _ := c.Stats()
	assert.Equal(t, uint64(0), hits)
	assert.Equal(t, uint64(0), misses)

	c.Get(ctx, "nonexistent")

	_, misses, _ = c.Stats()
	assert.Equal(t, uint64(1), misses)

	c.Set(ctx, newLink("key001", "https://example.com"))
	c.Wait()
	c.Get(ctx, "key001")

	hits, _, ratio := c.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, 0.5, ratio)
}
