package sqlite_test

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encly/internal/config"
	"encly/internal/domain"
	"encly/internal/repository/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}
	db, err := sqlite.Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, sqlite.Migrate(context.Background(), db))
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, sqlite.Migrate(context.Background(), db))
}

func TestLinkRepository_InsertAndFind(t *testing.T) {
	repo := sqlite.NewLinkRepository(newTestDB(t))
	ctx := context.Background()

	expiresAt := time.Now().UTC().Add(24 * time.Hour)
	link := &domain.Link{
		ShortCode:   "abc123",
		OriginalURL: "https://example.com",
		ExpiresAt:   &expiresAt,
	}
	require.NoError(t, repo.Insert(ctx, link))
	assert.NotEqual(t, uuid.Nil, link.ID)
	assert.False(t, link.CreatedAt.IsZero())

	found, err := repo.FindByCode(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, link.ID, found.ID)
	assert.Equal(t, "https://example.com", found.OriginalURL)
	assert.Equal(t, int64(0), found.ClickCount)
	assert.Nil(t, found.LastAccessed)
	require.NotNil(t, found.ExpiresAt)
	assert.True(t, found.ExpiresAt.Equal(expiresAt))
	assert.True(t, found.CreatedAt.Equal(link.CreatedAt))
}

func TestLinkRepository_InsertWithoutExpiry(t *testing.T) {
	repo := sqlite.NewLinkRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &domain.Link{ShortCode: "noexp1", OriginalURL: "https://example.com"}))

	found, err := repo.FindByCode(ctx, "noexp1")
	require.NoError(t, err)
	assert.Nil(t, found.ExpiresAt)
}

func TestLinkRepository_DuplicateCode(t *testing.T) {
	repo := sqlite.NewLinkRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &domain.Link{ShortCode: "dup123", OriginalURL: "https://one.example"}))

	err := repo.Insert(ctx, &domain.Link{ShortCode: "dup123", OriginalURL: "https://two.example"})
	require.ErrorIs(t, err, domain.ErrDuplicateCode)

	found, err := repo.FindByCode(ctx, "dup123")
	require.NoError(t, err)
	assert.Equal(t, "https://one.example", found.OriginalURL)
}

func TestLinkRepository_DuplicateIDIsNotDuplicateCode(t *testing.T) {
	repo := sqlite.NewLinkRepository(newTestDB(t))
	ctx := context.Background()

	id := uuid.New()
	require.NoError(t, repo.Insert(ctx, &domain.Link{ID: id, ShortCode: "first1", OriginalURL: "https://example.com"}))

	err := repo.Insert(ctx, &domain.Link{ID: id, ShortCode: "other1", OriginalURL: "https://example.com"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrDuplicateCode)
}

func TestLinkRepository_FindByCode_NotFound(t *testing.T) {
	repo := sqlite.NewLinkRepository(newTestDB(t))

	_, err := repo.FindByCode(context.Background(), "doesnotexist")
	assert.ErrorIs(t, err, domain.ErrLinkNotFound)
}

func TestLinkRepository_FindByCode_CaseSensitive(t *testing.T) {
	repo := sqlite.NewLinkRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &domain.Link{ShortCode: "AbCdEf", OriginalURL: "https://example.com"}))

	_, err := repo.FindByCode(ctx, "abcdef")
	assert.ErrorIs(t, err, domain.ErrLinkNotFound)
}

func TestLinkRepository_RecordClick(t *testing.T) {
	repo := sqlite.NewLinkRepository(newTestDB(t))
	ctx := context.Background()

	link := &domain.Link{ShortCode: "click1", OriginalURL: "https://example.com"}
	require.NoError(t, repo.Insert(ctx, link))

	first := time.Now().UTC()
	count, err := repo.RecordClick(ctx, link.ID, first)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	second := first.Add(time.Second)
	count, err = repo.RecordClick(ctx, link.ID, second)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	found, err := repo.FindByCode(ctx, "click1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), found.ClickCount)
	require.NotNil(t, found.LastAccessed)
	assert.True(t, found.LastAccessed.Equal(second))
}

func TestLinkRepository_RecordClick_UnknownID(t *testing.T) {
	repo := sqlite.NewLinkRepository(newTestDB(t))

	_, err := repo.RecordClick(context.Background(), uuid.New(), time.Now())
	assert.ErrorIs(t, err, domain.ErrLinkNotFound)
}

func TestLinkRepository_RecordClick_Concurrent(t *testing.T) {
	repo := sqlite.NewLinkRepository(newTestDB(t))
	ctx := context.Background()

	link := &domain.Link{ShortCode: "race01", OriginalURL: "https://example.com"}
	require.NoError(t, repo.Insert(ctx, link))

	const n = 64
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.RecordClick(ctx, link.ID, time.Now().UTC()); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	found, err := repo.FindByCode(ctx, "race01")
	require.NoError(t, err)
	assert.Equal(t, int64(n), found.ClickCount)
}

func TestLinkRepository_ListAll_OrderedByCreatedAt(t *testing.T) {
	repo := sqlite.NewLinkRepository(newTestDB(t))
	ctx := context.Background()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, code := range []string{"third1", "first1", "second"} {
		offsets := []time.Duration{2 * time.Hour, 0, time.Hour}
		require.NoError(t, repo.Insert(ctx, &domain.Link{
			ShortCode:   code,
			OriginalURL: "https://example.com/" + code,
			CreatedAt:   base.Add(offsets[i]),
		}))
	}

	links, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, links, 3)
	assert.Equal(t, "first1", links[0].ShortCode)
	assert.Equal(t, "second", links[1].ShortCode)
	assert.Equal(t, "third1", links[2].ShortCode)
}

func TestLinkRepository_ListAll_MixedZones(t *testing.T) {
	repo := sqlite.NewLinkRepository(newTestDB(t))
	ctx := context.Background()

	moscow := time.FixedZone("MSK", 3*60*60)
	older := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	require.NoError(t, repo.Insert(ctx, &domain.Link{
		ShortCode:   "OLDER1",
		OriginalURL: "https://example.com/older",
		CreatedAt:   older.In(moscow),
	}))
	require.NoError(t, repo.Insert(ctx, &domain.Link{
		ShortCode:   "NEWER1",
		OriginalURL: "https://example.com/newer",
		CreatedAt:   newer,
	}))

	links, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "OLDER1", links[0].ShortCode)
	assert.Equal(t, "NEWER1", links[1].ShortCode)
	assert.True(t, links[0].CreatedAt.Equal(older))
}

func TestLinkRepository_NonUTCTimesReadBack(t *testing.T) {
	db := newTestDB(t)
	links := sqlite.NewLinkRepository(db)
	clicks := sqlite.NewClickRepository(db)
	ctx := context.Background()

	zone := time.FixedZone("X", 2*60*60)
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, zone)
	expires := created.Add(240 * time.Hour)
	accessed := created.Add(time.Hour)

	link := &domain.Link{ShortCode: "zone01", OriginalURL: "https://example.com", CreatedAt: created, ExpiresAt: &expires}
	require.NoError(t, links.Insert(ctx, link))
	_, err := links.RecordClick(ctx, link.ID, accessed)
	require.NoError(t, err)
	require.NoError(t, clicks.Append(ctx, &domain.ClickEvent{ShortCode: "zone01", ClickedAt: accessed}))

	found, err := links.FindByCode(ctx, "zone01")
	require.NoError(t, err)
	assert.True(t, found.CreatedAt.Equal(created))
	require.NotNil(t, found.ExpiresAt)
	assert.True(t, found.ExpiresAt.Equal(expires))
	require.NotNil(t, found.LastAccessed)
	assert.True(t, found.LastAccessed.Equal(accessed))

	events, err := clicks.ListByCode(ctx, "zone01")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].ClickedAt.Equal(accessed))
}

func TestLinkRepository_ListAll_Empty(t *testing.T) {
	repo := sqlite.NewLinkRepository(newTestDB(t))

	links, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, links)
	assert.NotNil(t, links)
}

func TestClickRepository_Append(t *testing.T) {
	repo := sqlite.NewClickRepository(newTestDB(t))
	ctx := context.Background()

	ip := "203.0.113.7"
	ua := "Mozilla/5.0"
	require.NoError(t, repo.Append(ctx, &domain.ClickEvent{ShortCode: "abc123", IP: &ip, UserAgent: &ua}))
	require.NoError(t, repo.Append(ctx, &domain.ClickEvent{ShortCode: "abc123"}))
	require.NoError(t, repo.Append(ctx, &domain.ClickEvent{ShortCode: "zzz999"}))

	n, err := repo.CountByCode(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	events, err := repo.ListByCode(ctx, "abc123")
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.NotNil(t, events[0].IP)
	assert.Equal(t, ip, *events[0].IP)
	require.NotNil(t, events[0].UserAgent)
	assert.Equal(t, ua, *events[0].UserAgent)
	assert.Nil(t, events[1].IP)
	assert.Nil(t, events[1].UserAgent)
	assert.NotEqual(t, uuid.Nil, events[1].ID)
	assert.False(t, events[1].ClickedAt.IsZero())
}

func TestClickRepository_AppendWithoutLink(t *testing.T) {
	repo := sqlite.NewClickRepository(newTestDB(t))

	// No foreign key: events may reference codes that no longer exist.
	require.NoError(t, repo.Append(context.Background(), &domain.ClickEvent{ShortCode: "gone12"}))
}
