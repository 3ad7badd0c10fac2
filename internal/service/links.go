package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"encly/internal/domain"
	"encly/internal/metrics"
)

var (
	ErrCodeSpaceExhausted = errors.New("could not allocate a unique short code")
	ErrInvalidTTL         = errors.New("ttl must not be negative")
)

const defaultMaxAttempts = 5

type Option func(*LinkService)

// WithClock replaces the wall clock. Returned times are converted to UTC.
func WithClock(now func() time.Time) Option {
	return func(s *LinkService) {
		s.now = now
	}
}

func WithMaxAttempts(n int) Option {
	return func(s *LinkService) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// WithCache enables read-through caching of link lookups.
func WithCache(c LinkCache) Option {
	return func(s *LinkService) {
		s.cache = c
	}
}

type LinkService struct {
	store       LinkStore
	ledger      ClickLedger
	generator   CodeGenerator
	cache       LinkCache
	recorder    BusinessRecorder
	logger      *slog.Logger
	baseURL     string
	maxAttempts int
	now         func() time.Time
}

func NewLinkService(
	store LinkStore,
	ledger ClickLedger,
	generator CodeGenerator,
	recorder BusinessRecorder,
	logger *slog.Logger,
	baseURL string,
	opts ...Option,
) *LinkService {
	s := &LinkService{
		store:       store,
		ledger:      ledger,
		generator:   generator,
		recorder:    recorder,
		logger:      logger,
		baseURL:     strings.TrimRight(baseURL, "/"),
		maxAttempts: defaultMaxAttempts,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *LinkService) clock() time.Time {
	return s.now().UTC()
}

// CreateLink stores originalURL under a fresh short code. A positive ttlDays
// sets the expiry to now plus that many days, zero means the link never
// expires.
func (s *LinkService) CreateLink(ctx context.Context, originalURL string, ttlDays int) (*domain.Link, error) {
	if ttlDays < 0 {
		return nil, ErrInvalidTTL
	}

	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		code, err := s.generator.Generate()
		if err != nil {
			return nil, fmt.Errorf("failed to generate short code: %w", err)
		}

		now := s.clock()
		link := &domain.Link{
			ShortCode:   code,
			OriginalURL: originalURL,
			CreatedAt:   now,
		}
		if ttlDays > 0 {
			expiresAt := now.Add(time.Duration(ttlDays) * 24 * time.Hour)
			link.ExpiresAt = &expiresAt
		}

		err = s.store.Insert(ctx, link)
		if err == nil {
			s.recorder.RecordBusiness(metrics.LinksCreated, 1, nil)
			return link, nil
		}
		if !errors.Is(err, domain.ErrDuplicateCode) {
			return nil, fmt.Errorf("failed to create link: %w", err)
		}

		lastErr = err
		s.recorder.RecordBusiness(metrics.CodeCollisions, 1, nil)
		s.logger.Debug("short code collision, retrying",
			slog.String("short_code", code),
			slog.Int("attempt", attempt))
	}

	s.logger.Error("short code space exhausted",
		slog.Int("attempts", s.maxAttempts))
	return nil, fmt.Errorf("%w after %d attempts: %w", ErrCodeSpaceExhausted, s.maxAttempts, lastErr)
}

// CreateLinks creates one link per URL in order and stops at the first
// failure.
func (s *LinkService) CreateLinks(ctx context.Context, urls []string, ttlDays int) ([]*domain.Link, error) {
	links := make([]*domain.Link, 0, len(urls))
	for i, u := range urls {
		link, err := s.CreateLink(ctx, u, ttlDays)
		if err != nil {
			return nil, fmt.Errorf("failed to create link %d: %w", i, err)
		}
		links = append(links, link)
	}
	return links, nil
}

func (s *LinkService) Resolve(ctx context.Context, shortCode string, ip, userAgent *string) (domain.Resolution, error) {
	link, err := s.lookup(ctx, shortCode)
	if errors.Is(err, domain.ErrLinkNotFound) {
		s.recorder.RecordBusiness(metrics.NotFound, 1, nil)
		return domain.Resolution{Status: domain.StatusNotFound}, nil
	}
	if err != nil {
		return domain.Resolution{}, fmt.Errorf("failed to find link: %w", err)
	}

	now := s.clock()
	if link.IsExpired(now) {
		s.recorder.RecordBusiness(metrics.ExpiredHits, 1, nil)
		return domain.Resolution{Status: domain.StatusExpired, Link: link}, nil
	}

	count, err := s.store.RecordClick(ctx, link.ID, now)
	if errors.Is(err, domain.ErrLinkNotFound) {
		if s.cache != nil {
			s.cache.Delete(ctx, shortCode)
		}
		s.recorder.RecordBusiness(metrics.NotFound, 1, nil)
		return domain.Resolution{Status: domain.StatusNotFound}, nil
	}
	if err != nil {
		return domain.Resolution{}, fmt.Errorf("failed to record click: %w", err)
	}
	resolved := *link
	resolved.ClickCount = count
	resolved.LastAccessed = &now

	ev := &domain.ClickEvent{
		ShortCode: shortCode,
		ClickedAt: now,
		IP:        ip,
		UserAgent: userAgent,
	}
	if err := s.ledger.Append(ctx, ev); err != nil {
		s.logger.Error("failed to append click event",
			slog.String("short_code", shortCode),
			slog.String("link_id", link.ID.String()),
			slog.String("error", err.Error()))
		s.recorder.RecordBusiness(metrics.ClickLogFailed, 1, nil)
	}

	s.recorder.RecordBusiness(metrics.Redirects, 1, nil)
	return domain.Resolution{Status: domain.StatusRedirect, Link: &resolved}, nil
}

func (s *LinkService) lookup(ctx context.Context, shortCode string) (*domain.Link, error) {
	if s.cache != nil {
		if link, ok := s.cache.Get(ctx, shortCode); ok {
			s.recorder.RecordBusiness(metrics.CacheHit, 1, nil)
			return link, nil
		}
		s.recorder.RecordBusiness(metrics.CacheMiss, 1, nil)
	}

	link, err := s.store.FindByCode(ctx, shortCode)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, link)
	}
	return link, nil
}

func (s *LinkService) ListLinks(ctx context.Context) ([]domain.Link, error) {
	links, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	return links, nil
}

func (s *LinkService) ShortURL(shortCode string) string {
	return fmt.Sprintf("%s/%s", s.baseURL, shortCode)
}
