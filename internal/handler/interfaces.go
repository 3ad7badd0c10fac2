package handler

//go:generate go tool mockery

import (
	"context"

	"encly/internal/domain"
)

type LinkService interface {
	CreateLink(ctx context.Context, originalURL string, ttlDays int) (*domain.Link, error)
	CreateLinks(ctx context.Context, urls []string, ttlDays int) ([]*domain.Link, error)
	Resolve(ctx context.Context, shortCode string, ip, userAgent *string) (domain.Resolution, error)
	ListLinks(ctx context.Context) ([]domain.Link, error)
	ShortURL(shortCode string) string
}

type URLValidator interface {
	ValidateURL(url string) error
	ValidateBatch(urls []string) error
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}
