package service

//go:generate go tool mockery

import (
	"context"
	"time"

	"github.com/google/uuid"

	"encly/internal/domain"
)

type LinkStore interface {
	Insert(ctx context.Context, link *domain.Link) error
	FindByCode(ctx context.Context, shortCode string) (*domain.Link, error)
	RecordClick(ctx context.Context, id uuid.UUID, accessedAt time.Time) (int64, error)
	ListAll(ctx context.Context) ([]domain.Link, error)
}

type ClickLedger interface {
	Append(ctx context.Context, ev *domain.ClickEvent) error
}

type CodeGenerator interface {
	Generate() (string, error)
}

// LinkCache holds the immutable part of a link. Counters are never served
// from it.
type LinkCache interface {
	Get(ctx context.Context, shortCode string) (*domain.Link, bool)
	Set(ctx context.Context, link *domain.Link)
	Delete(ctx context.Context, shortCode string)
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}
