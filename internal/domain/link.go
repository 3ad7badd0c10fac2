package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrDuplicateCode = errors.New("short code already exists")
	ErrLinkNotFound  = errors.New("link not found")
)

type Link struct {
	ID           uuid.UUID
	ShortCode    string
	OriginalURL  string
	CreatedAt    time.Time
	ExpiresAt    *time.Time
	ClickCount   int64
	LastAccessed *time.Time
}

// IsExpired reports whether the link had expired at t. A link without an
// expiry never expires.
func (l *Link) IsExpired(t time.Time) bool {
	return l.ExpiresAt != nil && l.ExpiresAt.Before(t)
}

type ClickEvent struct {
	ID        uuid.UUID
	ShortCode string
	ClickedAt time.Time
	IP        *string
	UserAgent *string
}

type ResolutionStatus int

const (
	StatusNotFound ResolutionStatus = iota
	StatusExpired
	StatusRedirect
)

func (s ResolutionStatus) String() string {
	switch s {
	case StatusNotFound:
		return "not_found"
	case StatusExpired:
		return "expired"
	case StatusRedirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of resolving a short code. Link is nil when
// Status is StatusNotFound.
type Resolution struct {
	Status ResolutionStatus
	Link   *Link
}
