package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"encly/internal/domain"
)

// ClickRepository is the append-only click ledger. short_code is a copy, not
// a foreign key, so events outlive their link.
type ClickRepository struct {
	pool *pgxpool.Pool
}

func NewClickRepository(pool *pgxpool.Pool) *ClickRepository {
	return &ClickRepository{pool: pool}
}

func (r *ClickRepository) Append(ctx context.Context, ev *domain.ClickEvent) error {
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	if ev.ClickedAt.IsZero() {
		ev.ClickedAt = time.Now().UTC()
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO clicks (id, short_code, clicked_at, ip, user_agent)
		 VALUES ($1, $2, $3, $4, $5)`,
		ev.ID, ev.ShortCode, ev.ClickedAt, ev.IP, ev.UserAgent,
	)
	if err != nil {
		return fmt.Errorf("failed to append click: %w", err)
	}
	return nil
}

// CountByCode returns the number of click events recorded for shortCode.
func (r *ClickRepository) CountByCode(ctx context.Context, shortCode string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM clicks WHERE short_code = $1`, shortCode).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count clicks: %w", err)
	}
	return n, nil
}
