package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"encly/internal/domain"
)

type ClickRepository struct {
	db *sql.DB
}

func NewClickRepository(db *sql.DB) *ClickRepository {
	return &ClickRepository{db: db}
}

func (r *ClickRepository) Append(ctx context.Context, ev *domain.ClickEvent) error {
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	if ev.ClickedAt.IsZero() {
		ev.ClickedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO clicks (id, short_code, clicked_at, ip, user_agent) VALUES (?, ?, ?, ?, ?)`,
		ev.ID.String(), ev.ShortCode, ev.ClickedAt.UTC(), nullString(ev.IP), nullString(ev.UserAgent),
	)
	if err != nil {
		return fmt.Errorf("failed to append click: %w", err)
	}
	return nil
}

func (r *ClickRepository) CountByCode(ctx context.Context, shortCode string) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clicks WHERE short_code = ?`, shortCode).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count clicks: %w", err)
	}
	return n, nil
}

// ListByCode returns events for shortCode oldest first.
func (r *ClickRepository) ListByCode(ctx context.Context, shortCode string) ([]domain.ClickEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, short_code, clicked_at, ip, user_agent FROM clicks
		 WHERE short_code = ? ORDER BY clicked_at ASC, rowid ASC`,
		shortCode,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list clicks: %w", err)
	}
	defer rows.Close()

	var events []domain.ClickEvent
	for rows.Next() {
		var (
			ev        domain.ClickEvent
			ip        sql.NullString
			userAgent sql.NullString
		)
		if err := rows.Scan(&ev.ID, &ev.ShortCode, &ev.ClickedAt, &ip, &userAgent); err != nil {
			return nil, fmt.Errorf("failed to scan click: %w", err)
		}
		if ip.Valid {
			ev.IP = &ip.String
		}
		if userAgent.Valid {
			ev.UserAgent = &userAgent.String
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
