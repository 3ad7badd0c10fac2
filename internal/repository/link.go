package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"encly/internal/domain"
)

const (
	uniqueViolation     = "23505"
	shortCodeConstraint = "links_short_code_key"
)

const linkColumns = `id, short_code, original_url, created_at, expires_at, click_count, last_accessed`

type LinkRepository struct {
	pool *pgxpool.Pool
}

func NewLinkRepository(pool *pgxpool.Pool) *LinkRepository {
	return &LinkRepository{pool: pool}
}

// Insert persists a new link. ID and CreatedAt are filled in when zero.
// A short code collision is reported as domain.ErrDuplicateCode.
func (r *LinkRepository) Insert(ctx context.Context, link *domain.Link) error {
	if link.ID == uuid.Nil {
		link.ID = uuid.New()
	}
	if link.CreatedAt.IsZero() {
		link.CreatedAt = time.Now().UTC()
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO links (id, short_code, original_url, created_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		link.ID, link.ShortCode, link.OriginalURL, link.CreatedAt, link.ExpiresAt,
	)
	if err != nil {
		if isDuplicateCode(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateCode, link.ShortCode)
		}
		return fmt.Errorf("failed to insert link: %w", err)
	}

	link.ClickCount = 0
	link.LastAccessed = nil
	return nil
}

func (r *LinkRepository) FindByCode(ctx context.Context, shortCode string) (*domain.Link, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+linkColumns+` FROM links WHERE short_code = $1`,
		shortCode,
	)

	link, err := scanLink(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to find link: %w", err)
	}
	return link, nil
}

// RecordClick increments click_count by one inside the database and stamps
// last_accessed, returning the new count. Concurrent calls never lose an
// increment because the addition is evaluated against the stored row.
func (r *LinkRepository) RecordClick(ctx context.Context, id uuid.UUID, accessedAt time.Time) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`UPDATE links
		 SET click_count = click_count + 1, last_accessed = $2
		 WHERE id = $1
		 RETURNING click_count`,
		id, accessedAt,
	).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrLinkNotFound
		}
		return 0, fmt.Errorf("failed to record click: %w", err)
	}
	return count, nil
}

func (r *LinkRepository) ListAll(ctx context.Context) ([]domain.Link, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+linkColumns+` FROM links ORDER BY created_at ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	defer rows.Close()

	links := make([]domain.Link, 0)
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		links = append(links, *link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	return links, nil
}

func scanLink(row pgx.Row) (*domain.Link, error) {
	var link domain.Link
	err := row.Scan(
		&link.ID,
		&link.ShortCode,
		&link.OriginalURL,
		&link.CreatedAt,
		&link.ExpiresAt,
		&link.ClickCount,
		&link.LastAccessed,
	)
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func isDuplicateCode(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == uniqueViolation &&
		pgErr.ConstraintName == shortCodeConstraint
}
