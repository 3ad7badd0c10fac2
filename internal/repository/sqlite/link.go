package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"encly/internal/domain"
)

const linkColumns = `id, short_code, original_url, created_at, expires_at, click_count, last_accessed`

type LinkRepository struct {
	db *sql.DB
}

func NewLinkRepository(db *sql.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

// Insert persists a new link. Times are stored in UTC: the driver writes them
// as text, so ordering and parsing only hold within a single zone.
func (r *LinkRepository) Insert(ctx context.Context, link *domain.Link) error {
	if link.ID == uuid.Nil {
		link.ID = uuid.New()
	}
	if link.CreatedAt.IsZero() {
		link.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO links (id, short_code, original_url, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?)`,
		link.ID.String(), link.ShortCode, link.OriginalURL, link.CreatedAt.UTC(), nullTime(link.ExpiresAt),
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
	row := r.db.QueryRowContext(ctx,
		`SELECT `+linkColumns+` FROM links WHERE short_code = ?`,
		shortCode,
	)

	link, err := scanLink(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to find link: %w", err)
	}
	return link, nil
}

// RecordClick increments click_count in a single UPDATE evaluated by the
// database and returns the new count.
func (r *LinkRepository) RecordClick(ctx context.Context, id uuid.UUID, accessedAt time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`UPDATE links
		 SET click_count = click_count + 1, last_accessed = ?
		 WHERE id = ?
		 RETURNING click_count`,
		accessedAt.UTC(), id.String(),
	).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrLinkNotFound
		}
		return 0, fmt.Errorf("failed to record click: %w", err)
	}
	return count, nil
}

func (r *LinkRepository) ListAll(ctx context.Context) ([]domain.Link, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+linkColumns+` FROM links ORDER BY created_at ASC, rowid ASC`,
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

type scanner interface {
	Scan(dest ...any) error
}

func scanLink(row scanner) (*domain.Link, error) {
	var (
		link         domain.Link
		expiresAt    sql.NullTime
		lastAccessed sql.NullTime
	)
	err := row.Scan(
		&link.ID,
		&link.ShortCode,
		&link.OriginalURL,
		&link.CreatedAt,
		&expiresAt,
		&link.ClickCount,
		&lastAccessed,
	)
	if err != nil {
		return nil, err
	}
	if expiresAt.Valid {
		link.ExpiresAt = &expiresAt.Time
	}
	if lastAccessed.Valid {
		link.LastAccessed = &lastAccessed.Time
	}
	return &link, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
