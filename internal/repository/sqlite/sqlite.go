// Package sqlite implements the link store and click ledger on database/sql
// for embedded SQLite (modernc.org/sqlite) and remote libsql databases.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	moderncsqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"encly/internal/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS links (
	id            TEXT PRIMARY KEY,
	short_code    TEXT NOT NULL UNIQUE,
	original_url  TEXT NOT NULL,
	created_at    DATETIME NOT NULL,
	expires_at    DATETIME,
	click_count   INTEGER NOT NULL DEFAULT 0 CHECK (click_count >= 0),
	last_accessed DATETIME
);
CREATE INDEX IF NOT EXISTS idx_links_created_at ON links(created_at);

CREATE TABLE IF NOT EXISTS clicks (
	id         TEXT PRIMARY KEY,
	short_code TEXT NOT NULL,
	clicked_at DATETIME NOT NULL,
	ip         TEXT,
	user_agent TEXT
);
CREATE INDEX IF NOT EXISTS idx_clicks_short_code ON clicks(short_code);
`

// Open connects with the driver matching cfg.Driver. Local SQLite databases
// are limited to a single connection, a shared in-memory database reports
// SQLITE_LOCKED otherwise.
func Open(ctx context.Context, cfg *config.DatabaseConfig) (*sql.DB, error) {
	driverName := "sqlite"
	dsn := cfg.DSN()
	if cfg.Driver == config.DriverLibSQL || strings.HasPrefix(dsn, "libsql://") || strings.HasPrefix(dsn, "wss://") {
		driverName = "libsql"
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if driverName == "sqlite" {
		db.SetMaxOpenConns(1)
	} else if cfg.MaxConns > 0 {
		db.SetMaxOpenConns(int(cfg.MaxConns))
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// isDuplicateCode reports a unique violation on links.short_code. modernc
// errors carry the extended result code, and on the links table only the
// short_code index can raise SQLITE_CONSTRAINT_UNIQUE (an id clash is
// SQLITE_CONSTRAINT_PRIMARYKEY). libsql reports constraint failures as plain
// text, as does a bare SQLITE_CONSTRAINT, so those fall back to the message.
func isDuplicateCode(err error) bool {
	var sqliteErr *moderncsqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return true
		case sqlite3.SQLITE_CONSTRAINT:
		default:
			return false
		}
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed: links.short_code")
}
