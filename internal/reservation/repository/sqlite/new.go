package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"reservation-agent/internal/reservation/repository"
	"reservation-agent/pkg/log"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS reservations (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	date       TEXT NOT NULL,
	time       TEXT NOT NULL,
	purpose    TEXT NOT NULL,
	status     TEXT NOT NULL DEFAULT 'confirmed',
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_reservations_user_id ON reservations(user_id);`

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

// Open opens (creating if needed) the database file and applies the schema.
// Use ":memory:" for a throwaway store.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// One connection: pragmas are per-connection and ":memory:" is per-connection too.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply %q: %w", p, err)
		}
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate reservations: %w", err)
	}
	return db, nil
}

// New creates a SQLite-backed Repository. The schema must already exist (see Open).
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("reservation/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("reservation/repository/sqlite.%s", method)
}
