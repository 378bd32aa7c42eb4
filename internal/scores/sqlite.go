// internal/scores/sqlite.go
//
// SQLite Store implementation, for installations that want a real
// database behind the leaderboard instead of a JSON file.
// Responsibilities:
//   - Opening the SQLite database with safe defaults (WAL, busy timeout).
//   - Creating the scores table on first use (idempotent).
//   - Append/Top over the same Entry shape as the file store.

package scores

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const scoresSchema = `
CREATE TABLE IF NOT EXISTS scores (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    player_name   TEXT    NOT NULL,
    mode          TEXT    NOT NULL,
    won           BOOLEAN NOT NULL,
    attempts_used INTEGER NOT NULL,
    max_attempts  INTEGER NOT NULL,
    score         INTEGER NOT NULL,
    timestamp     TEXT    NOT NULL
);`

// SQLiteStore persists entries in a scores table.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) the SQLite database at dsn
// and ensures the scores table exists.
//
//   - Ensures the parent directory exists for relative DSNs
//     (e.g. ./data/scores.db).
//   - Configures busy timeout and WAL journaling mode.
func OpenSQLite(dsn string) (*SQLiteStore, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(scoresSchema); err != nil {
		return nil, fmt.Errorf("create scores table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// NewSQLiteStore wraps an already-open database handle.
// The scores table must exist.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }

// Append inserts one entry row.
func (s *SQLiteStore) Append(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO scores
            (player_name, mode, won, attempts_used, max_attempts, score, timestamp)
        VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.PlayerName, e.Mode, e.Won, e.AttemptsUsed, e.MaxAttempts, e.Score, e.Timestamp,
	)
	return err
}

// Top fetches at most limit entries; a negative limit returns
// everything, matching the file backend.
// Ordered by score DESC, then timestamp ASC (earlier wins ties), then
// insertion order for fully equal rows.
func (s *SQLiteStore) Top(ctx context.Context, limit int) ([]Entry, error) {
	// SQLite already reads a negative LIMIT as unlimited; the clamp is
	// only for the slice capacity below.
	capHint := limit
	if capHint < 0 {
		capHint = 0
	}

	rows, err := s.db.QueryContext(ctx, `
        SELECT player_name, mode, won, attempts_used, max_attempts, score, timestamp
        FROM scores
        ORDER BY score DESC, timestamp ASC, id ASC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Entry, 0, capHint)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.PlayerName, &e.Mode, &e.Won, &e.AttemptsUsed, &e.MaxAttempts, &e.Score, &e.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
