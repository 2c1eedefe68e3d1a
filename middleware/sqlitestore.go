package middleware

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Schema for the rate_counters table. Applied by NewSQLiteStore.
const rateCounterSchema = `
CREATE TABLE IF NOT EXISTS rate_counters (
	key TEXT NOT NULL,
	window_start INTEGER NOT NULL,
	count INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (key, window_start)
);
CREATE INDEX IF NOT EXISTS idx_rate_counters_window ON rate_counters(window_start);
`

// SQLiteStore is a CounterStore backed by a SQLite database, so window
// counters survive process restarts and can be shared by replicas mounting
// the same volume.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the counter database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open rate limit db: %w", err)
	}

	if _, err := db.Exec(rateCounterSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply rate limit schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Incr implements CounterStore.
func (s *SQLiteStore) Incr(key string, windowStart int64) (int64, error) {
	var count int64
	err := s.db.QueryRow(
		`INSERT INTO rate_counters (key, window_start, count) VALUES (?, ?, 1)
		 ON CONFLICT(key, window_start) DO UPDATE SET count = count + 1
		 RETURNING count`,
		key, windowStart,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("increment rate counter: %w", err)
	}
	return count, nil
}

// Prune removes counters from windows that started before the given unix
// timestamp. Call periodically; expired windows are otherwise harmless but
// accumulate.
func (s *SQLiteStore) Prune(before int64) error {
	if _, err := s.db.Exec(`DELETE FROM rate_counters WHERE window_start < ?`, before); err != nil {
		return fmt.Errorf("prune rate counters: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
