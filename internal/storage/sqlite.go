// Package storage provides SQLite-based persistence of completed runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunEntry records the outcome of one completed simulation run.
type RunEntry struct {
	ID          int64
	Players     int
	Steps       int
	FieldWidth  int
	FieldHeight int
	Seed        int64
	Tags        int // number of tag events during the run
	FinalIt     int // player that was it when the run finished
	CreatedAt   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			players INTEGER NOT NULL,
			steps INTEGER NOT NULL,
			field_w INTEGER NOT NULL,
			field_h INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			tags INTEGER NOT NULL,
			final_it INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a completed run. Returns the ID of the inserted record.
func (s *Store) SaveRun(entry RunEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (players, steps, field_w, field_h, seed, tags, final_it) VALUES (?, ?, ?, ?, ?, ?, ?)",
		entry.Players, entry.Steps, entry.FieldWidth, entry.FieldHeight, entry.Seed, entry.Tags, entry.FinalIt,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent N runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, players, steps, field_w, field_h, seed, tags, final_it, created_at
		 FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		if err := rows.Scan(&e.ID, &e.Players, &e.Steps, &e.FieldWidth, &e.FieldHeight,
			&e.Seed, &e.Tags, &e.FinalIt, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
