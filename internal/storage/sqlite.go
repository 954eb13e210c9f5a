// Package storage keeps the run ledger of a play session in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The database is in-memory and private to one Store: it lives and dies
// with the session that opened it.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/gridsnake/internal/engine"
)

// Store manages the in-memory SQLite database holding finished runs.
type Store struct {
	db *sql.DB
}

// RunEntry is a single finished run.
type RunEntry struct {
	ID       int64
	Score    int
	Length   int
	Ticks    int
	Cause    string
	Duration time.Duration
	EndedAt  time.Time
}

// Stats aggregates the ledger.
type Stats struct {
	Runs       int     `json:"runs"`
	Best       int     `json:"best"`
	Average    float64 `json:"average"`
	TotalTicks int     `json:"totalTicks"`
}

// OpenMemory creates an empty ledger backed by a private in-memory database.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database, so pin one
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

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

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			cause TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection, discarding the ledger.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its ID.
// A zero EndedAt is stamped with the current time.
func (s *Store) SaveRun(e RunEntry) (int64, error) {
	if e.EndedAt.IsZero() {
		e.EndedAt = time.Now()
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (score, length, ticks, cause, duration_ms, ended_at) VALUES (?, ?, ?, ?, ?, ?)",
		e.Score, e.Length, e.Ticks, e.Cause, e.Duration.Milliseconds(), e.EndedAt.UnixNano(),
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

// RecordRun stores a run reported by the engine.
func (s *Store) RecordRun(r engine.RunResult) error {
	_, err := s.SaveRun(RunEntry{
		Score:    r.Score,
		Length:   r.Length,
		Ticks:    r.Ticks,
		Cause:    r.Cause.String(),
		Duration: r.Duration,
		EndedAt:  r.EndedAt,
	})
	return err
}

var _ engine.RunRecorder = (*Store)(nil)

// TopRuns retrieves the best N runs, highest score first. Ties keep the
// earlier run first.
func (s *Store) TopRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, score, length, ticks, cause, duration_ms, ended_at
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentRuns retrieves the last N runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, score, length, ticks, cause, duration_ms, ended_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var durationMs, endedAt int64
		if err := rows.Scan(&e.ID, &e.Score, &e.Length, &e.Ticks, &e.Cause, &durationMs, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationMs) * time.Millisecond
		e.EndedAt = time.Unix(0, endedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the best recorded score, or 0 for an empty ledger.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Stats aggregates all recorded runs.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	var best, ticks sql.NullInt64
	var avg sql.NullFloat64

	err := s.db.QueryRow(
		"SELECT COUNT(*), MAX(score), AVG(score), SUM(ticks) FROM runs",
	).Scan(&st.Runs, &best, &avg, &ticks)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	st.Best = int(best.Int64)
	st.Average = avg.Float64
	st.TotalTicks = int(ticks.Int64)
	return st, nil
}

// Clear deletes all runs.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
