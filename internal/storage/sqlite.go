// Package storage keeps the history of finished runs in a private in-memory
// SQLite database. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Nothing is written to disk; the history ends with the process.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the in-memory session history.
type Store struct {
	db *sql.DB
}

// Run is a single finished game.
type Run struct {
	ID        string // Assigned by SaveRun when empty
	Preset    string
	Score     int
	Length    int
	Status    string // "won" or "game_over"
	Ticks     uint64
	StartedAt time.Time
	EndedAt   time.Time
}

// Duration returns how long the run lasted.
func (r Run) Duration() time.Duration {
	if r.EndedAt.Before(r.StartedAt) {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}

// Stats contains aggregated statistics for a preset.
type Stats struct {
	Preset    string
	Runs      int
	Wins      int
	BestScore int
	AvgScore  float64
	LastEnded time.Time
}

// ErrNoPreset is returned by SaveRun when the run has no preset.
var ErrNoPreset = errors.New("storage: run has no preset")

// Open creates a fresh in-memory database and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: gets its own empty database.
	db.SetMaxOpenConns(1)

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
			id TEXT PRIMARY KEY,
			preset TEXT NOT NULL,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL,
			status TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			started_at INTEGER NOT NULL,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_preset ON runs(preset);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(preset, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection. The history is gone afterwards.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.Preset == "" {
		return "", ErrNoPreset
	}
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.EndedAt.IsZero() {
		run.EndedAt = time.Now()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = run.EndedAt
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, preset, score, length, status, ticks, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Preset, run.Score, run.Length, run.Status, int64(run.Ticks),
		run.StartedAt.UnixNano(), run.EndedAt.UnixNano(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	return run.ID, nil
}

// RecentRuns returns the most recently finished runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, preset, score, length, status, ticks, started_at, ended_at
		 FROM runs
		 ORDER BY ended_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ticks, started, ended int64
		if err := rows.Scan(&r.ID, &r.Preset, &r.Score, &r.Length, &r.Status, &ticks, &started, &ended); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.StartedAt = time.Unix(0, started)
		r.EndedAt = time.Unix(0, ended)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestScore returns the highest score for the given preset.
// Returns 0 if no runs exist.
func (s *Store) BestScore(preset string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE preset = ?",
		preset,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Stats retrieves aggregated statistics for a preset.
func (s *Store) Stats(preset string) (*Stats, error) {
	stats := &Stats{Preset: preset}

	var lastEnded sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN status = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0),
		        MAX(ended_at)
		 FROM runs WHERE preset = ?`,
		preset,
	).Scan(&stats.Runs, &stats.Wins, &stats.BestScore, &stats.AvgScore, &lastEnded)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	if lastEnded.Valid {
		stats.LastEnded = time.Unix(0, lastEnded.Int64)
	}

	return stats, nil
}
