// Package storage keeps a session-scoped log of rallies in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The database lives in memory: scores are never carried from one process to
// the next, and each session's rows are cleared when the session ends.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite connection for the rally log.
type Store struct {
	db *sql.DB
}

// Rally is one completed exchange, from launch to the point it produced.
type Rally struct {
	ID          int64
	SessionID   string
	Number      int           // 1-based within the session
	Hits        int           // Paddle hits
	WallBounces int           // Top/bottom wall reflections
	Duration    time.Duration // Launch to score
	PeakSpeed   float64       // Fastest ball speed seen, units/second
	Scorer      int           // Paddle index that won the point
	ScorerScore int           // Scorer's score after the point
	EndedAt     time.Time
}

// Open creates an in-memory database and runs migrations.
// All access goes through a single connection so every query sees the same
// in-memory database.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rallies (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			number INTEGER NOT NULL,
			hits INTEGER NOT NULL DEFAULT 0,
			wall_bounces INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			peak_speed REAL NOT NULL DEFAULT 0,
			scorer INTEGER NOT NULL,
			scorer_score INTEGER NOT NULL,
			ended_at INTEGER NOT NULL,
			UNIQUE(session_id, number)
		);
		CREATE INDEX IF NOT EXISTS idx_rallies_session ON rallies(session_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection. All rows are lost.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRally records a finished rally.
// Returns the ID of the inserted record.
func (s *Store) SaveRally(r Rally) (int64, error) {
	if r.EndedAt.IsZero() {
		r.EndedAt = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO rallies
		 (session_id, number, hits, wall_bounces, duration_ms, peak_speed, scorer, scorer_score, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID, r.Number, r.Hits, r.WallBounces, r.Duration.Milliseconds(),
		r.PeakSpeed, r.Scorer, r.ScorerScore, r.EndedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save rally: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Rallies returns every rally of a session in play order.
func (s *Store) Rallies(sessionID string) ([]Rally, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, number, hits, wall_bounces, duration_ms, peak_speed, scorer, scorer_score, ended_at
		 FROM rallies
		 WHERE session_id = ?
		 ORDER BY number ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rallies: %w", err)
	}
	defer rows.Close()

	var rallies []Rally
	for rows.Next() {
		var (
			r          Rally
			durationMS int64
			endedAtMS  int64
		)
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Number, &r.Hits, &r.WallBounces,
			&durationMS, &r.PeakSpeed, &r.Scorer, &r.ScorerScore, &endedAtMS); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.EndedAt = time.UnixMilli(endedAtMS)
		rallies = append(rallies, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rallies, nil
}

// SessionStats contains aggregated rally statistics for a session.
type SessionStats struct {
	Rallies   int
	Points    [2]int // Points won per paddle index
	MostHits  int
	PeakSpeed float64
}

// Stats aggregates a session's rallies.
// Returns zero stats if the session has no rallies.
func (s *Store) Stats(sessionID string) (*SessionStats, error) {
	var (
		stats     SessionStats
		left      sql.NullInt64
		mostHits  sql.NullInt64
		peakSpeed sql.NullFloat64
	)
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        SUM(CASE WHEN scorer = 0 THEN 1 ELSE 0 END),
		        MAX(hits),
		        MAX(peak_speed)
		 FROM rallies
		 WHERE session_id = ?`,
		sessionID,
	).Scan(&stats.Rallies, &left, &mostHits, &peakSpeed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	stats.Points[0] = int(left.Int64)
	stats.Points[1] = stats.Rallies - stats.Points[0]
	stats.MostHits = int(mostHits.Int64)
	stats.PeakSpeed = peakSpeed.Float64
	return &stats, nil
}

// Sessions returns the IDs of sessions that currently have rallies logged.
func (s *Store) Sessions() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT session_id FROM rallies ORDER BY session_id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return ids, nil
}

// ClearSession deletes all rallies of a session.
func (s *Store) ClearSession(sessionID string) error {
	_, err := s.db.Exec("DELETE FROM rallies WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear session: %w", err)
	}
	return nil
}
