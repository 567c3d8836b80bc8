// Package sqlite persists tournament match results to an embedded
// single-file database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"dropfour/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS matches (
	id TEXT PRIMARY KEY,
	played_at DATETIME NOT NULL,
	personality_a TEXT NOT NULL,
	personality_b TEXT NOT NULL,
	winner TEXT NOT NULL DEFAULT '',
	moves INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL
);
`

type Store struct {
	db *sql.DB
}

// Open creates the database file (and its directory) if needed and applies
// the schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) SaveMatch(ctx context.Context, match domain.MatchResult) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO matches (id, played_at, personality_a, personality_b, winner, moves, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		match.ID,
		match.PlayedAt.UTC(),
		match.PersonalityA,
		match.PersonalityB,
		match.Winner,
		match.Moves,
		match.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("insert match %s: %w", match.ID, err)
	}
	return nil
}

// ListMatches returns every stored match, oldest first.
func (s *Store) ListMatches(ctx context.Context) ([]domain.MatchResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, played_at, personality_a, personality_b, winner, moves, duration_ms
		FROM matches ORDER BY played_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	defer rows.Close()

	matches := []domain.MatchResult{}
	for rows.Next() {
		var m domain.MatchResult
		var durationMs int64
		if err := rows.Scan(&m.ID, &m.PlayedAt, &m.PersonalityA, &m.PersonalityB, &m.Winner, &m.Moves, &durationMs); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		m.Duration = time.Duration(durationMs) * time.Millisecond
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// WinCounts tallies wins per personality across all stored matches. Draws
// are not counted.
func (s *Store) WinCounts(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT winner, COUNT(*) FROM matches
		WHERE winner != '' GROUP BY winner`)
	if err != nil {
		return nil, fmt.Errorf("query win counts: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, fmt.Errorf("scan win count: %w", err)
		}
		counts[name] = n
	}
	return counts, rows.Err()
}
