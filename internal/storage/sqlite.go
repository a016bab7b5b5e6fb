// Package storage provides SQLite-based persistence for the highscore.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/square-dodge/internal/session"
)

// DefaultPath is where the highscore database lives unless --db says otherwise.
const DefaultPath = "~/.dodge/dodge.db"

// Store manages the SQLite database connection for highscore persistence.
type Store struct {
	db *sql.DB
}

// Ensure Store implements session.HighScoreStore
var _ session.HighScoreStore = (*Store)(nil)

// Entry is the stored highscore and when it was set.
type Entry struct {
	Score     float64
	UpdatedAt time.Time
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

	// Create parent directories
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
// The highscore table holds at most one row.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS highscore (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			score REAL NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// HighScore returns the stored highscore, or 0 if none was saved yet.
func (s *Store) HighScore() (float64, error) {
	e, err := s.Entry()
	if err != nil {
		return 0, err
	}
	return e.Score, nil
}

// Entry returns the stored highscore with its timestamp. The zero Entry
// means nothing is stored.
func (s *Store) Entry() (Entry, error) {
	var e Entry
	var updatedAt any
	err := s.db.QueryRow("SELECT score, updated_at FROM highscore WHERE id = 1").Scan(&e.Score, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, nil
	}
	if err != nil {
		return Entry{}, fmt.Errorf("storage: cannot query highscore: %w", err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := updatedAt.(type) {
	case time.Time:
		e.UpdatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.UpdatedAt = parsed
		}
	}
	return e, nil
}

// SaveHighScore stores score if it is strictly greater than the stored one
// and reports whether the row changed.
func (s *Store) SaveHighScore(score float64) (bool, error) {
	res, err := s.db.Exec(
		`INSERT INTO highscore (id, score, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at
		 WHERE excluded.score > highscore.score`,
		score,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot save highscore: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	return n > 0, nil
}

// ClearHighScore deletes the stored highscore.
func (s *Store) ClearHighScore() error {
	if _, err := s.db.Exec("DELETE FROM highscore"); err != nil {
		return fmt.Errorf("storage: cannot clear highscore: %w", err)
	}
	return nil
}
