package leads

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Lead is one captured lead row.
type Lead struct {
	ID         string
	Name       string
	Email      string
	Platform   string
	CapturedAt time.Time
}

// Store persists captured leads in SQLite. Re-captures of the same email
// update the existing row, keeping the sink idempotent even if a caller
// replays a capture.
type Store struct {
	db     *sql.DB
	mu     sync.Mutex
	logger *zap.Logger
}

const schema = `
CREATE TABLE IF NOT EXISTS leads (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	email       TEXT NOT NULL UNIQUE,
	platform    TEXT NOT NULL,
	captured_at TEXT NOT NULL
);`

// OpenStore opens (creating if needed) the leads database at path.
func OpenStore(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		logger.Debug("failed to set sqlite busy_timeout", zap.Error(err))
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		logger.Debug("failed to set sqlite journal_mode=WAL", zap.Error(err))
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	logger.Info("leads store opened", zap.String("path", path))
	return &Store{db: db, logger: logger}, nil
}

// Capture inserts the lead, updating name/platform when the email is
// already known. Satisfies Sink and dialogue.CaptureFunc.
func (s *Store) Capture(name, email, platform string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT INTO leads (id, name, email, platform, captured_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(email) DO UPDATE SET
		   name = excluded.name,
		   platform = excluded.platform,
		   captured_at = excluded.captured_at`,
		uuid.NewString(), name, email, platform, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to store lead: %w", err)
	}

	s.logger.Info("lead captured successfully",
		zap.String("name", name),
		zap.String("email", email),
		zap.String("platform", platform))
	return nil
}

// List returns all captured leads, newest first.
func (s *Store) List() ([]Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(
		`SELECT id, name, email, platform, captured_at
		 FROM leads ORDER BY captured_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}
	defer rows.Close()

	var out []Lead
	for rows.Next() {
		var l Lead
		var capturedAt string
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Platform, &capturedAt); err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339, capturedAt); err == nil {
			l.CapturedAt = ts
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
