package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteFileName is the database file created under the base path.
const SQLiteFileName = "mindtrackr.db"

const createSlotsTable = `
CREATE TABLE IF NOT EXISTS slots (
	name       TEXT PRIMARY KEY,
	payload    BLOB NOT NULL,
	updated_at TEXT NOT NULL
)`

// SQLiteSlot keeps the payload as a row in a local SQLite database.
type SQLiteSlot struct {
	db   *sql.DB
	name string
	path string
}

var _ Slot = (*SQLiteSlot)(nil)

// NewSQLiteSlot opens the database at path and ensures the schema exists.
func NewSQLiteSlot(path, name string) (*SQLiteSlot, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	if path == "" {
		return nil, errors.New("store: database path unknown")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure database dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}
	// One writer keeps WAL contention out of the picture.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createSlotsTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}
	return &SQLiteSlot{db: db, name: name, path: path}, nil
}

func (s *SQLiteSlot) Name() string {
	return s.name
}

// Path is the database file.
func (s *SQLiteSlot) Path() string {
	return s.path
}

func (s *SQLiteSlot) Read(ctx context.Context) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM slots WHERE name = ?`, s.name).Scan(&payload)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrEmpty
	case errors.Is(err, sql.ErrConnDone):
		return nil, ErrClosed
	case err != nil:
		return nil, fmt.Errorf("store: read %s: %w", s.name, err)
	}
	return payload, nil
}

func (s *SQLiteSlot) Write(ctx context.Context, data []byte) error {
	if data == nil {
		data = []byte{}
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO slots (name, payload, updated_at) VALUES (?, ?, ?)
ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		s.name, data, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		if errors.Is(err, sql.ErrConnDone) {
			return ErrClosed
		}
		return fmt.Errorf("store: write %s: %w", s.name, err)
	}
	return nil
}

func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}
