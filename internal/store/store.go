// Package store archives completed sampling sessions in a local sqlite
// database so past runs can be listed later. Archive failures never fail a
// run; callers downgrade them to warnings.
package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/luki/cputemp/internal/session"
)

const (
	dirName    = ".cputemp"
	fileName   = "history.db"
	timeLayout = time.RFC3339
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
  id         INTEGER PRIMARY KEY,
  started_at TEXT    NOT NULL,
  seconds    INTEGER NOT NULL,
  unit       TEXT    NOT NULL,
  min_temp   REAL    NOT NULL,
  max_temp   REAL    NOT NULL,
  avg_temp   REAL    NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at);
`

const (
	insertSessionSQL = `INSERT INTO sessions (started_at, seconds, unit, min_temp, max_temp, avg_temp)
VALUES (?, ?, ?, ?, ?, ?)`
	listSessionsSQL = `SELECT started_at, seconds, unit, min_temp, max_temp, avg_temp
FROM sessions ORDER BY started_at DESC LIMIT ?`
)

// Archive is the session history database.
type Archive struct {
	db *sql.DB
}

// Session is one archived run.
type Session struct {
	Started time.Time
	Seconds int
	Unit    string
	Min     float64
	Max     float64
	Avg     float64
}

// DefaultPath returns ~/.cputemp/history.db.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, dirName, fileName)
}

// Open opens (creating if needed) the archive at path, making the parent
// directory on demand.
func Open(path string) (*Archive, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create archive dir: %w", err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("close archive after schema failure", "error", closeErr)
		}
		return nil, fmt.Errorf("init archive schema: %w", err)
	}
	return &Archive{db: db}, nil
}

// OpenMemory opens an in-memory archive, used by tests.
func OpenMemory() (*Archive, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Archive{db: db}, nil
}

// Record inserts one completed session.
func (a *Archive) Record(sum session.Summary) error {
	_, err := a.db.Exec(insertSessionSQL,
		sum.Started.UTC().Format(timeLayout),
		sum.Seconds,
		sum.Unit.String(),
		sum.Min,
		sum.Max,
		sum.Avg,
	)
	if err != nil {
		return fmt.Errorf("record session: %w", err)
	}
	return nil
}

// Recent returns up to limit sessions, newest first.
func (a *Archive) Recent(limit int) ([]Session, error) {
	rows, err := a.db.Query(listSessionsSQL, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("close sessions rows", "error", err)
		}
	}()

	var out []Session
	for rows.Next() {
		var s Session
		var ts string
		if err := rows.Scan(&ts, &s.Seconds, &s.Unit, &s.Min, &s.Max, &s.Avg); err != nil {
			return nil, err
		}
		t, err := time.Parse(timeLayout, ts)
		if err != nil {
			return nil, fmt.Errorf("parse timestamp %q: %w", ts, err)
		}
		s.Started = t.Local()
		out = append(out, s)
	}
	return out, rows.Err()
}

// Close closes the underlying database.
func (a *Archive) Close() error {
	return a.db.Close()
}
