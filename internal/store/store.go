// Package store is the SQLite data access layer for the edit-session log:
// each analysis run and its per-declaration verdicts, so a session's
// history of attempted patches can be reviewed later.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store wraps the session-log database.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database at dbPath with WAL mode enabled.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=30000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use in transactions.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Migrate creates the schema. Idempotent.
func (s *Store) Migrate() error {
	if _, err := s.db.Exec(schemaDDL); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS runs (
  id           INTEGER PRIMARY KEY,
  old_path     TEXT NOT NULL,
  new_path     TEXT NOT NULL,
  created_at   TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS changes (
  id                 INTEGER PRIMARY KEY,
  run_id             INTEGER NOT NULL REFERENCES runs(id),
  name               TEXT NOT NULL,
  kind               TEXT NOT NULL,
  method_like        BOOLEAN NOT NULL,
  old_accessibility  TEXT NOT NULL,
  new_accessibility  TEXT NOT NULL,
  old_async          BOOLEAN NOT NULL,
  new_async          BOOLEAN NOT NULL,
  old_iterator       BOOLEAN NOT NULL,
  new_iterator       BOOLEAN NOT NULL,
  body_changed       BOOLEAN NOT NULL,
  structural         BOOLEAN NOT NULL,
  fault              TEXT NOT NULL DEFAULT '',
  allowed            BOOLEAN NOT NULL,
  reason             TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_changes_run ON changes(run_id);
`

// InsertRun records a new analysis run and returns its ID.
func (s *Store) InsertRun(r *Run) (int64, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	res, err := s.db.Exec(
		`INSERT INTO runs (old_path, new_path, created_at) VALUES (?, ?, ?)`,
		r.OldPath, r.NewPath, r.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	return res.LastInsertId()
}

// InsertChange records one declaration's verdict under a run.
func (s *Store) InsertChange(c *Change) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO changes (
		   run_id, name, kind, method_like,
		   old_accessibility, new_accessibility,
		   old_async, new_async, old_iterator, new_iterator,
		   body_changed, structural, fault, allowed, reason
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.RunID, c.Name, c.Kind, c.MethodLike,
		c.OldAccessibility, c.NewAccessibility,
		c.OldAsync, c.NewAsync, c.OldIterator, c.NewIterator,
		c.BodyChanged, c.Structural, c.Fault, c.Allowed, c.Reason,
	)
	if err != nil {
		return 0, fmt.Errorf("insert change: %w", err)
	}
	return res.LastInsertId()
}

// Runs returns all recorded runs, newest first.
func (s *Store) Runs() ([]Run, error) {
	rows, err := s.db.Query(`SELECT id, old_path, new_path, created_at FROM runs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.OldPath, &r.NewPath, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// ChangesByRun returns a run's change rows in insertion order.
func (s *Store) ChangesByRun(runID int64) ([]Change, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, name, kind, method_like,
		        old_accessibility, new_accessibility,
		        old_async, new_async, old_iterator, new_iterator,
		        body_changed, structural, fault, allowed, reason
		   FROM changes WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("list changes: %w", err)
	}
	defer rows.Close()

	var changes []Change
	for rows.Next() {
		var c Change
		if err := rows.Scan(
			&c.ID, &c.RunID, &c.Name, &c.Kind, &c.MethodLike,
			&c.OldAccessibility, &c.NewAccessibility,
			&c.OldAsync, &c.NewAsync, &c.OldIterator, &c.NewIterator,
			&c.BodyChanged, &c.Structural, &c.Fault, &c.Allowed, &c.Reason,
		); err != nil {
			return nil, fmt.Errorf("scan change: %w", err)
		}
		changes = append(changes, c)
	}
	return changes, rows.Err()
}
