// Package store persists all tracked data in a single SQLite database:
// the append-only session log, subjects/chapters, planner tasks, goals,
// and LLM request events.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the database handle and provides access to repositories.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite database at dsn, applies recommended pragmas,
// and creates the schema if missing.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Sessions() *SessionRepo  { return &SessionRepo{db: s.db} }
func (s *Store) Subjects() *SubjectRepo  { return &SubjectRepo{db: s.db} }
func (s *Store) Tasks() *TaskRepo        { return &TaskRepo{db: s.db} }
func (s *Store) Goals() *GoalsRepo       { return &GoalsRepo{db: s.db} }
func (s *Store) LLMEvents() *LLMEventRepo { return &LLMEventRepo{db: s.db} }

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func createSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id            TEXT PRIMARY KEY,
			subject_id    TEXT NOT NULL,
			chapter_id    TEXT NOT NULL DEFAULT '',
			start_ms      INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL CHECK (duration_secs > 0),
			date          TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_date ON sessions (date)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_subject ON sessions (subject_id)`,
		`CREATE TABLE IF NOT EXISTS subjects (
			id       TEXT PRIMARY KEY,
			name     TEXT NOT NULL,
			position INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS chapters (
			id         TEXT PRIMARY KEY,
			subject_id TEXT NOT NULL REFERENCES subjects (id) ON DELETE CASCADE,
			name       TEXT NOT NULL,
			progress   INTEGER NOT NULL DEFAULT 0 CHECK (progress BETWEEN 0 AND 100),
			position   INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_chapters_subject ON chapters (subject_id)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id         TEXT PRIMARY KEY,
			title      TEXT NOT NULL,
			time_label TEXT NOT NULL DEFAULT '',
			date       TEXT NOT NULL,
			completed  INTEGER NOT NULL DEFAULT 0,
			score      INTEGER NOT NULL DEFAULT 10
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_date ON tasks (date)`,
		`CREATE TABLE IF NOT EXISTS goals (
			id      INTEGER PRIMARY KEY CHECK (id = 1),
			daily   REAL NOT NULL,
			weekly  REAL NOT NULL,
			monthly REAL NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS llm_events (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			provider      TEXT NOT NULL,
			model         TEXT NOT NULL,
			purpose       TEXT NOT NULL,
			input_tokens  INTEGER NOT NULL DEFAULT 0,
			output_tokens INTEGER NOT NULL DEFAULT 0,
			latency_ms    INTEGER NOT NULL DEFAULT 0,
			success       INTEGER NOT NULL DEFAULT 0,
			error_message TEXT NOT NULL DEFAULT '',
			request_body  TEXT NOT NULL DEFAULT '',
			response_body TEXT NOT NULL DEFAULT ''
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("exec schema: %w", err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. EDUBOOST_DB environment variable
// 2. $XDG_DATA_HOME/eduboost/eduboost.db
// 3. ~/.local/share/eduboost/eduboost.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("EDUBOOST_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "eduboost", "eduboost.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
