package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/anik54992/eduboost/internal/study"
)

// SessionRepo provides append and read access to the session log. The log
// is append-only: there is deliberately no update or delete here, and the
// timer engine's commit step is the only writer.
type SessionRepo struct {
	db *sql.DB
}

// Append records one committed session.
func (r *SessionRepo) Append(ctx context.Context, s study.Session) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, subject_id, chapter_id, start_ms, duration_secs, date)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.SubjectID, s.ChapterID, s.StartTime.UnixMilli(), s.Duration, s.Date,
	)
	if err != nil {
		return fmt.Errorf("append session: %w", err)
	}
	return nil
}

// All returns every session, oldest first. Rows that fail to scan are
// skipped rather than failing the whole load.
func (r *SessionRepo) All(ctx context.Context) ([]study.Session, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, subject_id, chapter_id, start_ms, duration_secs, date
		 FROM sessions ORDER BY start_ms`)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []study.Session
	for rows.Next() {
		var s study.Session
		var startMs int64
		if err := rows.Scan(&s.ID, &s.SubjectID, &s.ChapterID, &startMs, &s.Duration, &s.Date); err != nil {
			continue
		}
		s.StartTime = time.UnixMilli(startMs)
		out = append(out, s)
	}
	return out, rows.Err()
}

// BySubject returns sessions for one subject, oldest first.
func (r *SessionRepo) BySubject(ctx context.Context, subjectID string) ([]study.Session, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, subject_id, chapter_id, start_ms, duration_secs, date
		 FROM sessions WHERE subject_id = ? ORDER BY start_ms`, subjectID)
	if err != nil {
		return nil, fmt.Errorf("query subject sessions: %w", err)
	}
	defer rows.Close()

	var out []study.Session
	for rows.Next() {
		var s study.Session
		var startMs int64
		if err := rows.Scan(&s.ID, &s.SubjectID, &s.ChapterID, &startMs, &s.Duration, &s.Date); err != nil {
			continue
		}
		s.StartTime = time.UnixMilli(startMs)
		out = append(out, s)
	}
	return out, rows.Err()
}

// SecondsOn totals committed seconds for one calendar date.
func (r *SessionRepo) SecondsOn(ctx context.Context, date string) (int, error) {
	var secs int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(duration_secs), 0) FROM sessions WHERE date = ?`, date,
	).Scan(&secs)
	if err != nil {
		return 0, fmt.Errorf("sum day seconds: %w", err)
	}
	return secs, nil
}
