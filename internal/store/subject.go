package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/anik54992/eduboost/internal/study"
)

// SubjectRepo manages subjects and their chapters.
type SubjectRepo struct {
	db *sql.DB
}

// All returns subjects in position order, each with its chapters loaded.
func (r *SubjectRepo) All(ctx context.Context) ([]study.Subject, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name FROM subjects ORDER BY position, name`)
	if err != nil {
		return nil, fmt.Errorf("query subjects: %w", err)
	}
	defer rows.Close()

	var subjects []study.Subject
	index := make(map[string]int)
	for rows.Next() {
		var sub study.Subject
		if err := rows.Scan(&sub.ID, &sub.Name); err != nil {
			continue
		}
		index[sub.ID] = len(subjects)
		subjects = append(subjects, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	chRows, err := r.db.QueryContext(ctx,
		`SELECT id, subject_id, name, progress FROM chapters ORDER BY position, name`)
	if err != nil {
		return nil, fmt.Errorf("query chapters: %w", err)
	}
	defer chRows.Close()

	for chRows.Next() {
		var ch study.Chapter
		var subjectID string
		if err := chRows.Scan(&ch.ID, &subjectID, &ch.Name, &ch.Progress); err != nil {
			continue
		}
		if i, ok := index[subjectID]; ok {
			subjects[i].Chapters = append(subjects[i].Chapters, ch)
		}
	}
	return subjects, chRows.Err()
}

// Create adds a subject with no chapters. Blank names are rejected.
func (r *SubjectRepo) Create(ctx context.Context, name string) (*study.Subject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("subject name is required")
	}

	sub := study.Subject{ID: uuid.New().String(), Name: name}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO subjects (id, name, position)
		 SELECT ?, ?, COALESCE(MAX(position), 0) + 1 FROM subjects`,
		sub.ID, sub.Name)
	if err != nil {
		return nil, fmt.Errorf("create subject: %w", err)
	}
	return &sub, nil
}

// Rename updates a subject's name. Blank names are ignored.
func (r *SubjectRepo) Rename(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	_, err := r.db.ExecContext(ctx, `UPDATE subjects SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("rename subject: %w", err)
	}
	return nil
}

// Delete removes a subject and, via cascade, its chapters. Past sessions
// keep their subject reference; analytics skip dangling ids.
func (r *SubjectRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM subjects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete subject: %w", err)
	}
	return nil
}

// AddChapter appends a chapter to a subject.
func (r *SubjectRepo) AddChapter(ctx context.Context, subjectID, name string) (*study.Chapter, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("chapter name is required")
	}

	ch := study.Chapter{ID: uuid.New().String(), Name: name}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO chapters (id, subject_id, name, progress, position)
		 SELECT ?, ?, ?, 0, COALESCE(MAX(position), 0) + 1
		 FROM chapters WHERE subject_id = ?`,
		ch.ID, subjectID, ch.Name, subjectID)
	if err != nil {
		return nil, fmt.Errorf("add chapter: %w", err)
	}
	return &ch, nil
}

// RenameChapter updates a chapter's name. Blank names are ignored.
func (r *SubjectRepo) RenameChapter(ctx context.Context, chapterID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	_, err := r.db.ExecContext(ctx, `UPDATE chapters SET name = ? WHERE id = ?`, name, chapterID)
	if err != nil {
		return fmt.Errorf("rename chapter: %w", err)
	}
	return nil
}

// DeleteChapter removes a chapter.
func (r *SubjectRepo) DeleteChapter(ctx context.Context, chapterID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM chapters WHERE id = ?`, chapterID)
	if err != nil {
		return fmt.Errorf("delete chapter: %w", err)
	}
	return nil
}

// SetChapterProgress sets a chapter's progress, clamped to 0-100. Progress
// is user-set, never derived.
func (r *SubjectRepo) SetChapterProgress(ctx context.Context, chapterID string, progress int) error {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE chapters SET progress = ? WHERE id = ?`, progress, chapterID)
	if err != nil {
		return fmt.Errorf("set chapter progress: %w", err)
	}
	return nil
}

// SeedDefaults populates the default curriculum when no subjects exist.
func (r *SubjectRepo) SeedDefaults(ctx context.Context) error {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM subjects`).Scan(&count); err != nil {
		return fmt.Errorf("count subjects: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	for pos, name := range study.DefaultSubjects {
		subID := uuid.New().String()
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO subjects (id, name, position) VALUES (?, ?, ?)`,
			subID, name, pos); err != nil {
			return fmt.Errorf("seed subject %q: %w", name, err)
		}
		for i := 1; i <= study.DefaultChapterCount; i++ {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO chapters (id, subject_id, name, progress, position)
				 VALUES (?, ?, ?, 0, ?)`,
				uuid.New().String(), subID, fmt.Sprintf("Chapter %d", i), i); err != nil {
				return fmt.Errorf("seed chapter: %w", err)
			}
		}
	}
	return tx.Commit()
}
