package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/anik54992/eduboost/internal/study"
)

// TaskRepo manages planner tasks.
type TaskRepo struct {
	db *sql.DB
}

// Add creates a task for the given date with the fixed score value.
func (r *TaskRepo) Add(ctx context.Context, title, timeLabel, date string) (*study.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("task title is required")
	}

	t := study.Task{
		ID:        uuid.New().String(),
		Title:     title,
		TimeLabel: timeLabel,
		Date:      date,
		Score:     study.TaskScore,
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (id, title, time_label, date, completed, score)
		 VALUES (?, ?, ?, ?, 0, ?)`,
		t.ID, t.Title, t.TimeLabel, t.Date, t.Score)
	if err != nil {
		return nil, fmt.Errorf("add task: %w", err)
	}
	return &t, nil
}

// All returns every task, newest date first.
func (r *TaskRepo) All(ctx context.Context) ([]study.Task, error) {
	return r.query(ctx, `SELECT id, title, time_label, date, completed, score
		FROM tasks ORDER BY date DESC, time_label`)
}

// ByDate returns tasks for one date.
func (r *TaskRepo) ByDate(ctx context.Context, date string) ([]study.Task, error) {
	return r.query(ctx, `SELECT id, title, time_label, date, completed, score
		FROM tasks WHERE date = ? ORDER BY time_label`, date)
}

// Toggle flips a task's completed flag.
func (r *TaskRepo) Toggle(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET completed = 1 - completed WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("toggle task: %w", err)
	}
	return nil
}

// Delete removes a task.
func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

func (r *TaskRepo) query(ctx context.Context, q string, args ...any) ([]study.Task, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var out []study.Task
	for rows.Next() {
		var t study.Task
		var completed int
		if err := rows.Scan(&t.ID, &t.Title, &t.TimeLabel, &t.Date, &completed, &t.Score); err != nil {
			continue
		}
		t.Completed = completed != 0
		out = append(out, t)
	}
	return out, rows.Err()
}
