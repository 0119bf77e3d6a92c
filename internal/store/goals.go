package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/anik54992/eduboost/internal/study"
)

// GoalsRepo persists the single row of user-configured target hours.
type GoalsRepo struct {
	db *sql.DB
}

// Get returns the stored goals, or the defaults when none are saved yet.
func (r *GoalsRepo) Get(ctx context.Context) (study.Goals, error) {
	var g study.Goals
	err := r.db.QueryRowContext(ctx,
		`SELECT daily, weekly, monthly FROM goals WHERE id = 1`,
	).Scan(&g.Daily, &g.Weekly, &g.Monthly)
	if errors.Is(err, sql.ErrNoRows) {
		return study.DefaultGoals(), nil
	}
	if err != nil {
		return study.Goals{}, fmt.Errorf("load goals: %w", err)
	}
	return g, nil
}

// Save stores the goals, replacing any previous values. Negative targets
// are clamped to zero.
func (r *GoalsRepo) Save(ctx context.Context, g study.Goals) error {
	if g.Daily < 0 {
		g.Daily = 0
	}
	if g.Weekly < 0 {
		g.Weekly = 0
	}
	if g.Monthly < 0 {
		g.Monthly = 0
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO goals (id, daily, weekly, monthly) VALUES (1, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET daily = excluded.daily,
		   weekly = excluded.weekly, monthly = excluded.monthly`,
		g.Daily, g.Weekly, g.Monthly)
	if err != nil {
		return fmt.Errorf("save goals: %w", err)
	}
	return nil
}
