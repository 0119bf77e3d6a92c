// Package study defines the core domain types shared across the app:
// sessions, subjects, planner tasks, and study goals.
package study

import "time"

// Session is one committed, immutable record of time spent studying a
// subject (and optionally a chapter) on a given date. Sessions are created
// whole when a timer run ends and are never mutated afterwards.
type Session struct {
	ID        string
	SubjectID string
	ChapterID string // empty = general study
	StartTime time.Time
	Duration  int    // whole seconds, > 0
	Date      string // YYYY-MM-DD, local, fixed at commit time
}

// Chapter is a unit of a subject's curriculum. Progress is set directly
// by the user, not derived from sessions.
type Chapter struct {
	ID       string
	Name     string
	Progress int // 0-100
}

// Subject groups chapters and accumulates study time.
type Subject struct {
	ID       string
	Name     string
	Chapters []Chapter
}

// Task is a daily planner entry. Completion feeds the daily grade.
type Task struct {
	ID        string
	Title     string
	TimeLabel string // e.g. "10:00 AM"
	Date      string // YYYY-MM-DD
	Completed bool
	Score     int
}

// Goals holds user-configured target hours per window.
type Goals struct {
	Daily   float64
	Weekly  float64
	Monthly float64
}

// DefaultGoals matches the app's first-run targets.
func DefaultGoals() Goals {
	return Goals{Daily: 10, Weekly: 70, Monthly: 300}
}

// DateOf formats t as a local calendar date string. All date bucketing in
// the app compares these strings lexicographically, which is valid only
// because the format is zero-padded ISO.
func DateOf(t time.Time) string {
	return t.Format("2006-01-02")
}

// TaskScore is the fixed point value awarded per planner task.
const TaskScore = 10
