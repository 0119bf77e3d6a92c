// Package analytics derives read-side metrics from the append-only session
// log: goal progress, streaks, daily grades, and per-subject rollups. All
// functions are pure and recomputed freely; sessions are immutable once
// appended so there is no staleness hazard beyond the latest append.
package analytics

import (
	"time"

	"github.com/anik54992/eduboost/internal/study"
)

// GoalStatus buckets a window's progress percentage.
type GoalStatus string

const (
	StatusGoalMet  GoalStatus = "Goal Met"
	StatusOnTrack  GoalStatus = "On Track"
	StatusGrinding GoalStatus = "Grinding"
	StatusStarting GoalStatus = "Starting"
)

// WindowProgress reports one goal window.
type WindowProgress struct {
	Label        string  // "Daily Goal", "Weekly Goal", "Monthly Goal"
	Period       string  // "Today", "7 Days", "30 Days"
	CurrentHours float64
	GoalHours    float64
	Percent      float64 // clamped to [0, 100]
	Status       GoalStatus
}

// GoalProgress computes progress for the three goal windows: today, the
// trailing 7 days, and the trailing 30 days (both inclusive of today).
// Window membership is a lexicographic date-string comparison, valid
// because dates are zero-padded ISO.
func GoalProgress(sessions []study.Session, goals study.Goals, now time.Time) []WindowProgress {
	today := study.DateOf(now)
	weekFrom := study.DateOf(now.AddDate(0, 0, -6))
	monthFrom := study.DateOf(now.AddDate(0, 0, -29))

	return []WindowProgress{
		windowProgress("Daily Goal", "Today", hoursBetween(sessions, today, today), goals.Daily),
		windowProgress("Weekly Goal", "7 Days", hoursBetween(sessions, weekFrom, today), goals.Weekly),
		windowProgress("Monthly Goal", "30 Days", hoursBetween(sessions, monthFrom, today), goals.Monthly),
	}
}

func windowProgress(label, period string, current, goal float64) WindowProgress {
	wp := WindowProgress{
		Label:        label,
		Period:       period,
		CurrentHours: current,
		GoalHours:    goal,
	}

	// A zero goal must not divide; treat any progress as met.
	if goal <= 0 {
		if current > 0 {
			wp.Percent = 100
			wp.Status = StatusGoalMet
		} else {
			wp.Status = StatusStarting
		}
		return wp
	}

	percent := current / goal * 100
	if percent > 100 {
		percent = 100
	}
	wp.Percent = percent

	switch {
	case percent >= 100:
		wp.Status = StatusGoalMet
	case percent >= 70:
		wp.Status = StatusOnTrack
	case percent >= 30:
		wp.Status = StatusGrinding
	default:
		wp.Status = StatusStarting
	}
	return wp
}

func hoursBetween(sessions []study.Session, from, to string) float64 {
	var secs int
	for _, s := range sessions {
		if s.Date >= from && s.Date <= to {
			secs += s.Duration
		}
	}
	return float64(secs) / 3600
}
