package analytics

import (
	"time"

	"github.com/anik54992/eduboost/internal/study"
)

// DayReport is the material behind the daily report card.
type DayReport struct {
	Date           string
	Hours          float64
	TaskRate       float64 // 0-100
	CompletedTasks int
	TotalTasks     int
	Grade          string
}

// Grade maps today's hours and task completion rate to a letter grade.
// Thresholds are evaluated in order; first match wins.
func Grade(hours, taskRate float64) string {
	switch {
	case hours >= 12 && taskRate >= 90:
		return "A+"
	case hours >= 8 && taskRate >= 70:
		return "A"
	case hours >= 6 && taskRate >= 50:
		return "B"
	case hours >= 4:
		return "C"
	case hours > 0:
		return "D"
	default:
		return "F"
	}
}

// TaskRate is the completion percentage of tasks dated date. A day with no
// tasks rates 0.
func TaskRate(tasks []study.Task, date string) (rate float64, completed, total int) {
	for _, t := range tasks {
		if t.Date != date {
			continue
		}
		total++
		if t.Completed {
			completed++
		}
	}
	if total == 0 {
		return 0, 0, 0
	}
	return float64(completed) / float64(total) * 100, completed, total
}

// TodayReport assembles the daily report card inputs.
func TodayReport(sessions []study.Session, tasks []study.Task, now time.Time) DayReport {
	date := study.DateOf(now)
	hours := float64(TodaySeconds(sessions, now)) / 3600
	rate, completed, total := TaskRate(tasks, date)
	return DayReport{
		Date:           date,
		Hours:          hours,
		TaskRate:       rate,
		CompletedTasks: completed,
		TotalTasks:     total,
		Grade:          Grade(hours, rate),
	}
}
