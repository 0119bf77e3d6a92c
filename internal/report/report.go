// Package report renders the daily report card as a standalone HTML page.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/anik54992/eduboost/internal/analytics"
	"github.com/anik54992/eduboost/internal/study"
)

// Data is everything the report template needs for one day.
type Data struct {
	Date        string
	Grade       string
	Hours       float64
	StreakDays  int
	TasksDone   int
	TasksTotal  int
	TaskRate    float64
	Windows     []analytics.WindowProgress
	Subjects    []analytics.SubjectHours
	GeneratedAt string
}

// Build assembles report data from the day's sessions, tasks, and goals.
func Build(sessions []study.Session, tasks []study.Task, subjects []study.Subject, goals study.Goals, now time.Time) Data {
	day := analytics.TodayReport(sessions, tasks, now)
	return Data{
		Date:        study.DateOf(now),
		Grade:       day.Grade,
		Hours:       day.Hours,
		StreakDays:  analytics.Streak(sessions, now),
		TasksDone:   day.CompletedTasks,
		TasksTotal:  day.TotalTasks,
		TaskRate:    day.TaskRate,
		Windows:     analytics.GoalProgress(sessions, goals, now),
		Subjects:    analytics.HoursBySubject(sessions, subjects),
		GeneratedAt: now.Format("2 January 2006, 3:04 PM"),
	}
}

// Render writes the report card HTML to w.
func Render(w io.Writer, data Data) error {
	if err := reportTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}
