package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/anik54992/eduboost/internal/study"
)

// SubjectHours is cumulative time for one subject, for distribution charts
// and tutor insight prompts.
type SubjectHours struct {
	SubjectID string
	Name      string
	Hours     float64
}

// HoursBySubject totals session time per subject, ordered by hours
// descending. Sessions pointing at deleted subjects are skipped.
func HoursBySubject(sessions []study.Session, subjects []study.Subject) []SubjectHours {
	names := make(map[string]string, len(subjects))
	for _, sub := range subjects {
		names[sub.ID] = sub.Name
	}

	secs := make(map[string]int)
	for _, s := range sessions {
		if _, ok := names[s.SubjectID]; ok {
			secs[s.SubjectID] += s.Duration
		}
	}

	out := make([]SubjectHours, 0, len(secs))
	for id, total := range secs {
		out = append(out, SubjectHours{
			SubjectID: id,
			Name:      names[id],
			Hours:     math.Round(float64(total)/360) / 10,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hours > out[j].Hours })
	return out
}

// SubjectProgress is the rounded average of a subject's chapter progress
// values. A subject with no chapters is 0.
func SubjectProgress(sub study.Subject) int {
	if len(sub.Chapters) == 0 {
		return 0
	}
	total := 0
	for _, ch := range sub.Chapters {
		total += ch.Progress
	}
	return int(math.Round(float64(total) / float64(len(sub.Chapters))))
}

// DayHours is one bar of the trailing-week chart.
type DayHours struct {
	Date  string // YYYY-MM-DD
	Hours float64
}

// WeekSeries returns daily totals for the last 7 days, oldest first, with
// zero-filled gaps.
func WeekSeries(sessions []study.Session, now time.Time) []DayHours {
	totals := DailyTotals(sessions)
	out := make([]DayHours, 0, 7)
	for i := 6; i >= 0; i-- {
		date := study.DateOf(now.AddDate(0, 0, -i))
		out = append(out, DayHours{
			Date:  date,
			Hours: math.Round(float64(totals[date])/360) / 10,
		})
	}
	return out
}
