package analytics

import (
	"time"

	"github.com/anik54992/eduboost/internal/study"
)

const (
	// StreakThresholdSeconds is the minimum studied per day for the day
	// to count toward the streak.
	StreakThresholdSeconds = 6 * 3600

	// streakMaxDays caps the backward walk against corrupted data.
	streakMaxDays = 3650
)

// Streak counts consecutive qualifying days ending at or before today.
// Today is counted only if it already meets the threshold; when it does
// not, the walk still starts from yesterday, so an unbroken prior run
// keeps reporting its length until the day fully lapses.
func Streak(sessions []study.Session, now time.Time) int {
	totals := DailyTotals(sessions)

	streak := 0
	if totals[study.DateOf(now)] >= StreakThresholdSeconds {
		streak++
	}

	day := now.AddDate(0, 0, -1)
	for {
		if totals[study.DateOf(day)] < StreakThresholdSeconds {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)

		if streak > streakMaxDays {
			break
		}
	}
	return streak
}

// DailyTotals groups committed seconds by calendar date.
func DailyTotals(sessions []study.Session) map[string]int {
	totals := make(map[string]int, len(sessions))
	for _, s := range sessions {
		totals[s.Date] += s.Duration
	}
	return totals
}

// TodaySeconds sums committed seconds dated today.
func TodaySeconds(sessions []study.Session, now time.Time) int {
	today := study.DateOf(now)
	var secs int
	for _, s := range sessions {
		if s.Date == today {
			secs += s.Duration
		}
	}
	return secs
}
