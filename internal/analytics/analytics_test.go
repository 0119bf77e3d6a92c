package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anik54992/eduboost/internal/study"
)

var now = time.Date(2026, 3, 14, 20, 0, 0, 0, time.Local)

// sessionOn builds a committed session of h hours on the given day offset
// from now (0 = today, -1 = yesterday).
func sessionOn(dayOffset int, hours float64) study.Session {
	day := now.AddDate(0, 0, dayOffset)
	return study.Session{
		ID:        "s",
		SubjectID: "sub",
		StartTime: day,
		Duration:  int(hours * 3600),
		Date:      study.DateOf(day),
	}
}

func TestGoalProgressWindows(t *testing.T) {
	sessions := []study.Session{
		sessionOn(0, 5),   // today
		sessionOn(-3, 10), // in week + month
		sessionOn(-10, 8), // month only
		sessionOn(-40, 99), // outside all windows
	}
	goals := study.Goals{Daily: 10, Weekly: 20, Monthly: 40}

	wp := GoalProgress(sessions, goals, now)
	require.Len(t, wp, 3)

	assert.InDelta(t, 5, wp[0].CurrentHours, 1e-9)
	assert.InDelta(t, 50, wp[0].Percent, 1e-9)
	assert.Equal(t, StatusGrinding, wp[0].Status)

	assert.InDelta(t, 15, wp[1].CurrentHours, 1e-9)
	assert.InDelta(t, 75, wp[1].Percent, 1e-9)
	assert.Equal(t, StatusOnTrack, wp[1].Status)

	assert.InDelta(t, 23, wp[2].CurrentHours, 1e-9)
	assert.InDelta(t, 57.5, wp[2].Percent, 1e-9)
	assert.Equal(t, StatusGrinding, wp[2].Status)
}

func TestGoalPercentClampedTo100(t *testing.T) {
	sessions := []study.Session{sessionOn(0, 30)}
	wp := GoalProgress(sessions, study.Goals{Daily: 10, Weekly: 10, Monthly: 10}, now)
	for _, w := range wp {
		assert.LessOrEqual(t, w.Percent, 100.0)
		assert.GreaterOrEqual(t, w.Percent, 0.0)
		assert.Equal(t, StatusGoalMet, w.Status)
	}
}

func TestGoalZeroGoalDoesNotDivide(t *testing.T) {
	wp := GoalProgress(nil, study.Goals{}, now)
	for _, w := range wp {
		assert.Equal(t, StatusStarting, w.Status)
		assert.Zero(t, w.Percent)
	}

	wp = GoalProgress([]study.Session{sessionOn(0, 1)}, study.Goals{}, now)
	assert.Equal(t, StatusGoalMet, wp[0].Status)
	assert.InDelta(t, 100, wp[0].Percent, 1e-9)
}

func TestStreakConsecutiveDays(t *testing.T) {
	// Today and yesterday 7h each, day before 2h.
	sessions := []study.Session{
		sessionOn(0, 7),
		sessionOn(-1, 7),
		sessionOn(-2, 2),
	}
	assert.Equal(t, 2, Streak(sessions, now))
}

func TestStreakTodayNotMetStillWalksBackward(t *testing.T) {
	// Today 3h (below threshold), yesterday 8h: today contributes 0 but
	// the prior run is still reported.
	sessions := []study.Session{
		sessionOn(0, 3),
		sessionOn(-1, 8),
	}
	assert.Equal(t, 1, Streak(sessions, now))

	// No prior qualifying day at all.
	assert.Equal(t, 0, Streak([]study.Session{sessionOn(0, 3)}, now))
}

func TestStreakLongRun(t *testing.T) {
	var sessions []study.Session
	for i := 0; i < 30; i++ {
		sessions = append(sessions, sessionOn(-i, 6))
	}
	sessions = append(sessions, sessionOn(-30, 1))
	assert.Equal(t, 30, Streak(sessions, now))
}

func TestStreakSplitSessionsAccumulate(t *testing.T) {
	// Two 3h sessions on the same day together cross the 6h threshold.
	sessions := []study.Session{
		sessionOn(0, 3),
		sessionOn(0, 3),
	}
	assert.Equal(t, 1, Streak(sessions, now))
}

func TestGrade(t *testing.T) {
	tests := []struct {
		hours    float64
		taskRate float64
		want     string
	}{
		{12, 90, "A+"},
		{9, 75, "A"},
		{12, 75, "A"}, // hours enough for A+ but task rate is not
		{6, 50, "B"},
		{5, 0, "C"}, // fails B's task rate, hours>=4 holds
		{4, 100, "C"},
		{0.5, 100, "D"},
		{0, 100, "F"},
		{0, 0, "F"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Grade(tt.hours, tt.taskRate),
			"Grade(%v, %v)", tt.hours, tt.taskRate)
	}
}

func TestTaskRate(t *testing.T) {
	today := study.DateOf(now)
	tasks := []study.Task{
		{ID: "1", Date: today, Completed: true},
		{ID: "2", Date: today, Completed: false},
		{ID: "3", Date: today, Completed: true},
		{ID: "4", Date: "2020-01-01", Completed: true}, // other day, ignored
	}
	rate, completed, total := TaskRate(tasks, today)
	assert.InDelta(t, 66.666, rate, 0.01)
	assert.Equal(t, 2, completed)
	assert.Equal(t, 3, total)

	rate, _, total = TaskRate(nil, today)
	assert.Zero(t, rate)
	assert.Zero(t, total)
}

func TestTodayReport(t *testing.T) {
	today := study.DateOf(now)
	sessions := []study.Session{sessionOn(0, 9)}
	tasks := []study.Task{
		{ID: "1", Date: today, Completed: true},
		{ID: "2", Date: today, Completed: true},
		{ID: "3", Date: today, Completed: true},
		{ID: "4", Date: today, Completed: false},
	}
	rep := TodayReport(sessions, tasks, now)
	assert.Equal(t, "A", rep.Grade)
	assert.InDelta(t, 9, rep.Hours, 1e-9)
	assert.Equal(t, 3, rep.CompletedTasks)
	assert.Equal(t, 4, rep.TotalTasks)
}

func TestSubjectProgress(t *testing.T) {
	assert.Equal(t, 0, SubjectProgress(study.Subject{}))

	sub := study.Subject{Chapters: []study.Chapter{
		{Progress: 100}, {Progress: 50}, {Progress: 0},
	}}
	assert.Equal(t, 50, SubjectProgress(sub))

	sub = study.Subject{Chapters: []study.Chapter{
		{Progress: 33}, {Progress: 33}, {Progress: 34},
	}}
	assert.Equal(t, 33, SubjectProgress(sub))
}

func TestHoursBySubject(t *testing.T) {
	subjects := []study.Subject{
		{ID: "a", Name: "Physics"},
		{ID: "b", Name: "Botany"},
	}
	sessions := []study.Session{
		{SubjectID: "a", Duration: 7200, Date: "2026-03-10"},
		{SubjectID: "b", Duration: 3600, Date: "2026-03-11"},
		{SubjectID: "a", Duration: 3600, Date: "2026-03-12"},
		{SubjectID: "ghost", Duration: 3600, Date: "2026-03-12"}, // deleted subject
	}
	got := HoursBySubject(sessions, subjects)
	require.Len(t, got, 2)
	assert.Equal(t, "Physics", got[0].Name)
	assert.InDelta(t, 3.0, got[0].Hours, 1e-9)
	assert.InDelta(t, 1.0, got[1].Hours, 1e-9)
}

func TestWeekSeriesZeroFills(t *testing.T) {
	sessions := []study.Session{sessionOn(0, 2), sessionOn(-6, 1)}
	series := WeekSeries(sessions, now)
	require.Len(t, series, 7)
	assert.InDelta(t, 1.0, series[0].Hours, 1e-9)
	assert.InDelta(t, 2.0, series[6].Hours, 1e-9)
	for _, d := range series[1:6] {
		assert.Zero(t, d.Hours)
	}
}
