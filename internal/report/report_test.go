package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anik54992/eduboost/internal/study"
)

var reportNow = time.Date(2026, 3, 14, 21, 0, 0, 0, time.Local)

func TestBuildAssemblesDayData(t *testing.T) {
	today := study.DateOf(reportNow)
	yesterday := study.DateOf(reportNow.AddDate(0, 0, -1))

	sessions := []study.Session{
		{ID: "s1", SubjectID: "phy", Duration: 7 * 3600, Date: today},
		{ID: "s2", SubjectID: "phy", Duration: 7 * 3600, Date: yesterday},
	}
	tasks := []study.Task{
		{ID: "t1", Title: "Revise vectors", Date: today, Completed: true},
		{ID: "t2", Title: "Solve 10 MCQs", Date: today, Completed: true},
		{ID: "t3", Title: "Read chapter 4", Date: today},
	}
	subjects := []study.Subject{{ID: "phy", Name: "Physics 1st Paper"}}

	data := Build(sessions, tasks, subjects, study.DefaultGoals(), reportNow)

	assert.Equal(t, today, data.Date)
	assert.Equal(t, "B", data.Grade)
	assert.InDelta(t, 7.0, data.Hours, 1e-9)
	assert.Equal(t, 2, data.StreakDays)
	assert.Equal(t, 2, data.TasksDone)
	assert.Equal(t, 3, data.TasksTotal)
	require.Len(t, data.Windows, 3)
	require.Len(t, data.Subjects, 1)
	assert.Equal(t, "Physics 1st Paper", data.Subjects[0].Name)
}

func TestRenderProducesHTML(t *testing.T) {
	data := Build(
		[]study.Session{{ID: "s1", SubjectID: "phy", Duration: 5 * 3600, Date: study.DateOf(reportNow)}},
		nil,
		[]study.Subject{{ID: "phy", Name: "Physics 1st Paper"}},
		study.DefaultGoals(),
		reportNow,
	)

	var b strings.Builder
	require.NoError(t, Render(&b, data))
	html := b.String()

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "Physics 1st Paper")
	assert.Contains(t, html, data.Grade)
	assert.Contains(t, html, "Day Streak")
}

func TestRenderEscapesSubjectNames(t *testing.T) {
	data := Build(
		[]study.Session{{ID: "s1", SubjectID: "x", Duration: 3600, Date: study.DateOf(reportNow)}},
		nil,
		[]study.Subject{{ID: "x", Name: "<script>alert(1)</script>"}},
		study.DefaultGoals(),
		reportNow,
	)

	var b strings.Builder
	require.NoError(t, Render(&b, data))
	assert.NotContains(t, b.String(), "<script>alert(1)</script>")
}
