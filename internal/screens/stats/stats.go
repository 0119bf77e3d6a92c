// Package stats is the analytics screen: goal windows, the weekly chart,
// subject distribution, today's grade, and AI insights fetched in the
// background.
package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anik54992/eduboost/internal/analytics"
	"github.com/anik54992/eduboost/internal/screen"
	"github.com/anik54992/eduboost/internal/store"
	"github.com/anik54992/eduboost/internal/study"
	"github.com/anik54992/eduboost/internal/tutor"
	"github.com/anik54992/eduboost/internal/ui/components"
	"github.com/anik54992/eduboost/internal/ui/layout"
	"github.com/anik54992/eduboost/internal/ui/theme"
)

// insightsMsg delivers the AI analysis when it arrives.
type insightsMsg struct {
	Insights *tutor.Insights
	Err      error
}

// goalField is which goal the edit prompt is for.
type goalField int

const (
	goalNone goalField = iota
	goalDaily
	goalWeekly
	goalMonthly
)

// StatsScreen renders analytics and study goals.
type StatsScreen struct {
	st       *store.Store
	tutorSvc *tutor.Service

	windows  []analytics.WindowProgress
	week     []analytics.DayHours
	subjects []analytics.SubjectHours
	day      analytics.DayReport
	streak   int
	goals    study.Goals

	insights        *tutor.Insights
	insightsPending bool
	insightsErr     bool

	editing goalField
	input   components.TextInput
	errMsg  string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)
var _ screen.EscConsumer = (*StatsScreen)(nil)

// New creates the stats screen and computes all metrics.
func New(st *store.Store, tutorSvc *tutor.Service) *StatsScreen {
	s := &StatsScreen{st: st, tutorSvc: tutorSvc}
	s.reload()
	return s
}

func (s *StatsScreen) reload() {
	ctx := context.Background()
	now := time.Now()

	sessions, _ := s.st.Sessions().All(ctx)
	subjects, _ := s.st.Subjects().All(ctx)
	tasks, _ := s.st.Tasks().ByDate(ctx, study.DateOf(now))
	goals, err := s.st.Goals().Get(ctx)
	if err != nil {
		goals = study.DefaultGoals()
	}

	s.goals = goals
	s.windows = analytics.GoalProgress(sessions, goals, now)
	s.week = analytics.WeekSeries(sessions, now)
	s.subjects = analytics.HoursBySubject(sessions, subjects)
	s.day = analytics.TodayReport(sessions, tasks, now)
	s.streak = analytics.Streak(sessions, now)
}

func (s *StatsScreen) Init() tea.Cmd {
	if s.tutorSvc == nil {
		return nil
	}
	s.insightsPending = true
	return s.fetchInsights()
}

func (s *StatsScreen) fetchInsights() tea.Cmd {
	sctx := s.studyContext()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		out, err := s.tutorSvc.Insights(ctx, sctx)
		return insightsMsg{Insights: out, Err: err}
	}
}

func (s *StatsScreen) studyContext() tutor.StudyContext {
	sctx := tutor.StudyContext{
		Date:       s.day.Date,
		TodayHours: s.day.Hours,
		StreakDays: s.streak,
		Grade:      s.day.Grade,
		TasksDone:  s.day.CompletedTasks,
		TasksTotal: s.day.TotalTasks,
	}
	for _, sh := range s.subjects {
		sctx.SubjectTime = append(sctx.SubjectTime, tutor.SubjectHours{
			Subject: sh.Name,
			Hours:   sh.Hours,
		})
	}
	return sctx
}

func (s *StatsScreen) Title() string {
	return "Analytics"
}

func (s *StatsScreen) ConsumesEsc() bool {
	return s.editing != goalNone
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	if s.editing != goalNone {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "G", Description: "Edit goals"},
		{Key: "R", Description: "Refresh insights"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case insightsMsg:
		s.insightsPending = false
		s.insightsErr = msg.Err != nil
		s.insights = msg.Insights
		return s, nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *StatsScreen) handleKey(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.editing != goalNone {
		return s.handleGoalKey(kmsg)
	}

	switch kmsg.String() {
	case "g", "G":
		s.editing = goalDaily
		s.input = components.NewTextInput(fmt.Sprintf("Daily goal hours (now %.0f)", s.goals.Daily), true, 4)
		return s, s.input.Init()
	case "r", "R":
		if s.tutorSvc != nil && !s.insightsPending {
			s.insightsPending = true
			return s, s.fetchInsights()
		}
	}
	return s, nil
}

func (s *StatsScreen) handleGoalKey(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "esc":
		s.editing = goalNone
		return s, nil
	case "enter":
		if v, err := s.input.NumericValue(); err == nil {
			switch s.editing {
			case goalDaily:
				s.goals.Daily = float64(v)
			case goalWeekly:
				s.goals.Weekly = float64(v)
			case goalMonthly:
				s.goals.Monthly = float64(v)
			}
		}
		switch s.editing {
		case goalDaily:
			s.editing = goalWeekly
			s.input = components.NewTextInput(fmt.Sprintf("Weekly goal hours (now %.0f)", s.goals.Weekly), true, 4)
			return s, s.input.Init()
		case goalWeekly:
			s.editing = goalMonthly
			s.input = components.NewTextInput(fmt.Sprintf("Monthly goal hours (now %.0f)", s.goals.Monthly), true, 4)
			return s, s.input.Init()
		case goalMonthly:
			s.editing = goalNone
			if err := s.st.Goals().Save(context.Background(), s.goals); err != nil {
				s.errMsg = "Could not save goals: " + err.Error()
			} else {
				s.errMsg = ""
				s.reload()
			}
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(kmsg)
	return s, cmd
}

func (s *StatsScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, s.renderGoals(width))
	sections = append(sections, s.renderWeek())
	if len(s.subjects) > 0 {
		sections = append(sections, s.renderSubjects())
	}
	sections = append(sections, s.renderInsights(width))

	if s.editing != goalNone {
		sections = append(sections, theme.Body.Render("  "+s.input.View()))
	}
	if s.errMsg != "" {
		sections = append(sections, theme.Bad.Render("  "+s.errMsg))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Render(strings.Join(sections, "\n\n"))
}

func (s *StatsScreen) renderGoals(width int) string {
	lines := []string{theme.Title.Align(lipgloss.Left).Render("  Goals")}
	for _, wp := range s.windows {
		bar := components.NewProgressBar("", wp.Percent/100, false, 24).View()
		lines = append(lines, fmt.Sprintf("  %-13s %s  %5.1fh / %.0fh  %s",
			wp.Label, bar, wp.CurrentHours, wp.GoalHours,
			theme.Subtitle.Render(string(wp.Status))))
	}
	lines = append(lines, theme.Subtitle.Render(
		fmt.Sprintf("  Today: grade %s · %d day streak", s.day.Grade, s.streak)))
	return strings.Join(lines, "\n")
}

func (s *StatsScreen) renderWeek() string {
	lines := []string{theme.Title.Align(lipgloss.Left).Render("  Last 7 Days")}
	maxHours := 0.1
	for _, d := range s.week {
		if d.Hours > maxHours {
			maxHours = d.Hours
		}
	}
	for _, d := range s.week {
		barLen := int(d.Hours / maxHours * 30)
		bar := theme.ProgressFilled.Render(strings.Repeat(" ", barLen))
		day := d.Date[5:] // MM-DD
		lines = append(lines, fmt.Sprintf("  %s %s %.1fh", theme.Subtitle.Render(day), bar, d.Hours))
	}
	return strings.Join(lines, "\n")
}

func (s *StatsScreen) renderSubjects() string {
	lines := []string{theme.Title.Align(lipgloss.Left).Render("  Time by Subject")}
	show := s.subjects
	if len(show) > 6 {
		show = show[:6]
	}
	for _, sh := range show {
		lines = append(lines, fmt.Sprintf("  %-30s %5.1fh", sh.Name, sh.Hours))
	}
	return strings.Join(lines, "\n")
}

func (s *StatsScreen) renderInsights(width int) string {
	header := theme.Title.Align(lipgloss.Left).Render("  AI Insights")

	switch {
	case s.tutorSvc == nil:
		return header + "\n" + theme.Hint.Render("  Configure an LLM API key to enable insights.")
	case s.insightsPending:
		return header + "\n" + theme.Hint.Render("  Analyzing your study data...")
	case s.insightsErr || s.insights == nil:
		return header + "\n" + theme.Hint.Render("  Insights unavailable right now. Press R to retry.")
	}

	lines := []string{header}
	if len(s.insights.WeakSubjects) > 0 {
		lines = append(lines, "  "+theme.Bad.Render("Needs work: ")+strings.Join(s.insights.WeakSubjects, ", "))
	}
	if len(s.insights.StrongSubjects) > 0 {
		lines = append(lines, "  "+theme.Good.Render("Going strong: ")+strings.Join(s.insights.StrongSubjects, ", "))
	}
	rec := lipgloss.NewStyle().Foreground(theme.Text).Width(width - 4).Render(s.insights.Recommendation)
	lines = append(lines, "", "  "+rec)
	return strings.Join(lines, "\n")
}
