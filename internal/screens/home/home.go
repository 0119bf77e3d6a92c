package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anik54992/eduboost/internal/analytics"
	"github.com/anik54992/eduboost/internal/router"
	"github.com/anik54992/eduboost/internal/screen"
	"github.com/anik54992/eduboost/internal/screens/planner"
	"github.com/anik54992/eduboost/internal/screens/stats"
	"github.com/anik54992/eduboost/internal/screens/studytimer"
	"github.com/anik54992/eduboost/internal/screens/subjects"
	"github.com/anik54992/eduboost/internal/screens/tutorchat"
	"github.com/anik54992/eduboost/internal/screens/videos"
	"github.com/anik54992/eduboost/internal/store"
	"github.com/anik54992/eduboost/internal/study"
	"github.com/anik54992/eduboost/internal/tutor"
	"github.com/anik54992/eduboost/internal/ui/components"
	"github.com/anik54992/eduboost/internal/ui/theme"
)

// HomeScreen is the dashboard: today's numbers, a quote, and navigation.
type HomeScreen struct {
	menu         components.Menu
	quote        string
	todaySeconds int
	streak       int
	grade        string
	tasksDone    int
	tasksTotal   int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen, loading today's stats from the store.
func New(st *store.Store, tutorSvc *tutor.Service) *HomeScreen {
	ctx := context.Background()
	now := time.Now()

	sessions, _ := st.Sessions().All(ctx)
	tasks, _ := st.Tasks().ByDate(ctx, study.DateOf(now))
	day := analytics.TodayReport(sessions, tasks, now)

	items := []components.MenuItem{
		{Label: "STUDY TIMER", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: studytimer.New(st)}
			}
		}},
		{Label: "SUBJECTS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: subjects.New(st)}
			}
		}},
		{Label: "PLANNER", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: planner.New(st)}
			}
		}},
		{Label: "ANALYTICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(st, tutorSvc)}
			}
		}},
		{Label: "AI TUTOR", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: tutorchat.New(st, tutorSvc)}
			}
		}, Disabled: tutorSvc == nil},
		{Label: "VIDEO LIBRARY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: videos.New(tutorSvc)}
			}
		}, Disabled: tutorSvc == nil},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:         components.NewMenu(items),
		quote:        quoteOfDay(now),
		todaySeconds: analytics.TodaySeconds(sessions, now),
		streak:       analytics.Streak(sessions, now),
		grade:        day.Grade,
		tasksDone:    day.CompletedTasks,
		tasksTotal:   day.TotalTasks,
	}
}

// quoteOfDay rotates through the quote list once per calendar day.
func quoteOfDay(now time.Time) string {
	return study.Quotes[now.YearDay()%len(study.Quotes)]
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("E D U B O O S T")
	sections = append(sections, title)

	quote := theme.Hint.Width(width).Align(lipgloss.Center).Render("“" + h.quote + "”")
	sections = append(sections, quote)

	sections = append(sections, h.renderStats(width))
	sections = append(sections, lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(h.menu.View()))

	content := strings.Join(sections, "\n\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) renderStats(width int) string {
	hours := float64(h.todaySeconds) / 3600
	stat := func(value, label string) string {
		return lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(value),
			theme.Subtitle.Render(label),
		)
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top,
		stat(fmt.Sprintf("%.1fh", hours), "Today"),
		"      ",
		stat(fmt.Sprintf("%d day", h.streak), "Streak"),
		"      ",
		stat(h.grade, "Grade"),
		"      ",
		stat(fmt.Sprintf("%d/%d", h.tasksDone, h.tasksTotal), "Tasks"),
	)

	box := theme.Card.Render(bar)
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(box)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
