// Package planner is the daily task list. Completion feeds the daily
// grade, so toggling a task here changes the report card.
package planner

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
	"github.com/anik54992/eduboost/internal/ui/components"
	"github.com/anik54992/eduboost/internal/ui/layout"
	"github.com/anik54992/eduboost/internal/ui/theme"
)

// PlannerScreen shows and edits today's tasks.
type PlannerScreen struct {
	st *store.Store

	date   string
	tasks  []study.Task
	cursor int

	adding bool
	input  components.TextInput
	errMsg string
}

var _ screen.Screen = (*PlannerScreen)(nil)
var _ screen.KeyHintProvider = (*PlannerScreen)(nil)
var _ screen.EscConsumer = (*PlannerScreen)(nil)

// New creates the planner screen for today.
func New(st *store.Store) *PlannerScreen {
	s := &PlannerScreen{
		st:   st,
		date: study.DateOf(time.Now()),
	}
	s.reload()
	return s
}

func (s *PlannerScreen) reload() {
	tasks, err := s.st.Tasks().ByDate(context.Background(), s.date)
	if err != nil {
		s.errMsg = "Could not load tasks: " + err.Error()
		return
	}
	s.tasks = tasks
	if s.cursor >= len(s.tasks) {
		s.cursor = max(0, len(s.tasks)-1)
	}
}

func (s *PlannerScreen) Init() tea.Cmd {
	return nil
}

func (s *PlannerScreen) Title() string {
	return "Planner"
}

func (s *PlannerScreen) ConsumesEsc() bool {
	return s.adding
}

func (s *PlannerScreen) KeyHints() []layout.KeyHint {
	if s.adding {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Space", Description: "Toggle"},
		{Key: "A", Description: "Add task"},
		{Key: "D", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PlannerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.adding {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.adding {
		return s.handleAddKey(kmsg)
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.tasks)-1 {
			s.cursor++
		}
	case " ", "space", "enter":
		s.toggleSelected()
	case "a", "A":
		s.adding = true
		s.input = components.NewTextInput("Task title", false, 80)
		return s, s.input.Init()
	case "d", "D":
		s.deleteSelected()
	}
	return s, nil
}

func (s *PlannerScreen) handleAddKey(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "enter":
		title := strings.TrimSpace(s.input.Value())
		s.adding = false
		if title == "" {
			return s, nil
		}
		timeLabel := time.Now().Format("3:04 PM")
		if _, err := s.st.Tasks().Add(context.Background(), title, timeLabel, s.date); err != nil {
			s.errMsg = "Could not add task: " + err.Error()
		} else {
			s.errMsg = ""
			s.reload()
		}
		return s, nil
	case "esc":
		s.adding = false
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(kmsg)
	return s, cmd
}

func (s *PlannerScreen) toggleSelected() {
	if len(s.tasks) == 0 {
		return
	}
	if err := s.st.Tasks().Toggle(context.Background(), s.tasks[s.cursor].ID); err != nil {
		s.errMsg = "Could not toggle task: " + err.Error()
		return
	}
	s.errMsg = ""
	s.reload()
}

func (s *PlannerScreen) deleteSelected() {
	if len(s.tasks) == 0 {
		return
	}
	if err := s.st.Tasks().Delete(context.Background(), s.tasks[s.cursor].ID); err != nil {
		s.errMsg = "Could not delete task: " + err.Error()
		return
	}
	s.errMsg = ""
	s.reload()
}

func (s *PlannerScreen) View(width, height int) string {
	var lines []string

	rate, done, total := analytics.TaskRate(s.tasks, s.date)
	summary := fmt.Sprintf("  %s  ·  %d/%d done (%.0f%%)  ·  %d points",
		s.date, done, total, rate, done*study.TaskScore)
	lines = append(lines, theme.Subtitle.Render(summary), "")

	if len(s.tasks) == 0 {
		lines = append(lines, theme.Hint.Render("  Nothing planned today. Press A to add a task."))
	}

	for i, task := range s.tasks {
		check := "[ ]"
		style := theme.Unselected
		if task.Completed {
			check = "[✓]"
			style = theme.Good
		}
		line := fmt.Sprintf("%s %s  %s", check, task.TimeLabel, task.Title)
		if i == s.cursor {
			lines = append(lines, theme.Selected.Render("  ▸ "+line))
		} else {
			lines = append(lines, style.Render("    "+line))
		}
	}

	if s.adding {
		lines = append(lines, "", theme.Body.Render("  "+s.input.View()))
	}
	if s.errMsg != "" {
		lines = append(lines, "", theme.Bad.Render("  "+s.errMsg))
	}

	return lipgloss.NewStyle().Width(width).Height(height).Render(strings.Join(lines, "\n"))
}
