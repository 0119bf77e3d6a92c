// Package tutorchat is the conversational AI tutor. Each exchange sends
// the full history plus a snapshot of the student's study data, and the
// reply streams in as a single async message.
package tutorchat

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anik54992/eduboost/internal/analytics"
	"github.com/anik54992/eduboost/internal/llm"
	"github.com/anik54992/eduboost/internal/screen"
	"github.com/anik54992/eduboost/internal/store"
	"github.com/anik54992/eduboost/internal/study"
	"github.com/anik54992/eduboost/internal/tutor"
	"github.com/anik54992/eduboost/internal/ui/components"
	"github.com/anik54992/eduboost/internal/ui/layout"
	"github.com/anik54992/eduboost/internal/ui/theme"
)

// answerMsg delivers the tutor's reply.
type answerMsg struct {
	Text string
}

// ChatScreen holds a conversation with the tutor.
type ChatScreen struct {
	st       *store.Store
	tutorSvc *tutor.Service
	sctx     tutor.StudyContext

	history []llm.Message
	waiting bool
	scroll  int

	input components.TextInput
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates the chat screen with a fresh study snapshot.
func New(st *store.Store, tutorSvc *tutor.Service) *ChatScreen {
	s := &ChatScreen{
		st:       st,
		tutorSvc: tutorSvc,
		input:    components.NewTextInput("Ask me anything about your studies...", false, 300),
	}
	s.sctx = buildStudyContext(st)
	return s
}

func buildStudyContext(st *store.Store) tutor.StudyContext {
	ctx := context.Background()
	now := time.Now()

	sessions, _ := st.Sessions().All(ctx)
	subjects, _ := st.Subjects().All(ctx)
	tasks, _ := st.Tasks().ByDate(ctx, study.DateOf(now))

	day := analytics.TodayReport(sessions, tasks, now)
	sctx := tutor.StudyContext{
		Date:       day.Date,
		TodayHours: day.Hours,
		StreakDays: analytics.Streak(sessions, now),
		Grade:      day.Grade,
		TasksDone:  day.CompletedTasks,
		TasksTotal: day.TotalTasks,
	}
	for _, sh := range analytics.HoursBySubject(sessions, subjects) {
		sctx.SubjectTime = append(sctx.SubjectTime, tutor.SubjectHours{
			Subject: sh.Name,
			Hours:   sh.Hours,
		})
	}
	return sctx
}

func (s *ChatScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *ChatScreen) Title() string {
	return "AI Tutor"
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "PgUp/PgDn", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answerMsg:
		s.waiting = false
		s.history = append(s.history, llm.Message{Role: llm.RoleAssistant, Content: msg.Text})
		s.scroll = 0
		return s, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return s, s.send()
		case "pgup":
			s.scroll++
			return s, nil
		case "pgdown":
			if s.scroll > 0 {
				s.scroll--
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// send appends the question to the history and fires the async ask.
func (s *ChatScreen) send() tea.Cmd {
	if s.waiting {
		return nil
	}
	question := strings.TrimSpace(s.input.Value())
	if question == "" {
		return nil
	}

	s.history = append(s.history, llm.Message{Role: llm.RoleUser, Content: question})
	s.input = components.NewTextInput("Ask me anything about your studies...", false, 300)
	s.waiting = true
	s.scroll = 0

	history := make([]llm.Message, len(s.history))
	copy(history, s.history)
	sctx := s.sctx
	svc := s.tutorSvc

	return tea.Batch(s.input.Init(), func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		return answerMsg{Text: svc.Chat(ctx, history, sctx)}
	})
}

func (s *ChatScreen) View(width, height int) string {
	var lines []string

	if len(s.history) == 0 {
		lines = append(lines,
			theme.Hint.Render("  Hi! I'm your study tutor. Ask about any topic,"),
			theme.Hint.Render("  or ask how your week is going."))
	}

	bubbleWidth := min(width-8, 72)
	for _, m := range s.history {
		lines = append(lines, "", renderMessage(m, bubbleWidth))
	}
	if s.waiting {
		lines = append(lines, "", theme.Hint.Render("  Thinking..."))
	}

	inputHeight := 3
	transcript := fitTranscript(lines, height-inputHeight, s.scroll)

	var b strings.Builder
	b.WriteString(transcript)
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render("  ❯ " + s.input.View()))

	return lipgloss.NewStyle().Width(width).Height(height).Render(b.String())
}

func renderMessage(m llm.Message, width int) string {
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(width).Render(m.Content)
	if m.Role == llm.RoleUser {
		tag := theme.Selected.Render("You")
		return fmt.Sprintf("  %s\n%s", tag, indent(body, 2))
	}
	tag := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Tutor")
	return fmt.Sprintf("  %s\n%s", tag, indent(body, 2))
}

// fitTranscript keeps the newest lines visible, offset by scroll pages of
// five lines each.
func fitTranscript(lines []string, maxRows, scroll int) string {
	var rows []string
	for _, l := range lines {
		rows = append(rows, strings.Split(l, "\n")...)
	}
	if maxRows < 1 {
		maxRows = 1
	}

	end := len(rows) - scroll*5
	if end > len(rows) {
		end = len(rows)
	}
	if end < 0 {
		end = 0
	}
	start := end - maxRows
	if start < 0 {
		start = 0
	}
	return strings.Join(rows[start:end], "\n")
}

func indent(text string, n int) string {
	pad := strings.Repeat(" ", n)
	return pad + strings.ReplaceAll(text, "\n", "\n"+pad)
}
