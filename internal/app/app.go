// Package app owns the root Bubble Tea model: the screen router, the
// shared frame, and global keys.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anik54992/eduboost/internal/analytics"
	"github.com/anik54992/eduboost/internal/router"
	"github.com/anik54992/eduboost/internal/screen"
	"github.com/anik54992/eduboost/internal/screens/home"
	"github.com/anik54992/eduboost/internal/store"
	"github.com/anik54992/eduboost/internal/tutor"
	"github.com/anik54992/eduboost/internal/ui/layout"
)

// headerTickMsg refreshes the header stats.
type headerTickMsg time.Time

const headerRefresh = 15 * time.Second

// AppModel is the root Bubble Tea model.
type AppModel struct {
	st     *store.Store
	router *router.Router
	width  int
	height int

	todaySeconds int
	streak       int
}

// newAppModel creates the root model with the home screen on the stack.
func newAppModel(st *store.Store, tutorSvc *tutor.Service) AppModel {
	m := AppModel{
		st:     st,
		router: router.New(home.New(st, tutorSvc)),
	}
	m.refreshHeaderStats()
	return m
}

// refreshHeaderStats recomputes the committed time and streak shown in the
// header. Live timer seconds are the timer screen's concern.
func (m *AppModel) refreshHeaderStats() {
	sessions, err := m.st.Sessions().All(context.Background())
	if err != nil {
		return
	}
	now := time.Now()
	m.todaySeconds = analytics.TodaySeconds(sessions, now)
	m.streak = analytics.Streak(sessions, now)
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), headerTickCmd())
}

func headerTickCmd() tea.Cmd {
	return tea.Tick(headerRefresh, func(t time.Time) tea.Msg {
		return headerTickMsg(t)
	})
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case headerTickMsg:
		m.refreshHeaderStats()
		return m, headerTickCmd()

	case router.PopScreenMsg:
		m.refreshHeaderStats()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if ec, ok := m.router.Active().(screen.EscConsumer); ok && ec.ConsumesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.todaySeconds, m.streak, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program. tutorSvc may be nil when no LLM
// provider is configured; the AI menu entries disable themselves.
func Run(st *store.Store, tutorSvc *tutor.Service) error {
	p := tea.NewProgram(newAppModel(st, tutorSvc))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
