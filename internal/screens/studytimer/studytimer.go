// Package studytimer is the interactive timer screen. It owns a timer
// engine and persists every session the engine commits; a 1-second
// tea.Tick drives the engine while a run is active.
package studytimer

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/anik54992/eduboost/internal/screen"
	"github.com/anik54992/eduboost/internal/store"
	"github.com/anik54992/eduboost/internal/study"
	"github.com/anik54992/eduboost/internal/timer"
	"github.com/anik54992/eduboost/internal/ui/layout"
)

// tickMsg is sent every second while the timer runs.
type tickMsg time.Time

// sessionSavedMsg confirms a session append completed.
type sessionSavedMsg struct {
	Err error
}

// TimerScreen drives the timer engine and persists committed sessions.
type TimerScreen struct {
	st     *store.Store
	engine *timer.Engine

	subjects  []study.Subject
	subjIdx   int
	chapIdx   int // 0 = general study, 1..n = chapter n-1

	committedToday int // seconds persisted for today before live time
	confirmSwitch  bool
	errMsg         string
}

var _ screen.Screen = (*TimerScreen)(nil)
var _ screen.KeyHintProvider = (*TimerScreen)(nil)
var _ screen.EscConsumer = (*TimerScreen)(nil)

// ConsumesEsc keeps Esc inside the screen while the mode-switch
// confirmation is showing.
func (s *TimerScreen) ConsumesEsc() bool {
	return s.confirmSwitch
}

// New creates the timer screen and loads subjects and today's total.
func New(st *store.Store) *TimerScreen {
	ctx := context.Background()

	subjects, _ := st.Subjects().All(ctx)
	today, _ := st.Sessions().SecondsOn(ctx, study.DateOf(time.Now()))

	s := &TimerScreen{
		st:             st,
		engine:         timer.New(nil),
		subjects:       subjects,
		committedToday: today,
	}
	s.applyTarget()
	return s
}

func (s *TimerScreen) Init() tea.Cmd {
	return nil
}

func (s *TimerScreen) Title() string {
	return "Study Timer"
}

func (s *TimerScreen) KeyHints() []layout.KeyHint {
	if s.confirmSwitch {
		return []layout.KeyHint{
			{Key: "Y", Description: "Switch & stop"},
			{Key: "N", Description: "Keep going"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Space", Description: "Start/Pause"},
		{Key: "X", Description: "Stop"},
		{Key: "M", Description: "Mode"},
	}
	if !s.engine.Running() {
		hints = append(hints,
			layout.KeyHint{Key: "S/C", Description: "Subject/Chapter"},
		)
		if s.engine.Mode() == timer.ModePomodoro {
			hints = append(hints, layout.KeyHint{Key: "+/-", Description: "Focus length"})
		}
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (s *TimerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return s.handleTick()
	case sessionSavedMsg:
		if msg.Err != nil {
			s.errMsg = "Could not save session: " + msg.Err.Error()
		}
		return s, nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *TimerScreen) handleTick() (screen.Screen, tea.Cmd) {
	sess := s.engine.Tick()

	var cmds []tea.Cmd
	if sess != nil {
		cmds = append(cmds, s.persist(*sess))
	}
	if s.engine.Running() {
		cmds = append(cmds, tickCmd())
	}
	return s, tea.Batch(cmds...)
}

func (s *TimerScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.confirmSwitch {
		switch msg.String() {
		case "y", "Y":
			s.confirmSwitch = false
			return s, s.switchMode()
		case "n", "N", "esc":
			s.confirmSwitch = false
		}
		return s, nil
	}

	switch msg.String() {
	case " ", "space":
		wasRunning := s.engine.Running()
		s.engine.Toggle()
		if !wasRunning && s.engine.Running() {
			return s, tickCmd()
		}
	case "x", "X":
		if sess := s.engine.Stop(); sess != nil {
			return s, s.persist(*sess)
		}
	case "m", "M":
		if s.engine.Running() {
			s.confirmSwitch = true
			return s, nil
		}
		return s, s.switchMode()
	case "s", "S":
		if !s.engine.Running() && len(s.subjects) > 0 {
			s.subjIdx = (s.subjIdx + 1) % len(s.subjects)
			s.chapIdx = 0
			s.applyTarget()
		}
	case "c", "C":
		if !s.engine.Running() && len(s.subjects) > 0 {
			s.chapIdx = (s.chapIdx + 1) % (len(s.subjects[s.subjIdx].Chapters) + 1)
			s.applyTarget()
		}
	case "+", "=":
		s.engine.SetFocusMinutes(s.engine.FocusMinutes() + 5)
	case "-", "_":
		s.engine.SetFocusMinutes(s.engine.FocusMinutes() - 5)
	}
	return s, nil
}

// switchMode flips stopwatch/pomodoro, persisting whatever the stop
// contract commits.
func (s *TimerScreen) switchMode() tea.Cmd {
	target := timer.ModePomodoro
	if s.engine.Mode() == timer.ModePomodoro {
		target = timer.ModeStopwatch
	}
	if sess := s.engine.SwitchMode(target); sess != nil {
		return s.persist(*sess)
	}
	return nil
}

// applyTarget points the engine at the picked subject/chapter.
func (s *TimerScreen) applyTarget() {
	if len(s.subjects) == 0 {
		return
	}
	sub := s.subjects[s.subjIdx]
	chapterID := ""
	if s.chapIdx > 0 && s.chapIdx <= len(sub.Chapters) {
		chapterID = sub.Chapters[s.chapIdx-1].ID
	}
	s.engine.SetTarget(sub.ID, chapterID)
}

// persist appends a committed session and folds it into today's total.
func (s *TimerScreen) persist(sess study.Session) tea.Cmd {
	if sess.Date == study.DateOf(time.Now()) {
		s.committedToday += sess.Duration
	}
	return func() tea.Msg {
		err := s.st.Sessions().Append(context.Background(), sess)
		return sessionSavedMsg{Err: err}
	}
}

// todayTotal is committed time plus the live run.
func (s *TimerScreen) todayTotal() int {
	return s.committedToday + s.engine.LiveSeconds()
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
