package studytimer

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/anik54992/eduboost/internal/timer"
	"github.com/anik54992/eduboost/internal/ui/layout"
	"github.com/anik54992/eduboost/internal/ui/theme"
)

func (s *TimerScreen) View(width, height int) string {
	if s.confirmSwitch {
		return s.renderConfirm(width, height)
	}

	var sections []string

	sections = append(sections, s.renderModeTabs())
	sections = append(sections, s.renderClock())
	sections = append(sections, s.renderTarget())
	sections = append(sections, s.renderDayLine())

	if s.errMsg != "" {
		sections = append(sections, theme.Bad.Render(s.errMsg))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (s *TimerScreen) renderModeTabs() string {
	stopwatch := "Stopwatch"
	pomodoro := "Pomodoro"
	if s.engine.Mode() == timer.ModePomodoro {
		return theme.Unselected.Render(stopwatch) + "   " + theme.Selected.Render("["+pomodoro+"]")
	}
	return theme.Selected.Render("["+stopwatch+"]") + "   " + theme.Unselected.Render(pomodoro)
}

func (s *TimerScreen) renderClock() string {
	var face string
	var caption string

	if s.engine.Mode() == timer.ModeStopwatch {
		face = layout.FormatDuration(s.engine.Elapsed())
		caption = "elapsed"
	} else {
		face = layout.FormatDuration(s.engine.Remaining())
		switch s.engine.Phase() {
		case timer.PhaseFocus:
			caption = fmt.Sprintf("focus · %d min blocks", s.engine.FocusMinutes())
		case timer.PhaseShortBreak:
			caption = "short break"
		case timer.PhaseLongBreak:
			caption = "long break"
		}
	}

	state := "paused"
	stateStyle := theme.Hint
	if s.engine.Running() {
		state = "running"
		stateStyle = theme.Good
	}

	clock := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(face)

	body := lipgloss.JoinVertical(lipgloss.Center,
		clock,
		theme.Subtitle.Render(caption),
		stateStyle.Render(state),
	)
	return theme.Card.Render(body)
}

func (s *TimerScreen) renderTarget() string {
	if len(s.subjects) == 0 {
		return theme.Hint.Render("No subjects yet. Add one from the Subjects screen.")
	}
	sub := s.subjects[s.subjIdx]
	chapter := "General study"
	if s.chapIdx > 0 && s.chapIdx <= len(sub.Chapters) {
		chapter = sub.Chapters[s.chapIdx-1].Name
	}
	return theme.Body.Render(sub.Name) + theme.Subtitle.Render("  ·  "+chapter)
}

func (s *TimerScreen) renderDayLine() string {
	total := s.todayTotal()
	status := timer.StatusFor(total)

	statusStyle := theme.Subtitle
	switch status {
	case timer.StatusGoalMet:
		statusStyle = theme.Good
	case timer.StatusOverLimit:
		statusStyle = theme.Bad
	}

	line := fmt.Sprintf("Today %s / goal %s", layout.FormatDuration(total),
		layout.FormatDuration(timer.MinGoalSeconds))
	out := theme.Body.Render(line) + "   " + statusStyle.Render(string(status))

	if s.engine.Mode() == timer.ModePomodoro && s.engine.FocusCount() > 0 {
		out += theme.Subtitle.Render(fmt.Sprintf("   ◼ %d blocks", s.engine.FocusCount()))
	}
	return out
}

func (s *TimerScreen) renderConfirm(width, height int) string {
	target := "Pomodoro"
	if s.engine.Mode() == timer.ModePomodoro {
		target = "Stopwatch"
	}

	var warning string
	if s.engine.Mode() == timer.ModeStopwatch {
		warning = "The current stopwatch run will be saved."
	} else {
		warning = "The current focus block will be discarded."
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render("Switch to "+target+"?"),
		"",
		theme.Body.Render(warning),
		"",
		theme.Hint.Render("Y to switch · N to keep going"),
	)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(theme.Card.Render(body))
}
