// Package subjects is the curriculum manager: subjects on the left level,
// chapters with their progress one level deeper.
package subjects

import (
	"context"
	"fmt"
	"strings"

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

// level is which list the cursor is in.
type level int

const (
	levelSubjects level = iota
	levelChapters
)

const progressStep = 10

// inputMode says what the text input, when open, is editing.
type inputMode int

const (
	inputNone inputMode = iota
	inputAdd
	inputRename
)

// SubjectsScreen lists subjects and drills into chapters.
type SubjectsScreen struct {
	st *store.Store

	subjects []study.Subject
	level    level
	subIdx   int
	chapIdx  int

	editing inputMode
	input   components.TextInput
	errMsg  string
}

var _ screen.Screen = (*SubjectsScreen)(nil)
var _ screen.KeyHintProvider = (*SubjectsScreen)(nil)
var _ screen.EscConsumer = (*SubjectsScreen)(nil)

// ConsumesEsc keeps Esc inside the screen while a name is being edited or
// while in the chapter list, so backing out is level by level.
func (s *SubjectsScreen) ConsumesEsc() bool {
	return s.editing != inputNone || s.level == levelChapters
}

// New creates the subjects screen and loads the curriculum.
func New(st *store.Store) *SubjectsScreen {
	s := &SubjectsScreen{st: st}
	s.reload()
	return s
}

func (s *SubjectsScreen) reload() {
	subjects, err := s.st.Subjects().All(context.Background())
	if err != nil {
		s.errMsg = "Could not load subjects: " + err.Error()
		return
	}
	s.subjects = subjects
	if s.subIdx >= len(s.subjects) {
		s.subIdx = max(0, len(s.subjects)-1)
	}
	if s.level == levelChapters && len(s.subjects) > 0 {
		if s.chapIdx >= len(s.subjects[s.subIdx].Chapters) {
			s.chapIdx = max(0, len(s.subjects[s.subIdx].Chapters)-1)
		}
	}
}

func (s *SubjectsScreen) Init() tea.Cmd {
	return nil
}

func (s *SubjectsScreen) Title() string {
	if s.level == levelChapters && len(s.subjects) > 0 {
		return s.subjects[s.subIdx].Name
	}
	return "Subjects"
}

func (s *SubjectsScreen) KeyHints() []layout.KeyHint {
	if s.editing != inputNone {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if s.level == levelChapters {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Select"},
			{Key: "+/-", Description: "Progress"},
			{Key: "A", Description: "Add chapter"},
			{Key: "R", Description: "Rename"},
			{Key: "D", Description: "Delete"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Enter", Description: "Chapters"},
		{Key: "A", Description: "Add subject"},
		{Key: "R", Description: "Rename"},
		{Key: "D", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SubjectsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.editing != inputNone {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.editing != inputNone {
		return s.handleInputKey(kmsg)
	}

	switch kmsg.String() {
	case "up", "k":
		s.moveCursor(-1)
	case "down", "j":
		s.moveCursor(1)
	case "enter":
		if s.level == levelSubjects && len(s.subjects) > 0 {
			s.level = levelChapters
			s.chapIdx = 0
		}
	case "esc":
		if s.level == levelChapters {
			s.level = levelSubjects
			return s, nil
		}
	case "a", "A":
		s.editing = inputAdd
		placeholder := "New subject name"
		if s.level == levelChapters {
			placeholder = "New chapter name"
		}
		s.input = components.NewTextInput(placeholder, false, 60)
		return s, s.input.Init()
	case "r", "R":
		if name, ok := s.selectedName(); ok {
			s.editing = inputRename
			s.input = components.NewTextInput("Rename "+name, false, 60)
			return s, s.input.Init()
		}
	case "d", "D":
		s.deleteSelected()
	case "+", "=":
		s.adjustProgress(progressStep)
	case "-", "_":
		s.adjustProgress(-progressStep)
	}
	return s, nil
}

func (s *SubjectsScreen) handleInputKey(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "enter":
		name := strings.TrimSpace(s.input.Value())
		mode := s.editing
		s.editing = inputNone
		if name == "" {
			return s, nil
		}
		ctx := context.Background()
		var err error
		switch {
		case mode == inputAdd && s.level == levelSubjects:
			_, err = s.st.Subjects().Create(ctx, name)
		case mode == inputAdd:
			_, err = s.st.Subjects().AddChapter(ctx, s.subjects[s.subIdx].ID, name)
		case s.level == levelSubjects:
			err = s.st.Subjects().Rename(ctx, s.subjects[s.subIdx].ID, name)
		default:
			err = s.st.Subjects().RenameChapter(ctx, s.subjects[s.subIdx].Chapters[s.chapIdx].ID, name)
		}
		if err != nil {
			s.errMsg = "Could not save: " + err.Error()
		} else {
			s.errMsg = ""
			s.reload()
		}
		return s, nil
	case "esc":
		s.editing = inputNone
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(kmsg)
	return s, cmd
}

// selectedName returns the name under the cursor, false when the list at
// the current level is empty.
func (s *SubjectsScreen) selectedName() (string, bool) {
	if len(s.subjects) == 0 {
		return "", false
	}
	if s.level == levelSubjects {
		return s.subjects[s.subIdx].Name, true
	}
	chapters := s.subjects[s.subIdx].Chapters
	if len(chapters) == 0 {
		return "", false
	}
	return chapters[s.chapIdx].Name, true
}

func (s *SubjectsScreen) moveCursor(delta int) {
	if s.level == levelSubjects {
		s.subIdx = clampIndex(s.subIdx+delta, len(s.subjects))
	} else if len(s.subjects) > 0 {
		s.chapIdx = clampIndex(s.chapIdx+delta, len(s.subjects[s.subIdx].Chapters))
	}
}

func (s *SubjectsScreen) deleteSelected() {
	ctx := context.Background()
	var err error
	if s.level == levelSubjects {
		if len(s.subjects) == 0 {
			return
		}
		err = s.st.Subjects().Delete(ctx, s.subjects[s.subIdx].ID)
	} else {
		chapters := s.subjects[s.subIdx].Chapters
		if len(chapters) == 0 {
			return
		}
		err = s.st.Subjects().DeleteChapter(ctx, chapters[s.chapIdx].ID)
	}
	if err != nil {
		s.errMsg = "Could not delete: " + err.Error()
		return
	}
	s.errMsg = ""
	s.reload()
}

func (s *SubjectsScreen) adjustProgress(delta int) {
	if s.level != levelChapters || len(s.subjects) == 0 {
		return
	}
	chapters := s.subjects[s.subIdx].Chapters
	if len(chapters) == 0 {
		return
	}
	ch := chapters[s.chapIdx]
	if err := s.st.Subjects().SetChapterProgress(context.Background(), ch.ID, ch.Progress+delta); err != nil {
		s.errMsg = "Could not update progress: " + err.Error()
		return
	}
	s.errMsg = ""
	s.reload()
}

func (s *SubjectsScreen) View(width, height int) string {
	var lines []string

	if s.level == levelSubjects {
		lines = s.renderSubjects(width)
	} else {
		lines = s.renderChapters(width)
	}

	if s.editing != inputNone {
		lines = append(lines, "", theme.Body.Render("  "+s.input.View()))
	}
	if s.errMsg != "" {
		lines = append(lines, "", theme.Bad.Render("  "+s.errMsg))
	}

	content := strings.Join(lines, "\n")
	return lipgloss.NewStyle().Width(width).Height(height).Render(content)
}

func (s *SubjectsScreen) renderSubjects(width int) []string {
	if len(s.subjects) == 0 {
		return []string{theme.Hint.Render("  No subjects yet. Press A to add one.")}
	}

	lines := make([]string, 0, len(s.subjects))
	for i, sub := range s.subjects {
		progress := analytics.SubjectProgress(sub)
		bar := components.NewProgressBar("", float64(progress)/100, true, 30).View()

		label := fmt.Sprintf("%-28s %2d chapters  ", truncateName(sub.Name, 28), len(sub.Chapters))
		if i == s.subIdx {
			lines = append(lines, theme.Selected.Render("  ▸ "+label)+bar)
		} else {
			lines = append(lines, theme.Unselected.Render("    "+label)+bar)
		}
	}
	return lines
}

func (s *SubjectsScreen) renderChapters(width int) []string {
	sub := s.subjects[s.subIdx]
	if len(sub.Chapters) == 0 {
		return []string{theme.Hint.Render("  No chapters yet. Press A to add one.")}
	}

	lines := make([]string, 0, len(sub.Chapters))
	for i, ch := range sub.Chapters {
		bar := components.NewProgressBar("", float64(ch.Progress)/100, true, 30).View()
		label := fmt.Sprintf("%-28s ", truncateName(ch.Name, 28))
		if i == s.chapIdx {
			lines = append(lines, theme.Selected.Render("  ▸ "+label)+bar)
		} else {
			lines = append(lines, theme.Unselected.Render("    "+label)+bar)
		}
	}
	return lines
}

func truncateName(name string, n int) string {
	if len(name) <= n {
		return name
	}
	return name[:n-1] + "…"
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return max(0, n-1)
	}
	return i
}
