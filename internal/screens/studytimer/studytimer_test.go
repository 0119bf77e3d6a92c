package studytimer

import (
	"context"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anik54992/eduboost/internal/store"
	"github.com/anik54992/eduboost/internal/timer"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "timer.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func key(s string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: rune(s[0]), Text: s}
}

func TestSpaceStartsTickLoop(t *testing.T) {
	st := openTestStore(t)
	s := New(st)

	_, cmd := s.Update(key(" "))
	assert.True(t, s.engine.Running())
	assert.NotNil(t, cmd, "expected a tick command after start")
}

func TestTickAdvancesStopwatch(t *testing.T) {
	st := openTestStore(t)
	s := New(st)

	s.Update(key(" "))
	for range 5 {
		s.Update(tickMsg{})
	}
	assert.Equal(t, 5, s.engine.Elapsed())
	assert.Equal(t, 5, s.engine.LiveSeconds())
}

func TestStopPersistsSession(t *testing.T) {
	st := openTestStore(t)
	require.NoError(t, st.Subjects().SeedDefaults(context.Background()))

	s := New(st)
	s.Update(key(" "))
	for range 3 {
		s.Update(tickMsg{})
	}

	_, cmd := s.Update(key("x"))
	require.NotNil(t, cmd, "stop with elapsed time should persist")

	msg := cmd()
	saved, ok := msg.(sessionSavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.Err)

	sessions, err := st.Sessions().All(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, 3, sessions[0].Duration)
	assert.Equal(t, 3, s.committedToday)
}

func TestStopWithZeroElapsedDoesNothing(t *testing.T) {
	st := openTestStore(t)
	s := New(st)

	_, cmd := s.Update(key("x"))
	assert.Nil(t, cmd)

	sessions, err := st.Sessions().All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestModeSwitchWhileRunningAsksConfirmation(t *testing.T) {
	st := openTestStore(t)
	s := New(st)

	s.Update(key(" "))
	s.Update(tickMsg{})
	s.Update(key("m"))
	assert.True(t, s.confirmSwitch)
	assert.Equal(t, timer.ModeStopwatch, s.engine.Mode())

	// Declining keeps the run going.
	s.Update(key("n"))
	assert.False(t, s.confirmSwitch)
	assert.Equal(t, timer.ModeStopwatch, s.engine.Mode())
	assert.True(t, s.engine.Running())
}

func TestModeSwitchConfirmCommitsStopwatchRun(t *testing.T) {
	st := openTestStore(t)
	s := New(st)

	s.Update(key(" "))
	for range 4 {
		s.Update(tickMsg{})
	}
	s.Update(key("m"))
	_, cmd := s.Update(key("y"))
	require.NotNil(t, cmd)

	msg := cmd()
	saved, ok := msg.(sessionSavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.Err)

	assert.Equal(t, timer.ModePomodoro, s.engine.Mode())
	sessions, err := st.Sessions().All(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, 4, sessions[0].Duration)
}

func TestModeSwitchWhileIdleIsImmediate(t *testing.T) {
	st := openTestStore(t)
	s := New(st)

	s.Update(key("m"))
	assert.False(t, s.confirmSwitch)
	assert.Equal(t, timer.ModePomodoro, s.engine.Mode())
	assert.Equal(t, timer.DefaultFocusMinutes*60, s.engine.Remaining())
}

func TestFocusMinutesAdjustIdleOnly(t *testing.T) {
	st := openTestStore(t)
	s := New(st)
	s.Update(key("m")) // pomodoro

	s.Update(key("+"))
	assert.Equal(t, 30, s.engine.FocusMinutes())
	assert.Equal(t, 30*60, s.engine.Remaining())

	s.Update(key(" "))
	s.Update(key("+"))
	assert.Equal(t, 30, s.engine.FocusMinutes(), "running engine ignores adjustment")
}

func TestSubjectCycleUpdatesTarget(t *testing.T) {
	st := openTestStore(t)
	require.NoError(t, st.Subjects().SeedDefaults(context.Background()))

	s := New(st)
	require.NotEmpty(t, s.subjects)
	first := s.engine.SubjectID()

	s.Update(key("s"))
	assert.NotEqual(t, first, s.engine.SubjectID())

	s.Update(key("c"))
	assert.NotEmpty(t, s.engine.ChapterID())
}
