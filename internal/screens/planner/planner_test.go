package planner

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anik54992/eduboost/internal/store"
	"github.com/anik54992/eduboost/internal/study"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "planner.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func key(s string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: rune(s[0]), Text: s}
}

func addTask(t *testing.T, st *store.Store, title string) {
	t.Helper()
	_, err := st.Tasks().Add(context.Background(), title, "9:00 AM", study.DateOf(time.Now()))
	require.NoError(t, err)
}

func TestToggleMarksTaskDone(t *testing.T) {
	st := openTestStore(t)
	addTask(t, st, "Revise chapter 3")

	s := New(st)
	require.Len(t, s.tasks, 1)
	assert.False(t, s.tasks[0].Completed)

	s.Update(key(" "))
	assert.True(t, s.tasks[0].Completed)

	s.Update(key(" "))
	assert.False(t, s.tasks[0].Completed)
}

func TestDeleteRemovesTask(t *testing.T) {
	st := openTestStore(t)
	addTask(t, st, "Solve past papers")
	addTask(t, st, "Write essay draft")

	s := New(st)
	require.Len(t, s.tasks, 2)

	s.Update(key("d"))
	assert.Len(t, s.tasks, 1)

	tasks, err := st.Tasks().ByDate(context.Background(), s.date)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestAddFlowCreatesTask(t *testing.T) {
	st := openTestStore(t)
	s := New(st)

	s.Update(key("a"))
	assert.True(t, s.adding)
	assert.True(t, s.ConsumesEsc())

	for _, r := range "Read notes" {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	assert.False(t, s.adding)
	require.Len(t, s.tasks, 1)
	assert.Equal(t, "Read notes", s.tasks[0].Title)
}

func TestAddEmptyTitleIsDiscarded(t *testing.T) {
	st := openTestStore(t)
	s := New(st)

	s.Update(key("a"))
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	assert.False(t, s.adding)
	assert.Empty(t, s.tasks)
}

func TestEscLeavesAddMode(t *testing.T) {
	st := openTestStore(t)
	s := New(st)

	s.Update(key("a"))
	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.False(t, s.adding)
	assert.False(t, s.ConsumesEsc())
}
