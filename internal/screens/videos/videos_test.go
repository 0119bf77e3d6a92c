package videos

import (
	"encoding/json"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anik54992/eduboost/internal/llm"
	"github.com/anik54992/eduboost/internal/tutor"
)

const videoJSON = `[
	{"title": "Vectors in 10 Minutes", "channel": "10 Minute School", "url": "https://youtube.com/watch?v=abc"},
	{"title": "Vector Basics", "channel": "Bondi Pathshala", "url": "https://youtube.com/watch?v=def"}
]`

func typeText(s *VideosScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestSearchPopulatesResults(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(videoJSON)})
	s := New(tutor.New(mock))

	typeText(s, "vectors")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, s.searching)

	s.Update(cmd())
	assert.False(t, s.searching)
	require.Len(t, s.videos, 2)
	assert.Equal(t, "Vectors in 10 Minutes", s.videos[0].Title)
}

func TestStaleResultsAreDropped(t *testing.T) {
	mock := llm.NewMockProvider()
	s := New(tutor.New(mock))
	s.query = "current search"
	s.searching = true

	s.Update(resultsMsg{Query: "old search", Videos: []tutor.Video{{Title: "stale"}}})
	assert.True(t, s.searching)
	assert.Empty(t, s.videos)
}

func TestEmptyQueryDoesNotSearch(t *testing.T) {
	mock := llm.NewMockProvider()
	s := New(tutor.New(mock))

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Zero(t, mock.CallCount())
}

func TestTabCyclesPlatform(t *testing.T) {
	mock := llm.NewMockProvider()
	s := New(tutor.New(mock))

	assert.Equal(t, 0, s.platformIdx)
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, 1, s.platformIdx)
}
