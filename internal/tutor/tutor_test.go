package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anik54992/eduboost/internal/llm"
)

func testContext() StudyContext {
	return StudyContext{
		Date:       "2026-03-14",
		TodayHours: 4.5,
		StreakDays: 7,
		Grade:      "B",
		TasksDone:  3,
		TasksTotal: 5,
		SubjectTime: []SubjectHours{
			{Subject: "Physics 1st Paper", Hours: 12.5},
			{Subject: "Bangla 1st Paper", Hours: 0.5},
		},
	}
}

func TestAskReturnsAnswer(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("Newton's second law says F = ma.")},
	)
	svc := New(mock)

	answer := svc.Ask(context.Background(), "Explain Newton's second law", testContext())
	assert.Equal(t, "Newton's second law says F = ma.", answer)

	require.Len(t, mock.Calls, 1)
	req := mock.Calls[0]
	assert.Contains(t, req.System, "Edu Booster AI")
	assert.Contains(t, req.System, `"streakDays":7`)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, llm.RoleUser, req.Messages[0].Role)
}

func TestAskFallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("offline")}},
	)
	svc := New(mock)

	answer := svc.Ask(context.Background(), "anything", StudyContext{})
	assert.Equal(t, FallbackAnswer, answer)
}

func TestAskFallsBackOnEmptyContent(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("")},
	)
	svc := New(mock)

	answer := svc.Ask(context.Background(), "anything", StudyContext{})
	assert.True(t, strings.HasPrefix(answer, "I'm sorry"))
}

func TestChatCarriesHistory(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("Try integrating by parts.")},
	)
	svc := New(mock)

	history := []llm.Message{
		{Role: llm.RoleUser, Content: "How do I integrate x*e^x?"},
		{Role: llm.RoleAssistant, Content: "Which methods do you know?"},
		{Role: llm.RoleUser, Content: "Substitution and by parts."},
	}
	answer := svc.Chat(context.Background(), history, testContext())
	assert.Equal(t, "Try integrating by parts.", answer)

	require.Len(t, mock.Calls, 1)
	assert.Len(t, mock.Calls[0].Messages, 3)
}

func TestInsightsParsesStructuredResponse(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{
			"weakSubjects": ["Bangla 1st Paper", "ICT"],
			"strongSubjects": ["Physics 1st Paper", "Higher Math 1st Paper"],
			"recommendation": "Start tomorrow with 45 minutes of Bangla before Physics."
		}`)},
	)
	svc := New(mock)

	out, err := svc.Insights(context.Background(), testContext())
	require.NoError(t, err)
	assert.Equal(t, []string{"Bangla 1st Paper", "ICT"}, out.WeakSubjects)
	assert.Len(t, out.StrongSubjects, 2)
	assert.NotEmpty(t, out.Recommendation)

	require.Len(t, mock.Calls, 1)
	require.NotNil(t, mock.Calls[0].Schema)
	assert.Equal(t, "study-insights", mock.Calls[0].Schema.Name)
}

func TestInsightsPropagatesError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	svc := New(mock)

	_, err := svc.Insights(context.Background(), testContext())
	require.Error(t, err)
}

func TestSearchVideosParsesResults(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`[
			{"title": "Projectile Motion in 20 Minutes", "channel": "Physics Hunters",
			 "url": "https://youtube.com/watch?v=abc123", "duration": "19:42"},
			{"title": "Vector Basics", "channel": "10 Minute School",
			 "url": "https://youtube.com/watch?v=def456"}
		]`)},
	)
	svc := New(mock)

	videos := svc.SearchVideos(context.Background(), "projectile motion", "")
	require.Len(t, videos, 2)
	assert.Equal(t, "Physics Hunters", videos[0].Channel)
	assert.Equal(t, "19:42", videos[0].Duration)

	require.Len(t, mock.Calls, 1)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "projectile motion")
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "10 Minute School")
}

func TestSearchVideosPlatformFilter(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`[]`)},
	)
	svc := New(mock)

	svc.SearchVideos(context.Background(), "algebra", "Bondi Pathshala")
	require.Len(t, mock.Calls, 1)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, `"Bondi Pathshala"`)
	assert.NotContains(t, mock.Calls[0].Messages[0].Content, "Physics Hunters")
}

func TestSearchVideosEmptyOnError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	svc := New(mock)

	videos := svc.SearchVideos(context.Background(), "algebra", "")
	assert.Empty(t, videos)
}
