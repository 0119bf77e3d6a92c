// Package tutor implements the AI study assistant: free-text Q&A,
// structured study insights, and educational video search. All three go
// through the llm.Provider abstraction so any configured backend works.
package tutor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anik54992/eduboost/internal/llm"
)

// FallbackAnswer is shown when the provider cannot serve a question.
const FallbackAnswer = "The AI is currently unavailable. Please check your internet connection."

// StudyContext summarizes the student's recent data for prompt grounding.
type StudyContext struct {
	Date        string         `json:"date"`
	TodayHours  float64        `json:"todayHours"`
	StreakDays  int            `json:"streakDays"`
	Grade       string         `json:"grade"`
	TasksDone   int            `json:"tasksDone"`
	TasksTotal  int            `json:"tasksTotal"`
	SubjectTime []SubjectHours `json:"subjectTime,omitempty"`
}

// SubjectHours is one subject's accumulated study time.
type SubjectHours struct {
	Subject string  `json:"subject"`
	Hours   float64 `json:"hours"`
}

// Service answers questions and produces insights using an LLM provider.
type Service struct {
	provider llm.Provider
}

// New creates a tutor Service on the given provider.
func New(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

// Ask sends a free-text question with the student's study context. It never
// fails: on any provider error the caller gets FallbackAnswer.
func (s *Service) Ask(ctx context.Context, question string, sctx StudyContext) string {
	ctx = llm.WithPurpose(ctx, "tutor")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: tutorSystemPrompt(sctx),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: question},
		},
		MaxTokens:   2048,
		Temperature: 0.7,
	})
	if err != nil {
		return FallbackAnswer
	}

	answer := string(resp.Content)
	if answer == "" {
		return "I'm sorry, I couldn't process that question right now."
	}
	return answer
}

// Chat continues a multi-turn conversation. The history carries prior user
// and assistant turns in order; the same fallback contract as Ask applies.
func (s *Service) Chat(ctx context.Context, history []llm.Message, sctx StudyContext) string {
	ctx = llm.WithPurpose(ctx, "tutor")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      tutorSystemPrompt(sctx),
		Messages:    history,
		MaxTokens:   2048,
		Temperature: 0.7,
	})
	if err != nil {
		return FallbackAnswer
	}
	if string(resp.Content) == "" {
		return "I'm sorry, I couldn't process that question right now."
	}
	return string(resp.Content)
}

func marshalContext(sctx StudyContext) string {
	b, err := json.Marshal(sctx)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func wrapParseError(err error, raw json.RawMessage) error {
	return fmt.Errorf("parse LLM response %q: %w", truncate(string(raw), 120), err)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
