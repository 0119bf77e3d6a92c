package tutor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anik54992/eduboost/internal/llm"
)

// Insights is the structured study analysis returned by the LLM.
type Insights struct {
	WeakSubjects   []string `json:"weakSubjects"`
	StrongSubjects []string `json:"strongSubjects"`
	Recommendation string   `json:"recommendation"`
}

// insightsSchema constrains the insights response shape.
var insightsSchema = &llm.Schema{
	Name:        "study-insights",
	Description: "Weak and strong subjects plus one actionable study tip",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"weakSubjects": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Up to 2 subjects with the least study time",
			},
			"strongSubjects": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Up to 2 subjects with the most study time",
			},
			"recommendation": map[string]any{
				"type":        "string",
				"description": "One actionable study tip for tomorrow",
			},
		},
		"required":             []any{"weakSubjects", "strongSubjects", "recommendation"},
		"additionalProperties": false,
	},
}

// Insights analyzes the student's study data and returns weak subjects,
// strong subjects, and a recommendation for tomorrow.
func (s *Service) Insights(ctx context.Context, sctx StudyContext) (*Insights, error) {
	ctx = llm.WithPurpose(ctx, "insights")

	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: insightsPrompt(sctx)},
		},
		Schema:      insightsSchema,
		MaxTokens:   1024,
		Temperature: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("generate insights: %w", err)
	}

	var out Insights
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, wrapParseError(err, resp.Content)
	}
	return &out, nil
}
