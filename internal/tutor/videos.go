package tutor

import (
	"context"
	"encoding/json"

	"github.com/anik54992/eduboost/internal/llm"
)

// Video is one educational video search result.
type Video struct {
	Title     string `json:"title"`
	Channel   string `json:"channel"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Duration  string `json:"duration,omitempty"`
}

// videoSchema constrains the video search response to an array of results.
var videoSchema = &llm.Schema{
	Name:        "video-results",
	Description: "Educational YouTube video search results",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title":     map[string]any{"type": "string"},
				"channel":   map[string]any{"type": "string"},
				"url":       map[string]any{"type": "string"},
				"thumbnail": map[string]any{"type": "string"},
				"duration":  map[string]any{"type": "string"},
			},
			"required": []any{"title", "channel", "url"},
		},
	},
}

// SearchVideos finds educational videos for a query, optionally limited to
// one platform. It never fails: any provider or parse error yields an
// empty result list.
func (s *Service) SearchVideos(ctx context.Context, query, platform string) []Video {
	ctx = llm.WithPurpose(ctx, "videos")

	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: videoPrompt(query, platform)},
		},
		Schema:      videoSchema,
		MaxTokens:   2048,
		Temperature: 0.3,
	})
	if err != nil {
		return nil
	}

	var out []Video
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil
	}
	return out
}
