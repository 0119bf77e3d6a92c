// Package videos searches curated educational YouTube content through the
// tutor service. Results land async; the selected video's URL can be
// copied into the terminal by pressing enter.
package videos

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anik54992/eduboost/internal/screen"
	"github.com/anik54992/eduboost/internal/tutor"
	"github.com/anik54992/eduboost/internal/ui/components"
	"github.com/anik54992/eduboost/internal/ui/layout"
	"github.com/anik54992/eduboost/internal/ui/theme"
)

// resultsMsg delivers a finished search.
type resultsMsg struct {
	Query  string
	Videos []tutor.Video
}

// platforms cycles through the channel filter. Empty means the default
// curated set.
var platforms = []string{"", "10 Minute School", "Bondi Pathshala", "Physics Hunters", "ACS"}

// VideosScreen searches and lists study videos.
type VideosScreen struct {
	tutorSvc *tutor.Service

	input       components.TextInput
	searching   bool
	searched    bool
	query       string
	platformIdx int

	videos  []tutor.Video
	cursor  int
	showURL bool
}

var _ screen.Screen = (*VideosScreen)(nil)
var _ screen.KeyHintProvider = (*VideosScreen)(nil)

// New creates the video search screen.
func New(tutorSvc *tutor.Service) *VideosScreen {
	return &VideosScreen{
		tutorSvc: tutorSvc,
		input:    components.NewTextInput("Search topic, e.g. projectile motion", false, 120),
	}
}

func (s *VideosScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *VideosScreen) Title() string {
	return "Video Library"
}

func (s *VideosScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Search"},
		{Key: "Tab", Description: "Platform"},
	}
	if len(s.videos) > 0 {
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Select"},
			layout.KeyHint{Key: "O", Description: "Show link"},
		)
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (s *VideosScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultsMsg:
		if msg.Query != s.query {
			return s, nil
		}
		s.searching = false
		s.searched = true
		s.videos = msg.Videos
		s.cursor = 0
		s.showURL = false
		return s, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return s, s.search()
		case "tab":
			s.platformIdx = (s.platformIdx + 1) % len(platforms)
			return s, nil
		case "up":
			if s.cursor > 0 {
				s.cursor--
				s.showURL = false
			}
			return s, nil
		case "down":
			if s.cursor < len(s.videos)-1 {
				s.cursor++
				s.showURL = false
			}
			return s, nil
		case "o", "O":
			if len(s.videos) > 0 {
				s.showURL = !s.showURL
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *VideosScreen) search() tea.Cmd {
	if s.searching {
		return nil
	}
	query := strings.TrimSpace(s.input.Value())
	if query == "" {
		return nil
	}

	s.query = query
	s.searching = true
	platform := platforms[s.platformIdx]
	svc := s.tutorSvc

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		return resultsMsg{Query: query, Videos: svc.SearchVideos(ctx, query, platform)}
	}
}

func (s *VideosScreen) View(width, height int) string {
	var lines []string

	platform := platforms[s.platformIdx]
	if platform == "" {
		platform = "All platforms"
	}
	lines = append(lines,
		theme.Body.Render("  🔍 "+s.input.View()),
		theme.Subtitle.Align(lipgloss.Left).Render("  Platform: "+platform),
		"")

	switch {
	case s.searching:
		lines = append(lines, theme.Hint.Render("  Searching for \""+s.query+"\"..."))
	case s.searched && len(s.videos) == 0:
		lines = append(lines, theme.Hint.Render("  No videos found. Try another topic or platform."))
	case !s.searched:
		lines = append(lines, theme.Hint.Render("  Type a topic and press Enter."))
	}

	for i, v := range s.videos {
		title := truncate(v.Title, width-14)
		meta := v.Channel
		if v.Duration != "" {
			meta += " · " + v.Duration
		}
		metaLine := "      " + theme.Subtitle.Align(lipgloss.Left).Render(meta)
		if i == s.cursor {
			lines = append(lines, theme.Selected.Render("  ▸ "+title), metaLine)
			if s.showURL {
				lines = append(lines, "      "+lipgloss.NewStyle().Foreground(theme.Accent).Render(v.URL))
			}
		} else {
			lines = append(lines, theme.Unselected.Render("    "+title), metaLine)
		}
	}

	return lipgloss.NewStyle().Width(width).Height(height).Render(strings.Join(lines, "\n"))
}

func truncate(text string, n int) string {
	if n < 8 {
		n = 8
	}
	if len(text) <= n {
		return text
	}
	return text[:n-1] + "…"
}
