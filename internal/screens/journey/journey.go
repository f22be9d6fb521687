// Package journey renders the overview of streaks, mood averages,
// practice and the latest questionnaire.
package journey

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	jr "github.com/fadi/mendly/internal/journey"
	"github.com/fadi/mendly/internal/mood"
	"github.com/fadi/mendly/internal/screen"
	"github.com/fadi/mendly/internal/ui/components"
	"github.com/fadi/mendly/internal/ui/layout"
	"github.com/fadi/mendly/internal/ui/theme"
)

// Loader builds an overview. *journey.Service implements it.
type Loader interface {
	Load(ctx context.Context) (*jr.Overview, error)
}

type loadedMsg struct {
	Overview *jr.Overview
	Err      error
}

// JourneyScreen shows the overview, loading it when the screen opens.
type JourneyScreen struct {
	loader   Loader
	overview *jr.Overview
	err      error
	loading  bool
}

var _ screen.Screen = (*JourneyScreen)(nil)
var _ screen.KeyHintProvider = (*JourneyScreen)(nil)

// New creates a journey screen.
func New(loader Loader) *JourneyScreen {
	return &JourneyScreen{loader: loader}
}

func (j *JourneyScreen) Init() tea.Cmd {
	return j.load()
}

func (j *JourneyScreen) load() tea.Cmd {
	j.loading = true
	loader := j.loader
	return func() tea.Msg {
		ov, err := loader.Load(context.Background())
		return loadedMsg{Overview: ov, Err: err}
	}
}

func (j *JourneyScreen) Title() string { return "Journey" }

func (j *JourneyScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

func (j *JourneyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		j.loading = false
		j.overview, j.err = msg.Overview, msg.Err
	case tea.KeyPressMsg:
		if msg.String() == "r" && !j.loading {
			return j, j.load()
		}
	}
	return j, nil
}

func (j *JourneyScreen) View(width, height int) string {
	switch {
	case j.err != nil:
		return components.Center(theme.Negative.Render("Could not load your journey: ")+theme.Hint.Render(j.err.Error()), width, height)
	case j.overview == nil:
		return components.Center(theme.Hint.Render("Loading..."), width, height)
	}

	cw := components.ContentWidth(width)
	ov := j.overview
	sections := []string{
		components.Card(moodSection(ov), cw),
		components.Card(practiceSection(ov), cw),
	}
	return components.Center(strings.Join(sections, "\n"), width, height)
}

func label(s string) string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).Width(16).Render(s)
}

func avg(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}

func moodSection(ov *jr.Overview) string {
	lines := []string{
		theme.Emphasis.Render("Mood"),
		"",
		label("Streak") + fmt.Sprintf("%d days", ov.StreakDays),
		label("Today") + today(ov),
		label("Average") + fmt.Sprintf("7d %s · 14d %s · 30d %s", avg(ov.Avg7), avg(ov.Avg14), avg(ov.Avg30)),
		label("Last 7 days") + lipgloss.NewStyle().Foreground(theme.Secondary).Render(jr.Sparkline(ov.Series)),
	}
	if len(ov.TopLabels) > 0 {
		parts := make([]string, 0, len(ov.TopLabels))
		for _, l := range ov.TopLabels {
			parts = append(parts, fmt.Sprintf("%s ×%d", l.Label, l.Count))
		}
		lines = append(lines, label("Often feeling")+strings.Join(parts, ", "))
	}
	return strings.Join(lines, "\n")
}

func today(ov *jr.Overview) string {
	if ov.TodayCount == 0 {
		return "no check-in yet"
	}
	score := int(ov.TodayAvg + 0.5)
	return fmt.Sprintf("%s %.1f (%d check-ins)", mood.Emoji(score), ov.TodayAvg, ov.TodayCount)
}

func practiceSection(ov *jr.Overview) string {
	b := ov.Breathing
	lines := []string{
		theme.Emphasis.Render("Practice"),
		"",
		label("Breathing") + fmt.Sprintf("%d sessions, %d completed, %d min", b.Sessions, b.Completed, b.Seconds/60),
	}
	if s := ov.LatestScreening; s != nil {
		text := fmt.Sprintf("%s %d", s.Kind, s.Total)
		if s.Severity != "" {
			text += " (" + s.Severity + ")"
		}
		text += ", " + s.Timestamp.Format("Jan 2")
		lines = append(lines, label("Questionnaire")+text)
	} else {
		lines = append(lines, label("Questionnaire")+"not taken yet")
	}
	return strings.Join(lines, "\n")
}
