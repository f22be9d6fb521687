// Package checkin is the mood check-in screen: pick a label, add an
// optional note, then see the saved score and streak.
package checkin

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fadi/mendly/internal/mood"
	"github.com/fadi/mendly/internal/router"
	"github.com/fadi/mendly/internal/screen"
	"github.com/fadi/mendly/internal/ui/components"
	"github.com/fadi/mendly/internal/ui/layout"
	"github.com/fadi/mendly/internal/ui/theme"
)

type step int

const (
	stepLabel step = iota
	stepNote
	stepSaving
	stepDone
)

// NoteLimit caps the note length.
const NoteLimit = 280

const skipLabel = "Skip"

// savedMsg carries the result of recording the check-in.
type savedMsg struct {
	Saved *mood.Saved
	Err   error
}

// Recorder saves a check-in. *mood.Service implements it.
type Recorder interface {
	Record(ctx context.Context, c mood.Checkin) (*mood.Saved, error)
}

// CheckinScreen collects one mood check-in.
type CheckinScreen struct {
	moods  Recorder
	step   step
	labels components.Choice
	note   components.TextInput
	label  string
	saved  *mood.Saved
	err    error
}

var _ screen.Screen = (*CheckinScreen)(nil)
var _ screen.KeyHintProvider = (*CheckinScreen)(nil)

// New creates a check-in screen that records through moods.
func New(moods Recorder) *CheckinScreen {
	options := make([]string, 0, len(mood.Labels)+1)
	for _, l := range mood.Labels {
		score, _ := mood.LabelScore(l)
		options = append(options, fmt.Sprintf("%s %s", mood.Emoji(score), capitalize(l)))
	}
	options = append(options, skipLabel)

	note := components.NewTextInput("Anything on your mind? (optional)", NoteLimit, 48)
	note.Blur()

	return &CheckinScreen{
		moods:  moods,
		labels: components.NewChoice("How are you feeling right now?", options, 1),
		note:   note,
	}
}

func (c *CheckinScreen) Init() tea.Cmd { return nil }

func (c *CheckinScreen) Title() string { return "Check-in" }

func (c *CheckinScreen) KeyHints() []layout.KeyHint {
	switch c.step {
	case stepLabel:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "1-7", Description: "Pick"},
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Cancel"},
		}
	case stepNote:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	case stepDone:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
		}
	}
	return nil
}

func (c *CheckinScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(savedMsg); ok {
		c.saved, c.err = m.Saved, m.Err
		c.step = stepDone
		return c, nil
	}

	switch c.step {
	case stepLabel:
		var cmd tea.Cmd
		c.labels, cmd = c.labels.Update(msg)
		if c.labels.Submitted {
			if i := c.labels.Chosen; i < len(mood.Labels) {
				c.label = mood.Labels[i]
			}
			c.step = stepNote
			return c, c.note.Focus()
		}
		return c, cmd

	case stepNote:
		if k, ok := msg.(tea.KeyPressMsg); ok && k.String() == "enter" {
			c.note.Blur()
			c.step = stepSaving
			return c, c.save()
		}
		var cmd tea.Cmd
		c.note, cmd = c.note.Update(msg)
		return c, cmd

	case stepDone:
		if k, ok := msg.(tea.KeyPressMsg); ok && k.String() == "enter" {
			return c, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return c, nil
}

func (c *CheckinScreen) save() tea.Cmd {
	in := mood.Checkin{Label: c.label, Note: c.note.Value()}
	moods := c.moods
	return func() tea.Msg {
		saved, err := moods.Record(context.Background(), in)
		return savedMsg{Saved: saved, Err: err}
	}
}

func (c *CheckinScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var body string

	switch c.step {
	case stepLabel:
		body = c.labels.View()
	case stepNote:
		chosen := "No label"
		if c.label != "" {
			chosen = "Feeling " + c.label
		}
		body = theme.Emphasis.Render(chosen) + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.Text).Render("Want to add a note?") + "\n\n" +
			c.note.View()
	case stepSaving:
		body = theme.Hint.Render("Saving...")
	case stepDone:
		body = c.result()
	}

	return components.Center(components.Card(body, cw), width, height)
}

func (c *CheckinScreen) result() string {
	if c.err != nil {
		return theme.Negative.Render("Could not save your check-in.") + "\n\n" +
			theme.Hint.Render(c.err.Error())
	}
	s := c.saved
	lines := []string{
		theme.Positive.Render("Check-in saved"),
		"",
		fmt.Sprintf("%s  %d/10 · %s", mood.Emoji(s.Score), s.Score, mood.ScoreLabel(s.Score)),
		"",
		streakLine(s.StreakDays),
	}
	if s.Avg7 != nil {
		lines = append(lines, theme.Hint.Render(fmt.Sprintf("7-day average %.1f", *s.Avg7)))
	}
	return strings.Join(lines, "\n")
}

func streakLine(days int) string {
	switch days {
	case 0:
		return "Start a streak by checking in tomorrow too."
	case 1:
		return "1 day streak. Nice start."
	default:
		return fmt.Sprintf("%d day streak. Keep it going.", days)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
