package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fadi/mendly/internal/screen"
	"github.com/fadi/mendly/internal/ui/theme"
)

// PlaceholderScreen stands in for a feature that cannot run, such as
// history views when no database could be opened.
type PlaceholderScreen struct {
	title  string
	reason string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a new PlaceholderScreen with the given title and a short
// explanation.
func New(title, reason string) *PlaceholderScreen {
	if reason == "" {
		reason = "This feature is not available right now."
	}
	return &PlaceholderScreen{title: title, reason: reason}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	content := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render("╌╌ Unavailable ╌╌\n\n" + p.reason)

	return content
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}
