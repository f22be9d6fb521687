// Package breathe holds the breathing screens: the program list, the
// practice timer and the written guide.
package breathe

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/fadi/mendly/internal/breathing"
	"github.com/fadi/mendly/internal/router"
	"github.com/fadi/mendly/internal/screen"
	"github.com/fadi/mendly/internal/store"
	"github.com/fadi/mendly/internal/ui/components"
	"github.com/fadi/mendly/internal/ui/layout"
	"github.com/fadi/mendly/internal/ui/theme"
)

// ListScreen lists the breathing programs of a catalog.
type ListScreen struct {
	programs []breathing.Program
	repo     store.BreathingRepo
	log      *zap.Logger
	menu     components.Menu
}

var _ screen.Screen = (*ListScreen)(nil)
var _ screen.KeyHintProvider = (*ListScreen)(nil)

// NewList creates the program list. repo may be nil, in which case
// practice sessions are not recorded.
func NewList(catalog *breathing.Catalog, repo store.BreathingRepo, log *zap.Logger) *ListScreen {
	if log == nil {
		log = zap.NewNop()
	}
	l := &ListScreen{programs: catalog.All(), repo: repo, log: log}

	items := make([]components.MenuItem, 0, len(l.programs))
	for _, p := range l.programs {
		p := p
		items = append(items, components.MenuItem{
			Label: p.Name,
			Action: func() tea.Cmd {
				return push(NewPractice(p, l.repo, l.log))
			},
		})
	}
	l.menu = components.NewMenu(items)
	return l
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (l *ListScreen) Init() tea.Cmd { return nil }

func (l *ListScreen) Title() string { return "Breathe" }

func (l *ListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Practice"},
		{Key: "G", Description: "Guide"},
		{Key: "Esc", Description: "Back"},
	}
}

func (l *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok && k.String() == "g" {
		if p, ok := l.selected(); ok {
			return l, push(NewGuide(p))
		}
		return l, nil
	}
	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}

func (l *ListScreen) selected() (breathing.Program, bool) {
	i := l.menu.Selected
	if i < 0 || i >= len(l.programs) {
		return breathing.Program{}, false
	}
	return l.programs[i], true
}

func (l *ListScreen) View(width, height int) string {
	if len(l.programs) == 0 {
		return components.Center(theme.Hint.Render("No breathing programs available."), width, height)
	}
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("Choose a breathing exercise"))
	b.WriteString("\n\n")
	b.WriteString(l.menu.View())

	if p, ok := l.selected(); ok {
		detail := lipgloss.NewStyle().Foreground(theme.Text).Render(p.Summary) + "\n" +
			theme.Hint.Render(fmt.Sprintf("Pattern %s · %d cycles · about %s",
				p.Pattern(), p.TotalCycles, formatDuration(p.TotalSeconds())))
		b.WriteString("\n")
		b.WriteString(components.Card(detail, cw))
	}

	return components.Center(lipgloss.NewStyle().Width(cw).Render(b.String()), width, height)
}

// formatDuration renders seconds as "1m 30s" or "45s".
func formatDuration(secs int) string {
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	if secs%60 == 0 {
		return fmt.Sprintf("%dm", secs/60)
	}
	return fmt.Sprintf("%dm %ds", secs/60, secs%60)
}
