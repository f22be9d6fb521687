package app

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/fadi/mendly/internal/mood"
	"github.com/fadi/mendly/internal/router"
	"github.com/fadi/mendly/internal/screen"
	"github.com/fadi/mendly/internal/screens/home"
	"github.com/fadi/mendly/internal/screens/welcome"
	"github.com/fadi/mendly/internal/ui/layout"
)

// Options holds the dependencies handed to the screens.
type Options struct {
	home.Services

	// SkipWelcome starts on the home screen.
	SkipWelcome bool
}

type streakMsg struct {
	days int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	log    *zap.Logger
	streak int
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the welcome screen.
func newAppModel(opts Options) AppModel {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	newHome := func() screen.Screen { return home.New(opts.Services) }

	var first screen.Screen
	if opts.SkipWelcome {
		first = newHome()
	} else {
		first = welcome.New(newHome)
	}
	return AppModel{
		router: router.New(first),
		opts:   opts,
		log:    opts.Log,
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Init(), m.loadStreak())
}

// loadStreak reads the check-in streak shown in the header.
func (m AppModel) loadStreak() tea.Cmd {
	moods := m.opts.Moods
	if moods == nil {
		return nil
	}
	log := m.log
	return func() tea.Msg {
		entries, err := moods.Entries(context.Background())
		if err != nil {
			log.Warn("load streak", zap.Error(err))
			return nil
		}
		return streakMsg{days: mood.Streak(entries, time.Now())}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case streakMsg:
		m.streak = msg.days
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Sequence(m.router.Close(), tea.Quit)
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case router.PopScreenMsg, router.ReplaceScreenMsg:
		// A check-in or questionnaire may have just finished.
		return m, tea.Batch(m.router.Update(msg), m.loadStreak())
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) hints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the header, active screen and footer.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	title := ""
	if active := m.router.Active(); active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.streak, m.width)
	footer := layout.RenderFooter(m.hints(), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		if opts.Log != nil {
			opts.Log.Error("program exited", zap.Error(err))
		}
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
