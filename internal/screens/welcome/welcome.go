package welcome

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fadi/mendly/internal/router"
	"github.com/fadi/mendly/internal/screen"
	"github.com/fadi/mendly/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 4500 * time.Millisecond
)

// Tagline is shown under the banner.
const Tagline = "Breathe in. Check in. Be kind to yourself."

// orbFrames is one slow breath: the orb grows, then shrinks.
var orbFrames = []string{
	"·",
	"( · )",
	"(  ◦  )",
	"(   ○   )",
	"(    ◯    )",
	"(   ○   )",
	"(  ◦  )",
	"( · )",
}

// framesPerStep slows the orb down relative to the tick rate.
const framesPerStep = 4

type tickMsg time.Time

// WelcomeScreen shows a splash animation before transitioning to the home
// screen. Any key skips ahead.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) orb() string {
	frame := (w.tickCount / framesPerStep) % len(orbFrames)
	color := theme.Secondary
	if frame > len(orbFrames)/2 {
		color = theme.Calm
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(orbFrames[frame])
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, w.orb())

	if w.elapsed >= phase1End {
		word := "breathe in"
		if (w.tickCount/framesPerStep)%len(orbFrames) >= len(orbFrames)/2 {
			word = "breathe out"
		}
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.TextDim).Render(word))
	}

	if w.elapsed >= phase2End {
		sections = append(sections, "")
		sections = append(sections, RenderBanner(width))
		sections = append(sections, "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(Tagline)
		sections = append(sections, tagline)

		sections = append(sections, "")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, hint)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
