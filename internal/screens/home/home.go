package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/fadi/mendly/internal/breathing"
	"github.com/fadi/mendly/internal/journey"
	"github.com/fadi/mendly/internal/mood"
	"github.com/fadi/mendly/internal/router"
	"github.com/fadi/mendly/internal/screen"
	"github.com/fadi/mendly/internal/screening"
	"github.com/fadi/mendly/internal/screens/breathe"
	"github.com/fadi/mendly/internal/screens/chat"
	"github.com/fadi/mendly/internal/screens/checkin"
	journeyscreen "github.com/fadi/mendly/internal/screens/journey"
	"github.com/fadi/mendly/internal/screens/placeholder"
	"github.com/fadi/mendly/internal/screens/questionnaire"
	"github.com/fadi/mendly/internal/store"
	"github.com/fadi/mendly/internal/ui/components"
)

// Services are the dependencies the home menu hands to the screens it
// opens. Nil fields make the matching entry show a placeholder.
type Services struct {
	Catalog    *breathing.Catalog
	Moods      *mood.Service
	Journey    *journey.Service
	Screenings store.ScreeningRepo
	Breathing  store.BreathingRepo

	// NewChat starts a companion conversation.
	NewChat func() chat.Sender

	Log *zap.Logger
}

const noStore = "Your history could not be opened, so this feature is turned off. See the log file for details."

type overviewMsg struct {
	Overview *journey.Overview
}

// HomeScreen is the main menu with a short summary of today.
type HomeScreen struct {
	svc      Services
	menu     components.Menu
	overview *journey.Overview
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc Services) *HomeScreen {
	if svc.Log == nil {
		svc.Log = zap.NewNop()
	}
	if svc.Catalog == nil {
		svc.Catalog = breathing.DefaultCatalog()
	}
	h := &HomeScreen{svc: svc}
	h.menu = components.NewMenu(h.items())
	return h
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (h *HomeScreen) items() []components.MenuItem {
	svc := h.svc
	return []components.MenuItem{
		{Label: "Breathe", Action: func() tea.Cmd {
			return push(breathe.NewList(svc.Catalog, svc.Breathing, svc.Log))
		}},
		{Label: "Check in", Action: func() tea.Cmd {
			if svc.Moods == nil {
				return push(placeholder.New("Check-in", noStore))
			}
			return push(checkin.New(svc.Moods))
		}},
		{Label: "Questionnaire", Action: func() tea.Cmd {
			return push(questionnaire.New(screening.PHQ2, svc.Screenings, svc.Log))
		}},
		{Label: "Talk it out", Action: func() tea.Cmd {
			if svc.NewChat == nil {
				return push(placeholder.New("Talk it out", noStore))
			}
			return push(chat.New(svc.NewChat()))
		}},
		{Label: "Journey", Action: func() tea.Cmd {
			if svc.Journey == nil {
				return push(placeholder.New("Journey", noStore))
			}
			return push(journeyscreen.New(svc.Journey))
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.load()
}

// Resume reloads the summary after a check-in or practice session.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.load()
}

func (h *HomeScreen) load() tea.Cmd {
	if h.svc.Journey == nil {
		return nil
	}
	svc := h.svc
	return func() tea.Msg {
		ov, err := svc.Journey.Load(context.Background())
		if err != nil {
			svc.Log.Warn("load home summary", zap.Error(err))
			return nil
		}
		return overviewMsg{Overview: ov}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(overviewMsg); ok {
		h.overview = m.Overview
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	compact := height < 26

	var sections []string
	sections = append(sections, renderGreeting(cw, compact))
	sections = append(sections, renderSummary(h.overview, cw))
	sections = append(sections, renderMenu(h.menu, cw, compact))

	return components.Center(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
