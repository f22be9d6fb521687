package breathe

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fadi/mendly/internal/breathing"
	"github.com/fadi/mendly/internal/screen"
	"github.com/fadi/mendly/internal/store"
	"github.com/fadi/mendly/internal/ui/components"
	"github.com/fadi/mendly/internal/ui/layout"
	"github.com/fadi/mendly/internal/ui/theme"
)

// sessionSavedMsg reports the outcome of recording a practice session.
type sessionSavedMsg struct {
	Completed bool
	Err       error
}

// PracticeScreen runs one breathing program. Space or Enter presses the
// primary button, R resets, G pauses the timer and opens the guide. Leaving
// the screen stops the timer.
type PracticeScreen struct {
	clock *breathing.Clock
	repo  store.BreathingRepo
	log   *zap.Logger

	// attempt identifies the run being timed; empty until the timer first
	// starts and again after the run has been recorded.
	attempt string
	status  string
	err     error
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.Closer = (*PracticeScreen)(nil)

// NewPractice creates a stopped practice screen. Programs from a catalog
// are already valid; an invalid one renders an error instead of a timer.
func NewPractice(p breathing.Program, repo store.BreathingRepo, log *zap.Logger) *PracticeScreen {
	if log == nil {
		log = zap.NewNop()
	}
	s := &PracticeScreen{repo: repo, log: log}
	clock, err := breathing.NewClock(uuid.NewString(), p)
	if err != nil {
		s.err = err
		return s
	}
	s.clock = clock
	return s
}

func (s *PracticeScreen) Init() tea.Cmd { return nil }

func (s *PracticeScreen) Title() string {
	if s.clock == nil {
		return "Breathe"
	}
	return s.clock.Program.Name
}

// State returns the timer state.
func (s *PracticeScreen) State() breathing.State {
	if s.clock == nil {
		return breathing.State{}
	}
	return s.clock.State
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.clock == nil {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: breathing.PrimaryLabel(s.clock.State)},
		{Key: "R", Description: "Reset"},
		{Key: "G", Description: "Guide"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.clock == nil {
		return s, nil
	}

	switch msg := msg.(type) {
	case breathing.TickMsg:
		accepted, next := s.clock.Update(msg)
		if !accepted {
			return s, nil
		}
		if breathing.Done(s.clock.State) {
			return s, s.record(true)
		}
		return s, next

	case sessionSavedMsg:
		switch {
		case msg.Err != nil:
			s.status = "Could not save this session."
		case msg.Completed:
			s.status = "Well done. Session saved."
		default:
			s.status = ""
		}
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "space", "enter":
			return s, s.toggle()
		case "r":
			cmd := s.record(false)
			s.clock.Reset()
			s.status = ""
			return s, cmd
		case "g":
			// The guide covers this screen and would swallow ticks.
			if s.clock.State.Running {
				s.clock.Stop()
			}
			return s, push(NewGuide(s.clock.Program))
		}
	}
	return s, nil
}

func (s *PracticeScreen) toggle() tea.Cmd {
	if !s.clock.State.Running && s.attempt == "" {
		s.attempt = uuid.NewString()
		s.status = ""
	}
	return s.clock.Toggle()
}

// Close stops the timer and records an unfinished run.
func (s *PracticeScreen) Close() tea.Cmd {
	if s.clock == nil {
		return nil
	}
	s.clock.Stop()
	return s.record(false)
}

// record returns a command that saves the current attempt, or nil when
// there is nothing to save.
func (s *PracticeScreen) record(completed bool) tea.Cmd {
	if s.attempt == "" {
		return nil
	}
	st, p := s.clock.State, s.clock.Program
	secs := breathing.Elapsed(st, p)
	if !completed && secs == 0 {
		s.attempt = ""
		return nil
	}
	data := store.BreathingEventData{
		SessionID:        s.attempt,
		ProgramID:        p.ID,
		CyclesCompleted:  breathing.CyclesCompleted(st, p),
		TotalCycles:      p.TotalCycles,
		SecondsPracticed: secs,
		Completed:        completed,
	}
	s.attempt = ""

	repo, log := s.repo, s.log
	return func() tea.Msg {
		if repo == nil {
			return sessionSavedMsg{Completed: completed}
		}
		if _, err := repo.AppendBreathing(context.Background(), data); err != nil {
			log.Warn("record breathing session",
				zap.String("program", data.ProgramID), zap.Error(err))
			return sessionSavedMsg{Completed: completed, Err: err}
		}
		log.Debug("breathing session recorded",
			zap.String("session", data.SessionID),
			zap.String("program", data.ProgramID),
			zap.Int("seconds", data.SecondsPracticed),
			zap.Bool("completed", completed))
		return sessionSavedMsg{Completed: completed}
	}
}

func (s *PracticeScreen) View(width, height int) string {
	if s.clock == nil {
		return components.Center(theme.Notice.Render(s.err.Error()), width, height)
	}
	st, p := s.clock.State, s.clock.Program
	cw := components.ContentWidth(width)

	phase := breathing.CurrentPhase(st, p)
	label := phase.Label
	switch {
	case breathing.Done(st):
		label = "Finished. Notice how you feel."
	case !st.Running && breathing.Elapsed(st, p) == 0:
		label = "Press Space when you are ready"
	case !st.Running:
		label = "Paused"
	}

	var sections []string
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Calm).Bold(true).Width(cw).Align(lipgloss.Center).
		Render(label))

	counter := renderSeconds(st.SecondsLeft, layout.IsCompactHeight(height+8))
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Primary).Width(cw).Align(lipgloss.Center).
		Render(counter))

	sections = append(sections, theme.Subtitle.Width(cw).Render(
		fmt.Sprintf("Cycle %d of %d", breathing.CurrentCycle(st, p), p.TotalCycles)))

	sections = append(sections, components.ProgressBar{
		Percent:     breathing.Progress(st, p),
		ShowPercent: true,
		Width:       cw,
	}.View())

	button := components.NewButton(breathing.PrimaryLabel(st), true, nil)
	sections = append(sections, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(button.View()))

	if s.status != "" {
		sections = append(sections, theme.Hint.Width(cw).Align(lipgloss.Center).Render(s.status))
	}

	return components.Center(strings.Join(sections, "\n\n"), width, height)
}

// digits is a three-row block font for the seconds counter.
var digits = [10][3]string{
	{"█▀█", "█ █", "▀▀▀"},
	{" ▀█", "  █", "  ▀"},
	{"▀▀█", "█▀▀", "▀▀▀"},
	{"▀▀█", " ▀█", "▀▀▀"},
	{"█ █", "▀▀█", "  ▀"},
	{"█▀▀", "▀▀█", "▀▀▀"},
	{"█▀▀", "█▀█", "▀▀▀"},
	{"▀▀█", "  █", "  ▀"},
	{"█▀█", "█▀█", "▀▀▀"},
	{"█▀█", "▀▀█", "▀▀▀"},
}

// renderSeconds draws n in the block font, or as plain text when compact.
func renderSeconds(n int, compact bool) string {
	text := fmt.Sprintf("%d", n)
	if compact {
		return lipgloss.NewStyle().Bold(true).Render(text + "s")
	}
	rows := make([]string, 3)
	for i, r := range text {
		d := digits[r-'0']
		for row := range rows {
			if i > 0 {
				rows[row] += " "
			}
			rows[row] += d[row]
		}
	}
	return strings.Join(rows, "\n")
}
