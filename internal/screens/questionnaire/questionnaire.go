// Package questionnaire walks the user through the PHQ-2 and, when its
// score warrants it, the PHQ-9.
package questionnaire

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/fadi/mendly/internal/router"
	"github.com/fadi/mendly/internal/screen"
	"github.com/fadi/mendly/internal/screening"
	"github.com/fadi/mendly/internal/store"
	"github.com/fadi/mendly/internal/ui/components"
	"github.com/fadi/mendly/internal/ui/layout"
	"github.com/fadi/mendly/internal/ui/theme"
)

// savedMsg reports the outcome of storing a result.
type savedMsg struct {
	Kind screening.Kind
	Err  error
}

// Screen asks one questionnaire item at a time.
type Screen struct {
	repo store.ScreeningRepo
	log  *zap.Logger

	instrument screening.Instrument
	item       int
	answers    []int
	choice     components.Choice

	result  *screening.Result
	saveErr error
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New starts the given questionnaire. repo may be nil, in which case
// results are shown but not stored.
func New(in screening.Instrument, repo store.ScreeningRepo, log *zap.Logger) *Screen {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Screen{repo: repo, log: log}
	s.start(in)
	return s
}

func (s *Screen) start(in screening.Instrument) {
	s.instrument = in
	s.item = 0
	s.answers = make([]int, 0, len(in.Items))
	s.result = nil
	s.saveErr = nil
	s.choice = s.newChoice()
}

func (s *Screen) newChoice() components.Choice {
	return components.NewChoice(s.instrument.Items[s.item], screening.Scale[:], screening.MinAnswer)
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return string(s.instrument.Kind) }

// Result returns the scored result once every item is answered.
func (s *Screen) Result() *screening.Result { return s.result }

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.result == nil {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "0-3", Description: "Answer"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Stop"},
		}
	}
	if s.result.Next == screening.NextPHQ9 {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue to PHQ-9"},
			{Key: "N", Description: "Not now"},
		}
	}
	return []layout.KeyHint{{Key: "Enter", Description: "Done"}}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.Kind == s.instrument.Kind {
			s.saveErr = msg.Err
		}
		return s, nil
	case tea.KeyPressMsg:
		if s.result != nil {
			return s, s.handleResultKey(msg.String())
		}
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if !s.choice.Submitted {
		return s, cmd
	}

	s.answers = append(s.answers, s.choice.Value())
	s.item++
	if s.item < len(s.instrument.Items) {
		s.choice = s.newChoice()
		return s, nil
	}
	return s, s.finish()
}

func (s *Screen) handleResultKey(key string) tea.Cmd {
	phq9 := s.result.Next == screening.NextPHQ9
	switch {
	case key == "enter" && phq9:
		s.start(screening.PHQ9)
		return nil
	case key == "enter", key == "n" && phq9:
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	return nil
}

func (s *Screen) finish() tea.Cmd {
	r, err := screening.Score(s.instrument, s.answers)
	if err != nil {
		// Answers come from a bounded picker, so this is a programming error.
		s.log.Error("score questionnaire", zap.Error(err))
		s.saveErr = err
		return nil
	}
	s.result = &r

	if s.repo == nil {
		return nil
	}
	repo, log := s.repo, s.log
	data := store.ScreeningEventData{
		Kind:         string(r.Kind),
		Answers:      r.Answers,
		Total:        r.Total,
		Severity:     string(r.Severity),
		SelfHarmRisk: r.SelfHarmRisk,
		NeedsSupport: r.NeedsSupport,
	}
	return func() tea.Msg {
		_, err := repo.AppendScreening(context.Background(), data)
		if err != nil {
			log.Warn("record screening", zap.String("kind", data.Kind), zap.Error(err))
		}
		return savedMsg{Kind: r.Kind, Err: err}
	}
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if s.result != nil {
		return components.Center(s.resultView(cw), width, height)
	}

	header := theme.Hint.Render(s.instrument.Prompt)
	progress := theme.Subtitle.Render(fmt.Sprintf("Question %d of %d", s.item+1, len(s.instrument.Items)))
	body := lipgloss.NewStyle().Width(cw).Render(
		header + "\n\n" + progress + "\n\n" + s.choice.View())
	return components.Center(body, width, height)
}

func (s *Screen) resultView(cw int) string {
	r := s.result
	lines := []string{theme.Emphasis.Render(r.Summary())}

	switch {
	case r.Next == screening.NextPHQ9:
		lines = append(lines, "",
			"Thanks for answering. A few more questions can give a fuller picture.",
			theme.Hint.Render("Press Enter to continue with the PHQ-9, or N to stop here."))
	case r.Kind == screening.KindPHQ2:
		lines = append(lines, "",
			"Your answers don't point to low mood right now.",
			theme.Hint.Render("Keep checking in. You can take this again any time."))
	}

	card := components.Card(strings.Join(lines, "\n"), cw)
	if r.NeedsSupport {
		card += "\n\n" + theme.Notice.Width(cw).Render(screening.SupportMessage)
	}
	if s.saveErr != nil {
		card += "\n\n" + theme.Hint.Render("This result could not be saved.")
	}
	return card
}
