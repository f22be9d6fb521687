package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadi/mendly/internal/companion"
	"github.com/fadi/mendly/internal/journey"
	"github.com/fadi/mendly/internal/mood"
	"github.com/fadi/mendly/internal/router"
	"github.com/fadi/mendly/internal/screens/breathe"
	"github.com/fadi/mendly/internal/screens/chat"
	"github.com/fadi/mendly/internal/screens/checkin"
	journeyscreen "github.com/fadi/mendly/internal/screens/journey"
	"github.com/fadi/mendly/internal/screens/placeholder"
	"github.com/fadi/mendly/internal/screens/questionnaire"
	"github.com/fadi/mendly/internal/store"
)

func services(t *testing.T) Services {
	t.Helper()
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	moods := mood.NewService(st.MoodRepo())
	return Services{
		Moods:      moods,
		Journey:    journey.NewService(moods, st.BreathingRepo(), st.ScreeningRepo()),
		Screenings: st.ScreeningRepo(),
		Breathing:  st.BreathingRepo(),
		NewChat: func() chat.Sender {
			return companion.NewSession(companion.Scripted{}, st.ChatRepo(), st.MoodRepo(), nil)
		},
	}
}

// choose moves to item i and presses enter, returning the pushed screen.
func choose(t *testing.T, h *HomeScreen, i int) any {
	t.Helper()
	for h.menu.Selected < i {
		h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		return msg
	}
	return push.Screen
}

func TestMenuOpensScreens(t *testing.T) {
	svc := services(t)
	tests := []struct {
		item int
		want any
	}{
		{0, &breathe.ListScreen{}},
		{1, &checkin.CheckinScreen{}},
		{2, &questionnaire.Screen{}},
		{3, &chat.ChatScreen{}},
		{4, &journeyscreen.JourneyScreen{}},
	}
	for _, tt := range tests {
		got := choose(t, New(svc), tt.item)
		assert.IsType(t, tt.want, got, "menu item %d", tt.item)
	}
}

func TestQuitItem(t *testing.T) {
	got := choose(t, New(services(t)), 5)
	assert.IsType(t, tea.QuitMsg{}, got)
}

func TestMissingServicesShowPlaceholder(t *testing.T) {
	h := New(Services{})
	for _, i := range []int{1, 3, 4} {
		got := choose(t, New(Services{}), i)
		assert.IsType(t, &placeholder.PlaceholderScreen{}, got, "menu item %d", i)
	}
	// Breathing and the questionnaire work without a store.
	assert.IsType(t, &breathe.ListScreen{}, choose(t, h, 0))
	assert.Nil(t, h.Init(), "no summary to load without a store")
}

func TestSummaryLoadsAndResumes(t *testing.T) {
	svc := services(t)
	h := New(svc)
	assert.Contains(t, h.View(100, 40), "Welcome back")

	h.Update(h.Init()())
	assert.Contains(t, h.View(100, 40), "0 day streak")

	_, err := svc.Moods.Record(context.Background(), mood.Checkin{Label: "calm"})
	require.NoError(t, err)

	h.Update(h.Resume()())
	v := h.View(100, 40)
	assert.Contains(t, v, "1 day streak")
	assert.Contains(t, v, "7d avg 7.0")
}

func TestCompactMenu(t *testing.T) {
	h := New(Services{})
	v := h.View(90, 20)
	assert.True(t, strings.Contains(v, "Take a moment for yourself."))
	assert.Contains(t, v, "Journey")
}
