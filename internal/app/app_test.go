package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadi/mendly/internal/mood"
	"github.com/fadi/mendly/internal/router"
	"github.com/fadi/mendly/internal/screens/home"
	"github.com/fadi/mendly/internal/screens/welcome"
	"github.com/fadi/mendly/internal/store"
)

func newTestModel(t *testing.T, skipWelcome bool) (AppModel, *mood.Service) {
	t.Helper()
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	moods := mood.NewService(st.MoodRepo())
	m := newAppModel(Options{
		Services:    home.Services{Moods: moods, Breathing: st.BreathingRepo()},
		SkipWelcome: skipWelcome,
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(AppModel), moods
}

func TestStartsAtWelcome(t *testing.T) {
	m, _ := newTestModel(t, false)
	assert.IsType(t, &welcome.WelcomeScreen{}, m.router.Active())

	m, _ = newTestModel(t, true)
	assert.IsType(t, &home.HomeScreen{}, m.router.Active())
}

func TestHeaderShowsStreak(t *testing.T) {
	m, moods := newTestModel(t, true)
	assert.NotContains(t, m.render(), "✿ 1 day")

	_, err := moods.Record(context.Background(), mood.Checkin{Label: "happy"})
	require.NoError(t, err)

	msg := m.loadStreak()()
	require.IsType(t, streakMsg{}, msg)
	updated, _ := m.Update(msg)
	assert.Contains(t, updated.(AppModel).render(), "✿ 1 day")
}

func TestNoStreakWithoutStore(t *testing.T) {
	m := newAppModel(Options{})
	assert.Nil(t, m.loadStreak())
}

func TestEscPopsOnlyAboveHome(t *testing.T) {
	m, _ := newTestModel(t, true)

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd, "esc on the bottom screen does nothing")

	// Open the breathing list.
	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	updated, _ := m.Update(cmd())
	m = updated.(AppModel)
	require.Equal(t, 2, m.router.Depth())

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopScreenMsg{}, cmd())

	updated, _ = m.Update(router.PopScreenMsg{})
	assert.Equal(t, 1, updated.(AppModel).router.Depth())
}

func TestFooterUsesScreenHints(t *testing.T) {
	m, _ := newTestModel(t, true)
	assert.Contains(t, m.render(), "Navigate")

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	updated, _ := m.Update(cmd())
	m = updated.(AppModel)

	assert.Contains(t, m.render(), "Guide")
}

func TestTooSmall(t *testing.T) {
	m, _ := newTestModel(t, true)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	assert.Contains(t, updated.(AppModel).render(), "too small")
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t, true)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	assert.NotNil(t, cmd)
}
