package checkin

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/fadi/mendly/internal/mood"
	"github.com/fadi/mendly/internal/router"
)

type fakeRecorder struct {
	got []mood.Checkin
	err error
}

func (f *fakeRecorder) Record(_ context.Context, c mood.Checkin) (*mood.Saved, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.got = append(f.got, c)
	avg := 7.0
	return &mood.Saved{
		Sequence:  1,
		Score:     mood.FinalScore(c),
		Label:     c.Label,
		Adherence: mood.Adherence{StreakDays: 3, Avg7: &avg},
	}, nil
}

func typeText(c *CheckinScreen, s string) {
	for _, r := range s {
		c.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func enter(c *CheckinScreen) tea.Cmd {
	_, cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func TestCheckinLabelAndNote(t *testing.T) {
	rec := &fakeRecorder{}
	c := New(rec)

	// "4" picks the fourth label, calm.
	c.Update(tea.KeyPressMsg{Code: '4', Text: "4"})
	if c.step != stepNote {
		t.Fatalf("expected note step, got %v", c.step)
	}
	if c.label != "calm" {
		t.Fatalf("expected label calm, got %q", c.label)
	}

	typeText(c, "slept well")
	cmd := enter(c)
	if c.step != stepSaving || cmd == nil {
		t.Fatal("enter should start saving")
	}
	c.Update(cmd())

	if c.step != stepDone {
		t.Fatalf("expected done step, got %v", c.step)
	}
	if len(rec.got) != 1 {
		t.Fatalf("expected one check-in, got %d", len(rec.got))
	}
	if rec.got[0].Label != "calm" || rec.got[0].Note != "slept well" {
		t.Errorf("unexpected check-in %+v", rec.got[0])
	}

	v := c.View(100, 30)
	for _, want := range []string{"Check-in saved", "7/10", "3 day streak", "7-day average 7.0"} {
		if !strings.Contains(v, want) {
			t.Errorf("result view missing %q", want)
		}
	}

	cmd = enter(c)
	if cmd == nil {
		t.Fatal("enter on the result should leave the screen")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestCheckinSkipLabelUsesNote(t *testing.T) {
	rec := &fakeRecorder{}
	c := New(rec)

	for i := 0; i < len(mood.Labels); i++ {
		c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	enter(c)
	if c.label != "" {
		t.Fatalf("skip should leave the label empty, got %q", c.label)
	}

	typeText(c, "so sad today")
	c.Update(enter(c)())

	if rec.got[0].Label != "" {
		t.Errorf("expected no label, got %q", rec.got[0].Label)
	}
	if !strings.Contains(c.View(100, 30), "2/10") {
		t.Error("note keywords should decide the score")
	}
}

func TestCheckinSaveError(t *testing.T) {
	c := New(&fakeRecorder{err: errors.New("database is locked")})
	c.Update(tea.KeyPressMsg{Code: '1', Text: "1"})
	c.Update(enter(c)())

	v := c.View(100, 30)
	if !strings.Contains(v, "Could not save") || !strings.Contains(v, "database is locked") {
		t.Errorf("expected the error in the view")
	}
}

func TestCheckinKeysIgnoredWhileSaving(t *testing.T) {
	c := New(&fakeRecorder{})
	c.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	enter(c)
	if cmd := enter(c); cmd != nil {
		t.Error("enter while saving should do nothing")
	}
}

func TestStreakLine(t *testing.T) {
	if !strings.Contains(streakLine(0), "Start a streak") {
		t.Error("zero streak wording")
	}
	if streakLine(1) != "1 day streak. Nice start." {
		t.Errorf("one-day wording: %q", streakLine(1))
	}
}
