package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Text: string(code)}
}

func TestChoiceArrowsAndEnter(t *testing.T) {
	c := NewChoice("How often?", []string{"Never", "Sometimes", "Often", "Always"}, 0)

	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if c.Value() != -1 {
		t.Fatalf("expected no value before submission, got %d", c.Value())
	}
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if !c.Submitted {
		t.Fatal("expected submitted after enter")
	}
	if c.Value() != 1 {
		t.Errorf("expected value 1, got %d", c.Value())
	}
}

func TestChoiceDigitShortcut(t *testing.T) {
	c := NewChoice("", []string{"a", "b", "c", "d"}, 0)
	c, _ = c.Update(key('3'))
	if c.Value() != 3 {
		t.Errorf("expected value 3, got %d", c.Value())
	}

	// Ignored once submitted.
	c, _ = c.Update(key('1'))
	if c.Value() != 3 {
		t.Errorf("expected value to stay 3, got %d", c.Value())
	}
}

func TestChoiceDigitOutOfRange(t *testing.T) {
	c := NewChoice("", []string{"a", "b"}, 1)
	c, _ = c.Update(key('0'))
	c, _ = c.Update(key('7'))
	if c.Submitted {
		t.Error("digits outside the option range should be ignored")
	}
	c, _ = c.Update(key('2'))
	if c.Value() != 2 || c.Chosen != 1 {
		t.Errorf("expected value 2 at index 1, got %d at %d", c.Value(), c.Chosen)
	}
}

func TestChoiceViewNumbersFromBase(t *testing.T) {
	c := NewChoice("Q", []string{"Not at all", "Several days"}, 0)
	v := c.View()
	if !strings.Contains(v, "0)  Not at all") || !strings.Contains(v, "1)  Several days") {
		t.Errorf("unexpected view: %q", v)
	}
}

func TestMenuSkipsDisabled(t *testing.T) {
	pressed := ""
	m := NewMenu([]MenuItem{
		{Label: "Off", Disabled: true},
		{Label: "One", Action: func() tea.Cmd { pressed = "one"; return nil }},
		{Label: "Off", Disabled: true},
		{Label: "Two", Action: func() tea.Cmd { pressed = "two"; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("expected first enabled item selected, got %d", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Fatalf("expected down to skip the disabled item, got %d", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if pressed != "two" {
		t.Errorf("expected action two, got %q", pressed)
	}
	if cur, ok := m.Current(); !ok || cur.Label != "Two" {
		t.Errorf("Current() = %+v, %v", cur, ok)
	}
}

func TestButtonPressedBySpace(t *testing.T) {
	n := 0
	b := NewButton("Start", true, func() tea.Cmd { n++; return nil })
	b, _ = b.Update(tea.KeyPressMsg{Code: tea.KeySpace})
	b, _ = b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if n != 2 {
		t.Errorf("expected two presses, got %d", n)
	}

	b.Active = false
	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if n != 2 {
		t.Error("inactive button should not fire")
	}
}

func TestProgressBarClamps(t *testing.T) {
	over := ProgressBar{Percent: 1.5, ShowPercent: true, Width: 30}.View()
	if !strings.Contains(over, "100%") {
		t.Errorf("expected clamped 100%%, got %q", over)
	}
	under := ProgressBar{Percent: -1, ShowPercent: true, Width: 30}.View()
	if !strings.Contains(under, "0%") {
		t.Errorf("expected clamped 0%%, got %q", under)
	}
}
