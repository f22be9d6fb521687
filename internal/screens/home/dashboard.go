package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/fadi/mendly/internal/journey"
	"github.com/fadi/mendly/internal/ui/components"
	"github.com/fadi/mendly/internal/ui/theme"
)

const greetingFull = `   .-.
  (   )  Take a moment
   '-'   for yourself.`

const greetingCompact = "Take a moment for yourself."

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

func renderGreeting(cw int, compact bool) string {
	text := greetingFull
	if compact {
		text = greetingCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Calm).
		Render(text)
}

// renderSummary shows the streak, today's check-ins and the 7-day average.
func renderSummary(ov *journey.Overview, cw int) string {
	strong := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if ov == nil {
		stats = dim.Render("Welcome back")
	} else {
		avg := "-"
		if ov.Avg7 != nil {
			avg = fmt.Sprintf("%.1f", *ov.Avg7)
		}
		stats = strings.Join([]string{
			strong.Render(fmt.Sprintf("✿ %d day streak", ov.StreakDays)),
			dim.Render(fmt.Sprintf("%d today", ov.TodayCount)),
			dim.Render("7d avg " + avg),
		}, dim.Render("  ·  "))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderMenu draws bordered buttons, or plain lines when space is short.
func renderMenu(m components.Menu, cw int, compact bool) string {
	if compact {
		return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(m.View())
	}
	buttons := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		buttons = append(buttons, components.MenuButton(item.Label, i == m.Selected, buttonWidth))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}
