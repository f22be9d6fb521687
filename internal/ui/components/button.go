package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/fadi/mendly/internal/ui/theme"
)

// Pointer marks the selected entry in lists and buttons.
const Pointer = "▸ "

// Button is a styled button component. Space and Enter press it.
type Button struct {
	Label   string
	Active  bool
	OnPress func() tea.Cmd
}

// NewButton creates a new button.
func NewButton(label string, active bool, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Active:  active,
		OnPress: onPress,
	}
}

// Update handles key events.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "space":
			if b.OnPress != nil {
				return b, b.OnPress()
			}
		}
	}

	return b, nil
}

// View renders the button.
func (b Button) View() string {
	if b.Active {
		return theme.ButtonActive.Render(Pointer + b.Label)
	}
	return theme.ButtonInactive.Render("  " + b.Label)
}
