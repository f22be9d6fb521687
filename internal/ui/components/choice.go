package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fadi/mendly/internal/ui/theme"
)

// Choice is a single-answer selector. Options are numbered from Base and
// can be picked by arrow keys plus Enter or by typing the number.
type Choice struct {
	Question  string
	Options   []string
	Base      int
	Selected  int
	Submitted bool
	Chosen    int
}

// NewChoice creates a choice list with the first option highlighted.
func NewChoice(question string, options []string, base int) Choice {
	return Choice{
		Question: question,
		Options:  options,
		Base:     base,
		Chosen:   -1,
	}
}

// Init returns nil.
func (c Choice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter", "space":
		c.submit(c.Selected)
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			i := int(key[0]-'0') - c.Base
			if i >= 0 && i < len(c.Options) {
				c.Selected = i
				c.submit(i)
			}
		}
	}

	return c, nil
}

func (c *Choice) submit(i int) {
	c.Submitted = true
	c.Chosen = i
}

// Value returns the chosen option's number, or -1 before submission.
func (c Choice) Value() int {
	if !c.Submitted {
		return -1
	}
	return c.Chosen + c.Base
}

// View renders the question and its options.
func (c Choice) View() string {
	s := ""
	if c.Question != "" {
		s = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Question) + "\n\n"
	}

	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected {
			prefix = Pointer
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+c.Base, opt)

		switch {
		case c.Submitted && i == c.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case c.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == c.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
