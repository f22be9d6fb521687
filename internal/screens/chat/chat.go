// Package chat is the companion conversation screen.
package chat

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fadi/mendly/internal/companion"
	"github.com/fadi/mendly/internal/screen"
	"github.com/fadi/mendly/internal/ui/components"
	"github.com/fadi/mendly/internal/ui/layout"
	"github.com/fadi/mendly/internal/ui/theme"
)

// Greeting opens every conversation. It is not stored.
const Greeting = "Hi, I'm here to listen. How are you feeling today?"

// MessageLimit caps a single message.
const MessageLimit = 1000

// Sender sends a message and returns the companion's reply.
// *companion.Session implements it.
type Sender interface {
	Send(ctx context.Context, message string) (companion.Reply, error)
}

type replyMsg struct {
	Reply companion.Reply
	Err   error
}

type line struct {
	role companion.Role
	text string
	err  bool
}

// ChatScreen shows the transcript above a message input.
type ChatScreen struct {
	sender   Sender
	input    components.TextInput
	viewport viewport.Model
	spinner  spinner.Model
	lines    []line
	waiting  bool
	width    int
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates a chat screen over a companion session.
func New(sender Sender) *ChatScreen {
	return &ChatScreen{
		sender:   sender,
		input:    components.NewTextInput("Type a message...", MessageLimit, 0),
		viewport: viewport.New(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Calm))),
		lines:    []line{{role: companion.RoleAssistant, text: Greeting}},
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ChatScreen) Title() string { return "Talk it out" }

// Waiting reports whether a reply is pending.
func (c *ChatScreen) Waiting() bool { return c.waiting }

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "PgUp/PgDn", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		c.waiting = false
		if msg.Err != nil {
			c.lines = append(c.lines, line{role: companion.RoleAssistant, text: "Sorry, I couldn't reply just now. Please try again.", err: true})
		} else {
			c.lines = append(c.lines, line{role: companion.RoleAssistant, text: msg.Reply.Text})
		}
		c.refresh()
		return c, nil

	case spinner.TickMsg:
		if !c.waiting {
			return c, nil
		}
		var cmd tea.Cmd
		c.spinner, cmd = c.spinner.Update(msg)
		return c, cmd

	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			return c, c.send()
		case "pgup", "pgdown":
			var cmd tea.Cmd
			c.viewport, cmd = c.viewport.Update(msg)
			return c, cmd
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *ChatScreen) send() tea.Cmd {
	text := strings.TrimSpace(c.input.Value())
	if text == "" || c.waiting {
		return nil
	}
	c.input.Reset()
	c.lines = append(c.lines, line{role: companion.RoleUser, text: text})
	c.waiting = true
	c.refresh()

	sender := c.sender
	return tea.Batch(
		func() tea.Msg {
			reply, err := sender.Send(context.Background(), text)
			return replyMsg{Reply: reply, Err: err}
		},
		c.spinner.Tick,
	)
}

// refresh re-renders the transcript and scrolls to the newest line.
func (c *ChatScreen) refresh() {
	if c.width == 0 {
		return
	}
	c.viewport.SetContent(c.transcript(c.width))
	c.viewport.GotoBottom()
}

func (c *ChatScreen) transcript(width int) string {
	wrap := width - 6
	if wrap < 20 {
		wrap = 20
	}
	you := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	bot := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(wrap).PaddingLeft(2)
	errBody := body.Foreground(theme.Error)

	var b strings.Builder
	for i, l := range c.lines {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if l.role == companion.RoleUser {
			b.WriteString(you.Render("You"))
		} else {
			b.WriteString(bot.Render("Mendly"))
		}
		b.WriteString("\n")
		if l.err {
			b.WriteString(errBody.Render(l.text))
		} else {
			b.WriteString(body.Render(l.text))
		}
	}
	return b.String()
}

func (c *ChatScreen) View(width, height int) string {
	c.input.Model.SetWidth(width - 8)
	inputView := c.input.View()

	status := ""
	if c.waiting {
		status = c.spinner.View() + theme.Hint.Render(" thinking...")
	}

	vpHeight := height - lipgloss.Height(inputView) - 2
	if vpHeight < 3 {
		vpHeight = 3
	}
	c.viewport.SetWidth(width)
	c.viewport.SetHeight(vpHeight)
	if width != c.width {
		c.width = width
		c.refresh()
	}

	return c.viewport.View() + "\n" + status + "\n" + inputView
}
