package breathe

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/glamour"

	"github.com/fadi/mendly/internal/breathing"
	"github.com/fadi/mendly/internal/screen"
	"github.com/fadi/mendly/internal/ui/layout"
)

// GuideScreen shows a program's written instructions rendered as
// markdown, scrollable when taller than the screen.
type GuideScreen struct {
	program  breathing.Program
	viewport viewport.Model

	// rendered caches the markdown output for renderedWidth.
	rendered      string
	renderedWidth int
}

var _ screen.Screen = (*GuideScreen)(nil)
var _ screen.KeyHintProvider = (*GuideScreen)(nil)

// NewGuide creates a guide screen for the program.
func NewGuide(p breathing.Program) *GuideScreen {
	return &GuideScreen{
		program:  p,
		viewport: viewport.New(),
	}
}

func (g *GuideScreen) Init() tea.Cmd { return nil }

func (g *GuideScreen) Title() string { return g.program.Name + " · Guide" }

func (g *GuideScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (g *GuideScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	g.viewport, cmd = g.viewport.Update(msg)
	return g, cmd
}

// Markdown returns the guide document for a program.
func Markdown(p breathing.Program) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Name)
	if p.Summary != "" {
		fmt.Fprintf(&b, "%s\n\n", p.Summary)
	}
	fmt.Fprintf(&b, "**Pattern:** %s seconds, %d cycles\n\n", p.Pattern(), p.TotalCycles)
	for _, ph := range p.Phases {
		fmt.Fprintf(&b, "- %s (%ds)\n", ph.Label, ph.Seconds)
	}
	if p.Guide != "" {
		fmt.Fprintf(&b, "\n%s\n", p.Guide)
	}
	if p.VideoURL != "" {
		fmt.Fprintf(&b, "\nWatch a demonstration: %s\n", p.VideoURL)
	}
	return b.String()
}

// render converts the guide to styled terminal text, falling back to the
// raw markdown if the renderer fails.
func render(md string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func (g *GuideScreen) View(width, height int) string {
	wrap := width - 4
	if wrap < 20 {
		wrap = 20
	}
	if wrap != g.renderedWidth {
		g.rendered = render(Markdown(g.program), wrap)
		g.renderedWidth = wrap
		g.viewport.SetContent(g.rendered)
	}
	g.viewport.SetWidth(width)
	g.viewport.SetHeight(height)
	return g.viewport.View()
}
