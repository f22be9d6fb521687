package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: soft and low-contrast, tuned for dark terminals.
var (
	Primary   = lipgloss.Color("#7DD3FC") // Sky
	Secondary = lipgloss.Color("#5EEAD4") // Sea glass
	Accent    = lipgloss.Color("#FCD34D") // Warm sand
	Calm      = lipgloss.Color("#A78BFA") // Lavender
	Success   = lipgloss.Color("#86EFAC") // Mint
	Warning   = lipgloss.Color("#FDBA74") // Peach
	Error     = lipgloss.Color("#FDA4AF") // Blush
	Text      = lipgloss.Color("#E2E8F0") // Mist
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0B1220") // Night
	BgCard    = lipgloss.Color("#162033") // Dusk
	Border    = lipgloss.Color("#2E3B52") // Harbor
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Emphasis = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Notice = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Warning).
		Foreground(Text).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Positive = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	Negative = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
