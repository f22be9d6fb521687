package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/fadi/mendly/internal/ui/theme"
)

const bannerArt = `
 ███╗   ███╗███████╗███╗   ██╗██████╗ ██╗     ██╗   ██╗
 ████╗ ████║██╔════╝████╗  ██║██╔══██╗██║     ╚██╗ ██╔╝
 ██╔████╔██║█████╗  ██╔██╗ ██║██║  ██║██║      ╚████╔╝
 ██║╚██╔╝██║██╔══╝  ██║╚██╗██║██║  ██║██║       ╚██╔╝
 ██║ ╚═╝ ██║███████╗██║ ╚████║██████╔╝███████╗   ██║
 ╚═╝     ╚═╝╚══════╝╚═╝  ╚═══╝╚═════╝ ╚══════╝   ╚═╝`

const bannerCompact = "M E N D L Y"

// RenderBanner returns the MENDLY banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 58 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 58 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
