package home

import (
	"charm.land/lipgloss/v2"

	"github.com/oguzhan/hoca/internal/ui/theme"
)

const bannerArt = `
 ██╗  ██╗ ██████╗  ██████╗ █████╗
 ██║  ██║██╔═══██╗██╔════╝██╔══██╗
 ███████║██║   ██║██║     ███████║
 ██╔══██║██║   ██║██║     ██╔══██║
 ██║  ██║╚██████╔╝╚██████╗██║  ██║
 ╚═╝  ╚═╝ ╚═════╝  ╚═════╝╚═╝  ╚═╝`

const bannerCompact = "H O C A"

// RenderBanner returns the HOCA banner styled in the primary color, with a
// compact fallback for narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
