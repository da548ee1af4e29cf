package roadmap

import (
	"charm.land/lipgloss/v2"

	"github.com/learngrid/learngrid/internal/ui/theme"
)

const bannerArt = `
 ██╗     ███████╗ █████╗ ██████╗ ███╗   ██╗ ██████╗ ██████╗ ██╗██████╗
 ██║     ██╔════╝██╔══██╗██╔══██╗████╗  ██║██╔════╝ ██╔══██╗██║██╔══██╗
 ██║     █████╗  ███████║██████╔╝██╔██╗ ██║██║  ███╗██████╔╝██║██║  ██║
 ██║     ██╔══╝  ██╔══██║██╔══██╗██║╚██╗██║██║   ██║██╔══██╗██║██║  ██║
 ███████╗███████╗██║  ██║██║  ██║██║ ╚████║╚██████╔╝██║  ██║██║██████╔╝
 ╚══════╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═══╝ ╚═════╝ ╚═╝  ╚═╝╚═╝╚═════╝`

const bannerCompact = "L E A R N G R I D"

// bannerWidth is the widest line of bannerArt.
const bannerWidth = 71

// renderBanner returns the LearnGrid banner shown before the first
// roadmap. Narrow terminals get the compact form.
func renderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth+2 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
