package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learninghub/internal/ui/theme"
)

const bannerArt = `
 ██╗     ███████╗ █████╗ ██████╗ ███╗   ██╗
 ██║     ██╔════╝██╔══██╗██╔══██╗████╗  ██║
 ██║     █████╗  ███████║██████╔╝██╔██╗ ██║
 ██║     ██╔══╝  ██╔══██║██╔══██╗██║╚██╗██║
 ███████╗███████╗██║  ██║██║  ██║██║ ╚████║
 ╚══════╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═══╝
              · H · U · B ·`

const bannerCompact = "L E A R N I N G H U B"

// RenderBanner returns the banner styled in the primary color. Terminals
// narrower than 48 columns get the one-line form.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 48 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
