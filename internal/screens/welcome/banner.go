package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathheroes/internal/ui/theme"
)

const bannerMath = ` ███╗   ███╗ █████╗ ████████╗██╗  ██╗
 ████╗ ████║██╔══██╗╚══██╔══╝██║  ██║
 ██╔████╔██║███████║   ██║   ███████║
 ██║╚██╔╝██║██╔══██║   ██║   ██╔══██║
 ██║ ╚═╝ ██║██║  ██║   ██║   ██║  ██║
 ╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝`

const bannerHeroes = `██╗  ██╗███████╗██████╗  ██████╗ ███████╗███████╗
██║  ██║██╔════╝██╔══██╗██╔═══██╗██╔════╝██╔════╝
███████║█████╗  ██████╔╝██║   ██║█████╗  ███████╗
██╔══██║██╔══╝  ██╔══██╗██║   ██║██╔══╝  ╚════██║
██║  ██║███████╗██║  ██║╚██████╔╝███████╗███████║
╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝ ╚═════╝ ╚══════╝╚══════╝`

const bannerCompact = "M A T H   H E R O E S"

// RenderBanner returns the two-word banner, MATH in purple over HEROES in gold.
// Terminals narrower than 52 columns get the compact one-liner.
func RenderBanner(width int) string {
	if width < 52 {
		return lipgloss.NewStyle().
			Foreground(theme.ArcadeYellow).
			Bold(true).
			Render(bannerCompact)
	}
	math := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(bannerMath)
	heroes := theme.Banner.Render(bannerHeroes)
	return lipgloss.JoinVertical(lipgloss.Center, math, heroes)
}
