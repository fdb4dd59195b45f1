package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathheroes/internal/ui/theme"
)

const arcadeTitleFull = `╔╦╗╔═╗╔╦╗╦ ╦  ╦ ╦╔═╗╦═╗╔═╗╔═╗╔═╗
║║║╠═╣ ║ ╠═╣  ╠═╣║╣ ╠╦╝║ ║║╣ ╚═╗
╩ ╩╩ ╩ ╩ ╩ ╩  ╩ ╩╚═╝╩╚═╚═╝╚═╝╚═╝`

const arcadeTitleCompact = "M · A · T · H   H · E · R · O · E · S"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// stats is what the dashboard bar shows about the learner.
type stats struct {
	heroesFound  int
	heroesTotal  int
	highestLevel int
	bossReady    bool
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(s stats, cw int, compact bool) string {
	heroStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	levelStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	bossStyle := lipgloss.NewStyle().Foreground(theme.BossRed).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	heroes := fmt.Sprintf("★ %d/%d HEROES", s.heroesFound, s.heroesTotal)
	level := fmt.Sprintf("▲ LEVEL %d", s.highestLevel)
	boss := dimStyle.Render("⚔ NO BOSS YET")
	if s.bossReady {
		boss = bossStyle.Render("⚔ BOSS READY")
	}
	if compact {
		heroes = fmt.Sprintf("★%d/%d", s.heroesFound, s.heroesTotal)
		level = fmt.Sprintf("▲%d", s.highestLevel)
		boss = ""
		if s.bossReady {
			boss = bossStyle.Render("⚔")
		}
	}

	text := heroStyle.Render(heroes) + "  " + levelStyle.Render(level)
	if boss != "" {
		text += "  " + boss
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(text)
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
