package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathheroes/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Teal, waiting for a mission
	MascotCelebrating                      // Gold, every hero collected
	MascotAlert                            // Red, a boss fight is waiting
)

const mascotIdle = `╭─────╮
│ ◉ ◉ │
│  ▽  │
╰┬───┬╯
 │ ★ │`

const mascotCelebrating = `╭─────╮
│ ★ ★ │
│  ▿  │
╰┬───┬╯
\│ ★ │/`

const mascotAlert = `╭─────╮
│ ◉ ◉ │ !
│  ○  │
╰┬───┬╯
 │ ⚔ │`

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(variant MascotVariant) string {
	art := mascotIdle
	fg := theme.Secondary

	switch variant {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotAlert:
		art = mascotAlert
		fg = theme.BossRed
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
