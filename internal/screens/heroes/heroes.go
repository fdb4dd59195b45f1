package heroes

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathheroes/internal/catalog"
	"github.com/abhisek/mathheroes/internal/game"
	"github.com/abhisek/mathheroes/internal/screen"
	"github.com/abhisek/mathheroes/internal/ui/layout"
	"github.com/abhisek/mathheroes/internal/ui/theme"
)

// LockedName stands in for a hero the learner has not unlocked yet.
const LockedName = "???"

const (
	cardWidth = 22
	perRow    = 3
)

const heroPortrait = ` ╭───╮
 │◉ ◉│
 ╰┬─┬╯
 ╱│★│╲`

const lockedPortrait = ` ╭───╮
 │ ? │
 ╰┬─┬╯
  │ │`

// HeroesScreen shows the hero collection.
type HeroesScreen struct {
	player   *game.Player
	heroes   []catalog.Hero
	selected int
}

var (
	_ screen.Screen          = (*HeroesScreen)(nil)
	_ screen.KeyHintProvider = (*HeroesScreen)(nil)
)

// New creates a HeroesScreen for player.
func New(player *game.Player) *HeroesScreen {
	return &HeroesScreen{
		player: player,
		heroes: player.Services.Catalog.Heroes(),
	}
}

// Player returns the logged-in learner.
func (s *HeroesScreen) Player() *game.Player {
	return s.player
}

func (s *HeroesScreen) Init() tea.Cmd {
	return nil
}

func (s *HeroesScreen) Title() string {
	return "Hero Collection"
}

func (s *HeroesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→↑↓", Description: "Browse"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HeroesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	n := len(s.heroes)
	switch kmsg.String() {
	case "left", "h":
		if s.selected > 0 {
			s.selected--
		}
	case "right", "l":
		if s.selected < n-1 {
			s.selected++
		}
	case "up", "k":
		if s.selected-perRow >= 0 {
			s.selected -= perRow
		}
	case "down", "j":
		if s.selected+perRow < n {
			s.selected += perRow
		}
	}
	return s, nil
}

// DisplayName is the hero's name, or LockedName until it is unlocked.
func DisplayName(h catalog.Hero, unlocked bool) string {
	if unlocked {
		return h.Name
	}
	return LockedName
}

func (s *HeroesScreen) View(width, height int) string {
	p := s.player.Progress()
	found := 0

	var rows []string
	var row []string
	for i, h := range s.heroes {
		unlocked := p.IsRewardUnlocked(h.ID)
		if unlocked {
			found++
		}
		row = append(row, renderHero(h, unlocked, i == s.selected))
		if len(row) == perRow || i == len(s.heroes)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}

	header := theme.Title.Render("HERO COLLECTION")
	count := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).
		Render(fmt.Sprintf("★ %d of %d heroes found", found, len(s.heroes)))

	sections := append([]string{header, count, ""}, rows...)
	if found == 0 {
		sections = append(sections, "", theme.Hint.Render("Win a boss fight to recruit your first hero!"))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}

func renderHero(h catalog.Hero, unlocked, selected bool) string {
	art := lockedPortrait
	artStyle := theme.Locked
	nameStyle := theme.Locked
	if unlocked {
		art = heroPortrait
		artStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
		nameStyle = lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	}

	border := theme.Border
	if selected {
		border = theme.Primary
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		artStyle.Render(art),
		"",
		nameStyle.Render(DisplayName(h, unlocked)),
	)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cardWidth).
		Align(lipgloss.Center).
		Render(body)
}
