package levelselect

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathheroes/internal/catalog"
	"github.com/abhisek/mathheroes/internal/game"
	"github.com/abhisek/mathheroes/internal/progress"
	"github.com/abhisek/mathheroes/internal/round"
	"github.com/abhisek/mathheroes/internal/router"
	"github.com/abhisek/mathheroes/internal/screen"
	roundscreen "github.com/abhisek/mathheroes/internal/screens/round"
	"github.com/abhisek/mathheroes/internal/ui/components"
	"github.com/abhisek/mathheroes/internal/ui/layout"
	"github.com/abhisek/mathheroes/internal/ui/theme"
)

// LevelSelectScreen lists every level as a card with its unlock status.
type LevelSelectScreen struct {
	player   *game.Player
	levels   []catalog.Level
	selected int
	notice   string
}

var (
	_ screen.Screen          = (*LevelSelectScreen)(nil)
	_ screen.KeyHintProvider = (*LevelSelectScreen)(nil)
	_ screen.Resumer         = (*LevelSelectScreen)(nil)
)

// New creates a LevelSelectScreen with the highest playable level selected.
func New(player *game.Player) *LevelSelectScreen {
	s := &LevelSelectScreen{
		player: player,
		levels: player.Services.Catalog.Levels(),
	}
	s.selectFrontier()
	return s
}

// selectFrontier moves the cursor to the last unlocked, unfinished level.
func (s *LevelSelectScreen) selectFrontier() {
	p := s.player.Progress()
	for i, l := range s.levels {
		if p.IsLevelUnlocked(l.ID) && p.Status(l) != progress.StatusComplete {
			s.selected = i
		}
	}
}

// Player returns the logged-in learner.
func (s *LevelSelectScreen) Player() *game.Player {
	return s.player
}

func (s *LevelSelectScreen) Init() tea.Cmd {
	return nil
}

// Resume runs when a round screen is popped; a boss win may have opened a new level.
func (s *LevelSelectScreen) Resume() tea.Cmd {
	s.notice = ""
	s.selectFrontier()
	return nil
}

func (s *LevelSelectScreen) Title() string {
	return "Choose Your Mission"
}

func (s *LevelSelectScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Play"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LevelSelectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
		s.notice = ""
	case "down", "j":
		if s.selected < len(s.levels)-1 {
			s.selected++
		}
		s.notice = ""
	case "enter":
		return s, s.play()
	}
	return s, nil
}

func (s *LevelSelectScreen) play() tea.Cmd {
	if len(s.levels) == 0 {
		return nil
	}
	level := s.levels[s.selected]
	if !s.player.Progress().IsLevelUnlocked(level.ID) {
		s.notice = "Defeat the previous boss to unlock this level!"
		return nil
	}
	next := roundscreen.New(s.player, level)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

// StatusText is the line shown under a level card's name.
func StatusText(p *progress.PlayerProgress, level catalog.Level) string {
	switch p.Status(level) {
	case progress.StatusLocked:
		return "Locked"
	case progress.StatusComplete:
		return "Level Complete!"
	case progress.StatusBossNext:
		return "Boss Fight Next!"
	default:
		return fmt.Sprintf("%d / %d rounds passed", p.RoundsPassed(level.ID), round.RoundsPerLevel)
	}
}

func (s *LevelSelectScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	p := s.player.Progress()

	cards := make([]string, 0, len(s.levels))
	for i, l := range s.levels {
		cards = append(cards, renderCard(l, p.Status(l), StatusText(p, l), i == s.selected, cw))
	}

	unlocked := fmt.Sprintf("%d / %d levels unlocked", len(p.UnlockedLevelIDs()), s.player.Services.Catalog.Len())
	sections := []string{
		theme.Title.Render("SELECT A LEVEL"),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(unlocked),
		strings.Join(cards, "\n"),
	}
	if s.notice != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Accent).Render(s.notice))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}

func renderCard(l catalog.Level, status progress.Status, statusText string, selected bool, cw int) string {
	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Text)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	statusStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
	border := theme.Border

	switch status {
	case progress.StatusLocked:
		nameStyle = theme.Locked
		descStyle = theme.Locked
		statusStyle = theme.Locked
	case progress.StatusComplete:
		statusStyle = theme.Correct
	case progress.StatusBossNext:
		statusStyle = lipgloss.NewStyle().Foreground(theme.BossRed).Bold(true)
	}
	if selected {
		border = theme.ArcadeYellow
	}

	name := l.Name
	if status == progress.StatusLocked {
		name = "🔒 " + name
	} else if selected {
		name = "▸ " + name
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		nameStyle.Render(name),
		descStyle.Render(l.Description),
		statusStyle.Render(statusText),
	)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cw).
		Padding(0, 1).
		Render(body)
}
