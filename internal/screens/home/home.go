package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathheroes/internal/game"
	"github.com/abhisek/mathheroes/internal/progress"
	"github.com/abhisek/mathheroes/internal/router"
	"github.com/abhisek/mathheroes/internal/screen"
	"github.com/abhisek/mathheroes/internal/screens/heroes"
	"github.com/abhisek/mathheroes/internal/screens/history"
	"github.com/abhisek/mathheroes/internal/screens/levelselect"
	"github.com/abhisek/mathheroes/internal/ui/components"
	"github.com/abhisek/mathheroes/internal/ui/layout"
	"github.com/abhisek/mathheroes/internal/ui/theme"
)

// HomeScreen is the learner's main menu.
type HomeScreen struct {
	player *game.Player
	menu   components.Menu
}

var (
	_ screen.Screen          = (*HomeScreen)(nil)
	_ screen.KeyHintProvider = (*HomeScreen)(nil)
	_ screen.BackHandler     = (*HomeScreen)(nil)
)

// New creates a HomeScreen for a logged-in learner.
func New(player *game.Player) *HomeScreen {
	h := &HomeScreen{player: player}
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "START GAME", Action: func() tea.Cmd {
			return push(levelselect.New(player))
		}},
		{Label: "HERO COLLECTION", Action: func() tea.Cmd {
			return push(heroes.New(player))
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return push(history.New(player))
		}},
		{Label: "LOG OUT", Action: h.logout},
	})
	return h
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

// logout saves progress and returns to the login screen at the bottom of the stack.
func (h *HomeScreen) logout() tea.Cmd {
	if err := h.player.Logout(context.Background()); err != nil {
		h.player.Services.Logger.Warn("save on logout failed", "learner", h.player.Name(), "err", err)
	}
	return func() tea.Msg {
		return router.PopToRootMsg{}
	}
}

// Player returns the logged-in learner.
func (h *HomeScreen) Player() *game.Player {
	return h.player
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// HandlesBack makes Esc log out instead of silently dropping the learner.
func (h *HomeScreen) HandlesBack() bool {
	return true
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Log out"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "esc" {
		return h, h.logout()
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer to judge the terminal.
	compact := height+layout.HeaderHeight+layout.FooterHeight < 30 || width < 90
	cw := components.ContentWidth(width)

	st := h.stats()
	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Title.Render("Welcome, "+h.player.Name()+"!")))
	if !compact {
		sections = append(sections, renderMascotBox(mascotFor(st), cw))
	}
	sections = append(sections, renderStatsBar(st, cw, compact))
	sections = append(sections, h.menu.View(min(cw, 30)))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) stats() stats {
	p := h.player.Progress()
	cat := h.player.Services.Catalog

	st := stats{
		heroesFound: h.player.HeroCount(),
		heroesTotal: len(cat.Heroes()),
	}
	for _, l := range cat.Levels() {
		if p.IsLevelUnlocked(l.ID) {
			st.highestLevel = max(st.highestLevel, l.ID)
		}
		if p.Status(l) == progress.StatusBossNext {
			st.bossReady = true
		}
	}
	return st
}

func mascotFor(st stats) MascotVariant {
	switch {
	case st.heroesTotal > 0 && st.heroesFound == st.heroesTotal:
		return MascotCelebrating
	case st.bossReady:
		return MascotAlert
	default:
		return MascotIdle
	}
}
