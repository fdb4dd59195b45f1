package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathheroes/internal/game"
	"github.com/abhisek/mathheroes/internal/round"
	"github.com/abhisek/mathheroes/internal/router"
	"github.com/abhisek/mathheroes/internal/screen"
	"github.com/abhisek/mathheroes/internal/store"
	"github.com/abhisek/mathheroes/internal/ui/layout"
	"github.com/abhisek/mathheroes/internal/ui/theme"
)

const pageSize = 50

// filters cycles with the f key; the empty string shows every outcome.
var filters = []string{"", round.OutcomePassed.String(), round.OutcomeFailed.String(), round.OutcomeQuit.String()}

type historyLoadedMsg struct {
	Rounds []store.RoundEvent
	Counts store.OutcomeCounts
	Err    error
}

// HistoryScreen displays the learner's past rounds.
type HistoryScreen struct {
	player   *game.Player
	rounds   []store.RoundEvent
	counts   store.OutcomeCounts
	filter   int
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var (
	_ screen.Screen          = (*HistoryScreen)(nil)
	_ screen.KeyHintProvider = (*HistoryScreen)(nil)
)

// New creates a new HistoryScreen.
func New(player *game.Player) *HistoryScreen {
	return &HistoryScreen{
		player:   player,
		expanded: make(map[int]bool),
	}
}

// Player returns the logged-in learner.
func (s *HistoryScreen) Player() *game.Player {
	return s.player
}

func (s *HistoryScreen) Init() tea.Cmd {
	return s.load()
}

func (s *HistoryScreen) load() tea.Cmd {
	repo := s.player.Services.History
	learner := s.player.Name()
	opts := store.QueryOpts{Limit: pageSize, Outcome: filters[s.filter]}

	return func() tea.Msg {
		ctx := context.Background()

		rounds, err := repo.List(ctx, learner, opts)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		counts, err := repo.Counts(ctx, learner)
		if err != nil {
			return historyLoadedMsg{Rounds: rounds, Counts: store.OutcomeCounts{}}
		}
		return historyLoadedMsg{Rounds: rounds, Counts: counts}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "f", Description: "Filter"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.errMsg = ""
			s.rounds = msg.Rounds
			s.counts = msg.Counts
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.rounds)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		case "f":
			s.filter = (s.filter + 1) % len(filters)
			s.selected = 0
			s.expanded = make(map[int]bool)
			s.loaded = false
			return s, s.load()
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderSummary()))
	b.WriteString("\n\n")

	if len(s.rounds) == 0 {
		empty := "No rounds yet. Go save the day!"
		if filters[s.filter] != "" {
			empty = fmt.Sprintf("No %s rounds yet.", filters[s.filter])
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(empty)))
		return b.String()
	}

	// Keep the selected row on screen.
	visible := max(height-4, 1)
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}

	catalog := s.player.Services.Catalog
	for i := start; i < len(s.rounds) && i < start+visible; i++ {
		r := s.rounds[i]

		levelName := fmt.Sprintf("Level %d", r.LevelID)
		if l, ok := catalog.Level(r.LevelID); ok {
			levelName = l.Name
		}
		kind := "round"
		if r.IsBoss {
			kind = "BOSS"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  %-24s %-5s  %2d/%-2d  %s",
			prefix, r.Timestamp.Local().Format("Jan 02 15:04"), levelName, kind,
			r.Score, r.RequiredScore, strings.ToUpper(r.Outcome))

		style := lipgloss.NewStyle().Foreground(outcomeColor(r.Outcome))
		if i == s.selected {
			style = style.Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    round %s  needed %d, scored %d", r.RoundID, r.RequiredScore, r.Score)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderSummary() string {
	passed := s.counts[round.OutcomePassed.String()]
	failed := s.counts[round.OutcomeFailed.String()]
	quit := s.counts[round.OutcomeQuit.String()]

	filter := "all"
	if f := filters[s.filter]; f != "" {
		filter = f
	}

	return fmt.Sprintf("%s  %s  %s   %s",
		lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(fmt.Sprintf("✓ %d passed", passed)),
		lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(fmt.Sprintf("✗ %d failed", failed)),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("⏏ %d quit", quit)),
		theme.Hint.Render("showing: "+filter),
	)
}

func outcomeColor(outcome string) color.Color {
	switch outcome {
	case round.OutcomePassed.String():
		return theme.Success
	case round.OutcomeFailed.String():
		return theme.Error
	default:
		return theme.TextDim
	}
}
