package history

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathheroes/internal/game"
	"github.com/abhisek/mathheroes/internal/router"
	"github.com/abhisek/mathheroes/internal/store"
	"github.com/abhisek/mathheroes/internal/testutil"
)

func seed(t *testing.T, p *game.Player, outcomes ...string) {
	t.Helper()
	base := time.Date(2026, 3, 1, 16, 0, 0, 0, time.UTC)
	for i, o := range outcomes {
		err := p.Services.History.Append(context.Background(), &store.RoundEvent{
			RoundID:       "round-" + o + string(rune('a'+i)),
			LearnerID:     p.Name(),
			LevelID:       1,
			Outcome:       o,
			Score:         10 + i,
			RequiredScore: 15,
			Timestamp:     base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}
}

// load runs the screen's load command and feeds the result back in.
func load(t *testing.T, s *HistoryScreen, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	s.Update(cmd())
	require.True(t, s.loaded)
}

func TestLoadingState(t *testing.T) {
	s := New(testutil.NewTestPlayer(t, "Maya"))
	assert.Contains(t, s.View(100, 30), "Loading history...")
}

func TestEmptyHistory(t *testing.T) {
	s := New(testutil.NewTestPlayer(t, "Maya"))
	load(t, s, s.Init())
	assert.Contains(t, s.View(100, 30), "No rounds yet.")
}

func TestListsRoundsWithCounts(t *testing.T) {
	p := testutil.NewTestPlayer(t, "Maya")
	seed(t, p, "passed", "failed", "passed", "quit")

	s := New(p)
	load(t, s, s.Init())

	require.Len(t, s.rounds, 4)
	assert.Equal(t, "quit", s.rounds[0].Outcome, "newest first")

	view := s.View(120, 30)
	assert.Contains(t, view, "2 passed")
	assert.Contains(t, view, "1 failed")
	assert.Contains(t, view, "1 quit")
	assert.Contains(t, view, "Level 1: Addition")
}

func TestFilterCycles(t *testing.T) {
	p := testutil.NewTestPlayer(t, "Maya")
	seed(t, p, "passed", "failed", "passed")

	s := New(p)
	load(t, s, s.Init())

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'f', Text: "f"})
	load(t, s, cmd)
	assert.Len(t, s.rounds, 2)
	assert.Contains(t, s.View(120, 30), "showing: passed")

	_, cmd = s.Update(tea.KeyPressMsg{Code: 'f', Text: "f"})
	load(t, s, cmd)
	assert.Len(t, s.rounds, 1)

	_, cmd = s.Update(tea.KeyPressMsg{Code: 'f', Text: "f"})
	load(t, s, cmd)
	assert.Empty(t, s.rounds)
	assert.Contains(t, s.View(120, 30), "No quit rounds yet.")
}

func TestExpandShowsDetail(t *testing.T) {
	p := testutil.NewTestPlayer(t, "Maya")
	seed(t, p, "failed")

	s := New(p)
	load(t, s, s.Init())

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Contains(t, s.View(120, 30), "needed 15, scored 10")
}

func TestEscPops(t *testing.T) {
	s := New(testutil.NewTestPlayer(t, "Maya"))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestLoadErrorShown(t *testing.T) {
	s := New(testutil.NewTestPlayer(t, "Maya"))
	s.Update(historyLoadedMsg{Err: assert.AnError})
	assert.Contains(t, s.View(100, 30), "Error:")
}
