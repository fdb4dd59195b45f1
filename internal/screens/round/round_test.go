package round

import (
	"context"
	"strconv"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathheroes/internal/engine"
	"github.com/abhisek/mathheroes/internal/game"
	"github.com/abhisek/mathheroes/internal/progress"
	rnd "github.com/abhisek/mathheroes/internal/round"
	"github.com/abhisek/mathheroes/internal/router"
	"github.com/abhisek/mathheroes/internal/store"
	"github.com/abhisek/mathheroes/internal/testutil"
	"github.com/abhisek/mathheroes/internal/ui/components"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newRound(t *testing.T, roundsPassed int) (*RoundScreen, *game.Player) {
	t.Helper()
	p := testutil.NewTestPlayer(t, "Maya")
	if roundsPassed > 0 {
		p.Progress().RoundsPassedByLevel[1] = roundsPassed
	}
	return New(p, p.Services.Catalog.MustLevel(1)), p
}

func tick(s *RoundScreen) tea.Cmd {
	_, cmd := s.Update(tickMsg{owner: s})
	return cmd
}

// startPlaying walks through the pre-game card and the countdown.
func startPlaying(t *testing.T, s *RoundScreen) {
	t.Helper()
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd, "countdown should schedule a tick")
	require.Equal(t, stageCountdown, s.stage)
	for i := 0; i < engine.CountdownStart; i++ {
		tick(s)
	}
	require.Equal(t, stagePlaying, s.stage)
}

// answer types the current answer (or a wrong one) and submits it.
func answer(t *testing.T, s *RoundScreen, correct bool) {
	t.Helper()
	q, ok := s.player.Engine.Session().Question()
	require.True(t, ok)
	v := q.Answer
	if !correct {
		v++
	}
	for _, r := range strconv.Itoa(v) {
		s.Update(keyPress(r))
	}
	s.Update(specialKey(tea.KeyEnter))
}

func TestPreGame_NormalRound(t *testing.T) {
	s, _ := newRound(t, 2)
	assert.Equal(t, stagePreGame, s.stage)

	view := s.View(100, 30)
	assert.Contains(t, view, "Get Ready!")
	assert.Contains(t, view, "Level 1: Addition - Round 3")
}

func TestPreGame_BossRound(t *testing.T) {
	s, _ := newRound(t, 4)

	view := s.View(100, 30)
	assert.Contains(t, view, "BOSS FIGHT!")
	assert.Contains(t, view, "Defeat Captain Addition!")
	assert.Equal(t, rnd.BossPassScore, s.prepared.RequiredScore)
}

func TestPreGame_EscPopsWithoutHistory(t *testing.T) {
	s, p := newRound(t, 0)

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
	assert.False(t, p.Engine.InRound())

	events, err := p.Services.History.List(context.Background(), "Maya", store.QueryOpts{})
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestCountdown(t *testing.T) {
	s, _ := newRound(t, 0)
	s.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, 3, s.countdown)

	tick(s)
	assert.Equal(t, 2, s.countdown)
	assert.Contains(t, s.View(100, 30), "▀▀█")

	tick(s)
	assert.Equal(t, 1, s.countdown)

	cmd := tick(s)
	assert.NotNil(t, cmd, "clock keeps ticking once play starts")
	assert.Equal(t, stagePlaying, s.stage)
	assert.True(t, s.showGo)
	assert.Equal(t, rnd.RoundTimeSeconds, s.secondsLeft)
	assert.NotEmpty(t, s.question)
}

func TestStaleTickIgnored(t *testing.T) {
	s, _ := newRound(t, 0)
	s.Update(specialKey(tea.KeyEnter))

	_, cmd := s.Update(tickMsg{owner: &RoundScreen{}})
	assert.Nil(t, cmd)
	assert.Equal(t, 3, s.countdown)
}

func TestAnswers(t *testing.T) {
	s, _ := newRound(t, 0)
	startPlaying(t, s)

	answer(t, s, true)
	assert.Equal(t, 1, s.score)
	assert.Equal(t, components.FeedbackCorrect, s.input.Feedback())
	assert.Empty(t, s.input.Value())

	answer(t, s, false)
	assert.Equal(t, 1, s.score)
	assert.Equal(t, components.FeedbackIncorrect, s.input.Feedback())

	assert.Contains(t, s.View(100, 30), "Score: 1 / 15")
}

func TestNonDigitKeysIgnored(t *testing.T) {
	s, _ := newRound(t, 0)
	startPlaying(t, s)

	s.Update(keyPress('x'))
	s.Update(keyPress('7'))
	assert.Equal(t, "7", s.input.Value())
}

func TestQuitMidRound(t *testing.T) {
	s, p := newRound(t, 0)
	startPlaying(t, s)
	answer(t, s, true)

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	assert.Nil(t, cmd)
	require.Equal(t, stageResult, s.stage)
	assert.Contains(t, s.View(100, 30), "You have quit the current round.")
	assert.Equal(t, 0, p.Progress().RoundsPassed(1))

	_, cmd = s.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestRoundPassedByClock(t *testing.T) {
	s, p := newRound(t, 0)
	startPlaying(t, s)
	for i := 0; i < rnd.NormalPassScore; i++ {
		answer(t, s, true)
	}

	var cmd tea.Cmd
	for i := 0; i < rnd.RoundTimeSeconds; i++ {
		cmd = tick(s)
	}
	assert.Nil(t, cmd, "ticks stop once the round ends")
	require.Equal(t, stageResult, s.stage)

	view := s.View(100, 30)
	assert.Contains(t, view, "Round Passed!")
	assert.Contains(t, view, "4 more round(s)")
	assert.Equal(t, 1, p.Progress().RoundsPassed(1))

	events, err := p.Services.History.List(context.Background(), "Maya", store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "passed", events[0].Outcome)
}

func TestRoundFailedByClock(t *testing.T) {
	s, _ := newRound(t, 0)
	startPlaying(t, s)
	answer(t, s, true)
	for i := 0; i < rnd.RoundTimeSeconds; i++ {
		tick(s)
	}
	view := s.View(100, 30)
	assert.Contains(t, view, "Try Again!")
	assert.Contains(t, view, "You needed 15 correct answers, but got 1.")
}

func TestTickAfterResultIgnored(t *testing.T) {
	s, _ := newRound(t, 0)
	startPlaying(t, s)
	s.Update(specialKey(tea.KeyEscape))

	assert.Nil(t, tick(s))
	assert.Equal(t, stageResult, s.stage)
}

func TestLockedLevelShowsError(t *testing.T) {
	p := testutil.NewTestPlayer(t, "Maya")
	s := New(p, p.Services.Catalog.MustLevel(3))
	require.Error(t, s.err)

	assert.Contains(t, s.View(100, 30), "Back to Levels")
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestResultText(t *testing.T) {
	p := testutil.NewTestPlayer(t, "Maya")
	cat := p.Services.Catalog
	level := cat.MustLevel(1)
	hero := cat.RewardFor(level)
	next := cat.MustLevel(2)

	tests := []struct {
		name       string
		ended      engine.RoundEnded
		wantTitle  string
		wantBody   string
		wantButton string
	}{
		{
			name: "boss victory",
			ended: engine.RoundEnded{Outcome: rnd.OutcomePassed, Details: engine.RoundDetails{
				Level: level, Hero: hero, IsBoss: true, Score: 20, RequiredScore: 20,
				Unlocks: progress.Unlocks{RoundsPassed: 5, LevelComplete: true, NewReward: &hero, NewLevel: &next},
			}},
			wantTitle:  "VICTORY!",
			wantBody:   "You defeated Captain Addition!",
			wantButton: "Continue",
		},
		{
			name: "normal pass",
			ended: engine.RoundEnded{Outcome: rnd.OutcomePassed, Details: engine.RoundDetails{
				Level: level, Score: 16, RequiredScore: 15,
				Unlocks: progress.Unlocks{RoundsPassed: 2, RoundsRemaining: 3},
			}},
			wantTitle:  "Round Passed!",
			wantBody:   "You need to pass 3 more round(s)",
			wantButton: "Continue",
		},
		{
			name: "replay of a complete level",
			ended: engine.RoundEnded{Outcome: rnd.OutcomePassed, Details: engine.RoundDetails{
				Level: level, Score: 18, RequiredScore: 15,
				Unlocks: progress.Unlocks{RoundsPassed: 5, LevelComplete: true},
			}},
			wantTitle:  "Round Passed!",
			wantBody:   "Level already complete!",
			wantButton: "Continue",
		},
		{
			name: "fail",
			ended: engine.RoundEnded{Outcome: rnd.OutcomeFailed, Details: engine.RoundDetails{
				Level: level, Score: 9, RequiredScore: 15,
			}},
			wantTitle:  "Try Again!",
			wantBody:   "You needed 15 correct answers, but got 9.",
			wantButton: "Back to Levels",
		},
		{
			name:       "quit",
			ended:      engine.RoundEnded{Outcome: rnd.OutcomeQuit},
			wantTitle:  "Game Over",
			wantBody:   "You have quit the current round.",
			wantButton: "Back to Levels",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, body, button := ResultText(tt.ended)
			assert.Equal(t, tt.wantTitle, title)
			assert.Contains(t, body, tt.wantBody)
			assert.Equal(t, tt.wantButton, button)
		})
	}
}

func TestSaveErrorWarning(t *testing.T) {
	s, _ := newRound(t, 0)
	s.stage = stageResult
	s.ended = &engine.RoundEnded{
		Outcome: rnd.OutcomePassed,
		Details: engine.RoundDetails{SaveErr: assert.AnError, Unlocks: progress.Unlocks{RoundsRemaining: 4}},
	}
	assert.Contains(t, s.View(100, 30), "could not be saved")
}
