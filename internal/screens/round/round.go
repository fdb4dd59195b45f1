package round

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathheroes/internal/catalog"
	"github.com/abhisek/mathheroes/internal/engine"
	"github.com/abhisek/mathheroes/internal/game"
	rnd "github.com/abhisek/mathheroes/internal/round"
	"github.com/abhisek/mathheroes/internal/router"
	"github.com/abhisek/mathheroes/internal/screen"
	"github.com/abhisek/mathheroes/internal/ui/components"
	"github.com/abhisek/mathheroes/internal/ui/layout"
)

// stage is what the round screen is currently showing.
type stage int

const (
	stagePreGame stage = iota
	stageCountdown
	stagePlaying
	stageResult
)

// tickMsg drives the engine clock. owner ties it to the screen that
// scheduled it so a tick outliving its round is dropped.
type tickMsg struct {
	owner *RoundScreen
}

// RoundScreen runs one round: pre-game card, countdown, play and result.
type RoundScreen struct {
	player *game.Player
	level  catalog.Level
	stage  stage
	err    error

	prepared    engine.RoundPrepared
	countdown   int
	showGo      bool
	question    string
	score       int
	secondsLeft int
	fraction    float64
	input       components.TextInput
	ended       *engine.RoundEnded
}

var (
	_ screen.Screen          = (*RoundScreen)(nil)
	_ screen.KeyHintProvider = (*RoundScreen)(nil)
	_ screen.BackHandler     = (*RoundScreen)(nil)
)

// New prepares a round of level for player.
func New(player *game.Player, level catalog.Level) *RoundScreen {
	s := &RoundScreen{
		player: player,
		level:  level,
		input:  components.NewTextInput("?", true, 4),
	}
	if err := player.Engine.PrepareRound(level); err != nil {
		player.Services.Logger.Warn("round not prepared", "level", level.ID, "err", err)
		s.err = err
		return s
	}
	s.drain()
	return s
}

// Player returns the logged-in learner.
func (s *RoundScreen) Player() *game.Player {
	return s.player
}

func (s *RoundScreen) Init() tea.Cmd {
	return nil
}

// HandlesBack keeps Esc inside the screen so a running round is quit
// through the engine before the screen goes away.
func (s *RoundScreen) HandlesBack() bool {
	return true
}

func (s *RoundScreen) Title() string {
	return s.level.Name
}

func (s *RoundScreen) KeyHints() []layout.KeyHint {
	switch s.stage {
	case stagePreGame:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case stagePlaying:
		return []layout.KeyHint{
			{Key: "0-9", Description: "Answer"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit round"},
		}
	case stageResult:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Quit round"},
		}
	}
}

func (s *RoundScreen) tick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{owner: s}
	})
}

func pop() tea.Msg {
	return router.PopScreenMsg{}
}

func (s *RoundScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.owner != s || (s.stage != stageCountdown && s.stage != stagePlaying) {
			return s, nil
		}
		s.showGo = false
		s.player.Engine.Tick(context.Background())
		s.drain()
		if s.stage == stageResult {
			return s, nil
		}
		return s, s.tick()

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *RoundScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()

	if s.err != nil {
		if key == "enter" || key == "esc" {
			return pop
		}
		return nil
	}

	switch s.stage {
	case stagePreGame:
		switch key {
		case "enter", "space":
			s.player.Engine.BeginCountdown()
			s.drain()
			return s.tick()
		case "esc":
			// Backing out before play ends the round without a result card.
			s.player.Engine.Quit(context.Background())
			s.drain()
			return pop
		}

	case stageCountdown:
		if key == "esc" {
			s.player.Engine.Quit(context.Background())
			s.drain()
		}

	case stagePlaying:
		switch key {
		case "esc":
			s.player.Engine.Quit(context.Background())
			s.drain()
			return nil
		case "enter":
			s.player.Engine.SubmitText(s.input.Value())
			s.drain()
			return nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return cmd

	case stageResult:
		if key == "enter" || key == "esc" || key == "space" {
			return pop
		}
	}
	return nil
}

// drain applies every buffered engine event to the view state.
func (s *RoundScreen) drain() {
	for _, ev := range s.player.Events.Drain() {
		switch e := ev.(type) {
		case engine.RoundPrepared:
			s.prepared = e
			s.stage = stagePreGame
		case engine.CountdownChanged:
			s.countdown = e.N
			s.stage = stageCountdown
			s.showGo = e.N == 0
		case engine.TimerChanged:
			s.secondsLeft = e.SecondsLeft
			if s.stage == stageCountdown {
				s.stage = stagePlaying
			}
		case engine.ProgressChanged:
			s.fraction = e.Fraction
		case engine.QuestionChanged:
			s.question = e.Text
		case engine.AnswerResult:
			s.score = e.Score
			fb := components.FeedbackIncorrect
			if e.Result == rnd.Correct {
				fb = components.FeedbackCorrect
			}
			s.input.Clear(fb)
		case engine.RoundEnded:
			ended := e
			s.ended = &ended
			s.stage = stageResult
		}
	}
}
