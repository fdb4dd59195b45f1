// Package engine runs round lifecycles for one learner: prepare, countdown,
// play, evaluate, persist.
package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/abhisek/mathheroes/internal/catalog"
	"github.com/abhisek/mathheroes/internal/logging"
	"github.com/abhisek/mathheroes/internal/problemgen"
	"github.com/abhisek/mathheroes/internal/progress"
	"github.com/abhisek/mathheroes/internal/round"
	"github.com/abhisek/mathheroes/internal/store"
)

// CountdownStart is the first countdown value shown.
const CountdownStart = 3

var (
	// ErrLevelLocked is returned when preparing a level the learner has not unlocked.
	ErrLevelLocked = errors.New("level is locked")

	// ErrRoundInProgress is returned when preparing while another round is running.
	ErrRoundInProgress = errors.New("round already in progress")
)

// Controller drives rounds for a single learner. It is not safe for
// concurrent use; callers serialise calls (the TUI does so in Update).
type Controller struct {
	catalog  *catalog.Catalog
	progress *progress.Service
	player   *progress.PlayerProgress
	source   problemgen.Source
	sink     EventSink

	recorder   RoundRecorder
	logger     *log.Logger
	now        func() time.Time
	newRoundID func() string

	session   *round.Session
	countdown int
	roundID   string
	started   bool
}

// New creates a Controller for player.
func New(cat *catalog.Catalog, svc *progress.Service, player *progress.PlayerProgress, source problemgen.Source, sink EventSink, opts ...Option) *Controller {
	c := &Controller{
		catalog:    cat,
		progress:   svc,
		player:     player,
		source:     source,
		sink:       sink,
		logger:     logging.Discard(),
		now:        time.Now,
		newRoundID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("learner", player.LearnerID)
	return c
}

// Player returns the learner's progress as mutated by ended rounds.
func (c *Controller) Player() *progress.PlayerProgress { return c.player }

// Session returns the current or most recently ended session, or nil.
func (c *Controller) Session() *round.Session { return c.session }

// InRound reports whether a round is prepared and not yet ended.
func (c *Controller) InRound() bool {
	return c.session != nil && !c.session.Ended()
}

// PrepareRound sets up a round for level using the learner's rounds-passed
// count to decide whether it is the boss round.
func (c *Controller) PrepareRound(level catalog.Level) error {
	if c.InRound() {
		return ErrRoundInProgress
	}
	if !c.player.IsLevelUnlocked(level.ID) {
		return fmt.Errorf("prepare level %d: %w", level.ID, ErrLevelLocked)
	}

	c.session = round.Prepare(level, c.player.RoundsPassed(level.ID), c.source)
	c.countdown = 0
	c.started = false
	c.roundID = c.newRoundID()

	c.logger.Debug("round prepared", "round", c.roundID, "level", level.ID,
		"boss", c.session.IsBoss(), "number", c.session.RoundNumber())

	c.sink.Emit(RoundPrepared{
		Level:         level,
		Hero:          c.catalog.RewardFor(level),
		IsBoss:        c.session.IsBoss(),
		RoundNumber:   c.session.RoundNumber(),
		RequiredScore: c.session.RequiredScore(),
	})
	return nil
}

// BeginCountdown starts the 3-2-1 countdown. Each later Tick lowers it by
// one; the tick that reaches zero emits "GO!" and starts the round.
func (c *Controller) BeginCountdown() {
	if c.session == nil {
		c.ignored("begin countdown", nil)
		return
	}
	if err := c.session.BeginCountdown(); err != nil {
		c.ignored("begin countdown", err)
		return
	}
	c.countdown = CountdownStart
	c.sink.Emit(CountdownChanged{N: c.countdown})
}

// Tick advances the countdown or the round clock by one second.
func (c *Controller) Tick(ctx context.Context) {
	if c.session == nil {
		c.ignored("tick", nil)
		return
	}

	switch c.session.Phase() {
	case round.PhaseCountingDown:
		c.countdown--
		c.sink.Emit(CountdownChanged{N: c.countdown})
		if c.countdown <= 0 {
			c.start()
		}
	case round.PhaseActive:
		outcome, err := c.session.Tick()
		if err != nil {
			c.ignored("tick", err)
			return
		}
		c.sink.Emit(TimerChanged{SecondsLeft: c.session.TimeRemaining()})
		if outcome != round.OutcomeNone {
			c.finish(ctx)
		}
	default:
		c.ignored("tick", fmt.Errorf("tick in phase %s: %w", c.session.Phase(), round.ErrInvalidState))
	}
}

// Submit checks a numeric answer.
func (c *Controller) Submit(value int) {
	if c.session == nil {
		c.ignored("submit answer", nil)
		return
	}
	res, err := c.session.Submit(value)
	if err != nil {
		c.ignored("submit answer", err)
		return
	}

	c.sink.Emit(AnswerResult{Result: res, Score: c.session.Score()})
	if res != round.Correct {
		return
	}
	c.sink.Emit(ProgressChanged{Fraction: c.session.Progress(), IsBoss: c.session.IsBoss()})
	if q, ok := c.session.Question(); ok {
		c.sink.Emit(QuestionChanged{Text: q.Text})
	}
}

// SubmitText checks typed input. Blank input is ignored; anything that is
// not an integer counts as a wrong answer.
func (c *Controller) SubmitText(input string) {
	if strings.TrimSpace(input) == "" {
		return
	}
	v, ok := problemgen.ParseAnswer(input)
	if !ok {
		if c.session == nil || c.session.Phase() != round.PhaseActive {
			c.ignored("submit answer", nil)
			return
		}
		c.sink.Emit(AnswerResult{Result: round.Incorrect, Score: c.session.Score()})
		return
	}
	c.Submit(v)
}

// Quit abandons the current round. Progress is left untouched.
func (c *Controller) Quit(ctx context.Context) {
	if c.session == nil {
		c.ignored("quit", nil)
		return
	}
	if err := c.session.Quit(); err != nil {
		c.ignored("quit", err)
		return
	}
	c.finish(ctx)
}

func (c *Controller) start() {
	if err := c.session.Start(); err != nil {
		c.ignored("start", err)
		return
	}
	c.started = true
	c.logger.Debug("round started", "round", c.roundID)

	c.sink.Emit(TimerChanged{SecondsLeft: c.session.TimeRemaining()})
	c.sink.Emit(ProgressChanged{Fraction: c.session.Progress(), IsBoss: c.session.IsBoss()})
	if q, ok := c.session.Question(); ok {
		c.sink.Emit(QuestionChanged{Text: q.Text})
	}
}

// finish applies the outcome, records history and emits RoundEnded.
func (c *Controller) finish(ctx context.Context) {
	s := c.session
	level := s.Level()
	outcome := s.Outcome()

	details := RoundDetails{
		RoundID:       c.roundID,
		Level:         level,
		Hero:          c.catalog.RewardFor(level),
		Score:         s.Score(),
		RequiredScore: s.RequiredScore(),
		IsBoss:        s.IsBoss(),
		RoundNumber:   s.RoundNumber(),
		Started:       c.started,
	}

	unlocks, err := c.progress.ApplyOutcome(ctx, c.player, level, s.IsBoss(), outcome)
	details.Unlocks = unlocks
	if err != nil {
		details.SaveErr = err
		c.logger.Warn("progress not saved", "round", c.roundID, "err", err)
	}

	c.record(ctx, details, outcome)

	c.logger.Info("round ended", "round", c.roundID, "level", level.ID,
		"outcome", outcome, "score", details.Score, "required", details.RequiredScore, "boss", details.IsBoss)

	c.sink.Emit(RoundEnded{Outcome: outcome, Details: details})
}

func (c *Controller) record(ctx context.Context, d RoundDetails, outcome round.Outcome) {
	if c.recorder == nil || !d.Started {
		return
	}
	err := c.recorder.Append(ctx, &store.RoundEvent{
		RoundID:       d.RoundID,
		LearnerID:     c.player.LearnerID,
		LevelID:       d.Level.ID,
		IsBoss:        d.IsBoss,
		Outcome:       outcome.String(),
		Score:         d.Score,
		RequiredScore: d.RequiredScore,
		Timestamp:     c.now(),
	})
	if err != nil {
		c.logger.Warn("round not recorded", "round", d.RoundID, "err", err)
	}
}

func (c *Controller) ignored(op string, err error) {
	if err == nil {
		err = fmt.Errorf("%s with no round: %w", op, round.ErrInvalidState)
	}
	c.logger.Debug("call ignored", "op", op, "err", err)
}
