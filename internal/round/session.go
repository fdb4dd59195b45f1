// Package round implements the state machine for one timed round.
package round

import (
	"fmt"

	"github.com/abhisek/mathheroes/internal/catalog"
	"github.com/abhisek/mathheroes/internal/problemgen"
)

// Session tracks one timed round. It owns no timer: the caller invokes Tick
// once per elapsed second while the session is active.
type Session struct {
	level       catalog.Level
	source      problemgen.Source
	roundsSoFar int

	phase         Phase
	outcome       Outcome
	score         int
	timeRemaining int
	requiredScore int
	isBoss        bool

	question *problemgen.Question
}

// Prepare creates a session for level given how many rounds of it the
// learner has already passed. The round right before completion is the boss.
func Prepare(level catalog.Level, roundsPassedSoFar int, source problemgen.Source) *Session {
	s := &Session{
		level:       level,
		source:      source,
		roundsSoFar: roundsPassedSoFar,
		phase:       PhasePreparing,
		isBoss:      roundsPassedSoFar+1 == RoundsPerLevel,
	}
	if s.isBoss {
		s.requiredScore = BossPassScore
	} else {
		s.requiredScore = NormalPassScore
	}
	return s
}

// BeginCountdown moves a prepared session into the countdown.
func (s *Session) BeginCountdown() error {
	if s.phase != PhasePreparing {
		return s.invalid("begin countdown")
	}
	s.phase = PhaseCountingDown
	return nil
}

// Start activates the round, resets the timer and draws the first question.
func (s *Session) Start() error {
	if s.phase != PhasePreparing && s.phase != PhaseCountingDown {
		return s.invalid("start")
	}
	s.phase = PhaseActive
	s.timeRemaining = RoundTimeSeconds
	s.nextQuestion()
	return nil
}

// Tick advances the round clock by one second. When the clock reaches zero
// the round ends and the outcome is returned; otherwise OutcomeNone.
func (s *Session) Tick() (Outcome, error) {
	if s.phase != PhaseActive {
		return OutcomeNone, s.invalid("tick")
	}
	if s.timeRemaining > 0 {
		s.timeRemaining--
	}
	if s.timeRemaining > 0 {
		return OutcomeNone, nil
	}
	if s.score >= s.requiredScore {
		s.end(OutcomePassed)
	} else {
		s.end(OutcomeFailed)
	}
	return s.outcome, nil
}

// Submit checks value against the pending answer. A correct answer scores
// a point and draws the next question; a wrong one changes nothing.
func (s *Session) Submit(value int) (AnswerResult, error) {
	if s.phase != PhaseActive {
		return Incorrect, s.invalid("submit answer")
	}
	if s.question == nil || value != s.question.Answer {
		return Incorrect, nil
	}
	s.score++
	s.nextQuestion()
	return Correct, nil
}

// Quit ends the round as OutcomeQuit. It is accepted in every phase except
// Ended.
func (s *Session) Quit() error {
	if s.phase == PhaseEnded {
		return s.invalid("quit")
	}
	s.end(OutcomeQuit)
	return nil
}

// Progress is the fraction shown on the progress bar. Boss rounds report
// the boss's remaining health, normal rounds report completion.
func (s *Session) Progress() float64 {
	req := float64(s.requiredScore)
	score := float64(s.score)
	if s.isBoss {
		return max(0, (req-score)/req)
	}
	return min(1, score/req)
}

func (s *Session) Level() catalog.Level { return s.level }
func (s *Session) Phase() Phase         { return s.phase }
func (s *Session) Outcome() Outcome     { return s.outcome }
func (s *Session) Score() int           { return s.score }
func (s *Session) TimeRemaining() int   { return s.timeRemaining }
func (s *Session) RequiredScore() int   { return s.requiredScore }
func (s *Session) IsBoss() bool         { return s.isBoss }
func (s *Session) Ended() bool          { return s.phase == PhaseEnded }

// RoundNumber is the 1-based number of this round within the level.
func (s *Session) RoundNumber() int { return s.roundsSoFar + 1 }

// Question returns the pending question, if any.
func (s *Session) Question() (problemgen.Question, bool) {
	if s.question == nil {
		return problemgen.Question{}, false
	}
	return *s.question, true
}

// nextQuestion draws from the source and checks the arithmetic. A bad
// question means a broken Source and panics.
func (s *Session) nextQuestion() {
	q := s.source.Generate(s.level.Topic)
	if err := problemgen.Verify(q); err != nil {
		panic(fmt.Sprintf("round: bad question for %s: %v", s.level.Topic, err))
	}
	s.question = &q
}

func (s *Session) end(o Outcome) {
	s.phase = PhaseEnded
	s.outcome = o
	s.question = nil
}

func (s *Session) invalid(op string) error {
	return fmt.Errorf("%s in phase %s: %w", op, s.phase, ErrInvalidState)
}
