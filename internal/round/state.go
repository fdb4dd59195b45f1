package round

import "errors"

// Round timing and scoring constants.
const (
	RoundTimeSeconds = 60
	NormalPassScore  = 15
	BossPassScore    = 20
	RoundsPerLevel   = 5
)

// ErrInvalidState is returned when an operation is called in a phase that
// does not accept it. The session is left unchanged.
var ErrInvalidState = errors.New("invalid round state")

// Phase is the lifecycle phase of a round session.
type Phase int

const (
	PhasePreparing    Phase = iota // Prepared, waiting for the learner to begin
	PhaseCountingDown              // 3-2-1 countdown running
	PhaseActive                    // Timer running, questions served
	PhaseEnded                     // Terminal
)

func (p Phase) String() string {
	switch p {
	case PhasePreparing:
		return "preparing"
	case PhaseCountingDown:
		return "counting-down"
	case PhaseActive:
		return "active"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Outcome is how an ended round finished.
type Outcome int

const (
	OutcomeNone Outcome = iota // Round has not ended
	OutcomePassed
	OutcomeFailed
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomePassed:
		return "passed"
	case OutcomeFailed:
		return "failed"
	case OutcomeQuit:
		return "quit"
	default:
		return "none"
	}
}

// ParseOutcome is the inverse of Outcome.String for ended outcomes.
func ParseOutcome(s string) (Outcome, error) {
	switch s {
	case "passed":
		return OutcomePassed, nil
	case "failed":
		return OutcomeFailed, nil
	case "quit":
		return OutcomeQuit, nil
	default:
		return OutcomeNone, errors.New("unknown outcome " + s)
	}
}

// AnswerResult is the verdict on a submitted answer.
type AnswerResult int

const (
	Incorrect AnswerResult = iota
	Correct
)

func (r AnswerResult) String() string {
	if r == Correct {
		return "correct"
	}
	return "incorrect"
}
