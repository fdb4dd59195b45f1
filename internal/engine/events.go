package engine

import (
	"github.com/abhisek/mathheroes/internal/catalog"
	"github.com/abhisek/mathheroes/internal/progress"
	"github.com/abhisek/mathheroes/internal/round"
)

// Event is something the presentation layer should render.
type Event interface {
	event()
}

// RoundPrepared is emitted when a round has been set up for a level.
type RoundPrepared struct {
	Level         catalog.Level
	Hero          catalog.Hero
	IsBoss        bool
	RoundNumber   int
	RequiredScore int
}

// CountdownChanged carries the countdown value: 3, 2, 1, then 0 for "GO!".
type CountdownChanged struct {
	N int
}

// QuestionChanged carries the text of the new pending question.
type QuestionChanged struct {
	Text string
}

// AnswerResult is the verdict on a submitted answer.
type AnswerResult struct {
	Result round.AnswerResult
	Score  int
}

// ProgressChanged carries the progress bar fraction. For boss rounds it is
// the boss's remaining health.
type ProgressChanged struct {
	Fraction float64
	IsBoss   bool
}

// TimerChanged carries the seconds left in the round.
type TimerChanged struct {
	SecondsLeft int
}

// RoundEnded is emitted once per round, after progress has been applied.
type RoundEnded struct {
	Outcome round.Outcome
	Details RoundDetails
}

// RoundDetails summarises an ended round.
type RoundDetails struct {
	RoundID       string
	Level         catalog.Level
	Hero          catalog.Hero
	Score         int
	RequiredScore int
	IsBoss        bool
	RoundNumber   int
	Unlocks       progress.Unlocks

	// Started is false when the round was quit before play began.
	Started bool

	// SaveErr is set when the outcome was applied but could not be saved.
	SaveErr error
}

func (RoundPrepared) event()    {}
func (CountdownChanged) event() {}
func (QuestionChanged) event()  {}
func (AnswerResult) event()     {}
func (ProgressChanged) event()  {}
func (TimerChanged) event()     {}
func (RoundEnded) event()       {}

// EventSink receives engine events.
type EventSink interface {
	Emit(Event)
}

// EventLog is an EventSink that buffers events until drained.
type EventLog struct {
	events []Event
}

func (l *EventLog) Emit(e Event) {
	l.events = append(l.events, e)
}

// Drain returns the buffered events in emission order and clears the buffer.
func (l *EventLog) Drain() []Event {
	out := l.events
	l.events = nil
	return out
}

// Len returns the number of buffered events.
func (l *EventLog) Len() int { return len(l.events) }
