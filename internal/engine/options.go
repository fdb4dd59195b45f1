package engine

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/abhisek/mathheroes/internal/store"
)

// RoundRecorder appends ended rounds to the history log.
// store.RoundEventRepo satisfies it.
type RoundRecorder interface {
	Append(ctx context.Context, ev *store.RoundEvent) error
}

// Option configures a Controller.
type Option func(*Controller)

// WithRecorder records every ended round.
func WithRecorder(r RoundRecorder) Option {
	return func(c *Controller) { c.recorder = r }
}

// WithLogger sets the logger. The default discards.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock overrides the time source used for history timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithRoundIDs overrides how round ids are generated.
func WithRoundIDs(next func() string) Option {
	return func(c *Controller) { c.newRoundID = next }
}
