package store

import (
	"context"
	"time"
)

// QueryOpts configures history queries.
type QueryOpts struct {
	Limit   int // max results (0 = unlimited)
	LevelID int // 0 = all levels
	Outcome string
}

// ProgressRecord is the persisted form of a learner's progress.
// Sets are stored as sorted id lists.
type ProgressRecord struct {
	LearnerID       string
	UnlockedLevels  []int
	UnlockedRewards []int
	RoundsPassed    map[int]int
	UpdatedAt       time.Time
}

// ProgressRepo stores one progress record per learner.
type ProgressRepo interface {
	// Load returns the learner's record, or nil if none exists.
	Load(ctx context.Context, learnerID string) (*ProgressRecord, error)

	// Save inserts or replaces the learner's record.
	Save(ctx context.Context, rec *ProgressRecord) error

	// Delete removes the learner's record. Deleting a missing record is not an error.
	Delete(ctx context.Context, learnerID string) error

	// Learners lists every learner with a stored record, most recently updated first.
	Learners(ctx context.Context) ([]string, error)
}

// RoundEvent is one ended round in a learner's history.
type RoundEvent struct {
	Sequence      int64
	RoundID       string
	LearnerID     string
	LevelID       int
	IsBoss        bool
	Outcome       string
	Score         int
	RequiredScore int
	Timestamp     time.Time
}

// OutcomeCounts tallies a learner's rounds by outcome.
type OutcomeCounts map[string]int

// RoundEventRepo provides append access to round history.
type RoundEventRepo interface {
	// Append records an ended round.
	Append(ctx context.Context, ev *RoundEvent) error

	// List returns a learner's rounds, newest first.
	List(ctx context.Context, learnerID string, opts QueryOpts) ([]RoundEvent, error)

	// Counts returns the number of rounds per outcome for a learner.
	Counts(ctx context.Context, learnerID string) (OutcomeCounts, error)

	// DeleteLearner removes all of a learner's rounds.
	DeleteLearner(ctx context.Context, learnerID string) error
}
