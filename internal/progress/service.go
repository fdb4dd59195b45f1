package progress

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/mathheroes/internal/catalog"
	"github.com/abhisek/mathheroes/internal/round"
	"github.com/abhisek/mathheroes/internal/store"
)

// ErrPersistence wraps a failed save. The in-memory progress keeps the
// change and the next successful save writes it.
var ErrPersistence = errors.New("progress not saved")

// ErrEmptyLearner is returned for a blank learner id.
var ErrEmptyLearner = errors.New("learner id is empty")

// Unlocks describes what a round outcome changed.
type Unlocks struct {
	RoundsPassed    int
	RoundsRemaining int
	LevelComplete   bool

	// NewReward is set when the boss pass unlocked a hero for the first time.
	NewReward *catalog.Hero

	// NewLevel is set when the boss pass unlocked the next level.
	NewLevel *catalog.Level
}

// Service applies round outcomes to learner progress and persists them.
type Service struct {
	catalog *catalog.Catalog
	repo    store.ProgressRepo
}

// NewService creates a progress service over the given catalog and repo.
func NewService(cat *catalog.Catalog, repo store.ProgressRepo) *Service {
	return &Service{catalog: cat, repo: repo}
}

// LoadOrCreate returns the learner's stored progress, or fresh defaults for
// a learner seen for the first time. Defaults are not saved until the first
// passed round.
func (s *Service) LoadOrCreate(ctx context.Context, learnerID string) (*PlayerProgress, error) {
	learnerID = strings.TrimSpace(learnerID)
	if learnerID == "" {
		return nil, ErrEmptyLearner
	}
	rec, err := s.repo.Load(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load progress for %s: %w", learnerID, err)
	}
	if rec == nil {
		return New(learnerID), nil
	}
	rec.LearnerID = learnerID
	return fromRecord(rec), nil
}

// ApplyOutcome records a round outcome on p. Only OutcomePassed mutates p:
// the level's count goes up (capped at RoundsPerLevel), and a boss pass
// unlocks the level's hero and the next level. The mutated progress is
// saved immediately; a save failure is returned wrapped in ErrPersistence
// and the mutation is kept.
func (s *Service) ApplyOutcome(ctx context.Context, p *PlayerProgress, level catalog.Level, isBoss bool, outcome round.Outcome) (Unlocks, error) {
	if outcome != round.OutcomePassed {
		return s.unlocks(p, level), nil
	}

	p.Normalize()
	p.RoundsPassedByLevel[level.ID] = min(p.RoundsPassed(level.ID)+1, round.RoundsPerLevel)

	var newReward *catalog.Hero
	var newLevel *catalog.Level
	if isBoss {
		hero := s.catalog.RewardFor(level)
		if !p.UnlockedRewards[hero.ID] {
			p.UnlockedRewards[hero.ID] = true
			newReward = &hero
		}
		if next, ok := s.catalog.Next(level.ID); ok && !p.UnlockedLevels[next.ID] {
			p.UnlockedLevels[next.ID] = true
			newLevel = &next
		}
	}

	u := s.unlocks(p, level)
	u.NewReward = newReward
	u.NewLevel = newLevel

	if err := s.Save(ctx, p); err != nil {
		return u, err
	}
	return u, nil
}

// Save writes p to the repo.
func (s *Service) Save(ctx context.Context, p *PlayerProgress) error {
	if err := s.repo.Save(ctx, toRecord(p)); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

// Reset deletes the learner's stored progress.
func (s *Service) Reset(ctx context.Context, learnerID string) error {
	learnerID = strings.TrimSpace(learnerID)
	if learnerID == "" {
		return ErrEmptyLearner
	}
	if err := s.repo.Delete(ctx, learnerID); err != nil {
		return fmt.Errorf("reset progress for %s: %w", learnerID, err)
	}
	return nil
}

// Learners lists every learner with saved progress.
func (s *Service) Learners(ctx context.Context) ([]string, error) {
	ids, err := s.repo.Learners(ctx)
	if err != nil {
		return nil, fmt.Errorf("list learners: %w", err)
	}
	return ids, nil
}

func (s *Service) unlocks(p *PlayerProgress, level catalog.Level) Unlocks {
	passed := p.RoundsPassed(level.ID)
	return Unlocks{
		RoundsPassed:    passed,
		RoundsRemaining: p.RoundsRemaining(level.ID),
		LevelComplete:   passed >= round.RoundsPerLevel,
	}
}
