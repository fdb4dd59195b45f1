package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/abhisek/mathheroes/ent"
	"github.com/abhisek/mathheroes/ent/playerprogress"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Load(ctx context.Context, learnerID string) (*ProgressRecord, error) {
	p, err := r.client.PlayerProgress.Query().
		Where(playerprogress.LearnerID(learnerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress: %w", err)
	}
	return entProgressToRecord(p), nil
}

func (r *progressRepo) Save(ctx context.Context, rec *ProgressRecord) error {
	if rec.LearnerID == "" {
		return errors.New("save progress: empty learner id")
	}

	levels := sortedCopy(rec.UnlockedLevels)
	rewards := sortedCopy(rec.UnlockedRewards)
	passed := make(map[int]int, len(rec.RoundsPassed))
	for id, n := range rec.RoundsPassed {
		passed[id] = n
	}
	updated := rec.UpdatedAt
	if updated.IsZero() {
		updated = time.Now()
	}
	updated = updated.UTC()

	n, err := r.client.PlayerProgress.Update().
		Where(playerprogress.LearnerID(rec.LearnerID)).
		SetUnlockedLevels(levels).
		SetUnlockedRewards(rewards).
		SetRoundsPassed(passed).
		SetUpdatedAt(updated).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.PlayerProgress.Create().
		SetLearnerID(rec.LearnerID).
		SetUnlockedLevels(levels).
		SetUnlockedRewards(rewards).
		SetRoundsPassed(passed).
		SetUpdatedAt(updated).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (r *progressRepo) Delete(ctx context.Context, learnerID string) error {
	_, err := r.client.PlayerProgress.Delete().
		Where(playerprogress.LearnerID(learnerID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete progress: %w", err)
	}
	return nil
}

func (r *progressRepo) Learners(ctx context.Context) ([]string, error) {
	ids, err := r.client.PlayerProgress.Query().
		Order(ent.Desc(playerprogress.FieldUpdatedAt), ent.Asc(playerprogress.FieldLearnerID)).
		Select(playerprogress.FieldLearnerID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query learners: %w", err)
	}
	return ids, nil
}

// entProgressToRecord converts an ent PlayerProgress to a ProgressRecord.
func entProgressToRecord(p *ent.PlayerProgress) *ProgressRecord {
	rec := &ProgressRecord{
		LearnerID:       p.LearnerID,
		UnlockedLevels:  p.UnlockedLevels,
		UnlockedRewards: p.UnlockedRewards,
		RoundsPassed:    p.RoundsPassed,
		UpdatedAt:       p.UpdatedAt,
	}
	if rec.RoundsPassed == nil {
		rec.RoundsPassed = map[int]int{}
	}
	return rec
}

func sortedCopy(ids []int) []int {
	out := make([]int, len(ids))
	copy(out, ids)
	sort.Ints(out)
	return out
}
