package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/mathheroes/ent"
	"github.com/abhisek/mathheroes/ent/roundevent"
)

// roundEventRepo implements RoundEventRepo using the ent client.
type roundEventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *roundEventRepo) Append(ctx context.Context, ev *RoundEvent) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	ts := ev.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err = r.client.RoundEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(ts.UTC()).
		SetRoundID(ev.RoundID).
		SetLearnerID(ev.LearnerID).
		SetLevelID(ev.LevelID).
		SetIsBoss(ev.IsBoss).
		SetOutcome(ev.Outcome).
		SetScore(ev.Score).
		SetRequiredScore(ev.RequiredScore).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save round event: %w", err)
	}
	ev.Sequence = seqNum
	ev.Timestamp = ts
	return nil
}

func (r *roundEventRepo) List(ctx context.Context, learnerID string, opts QueryOpts) ([]RoundEvent, error) {
	query := r.client.RoundEvent.Query().
		Where(roundevent.LearnerID(learnerID)).
		Order(ent.Desc(roundevent.FieldSequence))

	if opts.LevelID != 0 {
		query = query.Where(roundevent.LevelID(opts.LevelID))
	}
	if opts.Outcome != "" {
		query = query.Where(roundevent.Outcome(opts.Outcome))
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query round events: %w", err)
	}

	records := make([]RoundEvent, len(events))
	for i, e := range events {
		records[i] = RoundEvent{
			Sequence:      e.Sequence,
			RoundID:       e.RoundID,
			LearnerID:     e.LearnerID,
			LevelID:       e.LevelID,
			IsBoss:        e.IsBoss,
			Outcome:       e.Outcome,
			Score:         e.Score,
			RequiredScore: e.RequiredScore,
			Timestamp:     e.Timestamp,
		}
	}
	return records, nil
}

func (r *roundEventRepo) Counts(ctx context.Context, learnerID string) (OutcomeCounts, error) {
	var rows []struct {
		Outcome string `json:"outcome"`
		Count   int    `json:"count"`
	}
	err := r.client.RoundEvent.Query().
		Where(roundevent.LearnerID(learnerID)).
		GroupBy(roundevent.FieldOutcome).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("query outcome counts: %w", err)
	}

	counts := OutcomeCounts{}
	for _, row := range rows {
		counts[row.Outcome] = row.Count
	}
	return counts, nil
}

func (r *roundEventRepo) DeleteLearner(ctx context.Context, learnerID string) error {
	_, err := r.client.RoundEvent.Delete().
		Where(roundevent.LearnerID(learnerID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete round events: %w", err)
	}
	return nil
}
