package store

import (
	"context"
	"fmt"

	"github.com/diffuselabs/diffused/ent"
	"github.com/diffuselabs/diffused/ent/reviewevent"
)

func (r *eventRepo) AppendReviewEvent(ctx context.Context, data ReviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetChallengeID(data.ChallengeID).
		SetCorrect(data.Correct).
		SetIntervalDays(data.IntervalDays).
		SetStreak(data.Streak).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save review event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryReviewEvents(ctx context.Context, opts QueryOpts) ([]ReviewEventRecord, error) {
	query := r.client.ReviewEvent.Query().
		Order(ent.Desc(reviewevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(reviewevent.SequenceGT(opts.After))
	}
	if !opts.From.IsZero() {
		query = query.Where(reviewevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(reviewevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query review events: %w", err)
	}

	records := make([]ReviewEventRecord, len(events))
	for i, e := range events {
		records[i] = ReviewEventRecord{
			Sequence:     e.Sequence,
			Timestamp:    e.Timestamp,
			SessionID:    e.SessionID,
			ChallengeID:  e.ChallengeID,
			Correct:      e.Correct,
			IntervalDays: e.IntervalDays,
			Streak:       e.Streak,
		}
	}
	return records, nil
}

func (r *eventRepo) ReviewAccuracy(ctx context.Context) (int, int, error) {
	total, err := r.client.ReviewEvent.Query().Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count review events: %w", err)
	}
	correct, err := r.client.ReviewEvent.Query().
		Where(reviewevent.Correct(true)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count correct review events: %w", err)
	}
	return correct, total, nil
}
