package store

import (
	"context"
	"fmt"

	"github.com/diffuselabs/diffused/ent"
	"github.com/diffuselabs/diffused/ent/challengeevent"
)

func (r *eventRepo) AppendChallengeEvent(ctx context.Context, data ChallengeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ChallengeEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetChallengeID(data.ChallengeID).
		SetChallengeType(data.ChallengeType).
		SetUnderstanding(data.Understanding).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save challenge event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryChallengeEvents(ctx context.Context, opts QueryOpts) ([]ChallengeEventRecord, error) {
	query := r.client.ChallengeEvent.Query().
		Order(ent.Desc(challengeevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(challengeevent.SequenceGT(opts.After))
	}
	if !opts.From.IsZero() {
		query = query.Where(challengeevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(challengeevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query challenge events: %w", err)
	}

	records := make([]ChallengeEventRecord, len(events))
	for i, e := range events {
		records[i] = ChallengeEventRecord{
			Sequence:      e.Sequence,
			Timestamp:     e.Timestamp,
			SessionID:     e.SessionID,
			ChallengeID:   e.ChallengeID,
			ChallengeType: e.ChallengeType,
			Understanding: e.Understanding,
		}
	}
	return records, nil
}
