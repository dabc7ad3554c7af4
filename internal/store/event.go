package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/diffuselabs/diffused/ent"
)

// eventRepo implements EventRepo on the ent client plus the shared
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

// sequenceCounter hands out the monotonic sequence number shared by all
// event tables. Each event type lives in its own ent-managed table, so
// per-table auto-increment ids cannot order events across types; this
// single counter can. It uses raw SQL because ent has no database-level
// atomic counter; the RETURNING clause makes the increment atomic.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates the counter and its backing table.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Clear wipes every event table and restarts the sequence counter.
func (r *eventRepo) Clear(ctx context.Context) error {
	if _, err := r.client.ChallengeEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear challenge events: %w", err)
	}
	if _, err := r.client.ReviewEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear review events: %w", err)
	}
	if _, err := r.client.LessonEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear lesson events: %w", err)
	}
	if _, err := r.client.LLMRequestEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear llm request events: %w", err)
	}
	return r.seq.Restart(ctx)
}

// Restart resets the counter so the next event gets sequence 1.
func (sc *sequenceCounter) Restart(ctx context.Context) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if _, err := sc.db.ExecContext(ctx,
		`UPDATE global_sequence SET next_val = 1 WHERE id = 1`,
	); err != nil {
		return fmt.Errorf("restart sequence: %w", err)
	}
	return nil
}

// Next atomically returns the next sequence number.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}
