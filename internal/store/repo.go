package store

import (
	"context"
	"time"
)

// SnapshotData is the persisted form of the full learner progress: one
// JSON record holding challenge results, completed lessons and the review
// schedule. Timestamps are RFC 3339 strings. Older databases may predate
// the review schedule; loaders must treat a missing Reviews mapping as
// empty rather than failing.
type SnapshotData struct {
	Version          int                             `json:"version"`
	Results          map[string]*ChallengeResultData `json:"challengeResults,omitempty"`
	CompletedLessons []string                        `json:"completedLessons,omitempty"`
	Reviews          map[string]*ReviewItemData      `json:"reviewItems,omitempty"`
	CelebrationShown bool                            `json:"celebrationShown,omitempty"`
}

// ChallengeResultData is the stored form of one challenge result.
type ChallengeResultData struct {
	ID            string `json:"id"`
	Understanding string `json:"understanding"`
	CompletedAt   string `json:"completedAt"`
}

// ReviewItemData is the stored form of one review schedule entry.
type ReviewItemData struct {
	ID           string  `json:"id"`
	LastReview   string  `json:"lastReview"`
	NextReview   string  `json:"nextReview"`
	IntervalDays float64 `json:"interval"`
	Streak       int     `json:"correctStreak"`
}

// Snapshot is a stored point-in-time capture of learner progress.
type Snapshot struct {
	ID        int
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo persists learner progress snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error

	// Clear deletes every snapshot. Used by reset.
	Clear(ctx context.Context) error
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ChallengeEventData captures one challenge completion.
type ChallengeEventData struct {
	SessionID     string
	ChallengeID   string
	ChallengeType string
	Understanding string
}

// ChallengeEventRecord is a stored challenge completion.
type ChallengeEventRecord struct {
	Sequence      int64
	Timestamp     time.Time
	SessionID     string
	ChallengeID   string
	ChallengeType string
	Understanding string
}

// ReviewEventData captures one answered review prompt.
type ReviewEventData struct {
	SessionID    string
	ChallengeID  string
	Correct      bool
	IntervalDays float64
	Streak       int
}

// ReviewEventRecord is a stored review answer.
type ReviewEventRecord struct {
	Sequence     int64
	Timestamp    time.Time
	SessionID    string
	ChallengeID  string
	Correct      bool
	IntervalDays float64
	Streak       int
}

// LessonEventData captures the first completion of a lesson.
type LessonEventData struct {
	SessionID      string
	LessonID       string
	ChallengeCount int
}

// LLMRequestEventData captures one model API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append and query access to the event history.
// Appends are best-effort from the caller's perspective: a failed append
// must never block progress recording.
type EventRepo interface {
	AppendChallengeEvent(ctx context.Context, data ChallengeEventData) error
	AppendReviewEvent(ctx context.Context, data ReviewEventData) error
	AppendLessonEvent(ctx context.Context, data LessonEventData) error
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryChallengeEvents returns challenge completions, newest first.
	QueryChallengeEvents(ctx context.Context, opts QueryOpts) ([]ChallengeEventRecord, error)

	// QueryReviewEvents returns review answers, newest first.
	QueryReviewEvents(ctx context.Context, opts QueryOpts) ([]ReviewEventRecord, error)

	// ReviewAccuracy returns lifetime correct and total review counts.
	ReviewAccuracy(ctx context.Context) (correct, total int, err error)

	// Clear deletes the entire event history. Used by reset.
	Clear(ctx context.Context) error
}
