package progress

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/diffuselabs/diffused/internal/course"
	"github.com/diffuselabs/diffused/internal/spacedrep"
	"github.com/diffuselabs/diffused/internal/store"
)

// snapshotVersion is the current snapshot schema version.
const snapshotVersion = 1

// snapshotKeep bounds how many snapshot rows survive a prune.
const snapshotKeep = 10

// Tracker owns the learner's progress state: challenge results, completed
// lessons and the spaced repetition schedule. All mutating operations
// persist a new snapshot and append an event, both best-effort.
type Tracker struct {
	results          map[string]*ChallengeResult
	completedLessons map[string]bool
	celebrationShown bool

	catalog   *course.Catalog
	scheduler *spacedrep.Scheduler
	policy    spacedrep.Policy

	snapRepo  store.SnapshotRepo
	eventRepo store.EventRepo
	sessionID string
}

// NewTracker builds a tracker from the latest snapshot. A nil snapshot
// starts fresh. Snapshots written before review scheduling existed load
// with an empty schedule; completed challenges re-enter it on their
// next completion or review.
func NewTracker(snap *store.SnapshotData, catalog *course.Catalog, snapRepo store.SnapshotRepo, eventRepo store.EventRepo) *Tracker {
	t := &Tracker{
		results:          make(map[string]*ChallengeResult),
		completedLessons: make(map[string]bool),
		catalog:          catalog,
		policy:           spacedrep.DefaultPolicy(),
		snapRepo:         snapRepo,
		eventRepo:        eventRepo,
		sessionID:        uuid.New().String(),
	}

	var reviews map[string]*store.ReviewItemData
	if snap != nil {
		t.celebrationShown = snap.CelebrationShown
		for id, rd := range snap.Results {
			level := UnderstandingLevel(rd.Understanding)
			if !level.Valid() {
				continue
			}
			completedAt, err := time.Parse(time.RFC3339, rd.CompletedAt)
			if err != nil {
				continue
			}
			t.results[id] = &ChallengeResult{
				ChallengeID:   rd.ID,
				Understanding: level,
				CompletedAt:   completedAt,
			}
		}
		for _, lessonID := range snap.CompletedLessons {
			t.completedLessons[lessonID] = true
		}
		reviews = snap.Reviews
	}

	t.scheduler = spacedrep.NewScheduler(reviews, catalog, t.policy)
	t.scheduler.SetSeverity(func(challengeID string) int {
		return t.Understanding(challengeID).severityRank()
	})

	return t
}

func (t *Tracker) initialInterval(level UnderstandingLevel) float64 {
	switch level {
	case UnderstandingFull:
		return t.policy.InitialFull
	case UnderstandingPartial:
		return t.policy.InitialPartial
	default:
		return t.policy.InitialNone
	}
}

func (t *Tracker) initialStreak(level UnderstandingLevel) int {
	if level == UnderstandingFull {
		return 1
	}
	return 0
}

// Scheduler exposes the review scheduler for the review screen and stats.
func (t *Tracker) Scheduler() *spacedrep.Scheduler {
	return t.scheduler
}

// SessionID identifies this app run in the event log.
func (t *Tracker) SessionID() string {
	return t.sessionID
}

// RecordChallenge marks a challenge complete at the given understanding
// level and seeds (or restarts) its review schedule.
func (t *Tracker) RecordChallenge(ctx context.Context, challengeID string, level UnderstandingLevel, now time.Time) error {
	ch, ok := t.catalog.Resolve(challengeID)
	if !ok {
		return fmt.Errorf("unknown challenge %q", challengeID)
	}
	if !level.Valid() {
		return fmt.Errorf("invalid understanding level %q", level)
	}

	t.results[challengeID] = &ChallengeResult{
		ChallengeID:   challengeID,
		Understanding: level,
		CompletedAt:   now,
	}
	t.scheduler.Seed(challengeID, t.initialInterval(level), t.initialStreak(level), now)

	if t.eventRepo != nil {
		if err := t.eventRepo.AppendChallengeEvent(ctx, store.ChallengeEventData{
			SessionID:     t.sessionID,
			ChallengeID:   challengeID,
			ChallengeType: string(ch.Type),
			Understanding: string(level),
		}); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log challenge event: %v\n", err)
		}
	}

	t.persist(ctx)
	return nil
}

// RecordReview applies a review answer. A correct answer upgrades the
// stored understanding to full, an incorrect one drops it to partial.
// Challenges without review state are ignored.
func (t *Tracker) RecordReview(ctx context.Context, challengeID string, correct bool, now time.Time) {
	item, ok := t.scheduler.RecordReview(challengeID, correct, now)
	if !ok {
		return
	}

	if res := t.results[challengeID]; res != nil {
		if correct {
			res.Understanding = UnderstandingFull
		} else {
			res.Understanding = UnderstandingPartial
		}
		res.CompletedAt = now
	}

	if t.eventRepo != nil {
		if err := t.eventRepo.AppendReviewEvent(ctx, store.ReviewEventData{
			SessionID:    t.sessionID,
			ChallengeID:  challengeID,
			Correct:      correct,
			IntervalDays: item.IntervalDays,
			Streak:       item.Streak,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log review event: %v\n", err)
		}
	}

	t.persist(ctx)
}

// RecordLesson marks a lesson complete. Completing a lesson twice is a
// no-op.
func (t *Tracker) RecordLesson(ctx context.Context, lessonID string, now time.Time) {
	if t.completedLessons[lessonID] {
		return
	}
	lesson, ok := t.catalog.Lesson(lessonID)
	if !ok {
		return
	}
	t.completedLessons[lessonID] = true

	if t.eventRepo != nil {
		if err := t.eventRepo.AppendLessonEvent(ctx, store.LessonEventData{
			SessionID:      t.sessionID,
			LessonID:       lessonID,
			ChallengeCount: lesson.ChallengeCount(),
		}); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log lesson event: %v\n", err)
		}
	}

	t.persist(ctx)
}

// IsChallengeCompleted reports whether the challenge has a result.
func (t *Tracker) IsChallengeCompleted(challengeID string) bool {
	return t.results[challengeID] != nil
}

// IsLessonCompleted reports whether the lesson was finished.
func (t *Tracker) IsLessonCompleted(lessonID string) bool {
	return t.completedLessons[lessonID]
}

// Understanding returns the recorded level for a challenge, or
// UnderstandingNone when the challenge has not been completed.
func (t *Tracker) Understanding(challengeID string) UnderstandingLevel {
	if res := t.results[challengeID]; res != nil {
		return res.Understanding
	}
	return UnderstandingNone
}

// CompletedChallengeCount returns how many challenges have results.
func (t *Tracker) CompletedChallengeCount() int {
	return len(t.results)
}

// CelebrationShown reports whether the course completion celebration
// has already been displayed.
func (t *Tracker) CelebrationShown() bool {
	return t.celebrationShown
}

// MarkCelebrationShown records that the celebration was displayed so it
// only ever plays once.
func (t *Tracker) MarkCelebrationShown(ctx context.Context) {
	if t.celebrationShown {
		return
	}
	t.celebrationShown = true
	t.persist(ctx)
}

// Reset wipes all progress, review state, the celebration flag and the
// event history, in memory and in storage.
func (t *Tracker) Reset(ctx context.Context) error {
	t.results = make(map[string]*ChallengeResult)
	t.completedLessons = make(map[string]bool)
	t.celebrationShown = false
	t.scheduler.Reset()

	if t.snapRepo != nil {
		if err := t.snapRepo.Clear(ctx); err != nil {
			return fmt.Errorf("clear snapshots: %w", err)
		}
	}
	if t.eventRepo != nil {
		if err := t.eventRepo.Clear(ctx); err != nil {
			return fmt.Errorf("clear events: %w", err)
		}
	}
	return nil
}

// SnapshotData exports the current state for persistence.
func (t *Tracker) SnapshotData() store.SnapshotData {
	data := store.SnapshotData{
		Version:          snapshotVersion,
		Results:          make(map[string]*store.ChallengeResultData, len(t.results)),
		Reviews:          t.scheduler.SnapshotData(),
		CelebrationShown: t.celebrationShown,
	}
	for id, res := range t.results {
		data.Results[id] = &store.ChallengeResultData{
			ID:            res.ChallengeID,
			Understanding: string(res.Understanding),
			CompletedAt:   res.CompletedAt.Format(time.RFC3339),
		}
	}
	for lessonID := range t.completedLessons {
		data.CompletedLessons = append(data.CompletedLessons, lessonID)
	}
	sort.Strings(data.CompletedLessons)
	return data
}

// persist writes a snapshot of the current state. Failures are reported
// on stderr but never block the learner.
func (t *Tracker) persist(ctx context.Context) {
	if t.snapRepo == nil {
		return
	}
	snap := &store.Snapshot{
		Timestamp: time.Now(),
		Data:      t.SnapshotData(),
	}
	if err := t.snapRepo.Save(ctx, snap); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save progress: %v\n", err)
		return
	}
	if err := t.snapRepo.Prune(ctx, snapshotKeep); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to prune snapshots: %v\n", err)
	}
}
