package progress

import (
	"context"
	"testing"
	"time"

	"github.com/diffuselabs/diffused/internal/course"
	"github.com/diffuselabs/diffused/internal/store"
)

// mockSnapshotRepo implements store.SnapshotRepo for testing.
type mockSnapshotRepo struct {
	snapshots []*store.Snapshot
	cleared   bool
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.snapshots = append(m.snapshots, snap)
	return nil
}

func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.snapshots) == 0 {
		return nil, nil
	}
	return m.snapshots[len(m.snapshots)-1], nil
}

func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error { return nil }

func (m *mockSnapshotRepo) Clear(_ context.Context) error {
	m.snapshots = nil
	m.cleared = true
	return nil
}

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	challengeEvents []store.ChallengeEventData
	reviewEvents    []store.ReviewEventData
	lessonEvents    []store.LessonEventData
	cleared         bool
}

func (m *mockEventRepo) AppendChallengeEvent(_ context.Context, data store.ChallengeEventData) error {
	m.challengeEvents = append(m.challengeEvents, data)
	return nil
}

func (m *mockEventRepo) AppendReviewEvent(_ context.Context, data store.ReviewEventData) error {
	m.reviewEvents = append(m.reviewEvents, data)
	return nil
}

func (m *mockEventRepo) AppendLessonEvent(_ context.Context, data store.LessonEventData) error {
	m.lessonEvents = append(m.lessonEvents, data)
	return nil
}

func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}

func (m *mockEventRepo) QueryChallengeEvents(_ context.Context, _ store.QueryOpts) ([]store.ChallengeEventRecord, error) {
	return nil, nil
}

func (m *mockEventRepo) QueryReviewEvents(_ context.Context, _ store.QueryOpts) ([]store.ReviewEventRecord, error) {
	return nil, nil
}

func (m *mockEventRepo) ReviewAccuracy(_ context.Context) (int, int, error) {
	return 0, 0, nil
}

func (m *mockEventRepo) Clear(_ context.Context) error {
	m.challengeEvents = nil
	m.reviewEvents = nil
	m.lessonEvents = nil
	m.cleared = true
	return nil
}

func testTracker() (*Tracker, *mockSnapshotRepo, *mockEventRepo) {
	snapRepo := &mockSnapshotRepo{}
	eventRepo := &mockEventRepo{}
	return NewTracker(nil, course.Default(), snapRepo, eventRepo), snapRepo, eventRepo
}

func TestRecordChallengeSeedsReview(t *testing.T) {
	tr, _, events := testTracker()
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		level        UnderstandingLevel
		wantInterval float64
		wantStreak   int
	}{
		{UnderstandingFull, 2, 1},
		{UnderstandingPartial, 1, 0},
		{UnderstandingNone, 0.5, 0},
	}
	ids := []string{"1-1-1", "1-1-2", "1-2-1"}

	for i, tc := range cases {
		if err := tr.RecordChallenge(ctx, ids[i], tc.level, now); err != nil {
			t.Fatalf("RecordChallenge(%s): %v", ids[i], err)
		}
		ri := tr.Scheduler().Item(ids[i])
		if ri == nil {
			t.Fatalf("no review item for %s", ids[i])
		}
		if ri.IntervalDays != tc.wantInterval {
			t.Errorf("%s interval = %v, want %v", tc.level, ri.IntervalDays, tc.wantInterval)
		}
		if ri.Streak != tc.wantStreak {
			t.Errorf("%s streak = %d, want %d", tc.level, ri.Streak, tc.wantStreak)
		}
	}

	if len(events.challengeEvents) != 3 {
		t.Errorf("challenge events = %d, want 3", len(events.challengeEvents))
	}
}

func TestRecordChallengeUnknownID(t *testing.T) {
	tr, _, _ := testTracker()

	err := tr.RecordChallenge(context.Background(), "9-9-9", UnderstandingFull, time.Now())
	if err == nil {
		t.Error("expected error for unknown challenge id")
	}
}

func TestRecordChallengeInvalidLevel(t *testing.T) {
	tr, _, _ := testTracker()

	err := tr.RecordChallenge(context.Background(), "1-1-1", UnderstandingLevel("maybe"), time.Now())
	if err == nil {
		t.Error("expected error for invalid understanding level")
	}
}

func TestRecompletionRestartsSchedule(t *testing.T) {
	tr, _, _ := testTracker()
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	if err := tr.RecordChallenge(ctx, "1-1-1", UnderstandingFull, now); err != nil {
		t.Fatal(err)
	}
	tr.RecordReview(ctx, "1-1-1", true, now.AddDate(0, 0, 2))

	// Redoing the challenge in a lesson replaces the grown schedule.
	later := now.AddDate(0, 0, 10)
	if err := tr.RecordChallenge(ctx, "1-1-1", UnderstandingPartial, later); err != nil {
		t.Fatal(err)
	}

	ri := tr.Scheduler().Item("1-1-1")
	if ri.IntervalDays != 1 || ri.Streak != 0 {
		t.Errorf("re-completed item = interval %v streak %d, want 1 and 0", ri.IntervalDays, ri.Streak)
	}
	if tr.Understanding("1-1-1") != UnderstandingPartial {
		t.Errorf("Understanding = %s, want partial", tr.Understanding("1-1-1"))
	}
}

func TestRecordReviewUpdatesUnderstanding(t *testing.T) {
	tr, _, events := testTracker()
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	if err := tr.RecordChallenge(ctx, "1-1-1", UnderstandingNone, now); err != nil {
		t.Fatal(err)
	}

	tr.RecordReview(ctx, "1-1-1", true, now.AddDate(0, 0, 1))
	if tr.Understanding("1-1-1") != UnderstandingFull {
		t.Errorf("Understanding after correct review = %s, want full", tr.Understanding("1-1-1"))
	}

	tr.RecordReview(ctx, "1-1-1", false, now.AddDate(0, 0, 3))
	if tr.Understanding("1-1-1") != UnderstandingPartial {
		t.Errorf("Understanding after incorrect review = %s, want partial", tr.Understanding("1-1-1"))
	}

	if len(events.reviewEvents) != 2 {
		t.Errorf("review events = %d, want 2", len(events.reviewEvents))
	}
}

func TestRecordReviewUntrackedIsNoOp(t *testing.T) {
	tr, snaps, events := testTracker()

	tr.RecordReview(context.Background(), "1-1-1", true, time.Now())

	if len(events.reviewEvents) != 0 {
		t.Error("untracked review should not log an event")
	}
	if len(snaps.snapshots) != 0 {
		t.Error("untracked review should not persist a snapshot")
	}
}

func TestRecordLessonIdempotent(t *testing.T) {
	tr, _, events := testTracker()
	ctx := context.Background()
	now := time.Now()

	tr.RecordLesson(ctx, "1-1", now)
	tr.RecordLesson(ctx, "1-1", now)

	if !tr.IsLessonCompleted("1-1") {
		t.Error("lesson should be completed")
	}
	if len(events.lessonEvents) != 1 {
		t.Errorf("lesson events = %d, want 1", len(events.lessonEvents))
	}
	if events.lessonEvents[0].ChallengeCount != 3 {
		t.Errorf("ChallengeCount = %d, want 3", events.lessonEvents[0].ChallengeCount)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	tr, _, _ := testTracker()
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	if err := tr.RecordChallenge(ctx, "1-1-1", UnderstandingFull, now); err != nil {
		t.Fatal(err)
	}
	if err := tr.RecordChallenge(ctx, "1-1-2", UnderstandingPartial, now); err != nil {
		t.Fatal(err)
	}
	tr.RecordLesson(ctx, "1-1", now)
	tr.MarkCelebrationShown(ctx)

	data := tr.SnapshotData()
	restored := NewTracker(&data, course.Default(), &mockSnapshotRepo{}, &mockEventRepo{})

	if !restored.IsChallengeCompleted("1-1-1") || !restored.IsChallengeCompleted("1-1-2") {
		t.Error("challenge results lost in round trip")
	}
	if !restored.IsLessonCompleted("1-1") {
		t.Error("completed lesson lost in round trip")
	}
	if !restored.CelebrationShown() {
		t.Error("celebration flag lost in round trip")
	}
	if restored.Understanding("1-1-2") != UnderstandingPartial {
		t.Errorf("Understanding = %s, want partial", restored.Understanding("1-1-2"))
	}
	ri := restored.Scheduler().Item("1-1-1")
	if ri == nil || ri.IntervalDays != 2 {
		t.Errorf("restored review item = %+v, want interval 2", ri)
	}
}

func TestOldSchemaLoadsEmptyReviews(t *testing.T) {
	// Snapshots written before review scheduling carry results but no
	// review items. Loading one keeps the schedule empty; the results
	// themselves survive.
	snap := &store.SnapshotData{
		Version: 1,
		Results: map[string]*store.ChallengeResultData{
			"1-1-1": {ID: "1-1-1", Understanding: "yes", CompletedAt: "2025-03-01T10:00:00Z"},
			"1-1-2": {ID: "1-1-2", Understanding: "no", CompletedAt: "2025-03-02T10:00:00Z"},
		},
	}

	tr := NewTracker(snap, course.Default(), &mockSnapshotRepo{}, &mockEventRepo{})

	if got := tr.Scheduler().Len(); got != 0 {
		t.Errorf("review items after old-schema load = %d, want 0", got)
	}
	if !tr.IsChallengeCompleted("1-1-1") || !tr.IsChallengeCompleted("1-1-2") {
		t.Error("challenge results should survive an old-schema load")
	}
}

func TestLoadSkipsCorruptResults(t *testing.T) {
	snap := &store.SnapshotData{
		Version: 1,
		Results: map[string]*store.ChallengeResultData{
			"1-1-1": {ID: "1-1-1", Understanding: "kinda", CompletedAt: "2025-03-01T10:00:00Z"},
			"1-1-2": {ID: "1-1-2", Understanding: "yes", CompletedAt: "garbage"},
			"1-2-1": {ID: "1-2-1", Understanding: "yes", CompletedAt: "2025-03-01T10:00:00Z"},
		},
	}

	tr := NewTracker(snap, course.Default(), &mockSnapshotRepo{}, &mockEventRepo{})

	if tr.CompletedChallengeCount() != 1 {
		t.Errorf("CompletedChallengeCount = %d, want 1", tr.CompletedChallengeCount())
	}
	if !tr.IsChallengeCompleted("1-2-1") {
		t.Error("valid result should survive load")
	}
}

func TestResetClearsEverything(t *testing.T) {
	tr, snaps, events := testTracker()
	ctx := context.Background()
	now := time.Now()

	if err := tr.RecordChallenge(ctx, "1-1-1", UnderstandingFull, now); err != nil {
		t.Fatal(err)
	}
	tr.RecordLesson(ctx, "1-1", now)
	tr.MarkCelebrationShown(ctx)

	if err := tr.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	if tr.IsChallengeCompleted("1-1-1") {
		t.Error("challenge result survived reset")
	}
	if tr.IsLessonCompleted("1-1") {
		t.Error("completed lesson survived reset")
	}
	if tr.CelebrationShown() {
		t.Error("celebration flag survived reset")
	}
	if tr.Scheduler().Len() != 0 {
		t.Error("review state survived reset")
	}
	if !snaps.cleared {
		t.Error("Reset should clear stored snapshots")
	}
	if !events.cleared {
		t.Error("Reset should clear the event history")
	}
}

func TestMarkCelebrationShownOnce(t *testing.T) {
	tr, snaps, _ := testTracker()
	ctx := context.Background()

	tr.MarkCelebrationShown(ctx)
	saved := len(snaps.snapshots)
	tr.MarkCelebrationShown(ctx)

	if len(snaps.snapshots) != saved {
		t.Error("second MarkCelebrationShown should not persist again")
	}
}
