package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	st, err := Open(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSnapshotRepo_SaveAndLatest(t *testing.T) {
	st := openTestStore(t)
	repo := st.SnapshotRepo()
	ctx := context.Background()

	latest, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest on empty store: %v", err)
	}
	if latest != nil {
		t.Fatal("expected nil snapshot on empty store")
	}

	data := SnapshotData{
		Version: 1,
		Results: map[string]*ChallengeResultData{
			"1-1-1": {ID: "1-1-1", Understanding: "yes", CompletedAt: "2025-03-01T10:00:00Z"},
		},
		CompletedLessons: []string{"1-1"},
		Reviews: map[string]*ReviewItemData{
			"1-1-1": {
				ID:           "1-1-1",
				LastReview:   "2025-03-01T10:00:00Z",
				NextReview:   "2025-03-03T10:00:00Z",
				IntervalDays: 2,
				Streak:       1,
			},
		},
		CelebrationShown: true,
	}

	err = repo.Save(ctx, &Snapshot{Timestamp: time.Now(), Data: data})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	latest, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest == nil {
		t.Fatal("expected a snapshot")
	}

	got := latest.Data
	if got.Version != 1 {
		t.Errorf("Version = %d, want 1", got.Version)
	}
	res := got.Results["1-1-1"]
	if res == nil || res.Understanding != "yes" || res.CompletedAt != "2025-03-01T10:00:00Z" {
		t.Errorf("unexpected result record: %+v", res)
	}
	if len(got.CompletedLessons) != 1 || got.CompletedLessons[0] != "1-1" {
		t.Errorf("unexpected completed lessons: %v", got.CompletedLessons)
	}
	rev := got.Reviews["1-1-1"]
	if rev == nil || rev.IntervalDays != 2 || rev.Streak != 1 {
		t.Errorf("unexpected review record: %+v", rev)
	}
	if !got.CelebrationShown {
		t.Error("CelebrationShown lost in round trip")
	}
}

func TestSnapshotRepo_LatestWins(t *testing.T) {
	st := openTestStore(t)
	repo := st.SnapshotRepo()
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	for v := 1; v <= 3; v++ {
		err := repo.Save(ctx, &Snapshot{
			Timestamp: base.Add(time.Duration(v) * time.Minute),
			Data:      SnapshotData{Version: v},
		})
		if err != nil {
			t.Fatalf("Save #%d: %v", v, err)
		}
	}

	latest, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest.Data.Version != 3 {
		t.Errorf("latest Version = %d, want 3", latest.Data.Version)
	}
}

func TestSnapshotRepo_PruneKeepsNewest(t *testing.T) {
	st := openTestStore(t)
	repo := st.SnapshotRepo()
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	for v := 1; v <= 5; v++ {
		if err := repo.Save(ctx, &Snapshot{
			Timestamp: base.Add(time.Duration(v) * time.Minute),
			Data:      SnapshotData{Version: v},
		}); err != nil {
			t.Fatalf("Save #%d: %v", v, err)
		}
	}

	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("Prune: %v", err)
	}

	count, err := st.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("snapshot count after prune = %d, want 2", count)
	}

	latest, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest.Data.Version != 5 {
		t.Errorf("latest Version = %d, want 5", latest.Data.Version)
	}
}

func TestSnapshotRepo_Clear(t *testing.T) {
	st := openTestStore(t)
	repo := st.SnapshotRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, &Snapshot{Timestamp: time.Now(), Data: SnapshotData{Version: 1}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	latest, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest != nil {
		t.Error("expected no snapshot after Clear")
	}
}

func TestEventRepo_SequenceSpansEventTypes(t *testing.T) {
	st := openTestStore(t)
	repo := st.EventRepo()
	ctx := context.Background()

	if err := repo.AppendChallengeEvent(ctx, ChallengeEventData{
		SessionID: "s1", ChallengeID: "1-1-1", ChallengeType: "recall", Understanding: "yes",
	}); err != nil {
		t.Fatalf("AppendChallengeEvent: %v", err)
	}
	if err := repo.AppendReviewEvent(ctx, ReviewEventData{
		SessionID: "s1", ChallengeID: "1-1-1", Correct: true, IntervalDays: 2, Streak: 1,
	}); err != nil {
		t.Fatalf("AppendReviewEvent: %v", err)
	}
	if err := repo.AppendLessonEvent(ctx, LessonEventData{
		SessionID: "s1", LessonID: "1-1", ChallengeCount: 3,
	}); err != nil {
		t.Fatalf("AppendLessonEvent: %v", err)
	}

	challenges, err := repo.QueryChallengeEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("QueryChallengeEvents: %v", err)
	}
	reviews, err := repo.QueryReviewEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("QueryReviewEvents: %v", err)
	}

	if len(challenges) != 1 || len(reviews) != 1 {
		t.Fatalf("expected 1 challenge + 1 review event, got %d + %d", len(challenges), len(reviews))
	}
	if challenges[0].Sequence >= reviews[0].Sequence {
		t.Errorf("challenge sequence %d should precede review sequence %d",
			challenges[0].Sequence, reviews[0].Sequence)
	}
}

func TestEventRepo_ReviewAccuracy(t *testing.T) {
	st := openTestStore(t)
	repo := st.EventRepo()
	ctx := context.Background()

	outcomes := []bool{true, true, false}
	for _, correct := range outcomes {
		if err := repo.AppendReviewEvent(ctx, ReviewEventData{
			SessionID: "s1", ChallengeID: "1-1-1", Correct: correct, IntervalDays: 1,
		}); err != nil {
			t.Fatalf("AppendReviewEvent: %v", err)
		}
	}

	correct, total, err := repo.ReviewAccuracy(ctx)
	if err != nil {
		t.Fatalf("ReviewAccuracy: %v", err)
	}
	if correct != 2 || total != 3 {
		t.Errorf("ReviewAccuracy = (%d, %d), want (2, 3)", correct, total)
	}
}

func TestEventRepo_Clear(t *testing.T) {
	st := openTestStore(t)
	repo := st.EventRepo()
	ctx := context.Background()

	if err := repo.AppendChallengeEvent(ctx, ChallengeEventData{
		SessionID: "s1", ChallengeID: "1-1-1", ChallengeType: "recall", Understanding: "yes",
	}); err != nil {
		t.Fatalf("AppendChallengeEvent: %v", err)
	}
	if err := repo.AppendReviewEvent(ctx, ReviewEventData{
		SessionID: "s1", ChallengeID: "1-1-1", Correct: true, IntervalDays: 2, Streak: 1,
	}); err != nil {
		t.Fatalf("AppendReviewEvent: %v", err)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	records, err := repo.QueryChallengeEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("QueryChallengeEvents: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("challenge events after Clear = %d, want 0", len(records))
	}
	_, total, err := repo.ReviewAccuracy(ctx)
	if err != nil {
		t.Fatalf("ReviewAccuracy: %v", err)
	}
	if total != 0 {
		t.Errorf("review events after Clear = %d, want 0", total)
	}

	// The sequence restarts from 1 as on a fresh database.
	if err := repo.AppendChallengeEvent(ctx, ChallengeEventData{
		SessionID: "s2", ChallengeID: "1-1-2", ChallengeType: "recall", Understanding: "yes",
	}); err != nil {
		t.Fatalf("AppendChallengeEvent after Clear: %v", err)
	}
	records, err = repo.QueryChallengeEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("QueryChallengeEvents: %v", err)
	}
	if len(records) != 1 || records[0].Sequence != 1 {
		t.Errorf("first event after Clear = %+v, want sequence 1", records)
	}
}

func TestQueryChallengeEvents_Limit(t *testing.T) {
	st := openTestStore(t)
	repo := st.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := repo.AppendChallengeEvent(ctx, ChallengeEventData{
			SessionID: "s1", ChallengeID: "1-1-1", ChallengeType: "recall", Understanding: "yes",
		}); err != nil {
			t.Fatalf("AppendChallengeEvent: %v", err)
		}
	}

	records, err := repo.QueryChallengeEvents(ctx, QueryOpts{Limit: 3})
	if err != nil {
		t.Fatalf("QueryChallengeEvents: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len = %d, want 3", len(records))
	}
	// Newest first.
	for i := 1; i < len(records); i++ {
		if records[i].Sequence >= records[i-1].Sequence {
			t.Errorf("records not in descending sequence order: %v", records)
		}
	}
}
