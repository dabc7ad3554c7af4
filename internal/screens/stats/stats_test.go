package stats

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/diffuselabs/diffused/internal/course"
	"github.com/diffuselabs/diffused/internal/progress"
	"github.com/diffuselabs/diffused/internal/store"
)

type mockSnapshotRepo struct{}

func (m *mockSnapshotRepo) Save(_ context.Context, _ *store.Snapshot) error { return nil }
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	return nil, nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error { return nil }
func (m *mockSnapshotRepo) Clear(_ context.Context) error        { return nil }

type mockEventRepo struct {
	correct int
	total   int
	events  []store.ChallengeEventRecord
}

func (m *mockEventRepo) AppendChallengeEvent(_ context.Context, _ store.ChallengeEventData) error {
	return nil
}
func (m *mockEventRepo) AppendReviewEvent(_ context.Context, _ store.ReviewEventData) error {
	return nil
}
func (m *mockEventRepo) AppendLessonEvent(_ context.Context, _ store.LessonEventData) error {
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) QueryChallengeEvents(_ context.Context, _ store.QueryOpts) ([]store.ChallengeEventRecord, error) {
	return m.events, nil
}
func (m *mockEventRepo) QueryReviewEvents(_ context.Context, _ store.QueryOpts) ([]store.ReviewEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) ReviewAccuracy(_ context.Context) (int, int, error) {
	return m.correct, m.total, nil
}

func (m *mockEventRepo) Clear(_ context.Context) error { return nil }

func TestAccuracyShownOnceLoaded(t *testing.T) {
	tracker := progress.NewTracker(nil, course.Default(), &mockSnapshotRepo{}, &mockEventRepo{})
	s := New(tracker, &mockEventRepo{correct: 7, total: 10})

	if cmd := s.Init(); cmd == nil {
		t.Fatal("expected query commands from Init")
	}

	s.Update(accuracyMsg{Correct: 7, Total: 10})
	view := s.View(100, 40)
	if !strings.Contains(view, "70%") {
		t.Error("view should include review accuracy")
	}
}

func TestRecentActivityListed(t *testing.T) {
	tracker := progress.NewTracker(nil, course.Default(), &mockSnapshotRepo{}, &mockEventRepo{})
	s := New(tracker, &mockEventRepo{})

	s.Update(historyMsg{Events: []store.ChallengeEventRecord{
		{Sequence: 2, Timestamp: time.Now(), ChallengeID: "1-1-2", Understanding: "partial"},
		{Sequence: 1, Timestamp: time.Now().Add(-time.Hour), ChallengeID: "1-1-1", Understanding: "yes"},
	}})

	view := s.View(100, 40)
	if !strings.Contains(view, "Recent activity") {
		t.Error("view should include the recent activity section")
	}
	if !strings.Contains(view, "1-1-2") {
		t.Error("view should list recent challenge IDs")
	}
}

func TestViewShowsReviewPipeline(t *testing.T) {
	tracker := progress.NewTracker(nil, course.Default(), &mockSnapshotRepo{}, &mockEventRepo{})
	_ = tracker.RecordChallenge(context.Background(), "1-1-1", progress.UnderstandingFull, time.Now())

	s := New(tracker, &mockEventRepo{})
	view := s.View(100, 40)
	if !strings.Contains(view, "learning") {
		t.Error("view should include review pipeline counts")
	}
	if !strings.Contains(view, "Module 1") {
		t.Error("view should include per-module progress")
	}
}

func TestNilEventRepoInit(t *testing.T) {
	tracker := progress.NewTracker(nil, course.Default(), &mockSnapshotRepo{}, &mockEventRepo{})
	s := New(tracker, nil)
	if cmd := s.Init(); cmd != nil {
		t.Error("expected no command without an event repo")
	}
}
