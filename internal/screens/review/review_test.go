package review

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/diffuselabs/diffused/internal/course"
	"github.com/diffuselabs/diffused/internal/progress"
	"github.com/diffuselabs/diffused/internal/router"
	"github.com/diffuselabs/diffused/internal/screen"
	"github.com/diffuselabs/diffused/internal/store"
)

type mockSnapshotRepo struct {
	snapshots []*store.Snapshot
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
func (m *mockSnapshotRepo) Clear(_ context.Context) error        { return nil }

type mockEventRepo struct {
	reviewEvents []store.ReviewEventData
}

func (m *mockEventRepo) AppendChallengeEvent(_ context.Context, _ store.ChallengeEventData) error {
	return nil
}
func (m *mockEventRepo) AppendReviewEvent(_ context.Context, data store.ReviewEventData) error {
	m.reviewEvents = append(m.reviewEvents, data)
	return nil
}
func (m *mockEventRepo) AppendLessonEvent(_ context.Context, _ store.LessonEventData) error {
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

func (m *mockEventRepo) Clear(_ context.Context) error { return nil }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// testTracker returns a tracker with the given challenges completed
// three days ago, making them all due.
func testTracker(t *testing.T, events *mockEventRepo, ids ...string) *progress.Tracker {
	t.Helper()
	tracker := progress.NewTracker(nil, course.Default(), &mockSnapshotRepo{}, events)
	past := time.Now().Add(-72 * time.Hour)
	for _, id := range ids {
		if err := tracker.RecordChallenge(context.Background(), id, progress.UnderstandingFull, past); err != nil {
			t.Fatalf("RecordChallenge(%s): %v", id, err)
		}
	}
	return tracker
}

func TestEmptyQueue(t *testing.T) {
	tracker := progress.NewTracker(nil, course.Default(), &mockSnapshotRepo{}, &mockEventRepo{})
	s := New(tracker)

	if s.phase != phaseEmpty {
		t.Fatalf("phase = %d, want empty", s.phase)
	}

	_, cmd := s.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a command from keypress on empty queue")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestQueueServesDueChallenges(t *testing.T) {
	events := &mockEventRepo{}
	tracker := testTracker(t, events, "1-1-1", "1-1-2")
	s := New(tracker)

	if len(s.queue) != 2 {
		t.Fatalf("queue length = %d, want 2", len(s.queue))
	}
	if s.phase != phaseAnswering {
		t.Errorf("phase = %d, want answering", s.phase)
	}
}

func TestCorrectAnswerGrowsInterval(t *testing.T) {
	events := &mockEventRepo{}
	tracker := testTracker(t, events, "1-1-1")
	s := New(tracker)

	ch := s.current()
	var scr screen.Screen = s
	for i := 0; i < ch.CorrectIdx; i++ {
		scr, _ = scr.Update(specialKey(tea.KeyDown))
	}
	scr.Update(specialKey(tea.KeyEnter))

	if s.phase != phaseReveal {
		t.Fatalf("phase = %d, want reveal", s.phase)
	}
	if !s.lastCorrect {
		t.Error("expected correct answer")
	}

	item := tracker.Scheduler().Item(ch.ID)
	if item == nil {
		t.Fatal("review item missing after review")
	}
	if item.IntervalDays != 4 {
		t.Errorf("interval = %v, want 4 (doubled from 2)", item.IntervalDays)
	}
	if len(events.reviewEvents) != 1 {
		t.Errorf("review events = %d, want 1", len(events.reviewEvents))
	}
}

func TestWrongAnswerResetsInterval(t *testing.T) {
	events := &mockEventRepo{}
	tracker := testTracker(t, events, "1-1-1")
	s := New(tracker)

	ch := s.current()
	wrong := 0
	if ch.CorrectIdx == 0 {
		wrong = 1
	}
	var scr screen.Screen = s
	for i := 0; i < wrong; i++ {
		scr, _ = scr.Update(specialKey(tea.KeyDown))
	}
	scr.Update(specialKey(tea.KeyEnter))

	item := tracker.Scheduler().Item(ch.ID)
	if item == nil {
		t.Fatal("review item missing after review")
	}
	if item.IntervalDays != 1 {
		t.Errorf("interval = %v, want 1", item.IntervalDays)
	}
	if item.Streak != 0 {
		t.Errorf("streak = %d, want 0", item.Streak)
	}
}

func TestFreeRecallFlow(t *testing.T) {
	events := &mockEventRepo{}
	tracker := testTracker(t, events, "1-1-t")
	s := New(tracker)

	if s.kind != kindFreeRecall {
		t.Fatalf("kind = %d, want free recall", s.kind)
	}
	if s.phase != phaseRecall {
		t.Fatalf("phase = %d, want recall", s.phase)
	}

	s.Update(keyPress(' '))
	if s.phase != phaseAssess {
		t.Fatalf("phase = %d, want assess", s.phase)
	}

	s.Update(keyPress('y'))
	if s.phase != phaseReveal {
		t.Fatalf("phase = %d, want reveal", s.phase)
	}
	if !s.lastCorrect {
		t.Error("expected remembered outcome")
	}
}

func TestAdvanceToSummary(t *testing.T) {
	events := &mockEventRepo{}
	tracker := testTracker(t, events, "1-1-1")
	s := New(tracker)

	ch := s.current()
	var scr screen.Screen = s
	for i := 0; i < ch.CorrectIdx; i++ {
		scr, _ = scr.Update(specialKey(tea.KeyDown))
	}
	scr.Update(specialKey(tea.KeyEnter))
	s.Update(keyPress(' '))

	if s.phase != phaseSummary {
		t.Fatalf("phase = %d, want summary", s.phase)
	}

	_, cmd := s.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected pop command from summary")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
