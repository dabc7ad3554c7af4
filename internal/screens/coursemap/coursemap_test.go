package coursemap

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/diffuselabs/diffused/internal/course"
	"github.com/diffuselabs/diffused/internal/progress"
	"github.com/diffuselabs/diffused/internal/router"
	"github.com/diffuselabs/diffused/internal/store"
)

type mockSnapshotRepo struct{}

func (m *mockSnapshotRepo) Save(_ context.Context, _ *store.Snapshot) error { return nil }
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	return nil, nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error { return nil }
func (m *mockSnapshotRepo) Clear(_ context.Context) error        { return nil }

type mockEventRepo struct{}

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
	return nil, nil
}
func (m *mockEventRepo) QueryReviewEvents(_ context.Context, _ store.QueryOpts) ([]store.ReviewEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) ReviewAccuracy(_ context.Context) (int, int, error) {
	return 0, 0, nil
}

func (m *mockEventRepo) Clear(_ context.Context) error { return nil }

func newTestMap() (*CourseMapScreen, *progress.Tracker) {
	tracker := progress.NewTracker(nil, course.Default(), &mockSnapshotRepo{}, &mockEventRepo{})
	return New(tracker, nil), tracker
}

func TestCursorStartsOnNextLesson(t *testing.T) {
	tracker := progress.NewTracker(nil, course.Default(), &mockSnapshotRepo{}, &mockEventRepo{})

	// Complete every challenge in lesson 1-1.
	l, _ := course.Default().Lesson("1-1")
	for _, ch := range l.AllChallenges() {
		_ = tracker.RecordChallenge(context.Background(), ch.ID, progress.UnderstandingFull, time.Now())
	}
	tracker.RecordLesson(context.Background(), "1-1", time.Now())

	c := New(tracker, nil)
	if c.lessons[c.cursor].ID != "1-2" {
		t.Errorf("cursor on %s, want 1-2", c.lessons[c.cursor].ID)
	}
}

func TestNavigationBounds(t *testing.T) {
	c, _ := newTestMap()

	c.Update(tea.KeyPressMsg{Code: 'k', Text: "k"})
	if c.cursor != 0 {
		t.Errorf("cursor = %d, want 0", c.cursor)
	}

	for i := 0; i < 100; i++ {
		c.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	}
	if c.cursor != len(c.lessons)-1 {
		t.Errorf("cursor = %d, want %d", c.cursor, len(c.lessons)-1)
	}
}

func TestEnterOpensLesson(t *testing.T) {
	c, _ := newTestMap()

	_, cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from enter")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if msg.Screen == nil {
		t.Error("pushed screen should not be nil")
	}
}

func TestViewListsAllModules(t *testing.T) {
	c, _ := newTestMap()
	view := c.View(100, 40)

	for _, m := range course.Default().Modules() {
		if !strings.Contains(view, m.Title) {
			t.Errorf("view missing module title %q", m.Title)
		}
	}
}
