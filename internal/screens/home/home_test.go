package home

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/diffuselabs/diffused/internal/course"
	"github.com/diffuselabs/diffused/internal/progress"
	"github.com/diffuselabs/diffused/internal/store"
)

type mockSnapshotRepo struct {
	cleared bool
}

func (m *mockSnapshotRepo) Save(_ context.Context, _ *store.Snapshot) error { return nil }
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	return nil, nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error { return nil }
func (m *mockSnapshotRepo) Clear(_ context.Context) error {
	m.cleared = true
	return nil
}

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

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testHome() (*HomeScreen, *progress.Tracker, *mockSnapshotRepo) {
	snaps := &mockSnapshotRepo{}
	tracker := progress.NewTracker(nil, course.Default(), snaps, &mockEventRepo{})
	return New(tracker, &mockEventRepo{}, nil), tracker, snaps
}

func TestNextLessonShownInMenu(t *testing.T) {
	h, _, _ := testHome()
	view := h.View(100, 40)
	if !strings.Contains(view, "1-1") {
		t.Error("menu should name the next lesson")
	}
}

func TestResetConfirmThenCancel(t *testing.T) {
	h, _, snaps := testHome()

	scr, _ := h.Update(confirmResetMsg{})
	h = scr.(*HomeScreen)
	if !strings.Contains(h.View(100, 40), "Reset all progress?") {
		t.Fatal("expected the confirm dialog")
	}

	scr, _ = h.Update(keyPress('n'))
	h = scr.(*HomeScreen)
	if h.confirmReset {
		t.Error("n should dismiss the dialog")
	}
	if snaps.cleared {
		t.Error("cancel must not clear storage")
	}
}

func TestResetConfirmClearsProgress(t *testing.T) {
	h, tracker, snaps := testHome()
	_ = tracker.RecordChallenge(context.Background(), "1-1-1", progress.UnderstandingFull, time.Now())

	scr, _ := h.Update(confirmResetMsg{})
	scr, _ = scr.Update(keyPress('y'))

	if !snaps.cleared {
		t.Error("confirming should clear persisted storage")
	}
	if tracker.IsChallengeCompleted("1-1-1") {
		t.Error("confirming should empty in-memory progress")
	}
	if fresh, ok := scr.(*HomeScreen); !ok || fresh == h {
		t.Error("confirming should rebuild the home screen")
	}
}
