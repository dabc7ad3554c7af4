package lesson

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/diffuselabs/diffused/internal/course"
	"github.com/diffuselabs/diffused/internal/progress"
	"github.com/diffuselabs/diffused/internal/router"
	"github.com/diffuselabs/diffused/internal/screen"
	"github.com/diffuselabs/diffused/internal/store"
)

// mockSnapshotRepo implements store.SnapshotRepo for testing.
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

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	challengeEvents []store.ChallengeEventData
	lessonEvents    []store.LessonEventData
}

func (m *mockEventRepo) AppendChallengeEvent(_ context.Context, data store.ChallengeEventData) error {
	m.challengeEvents = append(m.challengeEvents, data)
	return nil
}
func (m *mockEventRepo) AppendReviewEvent(_ context.Context, _ store.ReviewEventData) error {
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

func (m *mockEventRepo) Clear(_ context.Context) error { return nil }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testLessonScreen(lessonID string) (*LessonScreen, *progress.Tracker, *mockEventRepo) {
	events := &mockEventRepo{}
	tracker := progress.NewTracker(nil, course.Default(), &mockSnapshotRepo{}, events)

	l, ok := course.Default().Lesson(lessonID)
	if !ok {
		panic("unknown lesson " + lessonID)
	}
	s := New(tracker, nil, l)
	return s, tracker, events
}

// startLesson skips the intro view.
func startLesson(s *LessonScreen) {
	s.Update(keyPress(' '))
}

// answerCorrectly drives the choice list to the correct answer and
// submits it.
func answerCorrectly(t *testing.T, s *LessonScreen) {
	t.Helper()
	if s.kind != kindChoice {
		t.Fatalf("challenge %s is not choice-based", s.current().ID)
	}
	var scr screen.Screen = s
	for i := 0; i < s.current().CorrectIdx; i++ {
		scr, _ = scr.Update(specialKey(tea.KeyDown))
	}
	scr.Update(specialKey(tea.KeyEnter))
}

func TestLessonScreenTitle(t *testing.T) {
	s, _, _ := testLessonScreen("1-1")
	l, _ := course.Default().Lesson("1-1")
	if s.Title() != l.Title {
		t.Errorf("Title = %q, want %q", s.Title(), l.Title)
	}
}

func TestIntroShownFirst(t *testing.T) {
	s, _, _ := testLessonScreen("1-1")

	if s.phase != phaseIntro {
		t.Fatalf("phase = %d, want intro", s.phase)
	}
	startLesson(s)
	if s.phase != phaseAnswering {
		t.Fatalf("phase = %d, want answering", s.phase)
	}
}

func TestChoiceChallengeCorrect(t *testing.T) {
	s, tracker, events := testLessonScreen("1-1")
	startLesson(s)

	answerCorrectly(t, s)

	if s.phase != phaseReveal {
		t.Fatalf("phase = %d, want reveal", s.phase)
	}
	if s.lastLevel != progress.UnderstandingFull {
		t.Errorf("suggested level = %q, want %q", s.lastLevel, progress.UnderstandingFull)
	}

	// Commit on enter.
	s.Update(specialKey(tea.KeyEnter))
	if got := tracker.Understanding("1-1-1"); got != progress.UnderstandingFull {
		t.Errorf("understanding = %q, want %q", got, progress.UnderstandingFull)
	}
	if len(events.challengeEvents) != 1 {
		t.Errorf("challenge events = %d, want 1", len(events.challengeEvents))
	}
	if s.idx != 1 {
		t.Errorf("idx = %d, want 1", s.idx)
	}
}

func TestChoiceChallengeWrong(t *testing.T) {
	s, tracker, _ := testLessonScreen("1-1")
	startLesson(s)

	// Select a wrong answer deliberately.
	wrong := 0
	if s.current().CorrectIdx == 0 {
		wrong = 1
	}
	var scr screen.Screen = s
	for i := 0; i < wrong; i++ {
		scr, _ = scr.Update(specialKey(tea.KeyDown))
	}
	scr.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))

	if got := tracker.Understanding("1-1-1"); got != progress.UnderstandingNone {
		t.Errorf("understanding = %q, want %q", got, progress.UnderstandingNone)
	}
}

func TestAdjustAssessmentAtReveal(t *testing.T) {
	s, tracker, _ := testLessonScreen("1-1")
	startLesson(s)

	answerCorrectly(t, s)
	s.Update(keyPress('p'))
	if s.phase != phaseReveal {
		t.Fatalf("adjusting should stay on reveal, phase = %d", s.phase)
	}
	s.Update(specialKey(tea.KeyEnter))

	if got := tracker.Understanding("1-1-1"); got != progress.UnderstandingPartial {
		t.Errorf("understanding = %q, want %q", got, progress.UnderstandingPartial)
	}
}

func TestFullLessonWalk(t *testing.T) {
	// Lesson 3-2 is three choice challenges plus a free-text transfer.
	s, tracker, events := testLessonScreen("3-2")
	startLesson(s)

	for i := 0; i < 3; i++ {
		answerCorrectly(t, s)
		s.Update(specialKey(tea.KeyEnter))
	}

	if s.kind != kindFreeText {
		t.Fatalf("expected free-text transfer challenge, got kind %d", s.kind)
	}

	// No feedback service wired: submission falls back to self-assessment.
	s.input.Model.SetValue("the sampler removes predicted noise step by step")
	s.Update(tea.KeyPressMsg{Code: 'd', Mod: tea.ModCtrl})
	if s.phase != phaseSelfAssess {
		t.Fatalf("phase = %d, want self-assess", s.phase)
	}

	s.Update(keyPress('y'))
	if s.phase != phaseReveal {
		t.Fatalf("phase = %d, want reveal", s.phase)
	}

	s.Update(specialKey(tea.KeyEnter))
	if s.phase != phaseSummary {
		t.Fatalf("phase = %d, want summary", s.phase)
	}

	if !tracker.IsLessonCompleted("3-2") {
		t.Error("lesson should be completed")
	}
	if len(events.lessonEvents) != 1 {
		t.Errorf("lesson events = %d, want 1", len(events.lessonEvents))
	}
	if s.fullCount != 4 {
		t.Errorf("fullCount = %d, want 4", s.fullCount)
	}
}

func TestEmptyAnswerNotSubmitted(t *testing.T) {
	s, _, _ := testLessonScreen("1-1")
	startLesson(s)

	answerCorrectly(t, s)
	s.Update(specialKey(tea.KeyEnter))
	answerCorrectly(t, s)
	s.Update(specialKey(tea.KeyEnter))

	if s.kind != kindFreeText {
		t.Fatalf("expected free-text challenge")
	}
	s.Update(tea.KeyPressMsg{Code: 'd', Mod: tea.ModCtrl})
	if s.phase != phaseAnswering {
		t.Errorf("empty answer should not submit, phase = %d", s.phase)
	}
}

func TestFeedbackErrorFallsBackToSelfAssess(t *testing.T) {
	s, _, _ := testLessonScreen("1-1")
	s.phase = phaseEvaluating

	scr, _ := s.Update(feedbackReadyMsg{Err: context.DeadlineExceeded})
	ls := scr.(*LessonScreen)
	if ls.phase != phaseSelfAssess {
		t.Errorf("phase = %d, want self-assess", ls.phase)
	}
}

func TestSummaryEnterPops(t *testing.T) {
	s, _, _ := testLessonScreen("1-1")
	s.phase = phaseSummary

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command from enter on summary")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
