package progress

import (
	"context"
	"testing"
	"time"

	"github.com/diffuselabs/diffused/internal/course"
)

func TestPercentCompleteEmpty(t *testing.T) {
	tr, _, _ := testTracker()
	if got := tr.PercentComplete(); got != 0 {
		t.Errorf("PercentComplete = %d, want 0", got)
	}
}

func TestPercentCompleteRounds(t *testing.T) {
	tr, _, _ := testTracker()
	ctx := context.Background()
	now := time.Now()

	// 1 of 18 challenges is 5.55..%, which rounds to 6.
	if err := tr.RecordChallenge(ctx, "1-1-1", UnderstandingFull, now); err != nil {
		t.Fatal(err)
	}
	if got := tr.PercentComplete(); got != 6 {
		t.Errorf("PercentComplete = %d, want 6", got)
	}
}

func TestPercentCompleteFull(t *testing.T) {
	tr, _, _ := testTracker()
	ctx := context.Background()
	now := time.Now()

	for _, mod := range course.Default().Modules() {
		for _, lesson := range mod.Lessons {
			for _, ch := range lesson.AllChallenges() {
				if err := tr.RecordChallenge(ctx, ch.ID, UnderstandingFull, now); err != nil {
					t.Fatal(err)
				}
			}
		}
	}

	if got := tr.PercentComplete(); got != 100 {
		t.Errorf("PercentComplete = %d, want 100", got)
	}
	if !tr.IsCourseComplete() {
		t.Error("IsCourseComplete should be true with every challenge done")
	}
}

func TestLessonPercent(t *testing.T) {
	tr, _, _ := testTracker()
	ctx := context.Background()
	now := time.Now()

	// Lesson 1-1 has three challenges.
	if err := tr.RecordChallenge(ctx, "1-1-1", UnderstandingFull, now); err != nil {
		t.Fatal(err)
	}
	if got := tr.LessonPercent("1-1"); got != 33 {
		t.Errorf("LessonPercent = %d, want 33", got)
	}
	if got := tr.LessonPercent("9-9"); got != 0 {
		t.Errorf("LessonPercent for unknown lesson = %d, want 0", got)
	}
}

func TestScoreBuckets(t *testing.T) {
	tr, _, _ := testTracker()
	ctx := context.Background()
	now := time.Now()

	if err := tr.RecordChallenge(ctx, "1-1-1", UnderstandingFull, now); err != nil {
		t.Fatal(err)
	}
	if err := tr.RecordChallenge(ctx, "1-1-2", UnderstandingPartial, now); err != nil {
		t.Fatal(err)
	}
	if err := tr.RecordChallenge(ctx, "1-2-1", UnderstandingNone, now); err != nil {
		t.Fatal(err)
	}

	score := tr.Score()
	if score.Full != 1 || score.Partial != 1 || score.None != 1 {
		t.Errorf("Score = %+v, want 1/1/1", score)
	}
}

func TestNextLessonWalksInOrder(t *testing.T) {
	tr, _, _ := testTracker()
	ctx := context.Background()
	now := time.Now()

	lesson, ok := tr.NextLesson()
	if !ok || lesson.ID != "1-1" {
		t.Fatalf("NextLesson = %v %v, want 1-1", lesson.ID, ok)
	}

	tr.RecordLesson(ctx, "1-1", now)
	lesson, ok = tr.NextLesson()
	if !ok || lesson.ID != "1-2" {
		t.Errorf("NextLesson = %v %v, want 1-2", lesson.ID, ok)
	}

	// Completing out of order still picks the earliest gap.
	tr.RecordLesson(ctx, "2-1", now)
	lesson, ok = tr.NextLesson()
	if !ok || lesson.ID != "1-2" {
		t.Errorf("NextLesson = %v %v, want 1-2", lesson.ID, ok)
	}
}

func TestNextLessonCourseComplete(t *testing.T) {
	tr, _, _ := testTracker()
	ctx := context.Background()
	now := time.Now()

	for _, mod := range course.Default().Modules() {
		for _, lesson := range mod.Lessons {
			tr.RecordLesson(ctx, lesson.ID, now)
		}
	}

	if _, ok := tr.NextLesson(); ok {
		t.Error("NextLesson should report false when every lesson is done")
	}
}
