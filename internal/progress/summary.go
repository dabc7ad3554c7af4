package progress

import (
	"math"

	"github.com/diffuselabs/diffused/internal/course"
)

// PercentComplete returns overall course completion as a rounded
// percentage of challenges completed.
func (t *Tracker) PercentComplete() int {
	total := t.catalog.TotalChallengeCount()
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(len(t.results)) / float64(total)))
}

// IsCourseComplete reports whether every challenge in the catalog has
// been completed.
func (t *Tracker) IsCourseComplete() bool {
	total := t.catalog.TotalChallengeCount()
	return total > 0 && len(t.results) >= total
}

// LessonPercent returns completion for a single lesson as a rounded
// percentage of its challenges.
func (t *Tracker) LessonPercent(lessonID string) int {
	lesson, ok := t.catalog.Lesson(lessonID)
	if !ok {
		return 0
	}
	total := lesson.ChallengeCount()
	if total == 0 {
		return 0
	}
	done := 0
	for _, ch := range lesson.AllChallenges() {
		if t.IsChallengeCompleted(ch.ID) {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}

// UnderstandingScore buckets completed challenges by understanding level.
type UnderstandingScore struct {
	Full    int
	Partial int
	None    int
}

// Score tallies understanding across all completed challenges.
func (t *Tracker) Score() UnderstandingScore {
	var score UnderstandingScore
	for _, res := range t.results {
		switch res.Understanding {
		case UnderstandingFull:
			score.Full++
		case UnderstandingPartial:
			score.Partial++
		default:
			score.None++
		}
	}
	return score
}

// NextLesson returns the first incomplete lesson, walking modules and
// lessons in order. Returns false when the course is finished.
func (t *Tracker) NextLesson() (course.Lesson, bool) {
	for _, mod := range t.catalog.Modules() {
		for _, lesson := range mod.Lessons {
			if !t.completedLessons[lesson.ID] {
				return lesson, true
			}
		}
	}
	return course.Lesson{}, false
}
