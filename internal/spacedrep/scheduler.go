package spacedrep

import (
	"sort"
	"time"

	"github.com/diffuselabs/diffused/internal/course"
	"github.com/diffuselabs/diffused/internal/store"
)

// SeverityFunc ranks a challenge by how weak the learner's understanding
// of it is. Lower values sort earlier in the due queue.
type SeverityFunc func(challengeID string) int

// Scheduler manages spaced repetition review scheduling for challenges.
type Scheduler struct {
	items    map[string]*ReviewItem
	catalog  *course.Catalog
	policy   Policy
	severity SeverityFunc
}

// NewScheduler creates a scheduler, loading review state from snapshot
// data. Records with unparseable timestamps are skipped.
func NewScheduler(reviews map[string]*store.ReviewItemData, catalog *course.Catalog, policy Policy) *Scheduler {
	s := &Scheduler{
		items:   make(map[string]*ReviewItem),
		catalog: catalog,
		policy:  policy,
	}
	for id, rd := range reviews {
		lastReview, err := time.Parse(time.RFC3339, rd.LastReview)
		if err != nil {
			continue
		}
		nextReview, err := time.Parse(time.RFC3339, rd.NextReview)
		if err != nil {
			continue
		}
		s.items[id] = &ReviewItem{
			ChallengeID:  rd.ID,
			LastReview:   lastReview,
			NextReview:   nextReview,
			IntervalDays: rd.IntervalDays,
			Streak:       rd.Streak,
		}
	}
	return s
}

// SetSeverity installs the understanding lookup used to order the due
// queue. Without one, due challenges sort by last review time only.
func (s *Scheduler) SetSeverity(fn SeverityFunc) {
	s.severity = fn
}

// Seed creates or replaces the review state for a challenge after it is
// completed in a lesson. Re-completing a challenge restarts its schedule.
func (s *Scheduler) Seed(challengeID string, intervalDays float64, streak int, now time.Time) {
	s.items[challengeID] = &ReviewItem{
		ChallengeID:  challengeID,
		LastReview:   now,
		NextReview:   now.Add(intervalDuration(intervalDays)),
		IntervalDays: intervalDays,
		Streak:       streak,
	}
}

// RecordReview updates the review schedule after a review answer.
// Unknown challenge IDs are ignored and report ok=false.
func (s *Scheduler) RecordReview(challengeID string, correct bool, now time.Time) (ReviewItem, bool) {
	ri := s.items[challengeID]
	if ri == nil {
		return ReviewItem{}, false
	}

	if correct {
		ri.Streak++
		ri.IntervalDays = s.policy.NextInterval(ri.IntervalDays)
	} else {
		ri.Streak = 0
		ri.IntervalDays = s.policy.BaseIntervalDays
	}
	ri.LastReview = now
	ri.NextReview = now.Add(intervalDuration(ri.IntervalDays))

	return *ri, true
}

// DueChallenges returns challenges due for review, weakest understanding
// first, ties broken by least recently reviewed. Challenges no longer in
// the catalog are skipped. limit <= 0 falls back to the policy default.
func (s *Scheduler) DueChallenges(now time.Time, limit int) []course.Challenge {
	if limit <= 0 {
		limit = s.policy.DefaultDueLimit
	}

	var due []*ReviewItem
	for _, ri := range s.items {
		if ri.IsDue(now) {
			due = append(due, ri)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		if s.severity != nil {
			si, sj := s.severity(due[i].ChallengeID), s.severity(due[j].ChallengeID)
			if si != sj {
				return si < sj
			}
		}
		if !due[i].LastReview.Equal(due[j].LastReview) {
			return due[i].LastReview.Before(due[j].LastReview)
		}
		return due[i].ChallengeID < due[j].ChallengeID
	})

	var challenges []course.Challenge
	for _, ri := range due {
		ch, ok := s.catalog.Resolve(ri.ChallengeID)
		if !ok {
			continue
		}
		challenges = append(challenges, ch)
		if len(challenges) == limit {
			break
		}
	}
	return challenges
}

// Stats summarizes the review queue for display.
type Stats struct {
	Due      int
	Mastered int
	Learning int
}

// ReviewStats counts due, mastered and still-learning challenges.
// Mastered means the interval has reached the policy threshold.
func (s *Scheduler) ReviewStats(now time.Time) Stats {
	var st Stats
	for _, ri := range s.items {
		if ri.IsDue(now) {
			st.Due++
		}
		if ri.IntervalDays >= s.policy.MasteredThresholdDays {
			st.Mastered++
		} else {
			st.Learning++
		}
	}
	return st
}

// Item returns the review state for a challenge, or nil if not tracked.
func (s *Scheduler) Item(challengeID string) *ReviewItem {
	return s.items[challengeID]
}

// Len returns the number of tracked challenges.
func (s *Scheduler) Len() int {
	return len(s.items)
}

// Reset drops all review state.
func (s *Scheduler) Reset() {
	s.items = make(map[string]*ReviewItem)
}

// SnapshotData exports the current review state for persistence.
func (s *Scheduler) SnapshotData() map[string]*store.ReviewItemData {
	data := make(map[string]*store.ReviewItemData, len(s.items))
	for id, ri := range s.items {
		data[id] = &store.ReviewItemData{
			ID:           ri.ChallengeID,
			LastReview:   ri.LastReview.Format(time.RFC3339),
			NextReview:   ri.NextReview.Format(time.RFC3339),
			IntervalDays: ri.IntervalDays,
			Streak:       ri.Streak,
		}
	}
	return data
}
