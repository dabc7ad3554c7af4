package spacedrep

import "time"

// ReviewItem holds the spaced repetition state for a single challenge.
type ReviewItem struct {
	ChallengeID  string    `json:"challenge_id"`
	LastReview   time.Time `json:"last_review"`
	NextReview   time.Time `json:"next_review"`
	IntervalDays float64   `json:"interval_days"`
	Streak       int       `json:"streak"`
}

// IsDue returns true if the challenge is due for review (at or past the
// scheduled review time).
func (ri *ReviewItem) IsDue(now time.Time) bool {
	return !now.Before(ri.NextReview)
}

// OverdueDays returns how many days past due the challenge is.
// Returns 0 if not yet due.
func (ri *ReviewItem) OverdueDays(now time.Time) float64 {
	if now.Before(ri.NextReview) {
		return 0
	}
	return now.Sub(ri.NextReview).Hours() / 24.0
}

// DaysUntilReview returns the number of days until the next review.
// Returns 0 if already due.
func (ri *ReviewItem) DaysUntilReview(now time.Time) int {
	if ri.IsDue(now) {
		return 0
	}
	return int(ri.NextReview.Sub(now).Hours()/24.0) + 1
}

// intervalDuration converts a fractional day count to a duration.
func intervalDuration(days float64) time.Duration {
	return time.Duration(days * 24 * float64(time.Hour))
}
