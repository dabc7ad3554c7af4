package progress

import "time"

// UnderstandingLevel records how well the learner understood a challenge
// when they completed it.
type UnderstandingLevel string

const (
	UnderstandingFull    UnderstandingLevel = "yes"
	UnderstandingPartial UnderstandingLevel = "partial"
	UnderstandingNone    UnderstandingLevel = "no"
)

// Valid reports whether the level is one of the known wire values.
func (u UnderstandingLevel) Valid() bool {
	switch u {
	case UnderstandingFull, UnderstandingPartial, UnderstandingNone:
		return true
	}
	return false
}

// severityRank orders levels weakest first for the review queue.
func (u UnderstandingLevel) severityRank() int {
	switch u {
	case UnderstandingNone:
		return 0
	case UnderstandingPartial:
		return 1
	default:
		return 2
	}
}

// ChallengeResult is the completion record for a single challenge.
type ChallengeResult struct {
	ChallengeID   string
	Understanding UnderstandingLevel
	CompletedAt   time.Time
}
