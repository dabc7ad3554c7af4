package spacedrep

// Policy holds the scheduling constants for spaced repetition.
type Policy struct {
	// Initial intervals (in days) seeded on challenge completion,
	// keyed by how well the learner understood the material.
	InitialFull    float64
	InitialPartial float64
	InitialNone    float64

	// BaseIntervalDays is the interval a challenge falls back to
	// after an incorrect review.
	BaseIntervalDays float64

	// GrowthFactor multiplies the interval after a correct review.
	GrowthFactor float64

	// MaxIntervalDays caps interval growth.
	MaxIntervalDays float64

	// MasteredThresholdDays is the interval at or above which a
	// challenge counts as mastered for stats.
	MasteredThresholdDays float64

	// DefaultDueLimit bounds how many due challenges a review
	// session serves when no explicit limit is given.
	DefaultDueLimit int
}

// DefaultPolicy returns the standard scheduling constants.
func DefaultPolicy() Policy {
	return Policy{
		InitialFull:           2,
		InitialPartial:        1,
		InitialNone:           0.5,
		BaseIntervalDays:      1,
		GrowthFactor:          2,
		MaxIntervalDays:       30,
		MasteredThresholdDays: 14,
		DefaultDueLimit:       3,
	}
}

// NextInterval returns the interval following a correct review.
func (p Policy) NextInterval(current float64) float64 {
	next := current * p.GrowthFactor
	if next > p.MaxIntervalDays {
		return p.MaxIntervalDays
	}
	return next
}
