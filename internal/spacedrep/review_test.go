package spacedrep

import (
	"testing"
	"time"
)

func TestIsDue(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	ri := &ReviewItem{NextReview: now}

	if !ri.IsDue(now) {
		t.Error("item should be due exactly at its review time")
	}
	if !ri.IsDue(now.Add(time.Hour)) {
		t.Error("item should be due past its review time")
	}
	if ri.IsDue(now.Add(-time.Minute)) {
		t.Error("item should not be due before its review time")
	}
}

func TestOverdueDays(t *testing.T) {
	next := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	ri := &ReviewItem{NextReview: next}

	if got := ri.OverdueDays(next.Add(-time.Hour)); got != 0 {
		t.Errorf("OverdueDays before due = %v, want 0", got)
	}
	if got := ri.OverdueDays(next.Add(36 * time.Hour)); got != 1.5 {
		t.Errorf("OverdueDays = %v, want 1.5", got)
	}
}

func TestDaysUntilReview(t *testing.T) {
	next := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	ri := &ReviewItem{NextReview: next}

	if got := ri.DaysUntilReview(next); got != 0 {
		t.Errorf("DaysUntilReview when due = %d, want 0", got)
	}
	if got := ri.DaysUntilReview(next.Add(-30 * time.Hour)); got != 2 {
		t.Errorf("DaysUntilReview = %d, want 2", got)
	}
}

func TestIntervalDuration(t *testing.T) {
	if got := intervalDuration(0.5); got != 12*time.Hour {
		t.Errorf("intervalDuration(0.5) = %v, want 12h", got)
	}
	if got := intervalDuration(2); got != 48*time.Hour {
		t.Errorf("intervalDuration(2) = %v, want 48h", got)
	}
}
