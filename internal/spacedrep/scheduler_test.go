package spacedrep

import (
	"testing"
	"time"

	"github.com/diffuselabs/diffused/internal/course"
	"github.com/diffuselabs/diffused/internal/store"
)

func testScheduler(t *testing.T) *Scheduler {
	t.Helper()
	return NewScheduler(nil, course.Default(), DefaultPolicy())
}

func TestSeedCreatesItem(t *testing.T) {
	s := testScheduler(t)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	s.Seed("1-1-1", 2, 1, now)

	ri := s.Item("1-1-1")
	if ri == nil {
		t.Fatal("expected review item after seeding")
	}
	if ri.IntervalDays != 2 || ri.Streak != 1 {
		t.Errorf("seeded item = interval %v streak %d, want 2 and 1", ri.IntervalDays, ri.Streak)
	}
	want := now.Add(48 * time.Hour)
	if !ri.NextReview.Equal(want) {
		t.Errorf("NextReview = %v, want %v", ri.NextReview, want)
	}
}

func TestSeedHalfDayInterval(t *testing.T) {
	s := testScheduler(t)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	s.Seed("1-1-1", 0.5, 0, now)

	want := now.Add(12 * time.Hour)
	if got := s.Item("1-1-1").NextReview; !got.Equal(want) {
		t.Errorf("NextReview = %v, want %v", got, want)
	}
}

func TestReseedRestartsSchedule(t *testing.T) {
	s := testScheduler(t)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	s.Seed("1-1-1", 2, 1, now)
	s.RecordReview("1-1-1", true, now.AddDate(0, 0, 2))
	s.Seed("1-1-1", 1, 0, now.AddDate(0, 0, 5))

	ri := s.Item("1-1-1")
	if ri.IntervalDays != 1 || ri.Streak != 0 {
		t.Errorf("re-seeded item = interval %v streak %d, want 1 and 0", ri.IntervalDays, ri.Streak)
	}
}

func TestRecordReviewCorrectDoublesInterval(t *testing.T) {
	s := testScheduler(t)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	s.Seed("1-1-1", 2, 1, now)

	later := now.AddDate(0, 0, 2)
	ri, ok := s.RecordReview("1-1-1", true, later)
	if !ok {
		t.Fatal("expected tracked challenge")
	}
	if ri.IntervalDays != 4 {
		t.Errorf("IntervalDays = %v, want 4", ri.IntervalDays)
	}
	if ri.Streak != 2 {
		t.Errorf("Streak = %d, want 2", ri.Streak)
	}
	if !ri.LastReview.Equal(later) {
		t.Errorf("LastReview = %v, want %v", ri.LastReview, later)
	}
	want := later.Add(4 * 24 * time.Hour)
	if !ri.NextReview.Equal(want) {
		t.Errorf("NextReview = %v, want %v", ri.NextReview, want)
	}
}

func TestRecordReviewIntervalCap(t *testing.T) {
	s := testScheduler(t)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	s.Seed("1-1-1", 20, 4, now)

	ri, _ := s.RecordReview("1-1-1", true, now.AddDate(0, 0, 20))
	if ri.IntervalDays != 30 {
		t.Errorf("IntervalDays = %v, want capped at 30", ri.IntervalDays)
	}
}

func TestRecordReviewIncorrectResets(t *testing.T) {
	s := testScheduler(t)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	s.Seed("1-1-1", 8, 3, now)

	later := now.AddDate(0, 0, 8)
	ri, _ := s.RecordReview("1-1-1", false, later)
	if ri.IntervalDays != 1 {
		t.Errorf("IntervalDays = %v, want 1", ri.IntervalDays)
	}
	if ri.Streak != 0 {
		t.Errorf("Streak = %d, want 0", ri.Streak)
	}
	want := later.Add(24 * time.Hour)
	if !ri.NextReview.Equal(want) {
		t.Errorf("NextReview = %v, want %v", ri.NextReview, want)
	}
}

func TestRecordReviewUnknownChallenge(t *testing.T) {
	s := testScheduler(t)

	_, ok := s.RecordReview("9-9-9", true, time.Now())
	if ok {
		t.Error("unknown challenge should report ok=false")
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0 after no-op review", s.Len())
	}
}

func TestDueChallengesOrdering(t *testing.T) {
	s := testScheduler(t)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	// All three due. 1-1-2 has the weakest understanding, and of the
	// remaining two 1-1-1 was reviewed longest ago.
	s.Seed("1-1-1", 1, 0, base)
	s.Seed("1-1-2", 1, 0, base.Add(time.Hour))
	s.Seed("1-2-1", 1, 0, base.Add(2*time.Hour))
	s.SetSeverity(func(id string) int {
		if id == "1-1-2" {
			return 0
		}
		return 2
	})

	now := base.AddDate(0, 0, 3)
	due := s.DueChallenges(now, 10)
	if len(due) != 3 {
		t.Fatalf("len(due) = %d, want 3", len(due))
	}
	wantOrder := []string{"1-1-2", "1-1-1", "1-2-1"}
	for i, want := range wantOrder {
		if due[i].ID != want {
			t.Errorf("due[%d] = %s, want %s", i, due[i].ID, want)
		}
	}
}

func TestDueChallengesDefaultLimit(t *testing.T) {
	s := testScheduler(t)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	ids := []string{"1-1-1", "1-1-2", "1-2-1", "1-2-2", "2-1-1"}
	for i, id := range ids {
		s.Seed(id, 1, 0, base.Add(time.Duration(i)*time.Minute))
	}

	due := s.DueChallenges(base.AddDate(0, 0, 2), 0)
	if len(due) != DefaultPolicy().DefaultDueLimit {
		t.Errorf("len(due) = %d, want default limit %d", len(due), DefaultPolicy().DefaultDueLimit)
	}
}

func TestDueChallengesSkipsNotDue(t *testing.T) {
	s := testScheduler(t)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	s.Seed("1-1-1", 1, 0, now.AddDate(0, 0, -2))
	s.Seed("1-1-2", 30, 5, now.AddDate(0, 0, -2))

	due := s.DueChallenges(now, 10)
	if len(due) != 1 {
		t.Fatalf("len(due) = %d, want 1", len(due))
	}
	if due[0].ID != "1-1-1" {
		t.Errorf("due[0] = %s, want 1-1-1", due[0].ID)
	}
}

func TestDueChallengesSkipsUnknownCatalogIDs(t *testing.T) {
	s := testScheduler(t)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	// A challenge removed from the course should drop out of the
	// queue rather than surface a broken review.
	s.Seed("9-9-9", 1, 0, now.AddDate(0, 0, -2))
	s.Seed("1-1-1", 1, 0, now.AddDate(0, 0, -2))

	due := s.DueChallenges(now, 10)
	if len(due) != 1 || due[0].ID != "1-1-1" {
		t.Errorf("due = %v, want only 1-1-1", due)
	}
}

func TestReviewStats(t *testing.T) {
	s := testScheduler(t)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	s.Seed("1-1-1", 1, 0, now.AddDate(0, 0, -2))  // due, learning
	s.Seed("1-1-2", 14, 4, now.AddDate(0, 0, -1)) // not due, mastered
	s.Seed("1-2-1", 2, 1, now)                    // not due, learning

	st := s.ReviewStats(now)
	if st.Due != 1 {
		t.Errorf("Due = %d, want 1", st.Due)
	}
	if st.Mastered != 1 {
		t.Errorf("Mastered = %d, want 1", st.Mastered)
	}
	if st.Learning != 2 {
		t.Errorf("Learning = %d, want 2", st.Learning)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := testScheduler(t)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	s.Seed("1-1-1", 2, 1, now)
	s.Seed("1-1-2", 0.5, 0, now)

	data := s.SnapshotData()
	restored := NewScheduler(data, course.Default(), DefaultPolicy())

	if restored.Len() != 2 {
		t.Fatalf("restored Len = %d, want 2", restored.Len())
	}
	ri := restored.Item("1-1-1")
	if ri == nil || ri.IntervalDays != 2 || ri.Streak != 1 {
		t.Errorf("restored item = %+v, want interval 2 streak 1", ri)
	}
}

func TestNewSchedulerSkipsCorruptTimestamps(t *testing.T) {
	data := map[string]*store.ReviewItemData{
		"1-1-1": {
			ID:           "1-1-1",
			LastReview:   "not-a-timestamp",
			NextReview:   "2025-03-10T12:00:00Z",
			IntervalDays: 2,
		},
		"1-1-2": {
			ID:           "1-1-2",
			LastReview:   "2025-03-08T12:00:00Z",
			NextReview:   "2025-03-10T12:00:00Z",
			IntervalDays: 2,
		},
	}

	s := NewScheduler(data, course.Default(), DefaultPolicy())
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1 (corrupt record skipped)", s.Len())
	}
	if s.Item("1-1-2") == nil {
		t.Error("valid record should survive load")
	}
}

func TestReset(t *testing.T) {
	s := testScheduler(t)
	s.Seed("1-1-1", 1, 0, time.Now())

	s.Reset()
	if s.Len() != 0 {
		t.Errorf("Len after Reset = %d, want 0", s.Len())
	}
}
