package course

import (
	"strings"
	"testing"
)

func TestDefault_EmbeddedCatalogIsValid(t *testing.T) {
	c := Default()
	if len(c.Modules()) == 0 {
		t.Fatal("expected at least one module")
	}
	if c.TotalChallengeCount() == 0 {
		t.Fatal("expected a nonzero challenge count")
	}
}

func TestTotalChallengeCount_IncludesTransfers(t *testing.T) {
	c := Default()

	var want int
	for _, m := range c.Modules() {
		for _, l := range m.Lessons {
			want += len(l.Main)
			if l.Transfer != nil {
				want++
			}
		}
	}

	if got := c.TotalChallengeCount(); got != want {
		t.Errorf("TotalChallengeCount() = %d, want %d", got, want)
	}
}

func TestResolve_TransferChallenge(t *testing.T) {
	c := Default()

	found := false
	for _, m := range c.Modules() {
		for _, l := range m.Lessons {
			if l.Transfer == nil {
				continue
			}
			found = true
			ch, ok := c.Resolve(l.Transfer.ID)
			if !ok {
				t.Errorf("transfer challenge %q not resolvable", l.Transfer.ID)
			}
			if ch.ID != l.Transfer.ID {
				t.Errorf("Resolve(%q) returned id %q", l.Transfer.ID, ch.ID)
			}
		}
	}
	if !found {
		t.Fatal("catalog has no transfer challenges to exercise")
	}
}

func TestResolve_UnknownID(t *testing.T) {
	c := Default()
	if _, ok := c.Resolve("99-99-99"); ok {
		t.Error("expected unknown challenge id to not resolve")
	}
}

func TestModules_AscendingOrder(t *testing.T) {
	c := Default()
	mods := c.Modules()
	for i := 1; i < len(mods); i++ {
		if mods[i].ID <= mods[i-1].ID {
			t.Errorf("modules not in ascending id order: %d before %d", mods[i-1].ID, mods[i].ID)
		}
	}
	for _, m := range mods {
		for i := 1; i < len(m.Lessons); i++ {
			if m.Lessons[i].Number <= m.Lessons[i-1].Number {
				t.Errorf("module %d lessons not in ascending order", m.ID)
			}
		}
	}
}

func TestLessonOf_MapsEveryChallenge(t *testing.T) {
	c := Default()
	for _, m := range c.Modules() {
		for _, l := range m.Lessons {
			for _, ch := range l.AllChallenges() {
				owner, ok := c.LessonOf(ch.ID)
				if !ok || owner != l.ID {
					t.Errorf("LessonOf(%q) = %q, %v; want %q, true", ch.ID, owner, ok, l.ID)
				}
			}
		}
	}
}

func TestParse_RejectsDuplicateChallengeIDs(t *testing.T) {
	raw := []byte(`{"modules":[{"id":1,"title":"M","lessons":[
		{"id":"1-1","module":1,"number":1,"title":"L","summary":"s","challenges":[
			{"id":"1-1-1","type":"recall","prompt":"p","choices":["a","b"],"correctIndex":0},
			{"id":"1-1-1","type":"recall","prompt":"p","choices":["a","b"],"correctIndex":0}
		]}
	]}]}`)

	_, err := Parse(raw)
	if err == nil {
		t.Fatal("expected error for duplicate challenge ids")
	}
	if !strings.Contains(err.Error(), "duplicate challenge id") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParse_RejectsOutOfRangeCorrectIndex(t *testing.T) {
	raw := []byte(`{"modules":[{"id":1,"title":"M","lessons":[
		{"id":"1-1","module":1,"number":1,"title":"L","summary":"s","challenges":[
			{"id":"1-1-1","type":"recall","prompt":"p","choices":["a","b"],"correctIndex":5}
		]}
	]}]}`)

	_, err := Parse(raw)
	if err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Fatalf("expected out-of-range error, got %v", err)
	}
}

func TestParse_RejectsMismatchedLessonID(t *testing.T) {
	raw := []byte(`{"modules":[{"id":1,"title":"M","lessons":[
		{"id":"2-1","module":1,"number":1,"title":"L","summary":"s","challenges":[
			{"id":"2-1-1","type":"recall","prompt":"p","choices":["a","b"],"correctIndex":0}
		]}
	]}]}`)

	_, err := Parse(raw)
	if err == nil {
		t.Fatal("expected error for lesson id not matching module/number")
	}
}

func TestParse_RejectsExplanationWithoutModelAnswer(t *testing.T) {
	raw := []byte(`{"modules":[{"id":1,"title":"M","lessons":[
		{"id":"1-1","module":1,"number":1,"title":"L","summary":"s","challenges":[
			{"id":"1-1-1","type":"explanation","prompt":"p"}
		]}
	]}]}`)

	_, err := Parse(raw)
	if err == nil || !strings.Contains(err.Error(), "model answer") {
		t.Fatalf("expected model-answer error, got %v", err)
	}
}

func TestParse_SchemaRejectsUnknownType(t *testing.T) {
	raw := []byte(`{"modules":[{"id":1,"title":"M","lessons":[
		{"id":"1-1","module":1,"number":1,"title":"L","summary":"s","challenges":[
			{"id":"1-1-1","type":"essay","prompt":"p"}
		]}
	]}]}`)

	_, err := Parse(raw)
	if err == nil {
		t.Fatal("expected schema validation error for unknown challenge type")
	}
}

func TestAllChallenges_TransferLast(t *testing.T) {
	tr := &Challenge{ID: "1-1-t", Type: TypeExplanation, Prompt: "p", ModelAnswer: "m"}
	l := Lesson{
		ID: "1-1", Module: 1, Number: 1,
		Main:     []Challenge{{ID: "1-1-1"}, {ID: "1-1-2"}},
		Transfer: tr,
	}

	all := l.AllChallenges()
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	if all[2].ID != "1-1-t" {
		t.Errorf("transfer not last: %v", all[2].ID)
	}
	if l.ChallengeCount() != 3 {
		t.Errorf("ChallengeCount() = %d, want 3", l.ChallengeCount())
	}
}
