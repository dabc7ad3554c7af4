package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/diffuselabs/diffused/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	r := New(&stubScreen{title: "first"})

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("Depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("Active = %q, want second", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("Init() should run on pushed screen")
	}
}

func TestPushScreenMsg(t *testing.T) {
	r := New(&stubScreen{title: "first"})

	s2 := &stubScreen{title: "second"}
	r.Update(PushScreenMsg{Screen: s2})

	if r.Depth() != 2 || r.Active().Title() != "second" {
		t.Errorf("Depth = %d Active = %q, want 2 and second", r.Depth(), r.Active().Title())
	}
}

func TestPop(t *testing.T) {
	r := New(&stubScreen{title: "first"})
	r.Push(&stubScreen{title: "second"})

	r.Update(PopScreenMsg{})

	if r.Depth() != 1 {
		t.Errorf("Depth = %d, want 1", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("Active = %q, want first", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "first"})

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("Depth = %d after pop at bottom, want 1", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	r := New(&stubScreen{title: "first"})
	r.Push(&stubScreen{title: "second"})

	s3 := &stubScreen{title: "third"}
	r.Update(ReplaceScreenMsg{Screen: s3})

	if r.Depth() != 2 {
		t.Errorf("Depth = %d after replace, want 2", r.Depth())
	}
	if r.Active().Title() != "third" {
		t.Errorf("Active = %q, want third", r.Active().Title())
	}
	if !s3.initRan {
		t.Error("Init() should run on replacement screen")
	}
}
