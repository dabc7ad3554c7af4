package review

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/diffuselabs/diffused/internal/course"
	"github.com/diffuselabs/diffused/internal/progress"
	"github.com/diffuselabs/diffused/internal/router"
	"github.com/diffuselabs/diffused/internal/screen"
	"github.com/diffuselabs/diffused/internal/ui/components"
	"github.com/diffuselabs/diffused/internal/ui/layout"
	"github.com/diffuselabs/diffused/internal/ui/theme"
)

type phase int

const (
	phaseAnswering phase = iota
	phaseRecall
	phaseAssess
	phaseReveal
	phaseSummary
	phaseEmpty
)

type challengeKind int

const (
	kindChoice challengeKind = iota
	kindOrdering
	kindFreeRecall
)

// ReviewScreen serves the due review queue, weakest understanding
// first, and reschedules each challenge from the outcome.
type ReviewScreen struct {
	tracker *progress.Tracker
	queue   []course.Challenge

	idx         int
	phase       phase
	kind        challengeKind
	lastCorrect bool

	choices components.ChoiceList
	order   components.OrderList

	correctCount int
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates a ReviewScreen over the currently due challenges.
func New(tracker *progress.Tracker) *ReviewScreen {
	s := &ReviewScreen{
		tracker: tracker,
		queue:   tracker.Scheduler().DueChallenges(time.Now(), 0),
	}
	if len(s.queue) == 0 {
		s.phase = phaseEmpty
		return s
	}
	s.setupChallenge()
	return s
}

func (s *ReviewScreen) Init() tea.Cmd {
	return nil
}

func (s *ReviewScreen) Title() string {
	return "Review"
}

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseAnswering:
		if s.kind == kindOrdering {
			return []layout.KeyHint{
				{Key: "Space", Description: "Grab/drop"},
				{Key: "↑↓", Description: "Move"},
				{Key: "Enter", Description: "Submit"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Select"},
			{Key: "Enter", Description: "Submit"},
		}
	case phaseRecall:
		return []layout.KeyHint{
			{Key: "Space", Description: "Reveal answer"},
		}
	case phaseAssess:
		return []layout.KeyHint{
			{Key: "Y", Description: "Remembered"},
			{Key: "N", Description: "Forgot"},
		}
	default:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
}

func (s *ReviewScreen) setupChallenge() {
	ch := s.current()
	switch {
	case ch.IsChoiceBased():
		s.kind = kindChoice
		s.choices = components.NewChoiceList(ch.Prompt, ch.Choices, ch.CorrectIdx)
	case ch.Type == course.TypeOrdering:
		s.kind = kindOrdering
		s.order = components.NewOrderList(ch.Prompt, ch.Steps)
	default:
		s.kind = kindFreeRecall
		s.phase = phaseRecall
	}
}

func (s *ReviewScreen) current() course.Challenge {
	return s.queue[s.idx]
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch s.phase {
	case phaseEmpty:
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case phaseAnswering:
		return s.handleAnswerKey(kmsg)

	case phaseRecall:
		if kmsg.String() == "space" || kmsg.String() == " " {
			s.phase = phaseAssess
		}
		return s, nil

	case phaseAssess:
		switch kmsg.String() {
		case "y", "Y":
			s.finishChallenge(true)
		case "n", "N":
			s.finishChallenge(false)
		}
		return s, nil

	case phaseReveal:
		return s.advance()

	case phaseSummary:
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *ReviewScreen) handleAnswerKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.kind {
	case kindChoice:
		var cmd tea.Cmd
		s.choices, cmd = s.choices.Update(msg)
		if s.choices.Submitted {
			s.finishChallenge(s.choices.IsCorrect())
		}
		return s, cmd
	case kindOrdering:
		var cmd tea.Cmd
		s.order, cmd = s.order.Update(msg)
		if s.order.Submitted {
			s.finishChallenge(s.order.IsCorrect())
		}
		return s, cmd
	}
	return s, nil
}

// finishChallenge reschedules the challenge and shows the outcome.
func (s *ReviewScreen) finishChallenge(correct bool) {
	s.lastCorrect = correct
	if correct {
		s.correctCount++
	}
	s.tracker.RecordReview(context.Background(), s.current().ID, correct, time.Now())
	s.phase = phaseReveal
}

func (s *ReviewScreen) advance() (screen.Screen, tea.Cmd) {
	if s.idx+1 < len(s.queue) {
		s.idx++
		s.phase = phaseAnswering
		s.setupChallenge()
		return s, nil
	}
	s.phase = phaseSummary
	return s, nil
}

func (s *ReviewScreen) View(width, height int) string {
	switch s.phase {
	case phaseEmpty:
		return s.renderEmpty(width, height)
	case phaseRecall:
		return s.renderRecall(width, height)
	case phaseAssess:
		return s.renderAssess(width, height)
	case phaseReveal:
		return s.renderReveal(width, height)
	case phaseSummary:
		return s.renderSummary(width, height)
	default:
		return s.renderChallenge(width, height)
	}
}

func (s *ReviewScreen) renderPosition() string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Review %d of %d", s.idx+1, len(s.queue)))
}

func (s *ReviewScreen) renderEmpty(width, height int) string {
	var next string
	stats := s.tracker.Scheduler().ReviewStats(time.Now())
	if stats.Learning+stats.Mastered > 0 {
		next = "Nothing is due right now. Come back later."
	} else {
		next = "Complete some challenges first to build a review queue."
	}
	content := strings.Join([]string{
		lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("All caught up!"),
		"",
		theme.Body.Render(next),
		"",
		theme.Hint.Render("press any key to go back"),
	}, "\n")
	return layout.Center(content, width, height)
}

func (s *ReviewScreen) renderChallenge(width, height int) string {
	var sections []string
	sections = append(sections, s.renderPosition(), "")
	switch s.kind {
	case kindChoice:
		sections = append(sections, s.choices.View())
	case kindOrdering:
		sections = append(sections, s.order.View())
	}
	return layout.Center(strings.Join(sections, "\n"), width, height)
}

func (s *ReviewScreen) renderRecall(width, height int) string {
	ch := s.current()
	content := strings.Join([]string{
		s.renderPosition(),
		"",
		lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Width(minInt(width-8, 70)).
			Render(ch.Prompt),
		"",
		theme.Hint.Render("recall the answer, then press space to check"),
	}, "\n")
	return layout.Center(content, width, height)
}

func (s *ReviewScreen) renderAssess(width, height int) string {
	ch := s.current()
	content := strings.Join([]string{
		s.renderPosition(),
		"",
		theme.Card.Width(minInt(width-8, 70)).Render(ch.ModelAnswer),
		"",
		theme.Hint.Render("did you remember it?  y) yes   n) no"),
	}, "\n")
	return layout.Center(content, width, height)
}

func (s *ReviewScreen) renderReveal(width, height int) string {
	var sections []string
	if s.lastCorrect {
		item := s.tracker.Scheduler().Item(s.current().ID)
		msg := "Correct."
		if item != nil {
			msg = fmt.Sprintf("Correct. Next review in %d days.", item.DaysUntilReview(time.Now()))
		}
		sections = append(sections, theme.Correct.Render(msg))
	} else {
		sections = append(sections, theme.Incorrect.Render("Missed. Back to a 1-day interval."))
	}

	if s.kind == kindChoice {
		sections = append(sections, "", s.choices.View())
	} else if s.kind == kindOrdering {
		sections = append(sections, "", s.order.View())
	}

	if exp := s.current().Explanation; exp != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Width(minInt(width-8, 70)).
				Render(exp))
	}

	sections = append(sections, "", theme.Hint.Render("press any key to continue"))
	return layout.Center(strings.Join(sections, "\n"), width, height)
}

func (s *ReviewScreen) renderSummary(width, height int) string {
	stats := s.tracker.Scheduler().ReviewStats(time.Now())
	content := strings.Join([]string{
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Review done!"),
		"",
		theme.Body.Render(fmt.Sprintf("Remembered %d of %d", s.correctCount, len(s.queue))),
		"",
		theme.Hint.Render(fmt.Sprintf("still due: %d    mastered: %d    learning: %d",
			stats.Due, stats.Mastered, stats.Learning)),
		"",
		theme.Hint.Render("press any key to finish"),
	}, "\n")
	return layout.Center(content, width, height)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
