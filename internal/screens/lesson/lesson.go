package lesson

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/diffuselabs/diffused/internal/course"
	"github.com/diffuselabs/diffused/internal/feedback"
	"github.com/diffuselabs/diffused/internal/progress"
	"github.com/diffuselabs/diffused/internal/router"
	"github.com/diffuselabs/diffused/internal/screen"
	"github.com/diffuselabs/diffused/internal/ui/components"
	"github.com/diffuselabs/diffused/internal/ui/layout"
)

type phase int

const (
	phaseIntro phase = iota
	phaseAnswering
	phaseEvaluating
	phaseSelfAssess
	phaseReveal
	phaseCelebration
	phaseSummary
)

type challengeKind int

const (
	kindChoice challengeKind = iota
	kindOrdering
	kindFreeText
)

// LessonScreen runs a lesson's challenges in sequence and records the
// outcome of each one.
type LessonScreen struct {
	tracker     *progress.Tracker
	feedbackSvc *feedback.Service
	lesson      course.Lesson
	challenges  []course.Challenge

	idx   int
	phase phase
	kind  challengeKind

	choices components.ChoiceList
	order   components.OrderList
	input   components.AnswerInput

	feedback     *feedback.Feedback
	lastLevel    progress.UnderstandingLevel
	fullCount    int
	partialCount int
	noneCount    int
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a LessonScreen for the given lesson.
func New(tracker *progress.Tracker, feedbackSvc *feedback.Service, l course.Lesson) *LessonScreen {
	s := &LessonScreen{
		tracker:     tracker,
		feedbackSvc: feedbackSvc,
		lesson:      l,
		challenges:  l.AllChallenges(),
	}
	s.setupChallenge()
	return s
}

func (s *LessonScreen) Init() tea.Cmd {
	return nil
}

func (s *LessonScreen) Title() string {
	return s.lesson.Title
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseIntro:
		return []layout.KeyHint{
			{Key: "any key", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseReveal:
		return []layout.KeyHint{
			{Key: "Y/P/N", Description: "Adjust assessment"},
			{Key: "Enter", Description: "Continue"},
		}
	case phaseAnswering:
		if s.kind == kindFreeText {
			return []layout.KeyHint{
				{Key: "Ctrl+D", Description: "Submit"},
				{Key: "Esc", Description: "Leave lesson"},
			}
		}
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
	case phaseSelfAssess:
		return []layout.KeyHint{
			{Key: "Y", Description: "Got it"},
			{Key: "P", Description: "Partly"},
			{Key: "N", Description: "Not yet"},
		}
	case phaseSummary:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
		}
	default:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
}

// setupChallenge prepares the input component for the current challenge.
func (s *LessonScreen) setupChallenge() {
	ch := s.current()
	s.feedback = nil
	switch {
	case ch.IsChoiceBased():
		s.kind = kindChoice
		s.choices = components.NewChoiceList(ch.Prompt, ch.Choices, ch.CorrectIdx)
	case ch.Type == course.TypeOrdering:
		s.kind = kindOrdering
		s.order = components.NewOrderList(ch.Prompt, ch.Steps)
	default:
		s.kind = kindFreeText
		s.input = components.NewAnswerInput("Explain in your own words...", 60)
	}
}

func (s *LessonScreen) current() course.Challenge {
	return s.challenges[s.idx]
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackReadyMsg:
		return s.handleFeedback(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseAnswering && s.kind == kindFreeText {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *LessonScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseIntro:
		s.phase = phaseAnswering
		if s.kind == kindFreeText {
			return s, s.input.Init()
		}
		return s, nil

	case phaseAnswering:
		return s.handleAnswerKey(msg)

	case phaseEvaluating:
		return s, nil

	case phaseSelfAssess:
		switch msg.String() {
		case "y", "Y":
			s.lastLevel = progress.UnderstandingFull
			s.phase = phaseReveal
		case "p", "P":
			s.lastLevel = progress.UnderstandingPartial
			s.phase = phaseReveal
		case "n", "N":
			s.lastLevel = progress.UnderstandingNone
			s.phase = phaseReveal
		}
		return s, nil

	case phaseReveal:
		// The learner can override the suggested assessment before
		// committing it.
		switch msg.String() {
		case "y", "Y":
			s.lastLevel = progress.UnderstandingFull
			return s, nil
		case "p", "P":
			s.lastLevel = progress.UnderstandingPartial
			return s, nil
		case "n", "N":
			s.lastLevel = progress.UnderstandingNone
			return s, nil
		}
		return s.commitChallenge()

	case phaseCelebration:
		s.phase = phaseSummary
		return s, nil

	case phaseSummary:
		if msg.String() == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}
	return s, nil
}

func (s *LessonScreen) handleAnswerKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.kind {
	case kindChoice:
		var cmd tea.Cmd
		s.choices, cmd = s.choices.Update(msg)
		if s.choices.Submitted {
			s.lastLevel = progress.UnderstandingNone
			if s.choices.IsCorrect() {
				s.lastLevel = progress.UnderstandingFull
			}
			s.phase = phaseReveal
		}
		return s, cmd

	case kindOrdering:
		var cmd tea.Cmd
		s.order, cmd = s.order.Update(msg)
		if s.order.Submitted {
			s.lastLevel = progress.UnderstandingNone
			if s.order.IsCorrect() {
				s.lastLevel = progress.UnderstandingFull
			}
			s.phase = phaseReveal
		}
		return s, cmd

	case kindFreeText:
		if msg.String() == "ctrl+d" {
			answer := strings.TrimSpace(s.input.Value())
			if answer == "" {
				return s, nil
			}
			s.input.Submit()
			if s.feedbackSvc.Enabled() {
				s.phase = phaseEvaluating
				return s, s.evaluate(answer)
			}
			s.phase = phaseSelfAssess
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// evaluate asks the tutor for an assessment of a free-text answer.
func (s *LessonScreen) evaluate(answer string) tea.Cmd {
	ch := s.current()
	svc := s.feedbackSvc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
		defer cancel()
		fb, err := svc.Evaluate(ctx, ch, answer)
		return feedbackReadyMsg{Feedback: fb, Err: err}
	}
}

func (s *LessonScreen) handleFeedback(msg feedbackReadyMsg) (screen.Screen, tea.Cmd) {
	if s.phase != phaseEvaluating {
		return s, nil
	}
	if msg.Err != nil || msg.Feedback == nil {
		// Tutor unreachable: fall back to self-assessment.
		s.phase = phaseSelfAssess
		return s, nil
	}

	s.feedback = msg.Feedback
	s.lastLevel = progress.UnderstandingLevel(msg.Feedback.Assessment)
	if !s.lastLevel.Valid() {
		s.lastLevel = progress.UnderstandingPartial
	}
	s.phase = phaseReveal
	return s, nil
}

// commitChallenge records the (possibly adjusted) assessment and moves
// to the next challenge or the lesson summary.
func (s *LessonScreen) commitChallenge() (screen.Screen, tea.Cmd) {
	switch s.lastLevel {
	case progress.UnderstandingFull:
		s.fullCount++
	case progress.UnderstandingPartial:
		s.partialCount++
	default:
		s.noneCount++
	}
	_ = s.tracker.RecordChallenge(context.Background(), s.current().ID, s.lastLevel, time.Now())

	if s.idx+1 < len(s.challenges) {
		s.idx++
		s.setupChallenge()
		s.phase = phaseAnswering
		if s.kind == kindFreeText {
			return s, s.input.Init()
		}
		return s, nil
	}

	s.tracker.RecordLesson(context.Background(), s.lesson.ID, time.Now())

	if s.tracker.IsCourseComplete() && !s.tracker.CelebrationShown() {
		s.tracker.MarkCelebrationShown(context.Background())
		s.phase = phaseCelebration
		return s, nil
	}

	s.phase = phaseSummary
	return s, nil
}
