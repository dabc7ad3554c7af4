package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/diffuselabs/diffused/internal/progress"
	"github.com/diffuselabs/diffused/internal/ui/layout"
	"github.com/diffuselabs/diffused/internal/ui/theme"
)

func (s *LessonScreen) View(width, height int) string {
	switch s.phase {
	case phaseIntro:
		return s.renderIntro(width, height)
	case phaseEvaluating:
		return s.renderEvaluating(width, height)
	case phaseSelfAssess:
		return s.renderSelfAssess(width, height)
	case phaseReveal:
		return s.renderReveal(width, height)
	case phaseCelebration:
		return renderCelebration(width, height)
	case phaseSummary:
		return s.renderSummary(width, height)
	default:
		return s.renderChallenge(width, height)
	}
}

func (s *LessonScreen) renderIntro(width, height int) string {
	var sections []string
	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(s.lesson.ID),
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(s.lesson.Title),
		"",
		theme.Body.Width(min(width-8, 70)).Render(s.lesson.Summary),
		"",
		theme.Hint.Render(fmt.Sprintf("%d challenges", len(s.challenges))),
		"",
		theme.Hint.Render("press any key to start"),
	)
	return layout.Center(strings.Join(sections, "\n"), width, height)
}

// renderProgressLine shows position within the lesson.
func (s *LessonScreen) renderProgressLine() string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Challenge %d of %d", s.idx+1, len(s.challenges)))
}

func (s *LessonScreen) renderChallenge(width, height int) string {
	var sections []string
	sections = append(sections, s.renderProgressLine(), "")

	switch s.kind {
	case kindChoice:
		sections = append(sections, s.choices.View())
	case kindOrdering:
		sections = append(sections, s.order.View())
	case kindFreeText:
		prompt := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Width(min(width-8, 70)).
			Render(s.current().Prompt)
		sections = append(sections, prompt, "", s.input.View())
	}

	return layout.Center(strings.Join(sections, "\n"), width, height)
}

func (s *LessonScreen) renderEvaluating(width, height int) string {
	content := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("Reading your answer...")
	return layout.Center(content, width, height)
}

func (s *LessonScreen) renderSelfAssess(width, height int) string {
	ch := s.current()
	var sections []string

	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Compare with the model answer"),
		"",
		theme.Card.Width(min(width-8, 70)).Render(ch.ModelAnswer),
		"",
		theme.Hint.Render("How close were you?"),
		"",
		theme.Body.Render("  y) got it    p) partly    n) not yet"),
	)

	return layout.Center(strings.Join(sections, "\n"), width, height)
}

func (s *LessonScreen) renderReveal(width, height int) string {
	ch := s.current()
	var sections []string

	switch s.lastLevel {
	case progress.UnderstandingFull:
		sections = append(sections, theme.Correct.Render("Nailed it."))
	case progress.UnderstandingPartial:
		sections = append(sections, theme.Partial.Render("Getting there."))
	default:
		sections = append(sections, theme.Incorrect.Render("Not quite."))
	}
	sections = append(sections, "")

	switch s.kind {
	case kindChoice:
		sections = append(sections, s.choices.View())
	case kindOrdering:
		sections = append(sections, s.order.View())
	case kindFreeText:
		if s.feedback != nil && s.feedback.Comment != "" {
			sections = append(sections,
				theme.Card.Width(min(width-8, 70)).Render(s.feedback.Comment))
		}
	}

	if ch.Explanation != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render("Why"),
			lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Width(min(width-8, 70)).
				Render(ch.Explanation))
	}

	var assessment string
	switch s.lastLevel {
	case progress.UnderstandingFull:
		assessment = theme.Correct.Render("recorded as: solid")
	case progress.UnderstandingPartial:
		assessment = theme.Partial.Render("recorded as: shaky")
	default:
		assessment = theme.Incorrect.Render("recorded as: missed")
	}
	sections = append(sections, "", assessment,
		theme.Hint.Render("y/p/n to adjust, enter to continue"))

	return layout.Center(strings.Join(sections, "\n"), width, height)
}

func (s *LessonScreen) renderSummary(width, height int) string {
	var sections []string

	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Lesson complete!"),
		"",
		theme.Body.Render(fmt.Sprintf("%s  %s", s.lesson.ID, s.lesson.Title)),
		"",
	)

	sections = append(sections,
		theme.Correct.Render(fmt.Sprintf("  solid      %d", s.fullCount)),
		theme.Partial.Render(fmt.Sprintf("  shaky      %d", s.partialCount)),
		theme.Incorrect.Render(fmt.Sprintf("  missed     %d", s.noneCount)),
		"",
	)

	percent := s.tracker.PercentComplete()
	sections = append(sections,
		theme.Hint.Render(fmt.Sprintf("Course progress: %d%%", percent)),
		"",
		theme.Hint.Render("press enter to finish"),
	)

	return layout.Center(strings.Join(sections, "\n"), width, height)
}

const celebrationArt = `      ✦   ·  ✦
   ·   ╭─────────╮   ·
  ✦    │  ██ ██  │    ✦
       │   ███   │
   ·   │  ██ ██  │   ·
       ╰─────────╯
      ✦   ·   ✦`

func renderCelebration(width, height int) string {
	var sections []string
	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Accent).Render(celebrationArt),
		"",
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Course complete!"),
		"",
		theme.Body.Render("Every challenge in the course is done."),
		theme.Body.Render("Reviews will keep what you learned from fading."),
		"",
		theme.Hint.Render("press any key to continue"),
	)
	return layout.Center(strings.Join(sections, "\n"), width, height)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
