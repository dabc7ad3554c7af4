package coursemap

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/diffuselabs/diffused/internal/course"
	"github.com/diffuselabs/diffused/internal/feedback"
	"github.com/diffuselabs/diffused/internal/progress"
	"github.com/diffuselabs/diffused/internal/router"
	"github.com/diffuselabs/diffused/internal/screen"
	lessonscreen "github.com/diffuselabs/diffused/internal/screens/lesson"
	"github.com/diffuselabs/diffused/internal/ui/layout"
	"github.com/diffuselabs/diffused/internal/ui/theme"
)

// CourseMapScreen shows every module and lesson with completion state.
// Any lesson can be opened from here, including already-completed ones.
type CourseMapScreen struct {
	tracker     *progress.Tracker
	feedbackSvc *feedback.Service
	lessons     []course.Lesson
	cursor      int
}

var _ screen.Screen = (*CourseMapScreen)(nil)
var _ screen.KeyHintProvider = (*CourseMapScreen)(nil)

// New creates a new CourseMapScreen.
func New(tracker *progress.Tracker, feedbackSvc *feedback.Service) *CourseMapScreen {
	var lessons []course.Lesson
	for _, m := range course.Default().Modules() {
		lessons = append(lessons, m.Lessons...)
	}

	// Start the cursor on the next unfinished lesson.
	cursor := 0
	if next, ok := tracker.NextLesson(); ok {
		for i, l := range lessons {
			if l.ID == next.ID {
				cursor = i
				break
			}
		}
	}

	return &CourseMapScreen{
		tracker:     tracker,
		feedbackSvc: feedbackSvc,
		lessons:     lessons,
		cursor:      cursor,
	}
}

func (c *CourseMapScreen) Init() tea.Cmd {
	return nil
}

func (c *CourseMapScreen) Title() string {
	return "Course Map"
}

func (c *CourseMapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open lesson"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *CourseMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.cursor > 0 {
			c.cursor--
		}
	case "down", "j":
		if c.cursor < len(c.lessons)-1 {
			c.cursor++
		}
	case "enter":
		lesson := c.lessons[c.cursor]
		return c, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: lessonscreen.New(c.tracker, c.feedbackSvc, lesson),
			}
		}
	}

	return c, nil
}

func (c *CourseMapScreen) View(width, height int) string {
	var b strings.Builder
	now := time.Now()

	idx := 0
	for _, m := range course.Default().Modules() {
		header := fmt.Sprintf("Module %d  %s", m.ID, m.Title)
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render(header))
		b.WriteString("\n")

		for _, l := range m.Lessons {
			b.WriteString(c.renderLessonLine(l, idx == c.cursor, now))
			b.WriteString("\n")
			idx++
		}
		b.WriteString("\n")
	}

	return layout.Center(b.String(), width, height)
}

func (c *CourseMapScreen) renderLessonLine(l course.Lesson, selected bool, now time.Time) string {
	marker := "○"
	markerStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if c.tracker.IsLessonCompleted(l.ID) {
		marker = "●"
		markerStyle = markerStyle.Foreground(theme.Success)
	} else if c.tracker.LessonPercent(l.ID) > 0 {
		marker = "◐"
		markerStyle = markerStyle.Foreground(theme.Warning)
	}

	due := 0
	for _, ch := range l.AllChallenges() {
		if item := c.tracker.Scheduler().Item(ch.ID); item != nil && item.IsDue(now) {
			due++
		}
	}

	line := fmt.Sprintf("%s  %-6s %-38s %3d%%", markerStyle.Render(marker), l.ID, l.Title, c.tracker.LessonPercent(l.ID))
	if due > 0 {
		line += "  " + lipgloss.NewStyle().Foreground(theme.Warning).Render(fmt.Sprintf("↻%d", due))
	}

	if selected {
		return theme.Selected.Render("▸ " + line)
	}
	return theme.Unselected.Render("  " + line)
}
