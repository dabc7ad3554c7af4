package stats

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
	"github.com/diffuselabs/diffused/internal/store"
	"github.com/diffuselabs/diffused/internal/ui/components"
	"github.com/diffuselabs/diffused/internal/ui/layout"
	"github.com/diffuselabs/diffused/internal/ui/theme"
)

// accuracyMsg carries the lifetime review accuracy from the event log.
type accuracyMsg struct {
	Correct int
	Total   int
	Err     error
}

// historyMsg carries the most recent challenge completions.
type historyMsg struct {
	Events []store.ChallengeEventRecord
	Err    error
}

const historyLimit = 6

// StatsScreen shows course progress, understanding, and the review
// pipeline.
type StatsScreen struct {
	tracker   *progress.Tracker
	eventRepo store.EventRepo

	accuracyLoaded bool
	correct        int
	total          int
	history        []store.ChallengeEventRecord
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(tracker *progress.Tracker, eventRepo store.EventRepo) *StatsScreen {
	return &StatsScreen{tracker: tracker, eventRepo: eventRepo}
}

func (s *StatsScreen) Init() tea.Cmd {
	if s.eventRepo == nil {
		return nil
	}
	repo := s.eventRepo
	return tea.Batch(
		func() tea.Msg {
			correct, total, err := repo.ReviewAccuracy(context.Background())
			return accuracyMsg{Correct: correct, Total: total, Err: err}
		},
		func() tea.Msg {
			events, err := repo.QueryChallengeEvents(context.Background(), store.QueryOpts{Limit: historyLimit})
			return historyMsg{Events: events, Err: err}
		},
	)
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case accuracyMsg:
		if msg.Err == nil {
			s.accuracyLoaded = true
			s.correct = msg.Correct
			s.total = msg.Total
		}
		return s, nil
	case historyMsg:
		if msg.Err == nil {
			s.history = msg.Events
		}
		return s, nil
	case tea.KeyMsg:
		if msg.String() == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	var sections []string

	percent := s.tracker.PercentComplete()
	bar := components.NewProgressBar("Course", float64(percent)/100, true, 50)
	sections = append(sections, bar.View(), "")

	for _, m := range course.Default().Modules() {
		sections = append(sections, s.renderModuleLine(m))
	}
	sections = append(sections, "")

	score := s.tracker.Score()
	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Understanding"),
		theme.Correct.Render(fmt.Sprintf("  solid    %d", score.Full)),
		theme.Partial.Render(fmt.Sprintf("  shaky    %d", score.Partial)),
		theme.Incorrect.Render(fmt.Sprintf("  missed   %d", score.None)),
		"",
	)

	rs := s.tracker.Scheduler().ReviewStats(time.Now())
	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Reviews"),
		theme.Body.Render(fmt.Sprintf("  due now    %d", rs.Due)),
		theme.Body.Render(fmt.Sprintf("  mastered   %d", rs.Mastered)),
		theme.Body.Render(fmt.Sprintf("  learning   %d", rs.Learning)),
	)

	if s.accuracyLoaded && s.total > 0 {
		pct := 100 * s.correct / s.total
		sections = append(sections,
			theme.Body.Render(fmt.Sprintf("  accuracy   %d%% (%d/%d)", pct, s.correct, s.total)))
	}

	if len(s.history) > 0 {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Recent activity"))
		for _, ev := range s.history {
			sections = append(sections, s.renderHistoryLine(ev))
		}
	}

	return layout.Center(strings.Join(sections, "\n"), width, height)
}

func (s *StatsScreen) renderHistoryLine(ev store.ChallengeEventRecord) string {
	style := theme.Incorrect
	switch progress.UnderstandingLevel(ev.Understanding) {
	case progress.UnderstandingFull:
		style = theme.Correct
	case progress.UnderstandingPartial:
		style = theme.Partial
	}
	return theme.Body.Render(fmt.Sprintf("  %s  %-7s ", ev.Timestamp.Format("Jan _2 15:04"), ev.ChallengeID)) +
		style.Render(ev.Understanding)
}

func (s *StatsScreen) renderModuleLine(m course.Module) string {
	done := 0
	total := 0
	for _, l := range m.Lessons {
		total += l.ChallengeCount()
		for _, ch := range l.AllChallenges() {
			if s.tracker.IsChallengeCompleted(ch.ID) {
				done++
			}
		}
	}
	pct := 0.0
	if total > 0 {
		pct = float64(done) / float64(total)
	}
	bar := components.NewProgressBar(fmt.Sprintf("Module %d", m.ID), pct, true, 50)
	return bar.View()
}
