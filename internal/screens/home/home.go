package home

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/diffuselabs/diffused/internal/feedback"
	"github.com/diffuselabs/diffused/internal/progress"
	"github.com/diffuselabs/diffused/internal/router"
	"github.com/diffuselabs/diffused/internal/screen"
	"github.com/diffuselabs/diffused/internal/screens/coursemap"
	lessonscreen "github.com/diffuselabs/diffused/internal/screens/lesson"
	"github.com/diffuselabs/diffused/internal/screens/review"
	"github.com/diffuselabs/diffused/internal/screens/stats"
	"github.com/diffuselabs/diffused/internal/store"
	"github.com/diffuselabs/diffused/internal/ui/components"
	"github.com/diffuselabs/diffused/internal/ui/theme"
)

// confirmResetMsg asks the home screen to show the reset dialog.
type confirmResetMsg struct{}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu         components.Menu
	tracker      *progress.Tracker
	eventRepo    store.EventRepo
	feedbackSvc  *feedback.Service
	confirmReset bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(tracker *progress.Tracker, eventRepo store.EventRepo, feedbackSvc *feedback.Service) *HomeScreen {
	next, hasNext := tracker.NextLesson()
	due := tracker.Scheduler().ReviewStats(time.Now()).Due

	continueLabel := "CONTINUE LEARNING"
	continueDetail := ""
	if hasNext {
		continueDetail = fmt.Sprintf("%s: %s", next.ID, next.Title)
	} else {
		continueLabel = "COURSE COMPLETE"
	}

	reviewDetail := "nothing due"
	if due == 1 {
		reviewDetail = "1 due"
	} else if due > 1 {
		reviewDetail = fmt.Sprintf("%d due", due)
	}

	items := []components.MenuItem{
		{Label: continueLabel, Detail: continueDetail, Disabled: !hasNext, Action: func() tea.Cmd {
			return func() tea.Msg {
				// Resolve at press time: a lesson may have finished
				// since this menu was built.
				lesson, ok := tracker.NextLesson()
				if !ok {
					return nil
				}
				return router.PushScreenMsg{
					Screen: lessonscreen.New(tracker, feedbackSvc, lesson),
				}
			}
		}},
		{Label: "COURSE MAP", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: coursemap.New(tracker, feedbackSvc)}
			}
		}},
		{Label: "REVIEW", Detail: reviewDetail, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: review.New(tracker)}
			}
		}},
		{Label: "STATS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(tracker, eventRepo)}
			}
		}},
		{Label: "RESET PROGRESS", Action: func() tea.Cmd {
			return func() tea.Msg { return confirmResetMsg{} }
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:        components.NewMenu(items),
		tracker:     tracker,
		eventRepo:   eventRepo,
		feedbackSvc: feedbackSvc,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case confirmResetMsg:
		h.confirmReset = true
		return h, nil

	case tea.KeyMsg:
		if h.confirmReset {
			switch msg.String() {
			case "y", "Y":
				if err := h.tracker.Reset(context.Background()); err != nil {
					fmt.Fprintf(os.Stderr, "warning: reset failed: %v\n", err)
				}
				// Rebuild the menu so details reflect the blank slate.
				return New(h.tracker, h.eventRepo, h.feedbackSvc), nil
			case "n", "N", "esc":
				h.confirmReset = false
			}
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	if h.confirmReset {
		dialog := strings.Join([]string{
			lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Reset all progress?"),
			"",
			theme.Body.Render("This erases completions, reviews, and history."),
			"",
			theme.Hint.Render("y) reset    n) keep everything"),
		}, "\n")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, dialog)
	}

	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("diffused")
	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("a field guide to diffusion image models")
	sections = append(sections, title, subtitle, "")

	percent := h.tracker.PercentComplete()
	bar := components.NewProgressBar("Course", float64(percent)/100, true, 44)
	sections = append(sections, bar.View(), "")

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
