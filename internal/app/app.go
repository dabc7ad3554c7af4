package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/diffuselabs/diffused/internal/course"
	"github.com/diffuselabs/diffused/internal/feedback"
	"github.com/diffuselabs/diffused/internal/llm"
	"github.com/diffuselabs/diffused/internal/progress"
	"github.com/diffuselabs/diffused/internal/router"
	"github.com/diffuselabs/diffused/internal/screen"
	"github.com/diffuselabs/diffused/internal/screens/home"
	"github.com/diffuselabs/diffused/internal/screens/welcome"
	"github.com/diffuselabs/diffused/internal/store"
	"github.com/diffuselabs/diffused/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	tracker *progress.Tracker
	width   int
	height  int
}

// Options configures the application.
type Options struct {
	DBPath string
}

// newAppModel builds the root model around an initialized tracker.
func newAppModel(tracker *progress.Tracker, eventRepo store.EventRepo, feedbackSvc *feedback.Service) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(tracker, eventRepo, feedbackSvc)
	}

	// First run gets the intro animation; everyone else lands on home.
	var initial screen.Screen
	if tracker.CompletedChallengeCount() == 0 {
		initial = welcome.New(homeFactory)
	} else {
		initial = homeFactory()
	}

	return AppModel{
		router:  router.New(initial),
		tracker: tracker,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	status := layout.HeaderStatus{
		PercentComplete: m.tracker.PercentComplete(),
		ReviewsDue:      m.tracker.Scheduler().ReviewStats(time.Now()).Due,
	}
	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok && hp.KeyHints() != nil {
		footerHints = hp.KeyHints()
		footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run opens the store, restores progress, and starts the TUI.
func Run(opts Options) error {
	tracker, st, eventRepo, feedbackSvc, err := Bootstrap(opts)
	if err != nil {
		return err
	}
	defer st.Close()

	p := tea.NewProgram(newAppModel(tracker, eventRepo, feedbackSvc))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

// Bootstrap wires the storage and progress layers. Shared by the TUI
// and the non-interactive subcommands.
func Bootstrap(opts Options) (*progress.Tracker, *store.Store, store.EventRepo, *feedback.Service, error) {
	dbPath := opts.DBPath
	if dbPath == "" {
		var err error
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("resolving database path: %w", err)
		}
	}
	if err := store.EnsureDir(dbPath); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("creating data directory: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("opening store: %w", err)
	}

	snapRepo := st.SnapshotRepo()
	eventRepo := st.EventRepo()

	ctx := context.Background()
	var snapData *store.SnapshotData
	if snap, err := snapRepo.Latest(ctx); err == nil && snap != nil {
		snapData = &snap.Data
	}

	tracker := progress.NewTracker(snapData, course.Default(), snapRepo, eventRepo)

	// Challenge feedback is optional: no API key means self-assessment.
	var feedbackSvc *feedback.Service
	if cfg, ok := llm.DiscoverConfig(); ok {
		if provider, err := llm.NewProvider(ctx, cfg, eventRepo); err == nil {
			feedbackSvc = feedback.NewService(provider)
		} else {
			fmt.Fprintf(os.Stderr, "warning: LLM feedback disabled: %v\n", err)
		}
	}

	return tracker, st, eventRepo, feedbackSvc, nil
}
