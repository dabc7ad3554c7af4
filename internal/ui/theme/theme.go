package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette. Soft violet on a dark ground, echoing the denoising
// imagery the course teaches.
var (
	Primary   = lipgloss.Color("#B48EF6") // Violet
	Secondary = lipgloss.Color("#74C7EC") // Sky
	Accent    = lipgloss.Color("#F5A97F") // Peach
	Success   = lipgloss.Color("#A6E3A1") // Green
	Error     = lipgloss.Color("#F38BA8") // Rose
	Warning   = lipgloss.Color("#F9E2AF") // Sand
	Text      = lipgloss.Color("#CDD6F4") // Lavender white
	TextDim   = lipgloss.Color("#8A8FA6") // Gray
	BgDark    = lipgloss.Color("#161621") // Near black
	BgCard    = lipgloss.Color("#1E1E2E") // Dark panel
	Border    = lipgloss.Color("#313244") // Border gray
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Partial = lipgloss.NewStyle().
		Foreground(Warning).
		Bold(true)
)
