package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/diffuselabs/diffused/internal/ui/theme"
)

// ChoiceList is a single-answer choice selector for choice-based
// challenges. After submission it reveals the correct answer.
type ChoiceList struct {
	Prompt       string
	Choices      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

// NewChoiceList creates a choice selector.
func NewChoiceList(prompt string, choices []string, correctIndex int) ChoiceList {
	return ChoiceList{
		Prompt:       prompt,
		Choices:      choices,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Update handles keyboard navigation and selection. Input after
// submission is ignored so the reveal stays on screen.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Choices)-1 {
			c.Selected++
		}
	case "enter":
		c.Submitted = true
		c.ChosenIndex = c.Selected
	}

	return c, nil
}

// View renders the prompt and choices.
func (c ChoiceList) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Prompt) + "\n\n"

	for i, choice := range c.Choices {
		prefix := "  "
		if i == c.Selected && !c.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%c)  %s", prefix, 'a'+i, choice)

		switch {
		case c.Submitted && i == c.CorrectIndex:
			s += theme.Correct.Render(line) + "\n"
		case c.Submitted && i == c.ChosenIndex:
			s += theme.Incorrect.Render(line) + "\n"
		case c.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == c.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}

// IsCorrect reports whether the submitted answer was right.
func (c ChoiceList) IsCorrect() bool {
	return c.Submitted && c.ChosenIndex == c.CorrectIndex
}
