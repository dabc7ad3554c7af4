package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/diffuselabs/diffused/internal/ui/theme"
)

// AnswerInput is a multi-line input for explanation answers.
type AnswerInput struct {
	Model     textarea.Model
	submitted bool
}

// NewAnswerInput creates a styled free-text answer box.
func NewAnswerInput(placeholder string, width int) AnswerInput {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.SetWidth(width)
	ta.SetHeight(4)
	ta.CharLimit = 600
	ta.Focus()

	return AnswerInput{Model: ta}
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update handles messages. Input is frozen once submitted.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if a.submitted {
		return a, nil
	}
	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the input.
func (a AnswerInput) View() string {
	if a.submitted {
		return theme.Body.Render(a.Model.Value())
	}
	return a.Model.View()
}

// Value returns the current input text.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// Submit freezes the input.
func (a *AnswerInput) Submit() {
	a.submitted = true
	a.Model.Blur()
}

// Submitted reports whether the input has been frozen.
func (a AnswerInput) Submitted() bool {
	return a.submitted
}
