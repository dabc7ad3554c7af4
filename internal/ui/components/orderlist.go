package components

import (
	"fmt"
	"math/rand/v2"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/diffuselabs/diffused/internal/ui/theme"
)

// OrderList lets the learner arrange shuffled steps into the correct
// sequence. Space grabs or drops the highlighted step; while grabbed,
// moving the cursor drags the step with it.
type OrderList struct {
	Prompt    string
	steps     []string // correct order
	order     []int    // current arrangement, indices into steps
	Cursor    int
	Grabbed   bool
	Submitted bool
}

// NewOrderList creates an ordering challenge from steps given in correct
// order. The presented arrangement is shuffled, reshuffling once if the
// shuffle happened to be the answer.
func NewOrderList(prompt string, steps []string) OrderList {
	order := rand.Perm(len(steps))
	if len(steps) > 1 && isSorted(order) {
		order[0], order[1] = order[1], order[0]
	}
	return OrderList{
		Prompt: prompt,
		steps:  steps,
		order:  order,
	}
}

func isSorted(order []int) bool {
	for i, v := range order {
		if v != i {
			return false
		}
	}
	return true
}

// Update handles cursor movement, grabbing and submission.
func (o OrderList) Update(msg tea.Msg) (OrderList, tea.Cmd) {
	if o.Submitted {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			if o.Grabbed {
				o.order[o.Cursor], o.order[o.Cursor-1] = o.order[o.Cursor-1], o.order[o.Cursor]
			}
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.order)-1 {
			if o.Grabbed {
				o.order[o.Cursor], o.order[o.Cursor+1] = o.order[o.Cursor+1], o.order[o.Cursor]
			}
			o.Cursor++
		}
	case "space", " ":
		o.Grabbed = !o.Grabbed
	case "enter":
		if !o.Grabbed {
			o.Submitted = true
		}
	}

	return o, nil
}

// View renders the prompt and the current arrangement.
func (o OrderList) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(o.Prompt) + "\n\n"

	for pos, stepIdx := range o.order {
		prefix := "  "
		if pos == o.Cursor && !o.Submitted {
			if o.Grabbed {
				prefix = "◆ "
			} else {
				prefix = "▸ "
			}
		}

		line := fmt.Sprintf("%s%d. %s", prefix, pos+1, o.steps[stepIdx])

		switch {
		case o.Submitted && stepIdx == pos:
			s += theme.Correct.Render(line) + "\n"
		case o.Submitted:
			s += theme.Incorrect.Render(line) + "\n"
		case pos == o.Cursor && o.Grabbed:
			s += lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(line) + "\n"
		case pos == o.Cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	if o.Submitted && !o.IsCorrect() {
		s += "\n" + theme.Hint.Render("Correct order:") + "\n"
		for i, step := range o.steps {
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  %d. %s", i+1, step)) + "\n"
		}
	}

	return s
}

// IsCorrect reports whether the submitted arrangement matches the
// correct order.
func (o OrderList) IsCorrect() bool {
	return o.Submitted && isSorted(o.order)
}
