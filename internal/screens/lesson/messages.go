package lesson

import "github.com/diffuselabs/diffused/internal/feedback"

// feedbackReadyMsg carries the result of an async answer evaluation.
type feedbackReadyMsg struct {
	Feedback *feedback.Feedback
	Err      error
}
