// Package feedback grades free-text explanation answers with a model.
// The service is optional: without a configured provider the app falls
// back to self-assessment against the model answer.
package feedback

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/diffuselabs/diffused/internal/course"
	"github.com/diffuselabs/diffused/internal/llm"
)

// Feedback is the model's judgement of a learner's explanation.
type Feedback struct {
	// Assessment is one of "yes", "partial" or "no", matching the
	// understanding levels the progress tracker records.
	Assessment string `json:"assessment"`

	// Comment is one or two sentences pointing at what was right or
	// what was missed.
	Comment string `json:"comment"`
}

// feedbackSchema constrains the model output to exactly the two fields
// the lesson screen displays.
var feedbackSchema = &llm.Schema{
	Name:        "challenge-feedback",
	Description: "Assessment of a learner's explanation of a diffusion model concept",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"assessment": map[string]any{
				"type":        "string",
				"enum":        []any{"yes", "partial", "no"},
				"description": "Whether the explanation shows full, partial or no understanding",
			},
			"comment": map[string]any{
				"type":        "string",
				"description": "One or two sentences of specific feedback",
			},
		},
		"required":             []any{"assessment", "comment"},
		"additionalProperties": false,
	},
}

const systemPrompt = `You are a patient teacher for an interactive course on diffusion image models.
A learner answered an explanation challenge in their own words. Compare their
answer to the reference answer and judge their understanding.

Be generous with phrasing: judge the ideas, not the vocabulary. "yes" means
the core mechanism is right, "partial" means they have a piece of it, "no"
means the explanation misses the mechanism. Keep the comment short and
specific.`

// Service grades explanation answers.
type Service struct {
	provider llm.Provider
}

// NewService creates a feedback service. A nil provider yields a
// disabled service.
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

// Enabled reports whether model-graded feedback is available.
func (s *Service) Enabled() bool {
	return s != nil && s.provider != nil
}

// Evaluate grades the learner's answer to an explanation challenge.
func (s *Service) Evaluate(ctx context.Context, ch course.Challenge, answer string) (*Feedback, error) {
	if !s.Enabled() {
		return nil, fmt.Errorf("feedback service not configured")
	}

	ctx = llm.WithPurpose(ctx, "challenge-feedback")

	prompt := fmt.Sprintf(`Challenge: %s

Reference answer: %s

Learner's answer: %s`, ch.Prompt, ch.ModelAnswer, answer)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    systemPrompt,
		Prompt:    prompt,
		Schema:    feedbackSchema,
		MaxTokens: 300,
	})
	if err != nil {
		return nil, fmt.Errorf("generate feedback: %w", err)
	}

	var fb Feedback
	if err := json.Unmarshal(resp.Content, &fb); err != nil {
		return nil, fmt.Errorf("decode feedback: %w", err)
	}
	return &fb, nil
}
