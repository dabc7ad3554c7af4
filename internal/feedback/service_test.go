package feedback

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/diffuselabs/diffused/internal/course"
	"github.com/diffuselabs/diffused/internal/llm"
)

func testChallenge() course.Challenge {
	return course.Challenge{
		ID:          "1-1-2",
		Type:        course.TypeExplanation,
		Prompt:      "Why do we add noise gradually instead of all at once?",
		ModelAnswer: "Small steps keep each denoising sub-problem easy to learn.",
	}
}

func TestEvaluate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"assessment":"partial","comment":"Right direction, but say why small steps are learnable."}`),
	})
	svc := NewService(mock)

	fb, err := svc.Evaluate(context.Background(), testChallenge(), "because it is easier")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if fb.Assessment != "partial" {
		t.Errorf("Assessment = %q, want partial", fb.Assessment)
	}
	if fb.Comment == "" {
		t.Error("expected a comment")
	}

	if mock.CallCount() != 1 {
		t.Fatalf("CallCount = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "challenge-feedback" {
		t.Error("request should carry the feedback schema")
	}
	if !strings.Contains(req.Prompt, "because it is easier") {
		t.Error("prompt should include the learner's answer")
	}
	if !strings.Contains(req.Prompt, "Small steps keep each denoising") {
		t.Error("prompt should include the reference answer")
	}
}

func TestEvaluateProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewService(mock)

	if _, err := svc.Evaluate(context.Background(), testChallenge(), "hm"); err == nil {
		t.Error("expected error when provider fails")
	}
}

func TestDisabledService(t *testing.T) {
	svc := NewService(nil)
	if svc.Enabled() {
		t.Error("service with nil provider should be disabled")
	}
	if _, err := svc.Evaluate(context.Background(), testChallenge(), "x"); err == nil {
		t.Error("disabled service should error")
	}

	var nilSvc *Service
	if nilSvc.Enabled() {
		t.Error("nil service should be disabled")
	}
}
