package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func feedbackSchema() *Schema {
	return &Schema{
		Name:        "test-feedback",
		Description: "assessment of a learner's answer",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"assessment": map[string]any{
					"type": "string",
					"enum": []any{"yes", "partial", "no"},
				},
				"comment": map[string]any{
					"type": "string",
				},
			},
			"required":             []any{"assessment", "comment"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponseValid(t *testing.T) {
	raw := json.RawMessage(`{"assessment":"partial","comment":"close, but the variance is wrong"}`)
	if err := validateResponse(feedbackSchema(), raw); err != nil {
		t.Errorf("validateResponse: %v", err)
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Errorf("nil schema should skip validation, got %v", err)
	}
}

func TestValidateResponseMalformedJSON(t *testing.T) {
	err := validateResponse(feedbackSchema(), json.RawMessage(`{"assessment":`))
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponseMissingRequired(t *testing.T) {
	err := validateResponse(feedbackSchema(), json.RawMessage(`{"comment":"nice"}`))
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponseEnumViolation(t *testing.T) {
	err := validateResponse(feedbackSchema(), json.RawMessage(`{"assessment":"maybe","comment":"hm"}`))
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponseCachesCompiledSchema(t *testing.T) {
	schema := feedbackSchema()
	raw := json.RawMessage(`{"assessment":"yes","comment":"exactly right"}`)

	if err := validateResponse(schema, raw); err != nil {
		t.Fatalf("first validation: %v", err)
	}
	if _, ok := schemaCache.Load(schema.Name); !ok {
		t.Error("compiled schema should be cached after first use")
	}
	if err := validateResponse(schema, raw); err != nil {
		t.Errorf("second validation: %v", err)
	}
}
