package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var answerSchema = &Schema{
	Name: "test-answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{"type": "string"},
			"score": map[string]any{
				"type":    "integer",
				"minimum": 0,
				"maximum": 100,
			},
		},
		"required":             []any{"answer", "score"},
		"additionalProperties": false,
	},
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"answer": "B", "score": 80}`)
	if err := validateResponse(answerSchema, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema must skip validation, got %v", err)
	}
}

func TestValidateResponse_InvalidJSON(t *testing.T) {
	err := validateResponse(answerSchema, json.RawMessage(`{"answer": `))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected *ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	err := validateResponse(answerSchema, json.RawMessage(`{"answer": "B"}`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected *ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_AdditionalProperty(t *testing.T) {
	err := validateResponse(answerSchema, json.RawMessage(`{"answer": "B", "score": 80, "extra": 1}`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected *ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_OutOfRange(t *testing.T) {
	err := validateResponse(answerSchema, json.RawMessage(`{"answer": "B", "score": 101}`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected *ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_CachedCompile(t *testing.T) {
	raw := json.RawMessage(`{"answer": "B", "score": 80}`)
	for i := 0; i < 3; i++ {
		if err := validateResponse(answerSchema, raw); err != nil {
			t.Fatalf("iteration %d: %v", i, err)
		}
	}
}
