package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func moodSchema() *Schema {
	return &Schema{
		Name:        "test-mood",
		Description: "A reply with a mood estimate",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"reply":      map[string]any{"type": "string"},
				"mood_score": map[string]any{"type": "integer", "minimum": 0, "maximum": 10},
				"tone":       map[string]any{"type": "string", "enum": []any{"warm", "calm", "upbeat"}},
				"tips": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"reply", "mood_score"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"reply":"I hear you.","mood_score":4,"tone":"warm"}`, false},
		{"optional fields omitted", `{"reply":"Okay.","mood_score":5}`, false},
		{"array items", `{"reply":"Try this.","mood_score":6,"tips":["walk","water"]}`, false},
		{"missing required", `{"reply":"Hi"}`, true},
		{"wrong type", `{"reply":"Hi","mood_score":"five"}`, true},
		{"out of range", `{"reply":"Hi","mood_score":11}`, true},
		{"invalid enum", `{"reply":"Hi","mood_score":5,"tone":"angry"}`, true},
		{"wrong item type", `{"reply":"Hi","mood_score":5,"tips":[1,2]}`, true},
		{"malformed", `{not json}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(moodSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invErr *ErrInvalidResponse
				if !errors.As(err, &invErr) {
					t.Fatalf("expected ErrInvalidResponse, got %T", err)
				}
			}
		})
	}
}

func TestValidateResponse_Empty(t *testing.T) {
	if err := validateResponse(moodSchema(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_SameNameDifferentDefinition(t *testing.T) {
	loose := &Schema{Name: "companion-reply", Definition: map[string]any{"type": "object"}}
	if err := validateResponse(loose, json.RawMessage(`{"reply":"hi"}`)); err != nil {
		t.Fatalf("loose schema: %v", err)
	}
	// The strict schema must not reuse the loose validator.
	if err := validateResponse(companionSchema(), json.RawMessage(`{"reply":"hi"}`)); err == nil {
		t.Fatal("expected missing mood_score to fail the strict schema")
	}
}
