package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reply":      map[string]any{"type": "string"},
			"mood_score": map[string]any{"type": "integer"},
			"tone":       map[string]any{"type": "string", "enum": []any{"warm", "calm", "upbeat"}},
			"recent_scores": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer"},
			},
		},
		"required": []any{"reply", "mood_score"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["reply"].Type != "STRING" {
		t.Fatalf("expected STRING for reply, got %s", schema.Properties["reply"].Type)
	}
	if schema.Properties["mood_score"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for mood_score, got %s", schema.Properties["mood_score"].Type)
	}
	if len(schema.Properties["tone"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["tone"].Enum))
	}
	if schema.Properties["recent_scores"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for recent_scores, got %s", schema.Properties["recent_scores"].Type)
	}
	if schema.Properties["recent_scores"].Items.Type != "INTEGER" {
		t.Fatalf("expected INTEGER for recent_scores items, got %s", schema.Properties["recent_scores"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
