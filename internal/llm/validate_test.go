package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-word",
		Description: "A test schema",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"word": map[string]any{"type": "string"},
				"count": map[string]any{
					"type":    "integer",
					"minimum": 1,
				},
			},
			"required":             []any{"word", "count"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"word": "apple", "count": 3}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`not even json`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}

func TestValidateResponse_InvalidJSON(t *testing.T) {
	raw := json.RawMessage(`{"word": `)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"word": "apple"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_ExtraProperty(t *testing.T) {
	raw := json.RawMessage(`{"word": "apple", "count": 3, "extra": true}`)
	if err := validateResponse(testSchema(), raw); err == nil {
		t.Fatal("expected error for additional property")
	}
}

func TestValidateResponse_SchemaCached(t *testing.T) {
	schema := testSchema()
	raw := json.RawMessage(`{"word": "apple", "count": 1}`)

	if err := validateResponse(schema, raw); err != nil {
		t.Fatalf("first validation failed: %v", err)
	}
	if _, ok := schemaCache.Load(schema.Name); !ok {
		t.Error("expected compiled schema to be cached")
	}
	if err := validateResponse(schema, raw); err != nil {
		t.Fatalf("second validation failed: %v", err)
	}
}
