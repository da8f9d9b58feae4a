package validate

import (
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name: "test-object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":  map[string]any{"type": "string"},
				"count": map[string]any{"type": "integer", "minimum": 0},
				"kind":  map[string]any{"type": "string", "enum": []any{"flat", "dated"}},
			},
			"required": []any{"name", "count"},
		},
	}
}

func TestCheckValid(t *testing.T) {
	err := Check(testSchema(), []byte(`{"name":"u-2026-01","count":3,"kind":"flat"}`))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestCheckValidWithoutOptional(t *testing.T) {
	err := Check(testSchema(), []byte(`{"name":"u-2026-01","count":0}`))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestCheckMissingRequired(t *testing.T) {
	err := Check(testSchema(), []byte(`{"name":"u-2026-01"}`))
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var shapeErr *ErrInvalidShape
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected ErrInvalidShape, got: %T", err)
	}
	if shapeErr.Schema != "test-object" {
		t.Errorf("schema name = %q, want test-object", shapeErr.Schema)
	}
}

func TestCheckWrongType(t *testing.T) {
	err := Check(testSchema(), []byte(`{"name":"x","count":"three"}`))
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var shapeErr *ErrInvalidShape
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected ErrInvalidShape, got: %T", err)
	}
}

func TestCheckInvalidEnum(t *testing.T) {
	err := Check(testSchema(), []byte(`{"name":"x","count":1,"kind":"other"}`))
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
}

func TestCheckMalformedJSON(t *testing.T) {
	err := Check(testSchema(), []byte(`{not json}`))
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var shapeErr *ErrInvalidShape
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected ErrInvalidShape, got: %T", err)
	}
}

func TestCheckEmptyInput(t *testing.T) {
	if err := Check(testSchema(), nil); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestCompiledSchemaCached(t *testing.T) {
	s := testSchema()
	first, err := compiledSchema(s)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	second, err := compiledSchema(s)
	if err != nil {
		t.Fatalf("compile (cached): %v", err)
	}
	if first != second {
		t.Error("expected the cached compiled schema to be reused")
	}
}
