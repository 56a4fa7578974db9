package schema

import (
	"strings"
	"testing"
)

func TestValidatorAcceptsDocument(t *testing.T) {
	v, err := NewValidator()
	if err != nil {
		t.Fatalf("NewValidator() error = %v", err)
	}

	doc := map[string]interface{}{
		"name": "test deck",
		"categories": map[string]interface{}{
			"Money":        []interface{}{"Save first."},
			"Daily Habits": []interface{}{},
		},
	}
	if err := v.Validate(doc); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestValidatorRejects(t *testing.T) {
	v, err := NewValidator()
	if err != nil {
		t.Fatalf("NewValidator() error = %v", err)
	}

	tests := []struct {
		name     string
		doc      string
		contains string
	}{
		{"missing categories", `{"name": "x"}`, "categories"},
		{"unknown top-level key", `{"categories": {}, "extra": true}`, "extra"},
		{"unknown category", `{"categories": {"Gardening": []}}`, "/categories"},
		{"non-string item", `{"categories": {"Money": [1]}}`, "/categories/Money/0"},
		{"list expected", `{"categories": {"Money": "save"}}`, "/categories/Money"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateJSON([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error %q should mention %q", err.Error(), tt.contains)
			}
		})
	}
}

func TestEmbeddedIsCopy(t *testing.T) {
	a := Embedded()
	a[0] = 'x'
	if Embedded()[0] == 'x' {
		t.Error("Embedded() should return a copy")
	}
}
