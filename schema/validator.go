// Package schema holds the JSON Schema for advice catalogs and validates
// documents against it.
package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:generate sh -c "cd .. && go run ./tools/schema-generator/"

//go:embed catalog.schema.json
var embeddedSchemaData []byte

// Embedded returns the raw catalog schema.
func Embedded() []byte {
	return append([]byte(nil), embeddedSchemaData...)
}

// Validator validates catalog documents against the embedded JSON Schema.
type Validator struct {
	schema *jsonschema.Schema
}

var (
	compiled    *jsonschema.Schema
	compileErr  error
	compileOnce sync.Once
)

// NewValidator returns a validator for the embedded schema. The schema is
// compiled once per process.
func NewValidator() (*Validator, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("catalog.json", bytes.NewReader(embeddedSchemaData)); err != nil {
			compileErr = fmt.Errorf("failed to add embedded schema resource: %w", err)
			return
		}
		compiled, compileErr = compiler.Compile("catalog.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("failed to compile embedded schema: %w", compileErr)
		}
	})
	if compileErr != nil {
		return nil, compileErr
	}
	return &Validator{schema: compiled}, nil
}

// Validate validates any value that can be marshaled to JSON.
func (v *Validator) Validate(doc interface{}) error {
	jsonData, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document to JSON for validation: %w", err)
	}
	return v.ValidateJSON(jsonData)
}

// ValidateJSON validates an encoded JSON document.
func (v *Validator) ValidateJSON(data []byte) error {
	var dataToValidate interface{}
	if err := json.Unmarshal(data, &dataToValidate); err != nil {
		return fmt.Errorf("failed to unmarshal JSON for validation: %w", err)
	}

	if err := v.schema.Validate(dataToValidate); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			var errorMessages []string
			collectErrors(validationErr, &errorMessages)
			return fmt.Errorf("schema validation failed:\n%s", strings.Join(errorMessages, "\n"))
		}
		return fmt.Errorf("schema validation failed: %w", err)
	}

	return nil
}

// collectErrors recursively collects all validation errors into a slice
func collectErrors(err *jsonschema.ValidationError, messages *[]string) {
	if len(err.Causes) == 0 {
		location := err.InstanceLocation
		if location == "" {
			location = "/"
		}
		*messages = append(*messages, fmt.Sprintf("- %s: %s", location, err.Message))
	}
	for _, cause := range err.Causes {
		collectErrors(cause, messages)
	}
}
