package catalog

import (
	"encoding/json"

	"github.com/grovetools/cardvice/pkg/advice"
	"github.com/invopop/jsonschema"
)

// GenerateSchema generates the JSON Schema for catalog documents. The output
// is committed as schema/catalog.schema.json by tools/schema-generator.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		// No $id derived from the Go package path.
		Anonymous: true,
		// Expand struct references instead of using $ref for a flat schema.
		ExpandedStruct: true,
		FieldNameTag:   "yaml",
	}

	schema := r.Reflect(&Document{})
	schema.Title = "Cardvice Catalog"
	schema.Description = "Advice texts grouped by category."
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return json.MarshalIndent(schema, "", "  ")
}

// JSONSchemaExtend restricts category keys to the known categories.
func (Document) JSONSchemaExtend(s *jsonschema.Schema) {
	if s.Properties == nil {
		return
	}
	cats, ok := s.Properties.Get("categories")
	if !ok || cats == nil {
		return
	}
	names := make([]any, 0, len(advice.AllCategories()))
	for _, c := range advice.AllCategories() {
		names = append(names, string(c))
	}
	cats.PropertyNames = &jsonschema.Schema{Enum: names}
}
