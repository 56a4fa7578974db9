// Package catalog loads advice catalogs from YAML, TOML or JSON documents and
// watches catalog files for changes.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grovetools/cardvice/errors"
	"github.com/grovetools/cardvice/pkg/advice"
	"github.com/grovetools/cardvice/schema"
	"github.com/grovetools/cardvice/util/pathutil"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yml
var defaultsData []byte

// EmbeddedSource names the built-in catalog in logs and error messages.
const EmbeddedSource = "embedded"

// Format is the encoding of a catalog document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Document is the on-disk shape of a catalog.
type Document struct {
	Name       string              `yaml:"name,omitempty" json:"name,omitempty" toml:"name,omitempty" jsonschema:"description=Human readable name of the deck"`
	Categories map[string][]string `yaml:"categories" json:"categories" toml:"categories" jsonschema:"description=Advice texts keyed by category"`
}

// FormatForPath picks the decoder from a file extension. Anything that is not
// TOML or JSON is read as YAML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// Default returns the built-in catalog.
func Default() advice.Catalog {
	c, err := Parse(defaultsData, FormatYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// Resolve returns the catalog at path, or the built-in catalog when path is
// empty. The second result names the source for display.
func Resolve(path string) (advice.Catalog, string, error) {
	if path == "" {
		return Default(), EmbeddedSource, nil
	}
	expanded, err := pathutil.Expand(path)
	if err != nil {
		return nil, path, errors.Wrap(err, errors.ErrCodeCatalogNotFound, "failed to expand catalog path").
			WithDetail("path", path)
	}
	c, err := Load(expanded)
	return c, expanded, err
}

// Load reads and validates a catalog file.
func Load(path string) (advice.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.CatalogNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeCatalogNotFound, "failed to read catalog").
			WithDetail("path", path)
	}

	c, err := Parse(data, FormatForPath(path))
	if err != nil {
		if cerr, ok := err.(*errors.CardviceError); ok {
			cerr.WithDetail("path", path)
		}
		return nil, err
	}
	return c, nil
}

// Parse decodes a catalog document, validates it against the catalog schema
// and converts it into a Catalog. Blank texts are dropped; empty lists are
// kept so the category still shows up with a count of zero.
func Parse(data []byte, format Format) (advice.Catalog, error) {
	raw, err := decodeRaw(data, format)
	if err != nil {
		return nil, errors.CatalogInvalid(string(format), err)
	}

	if err := checkCategoryKeys(raw); err != nil {
		return nil, errors.CatalogInvalid(string(format), err)
	}

	// Round-trip through JSON so every format is validated and decoded the
	// same way.
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, errors.CatalogInvalid(string(format), err)
	}

	validator, err := schema.NewValidator()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to load catalog schema")
	}
	if err := validator.ValidateJSON(jsonData); err != nil {
		return nil, errors.CatalogInvalid(string(format), err)
	}

	var doc Document
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, errors.CatalogInvalid(string(format), err)
	}

	return doc.Catalog(), nil
}

// Catalog converts a validated document.
func (d Document) Catalog() advice.Catalog {
	c := make(advice.Catalog, len(d.Categories))
	for tag, texts := range d.Categories {
		items := make([]string, 0, len(texts))
		for _, text := range texts {
			if text = strings.TrimSpace(text); text != "" {
				items = append(items, text)
			}
		}
		c[advice.Category(tag)] = items
	}
	return c
}

// Encode writes a catalog back out as a document in the given format.
func Encode(c advice.Catalog, name string, format Format) ([]byte, error) {
	doc := Document{Name: name, Categories: make(map[string][]string, len(c))}
	for cat, texts := range c {
		doc.Categories[string(cat)] = append([]string{}, texts...)
	}

	switch format {
	case FormatTOML:
		return toml.Marshal(doc)
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	default:
		return yaml.Marshal(doc)
	}
}

func decodeRaw(data []byte, format Format) (interface{}, error) {
	var raw interface{}
	switch format {
	case FormatTOML:
		var m map[string]interface{}
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
		raw = m
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}
	if raw == nil {
		return nil, fmt.Errorf("catalog document is empty")
	}
	return raw, nil
}

// checkCategoryKeys reports unknown category names before schema validation
// so the error names the offending key.
func checkCategoryKeys(raw interface{}) error {
	doc, ok := raw.(map[string]interface{})
	if !ok {
		return nil
	}
	cats, ok := doc["categories"].(map[string]interface{})
	if !ok {
		return nil
	}

	keys := make(advice.Catalog, len(cats))
	for key := range cats {
		keys[advice.Category(key)] = nil
	}
	return keys.Validate()
}
