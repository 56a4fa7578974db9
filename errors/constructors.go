package errors

import (
	"fmt"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *CardviceError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *CardviceError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// CatalogNotFound creates a catalog not found error
func CatalogNotFound(path string) *CardviceError {
	return New(ErrCodeCatalogNotFound, fmt.Sprintf("catalog file not found: %s", path)).
		WithDetail("path", path)
}

// CatalogInvalid wraps a parse or validation failure of a catalog document
func CatalogInvalid(source string, err error) *CardviceError {
	return Wrap(err, ErrCodeCatalogInvalid, fmt.Sprintf("invalid catalog: %s", source)).
		WithDetail("source", source)
}

// UnknownCategory creates an error for a category tag outside the fixed set
func UnknownCategory(name string) *CardviceError {
	return New(ErrCodeUnknownCategory, fmt.Sprintf("unknown category '%s'", name)).
		WithDetail("category", name)
}
