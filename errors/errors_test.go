package errors

import (
	"fmt"
	"testing"
)

func TestCardviceError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeCatalogNotFound, "catalog not found")
	if err.Code != ErrCodeCatalogNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeCatalogNotFound, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeCatalogInvalid, "bad catalog")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	if !Is(wrapped, ErrCodeCatalogInvalid) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeConfigNotFound) {
		t.Error("Is should return false for non-matching code")
	}

	detailed := err.WithDetail("path", "/tmp/advice.yml").WithDetail("size", 3)
	if detailed.Details["path"] != "/tmp/advice.yml" {
		t.Error("WithDetail should add details")
	}
}

func TestIsLooksThroughNestedCodes(t *testing.T) {
	inner := UnknownCategory("Cooking")
	outer := CatalogInvalid("advice.yml", inner)
	wrapped := fmt.Errorf("loading: %w", outer)

	if !Is(wrapped, ErrCodeCatalogInvalid) {
		t.Error("expected outer code to match through fmt wrapping")
	}
	if !Is(wrapped, ErrCodeUnknownCategory) {
		t.Error("expected nested cause code to match")
	}
	if got := GetCode(wrapped); got != ErrCodeCatalogInvalid {
		t.Errorf("GetCode should return the outermost code, got %s", got)
	}
}

func TestErrorConstructors(t *testing.T) {
	err := UnknownCategory("Cooking")
	if err.Code != ErrCodeUnknownCategory {
		t.Errorf("expected code %s, got %s", ErrCodeUnknownCategory, err.Code)
	}
	if err.Details["category"] != "Cooking" {
		t.Error("UnknownCategory should include category detail")
	}

	err = CatalogNotFound("/nope.yml")
	if err.Code != ErrCodeCatalogNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeCatalogNotFound, err.Code)
	}
	if err.Details["path"] != "/nope.yml" {
		t.Error("CatalogNotFound should include path detail")
	}
}

func TestDetailSearchesCauses(t *testing.T) {
	err := fmt.Errorf("reload: %w", CatalogInvalid("advice.yml", UnknownCategory("Cooking")))

	if v, ok := Detail(err, "category"); !ok || v != "Cooking" {
		t.Errorf("Detail(category) = %v, %v; want Cooking, true", v, ok)
	}
	if _, ok := Detail(err, "missing"); ok {
		t.Error("Detail should report missing keys")
	}
	if _, ok := As(fmt.Errorf("plain")); ok {
		t.Error("As should fail for plain errors")
	}
}
