package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
)

// ErrorCode classifies a failure for the CLI error handler and for tests.
type ErrorCode string

const (
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION"

	ErrCodeCatalogNotFound ErrorCode = "CATALOG_NOT_FOUND"
	ErrCodeCatalogInvalid  ErrorCode = "CATALOG_INVALID"
	ErrCodeUnknownCategory ErrorCode = "UNKNOWN_CATEGORY"

	ErrCodeWatchFailed ErrorCode = "WATCH_FAILED"

	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// CardviceError is a coded error with optional details and cause. Only
// loading and configuration produce them; drawing cards never fails.
type CardviceError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

func (e *CardviceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CardviceError) Unwrap() error {
	return e.Cause
}

// WithDetail sets a detail and returns e for chaining.
func (e *CardviceError) WithDetail(key string, value interface{}) *CardviceError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON renders the code, message and details as indented JSON.
func (e *CardviceError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

func New(code ErrorCode, message string) *CardviceError {
	return &CardviceError{Code: code, Message: message}
}

func Wrap(err error, code ErrorCode, message string) *CardviceError {
	return &CardviceError{Code: code, Message: message, Cause: err}
}

// As returns the outermost CardviceError in err's chain.
func As(err error) (*CardviceError, bool) {
	var cerr *CardviceError
	if stderrors.As(err, &cerr) {
		return cerr, true
	}
	return nil, false
}

// Is reports whether any CardviceError in err's chain has code. A catalog
// error caused by an unknown category matches both codes.
func Is(err error, code ErrorCode) bool {
	for err != nil {
		cerr, ok := As(err)
		if !ok {
			return false
		}
		if cerr.Code == code {
			return true
		}
		err = cerr.Cause
	}
	return false
}

// GetCode returns the outermost code in err's chain, or "".
func GetCode(err error) ErrorCode {
	if cerr, ok := As(err); ok {
		return cerr.Code
	}
	return ""
}

// Detail looks key up in the details of every CardviceError in err's chain,
// outermost first.
func Detail(err error, key string) (interface{}, bool) {
	for err != nil {
		cerr, ok := As(err)
		if !ok {
			return nil, false
		}
		if v, ok := cerr.Details[key]; ok {
			return v, true
		}
		err = cerr.Cause
	}
	return nil, false
}
