package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/cardvice/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a new error handler writing to stderr
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Handle provides user-friendly error messages based on error type
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}
	out := h.Out
	if out == nil {
		out = os.Stderr
	}

	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(out, "❌ Configuration not found: %v\n", detail(err, "path"))
		fmt.Fprintf(out, "Create a cardvice.yml or drop the --config flag to use the defaults.\n")

	case errors.ErrCodeConfigInvalid, errors.ErrCodeConfigValidation:
		fmt.Fprintf(out, "❌ Invalid configuration: %s\n", message(err))
		fmt.Fprintf(out, "Run 'cardvice config' to see the merged configuration.\n")

	case errors.ErrCodeCatalogNotFound:
		fmt.Fprintf(out, "❌ Catalog not found: %v\n", detail(err, "path"))
		fmt.Fprintf(out, "Check the 'catalog' setting in cardvice.yml or leave it empty for the built-in cards.\n")

	case errors.ErrCodeCatalogInvalid:
		fmt.Fprintf(out, "❌ Invalid catalog: %v\n", err)
		if errors.Is(err, errors.ErrCodeUnknownCategory) {
			fmt.Fprintf(out, "Run 'cardvice categories' to see the supported categories.\n")
		} else {
			fmt.Fprintf(out, "Run 'cardvice catalog schema' to see the expected format.\n")
		}

	case errors.ErrCodeUnknownCategory:
		fmt.Fprintf(out, "❌ Unknown category '%v'\n", detail(err, "category"))
		fmt.Fprintf(out, "Run 'cardvice categories' to see the supported categories.\n")

	default:
		fmt.Fprintf(out, "❌ Error: %v\n", err)
	}

	if h.Verbose {
		if cardviceErr, ok := errors.As(err); ok {
			fmt.Fprintf(out, "\nError details:\n%s\n", cardviceErr.ToJSON())
		}
	}
	return err
}

func detail(err error, key string) interface{} {
	if v, ok := errors.Detail(err, key); ok {
		return v
	}
	return err
}

func message(err error) string {
	if cardviceErr, ok := errors.As(err); ok {
		return cardviceErr.Message
	}
	return err.Error()
}
