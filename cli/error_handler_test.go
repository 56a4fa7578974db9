package cli

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/grovetools/cardvice/errors"
	"github.com/stretchr/testify/assert"
)

func handle(err error, verbose bool) string {
	var buf bytes.Buffer
	h := &ErrorHandler{Verbose: verbose, Out: &buf}
	h.Handle(err)
	return buf.String()
}

func TestHandleKnownCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "config not found",
			err:  errors.ConfigNotFound("/tmp/cardvice.yml"),
			want: []string{"Configuration not found: /tmp/cardvice.yml"},
		},
		{
			name: "config validation",
			err:  errors.New(errors.ErrCodeConfigValidation, "invalid filter.mode"),
			want: []string{"Invalid configuration: invalid filter.mode", "cardvice config"},
		},
		{
			name: "catalog not found",
			err:  errors.CatalogNotFound("/tmp/advice.yml"),
			want: []string{"Catalog not found: /tmp/advice.yml"},
		},
		{
			name: "catalog with unknown category",
			err:  errors.CatalogInvalid("advice.yml", errors.UnknownCategory("Cooking")),
			want: []string{"Invalid catalog", "cardvice categories"},
		},
		{
			name: "catalog schema failure",
			err:  errors.CatalogInvalid("advice.yml", fmt.Errorf("missing categories")),
			want: []string{"Invalid catalog", "cardvice catalog schema"},
		},
		{
			name: "wrapped unknown category",
			err:  fmt.Errorf("flag: %w", errors.UnknownCategory("Cooking")),
			want: []string{"Unknown category 'Cooking'"},
		},
		{
			name: "plain error",
			err:  fmt.Errorf("boom"),
			want: []string{"Error: boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := handle(tt.err, false)
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
			assert.NotContains(t, out, "Error details")
		})
	}
}

func TestHandleVerboseShowsDetails(t *testing.T) {
	out := handle(errors.CatalogNotFound("/tmp/advice.yml"), true)
	assert.Contains(t, out, "Error details")
	assert.Contains(t, out, `"code": "CATALOG_NOT_FOUND"`)
}

func TestHandleReturnsError(t *testing.T) {
	err := fmt.Errorf("boom")
	h := &ErrorHandler{Out: &bytes.Buffer{}}
	assert.Equal(t, err, h.Handle(err))
	assert.NoError(t, h.Handle(nil))
}
