package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/grovetools/cardvice/errors"
	"github.com/grovetools/cardvice/pkg/advice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	require.NoError(t, c.Validate())
	for _, cat := range advice.AllCategories() {
		assert.NotEmpty(t, c[cat], "category %s should have built-in advice", cat)
	}
	assert.Equal(t, 50, c.Size(advice.AllScope()))
}

func TestParseFormats(t *testing.T) {
	want := advice.Catalog{
		advice.Money:       {"Save first."},
		advice.DailyHabits: {"Make your bed.", "Read."},
		advice.Friends:     {},
	}

	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{
			name:   "yaml",
			format: FormatYAML,
			data: `
categories:
  Money: [Save first.]
  Daily Habits:
    - Make your bed.
    - Read.
  Friends: []
`,
		},
		{
			name:   "toml",
			format: FormatTOML,
			data: `
[categories]
Money = ["Save first."]
"Daily Habits" = ["Make your bed.", "Read."]
Friends = []
`,
		},
		{
			name:   "json",
			format: FormatJSON,
			data:   `{"categories": {"Money": ["Save first."], "Daily Habits": ["Make your bed.", "Read."], "Friends": []}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.data), tt.format)
			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseDropsBlankTexts(t *testing.T) {
	got, err := Parse([]byte("categories:\n  Work: ['  ', 'Ship it.  ', '']\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ship it."}, got[advice.Work])
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		code    errors.ErrorCode
		nested  errors.ErrorCode
		message string
	}{
		{"syntax", "categories: [", errors.ErrCodeCatalogInvalid, "", "YAML"},
		{"empty", "", errors.ErrCodeCatalogInvalid, "", "empty"},
		{"unknown category", "categories:\n  Gardening: [Water.]\n", errors.ErrCodeCatalogInvalid, errors.ErrCodeUnknownCategory, "Gardening"},
		{"missing categories", "name: deck\n", errors.ErrCodeCatalogInvalid, "", "categories"},
		{"nested list", "categories:\n  Money: [[a]]\n", errors.ErrCodeCatalogInvalid, "", "/categories/Money/0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), FormatYAML)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err))
			if tt.nested != "" {
				assert.True(t, errors.Is(err, tt.nested))
			}
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "deck.toml")
	require.NoError(t, os.WriteFile(path, []byte("[categories]\nHealth = [\"Sleep.\"]\n"), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sleep."}, c[advice.Health])

	_, err = Load(filepath.Join(dir, "missing.yml"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeCatalogNotFound, errors.GetCode(err))
}

func TestResolve(t *testing.T) {
	c, source, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, EmbeddedSource, source)
	assert.Equal(t, Default().Counts(), c.Counts())

	path := filepath.Join(t.TempDir(), "deck.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"categories": {"Romance": ["Listen."]}}`), 0644))
	c, source, err = Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, path, source)
	assert.Equal(t, 1, c.Size(advice.AllScope()))
}

func TestEncodeRoundTrip(t *testing.T) {
	original := advice.Catalog{
		advice.SelfCare:    {"Rest."},
		advice.DigitalLife: {"Back up.", "Log off."},
	}

	for _, format := range []Format{FormatYAML, FormatTOML, FormatJSON} {
		data, err := Encode(original, "round trip", format)
		require.NoError(t, err, format)

		got, err := Parse(data, format)
		require.NoError(t, err, format)
		if diff := cmp.Diff(original, got); diff != "" {
			t.Errorf("%s round trip mismatch (-want +got):\n%s", format, diff)
		}
	}
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatTOML, FormatForPath("a/deck.TOML"))
	assert.Equal(t, FormatJSON, FormatForPath("deck.json"))
	assert.Equal(t, FormatYAML, FormatForPath("deck.yml"))
	assert.Equal(t, FormatYAML, FormatForPath("deck"))
}
