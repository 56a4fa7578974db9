package cmd

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grovetools/cardvice/errors"
	"github.com/grovetools/cardvice/pkg/advice"
	"github.com/grovetools/cardvice/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalogYAML = `categories:
  Health:
    - Drink water.
    - Stretch.
    - Sleep early.
  Money:
    - Save first.
  Work: []
`

// setupEnv isolates the commands from the user's configuration and returns
// a config file pointing at a small catalog.
func setupEnv(t *testing.T) (configPath, catalogPath string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))

	catalogPath = filepath.Join(dir, "advice.yml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(testCatalogYAML), 0644))

	configPath = filepath.Join(dir, "cardvice.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("catalog: advice.yml\n"), 0644))
	return configPath, catalogPath
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func decodeCards(t *testing.T, out string) []DrawnCard {
	t.Helper()
	var cards []DrawnCard
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		var card DrawnCard
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &card))
		cards = append(cards, card)
	}
	return cards
}

func TestDrawCoversCycleBeforeRepeating(t *testing.T) {
	cfg, _ := setupEnv(t)

	out, err := run(t, "--config", cfg, "draw", "-t", "health", "-n", "6", "--seed", "3", "--json")
	require.NoError(t, err)

	cards := decodeCards(t, out)
	require.Len(t, cards, 6)

	first := map[string]bool{}
	second := map[string]bool{}
	for i, card := range cards {
		assert.Equal(t, "Health", card.Category)
		assert.Equal(t, i+1, card.N)
		if i < 3 {
			first[card.Text] = true
		} else {
			second[card.Text] = true
		}
	}
	assert.Len(t, first, 3)
	assert.Len(t, second, 3)

	assert.True(t, cards[2].CycleEnd)
	assert.Equal(t, 0, cards[2].Remaining)
	assert.NotEqual(t, cards[2].Text, cards[3].Text, "a new cycle must not start with the previous card")
}

func TestDrawSeedIsReproducible(t *testing.T) {
	cfg, _ := setupEnv(t)

	a, err := run(t, "--config", cfg, "draw", "-n", "4", "--seed", "42", "--json")
	require.NoError(t, err)
	b, err := run(t, "--config", cfg, "draw", "-n", "4", "--seed", "42", "--json")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDrawPlainOutput(t *testing.T) {
	cfg, _ := setupEnv(t)

	out, err := run(t, "--config", cfg, "draw", "-t", "money", "-n", "2")
	require.NoError(t, err)
	assert.Equal(t, "Money\tSave first.\nMoney\tSave first.\n", out)
}

func TestDrawEmptyCategory(t *testing.T) {
	cfg, _ := setupEnv(t)

	out, err := run(t, "--config", cfg, "draw", "-t", "work", "--json")
	require.NoError(t, err)
	cards := decodeCards(t, out)
	require.Len(t, cards, 1)
	assert.Equal(t, advice.NoAdvice.Text, cards[0].Text)
	assert.Empty(t, cards[0].Category)
}

func TestDrawErrors(t *testing.T) {
	cfg, _ := setupEnv(t)

	_, err := run(t, "--config", cfg, "draw", "-t", "cooking")
	assert.True(t, errors.Is(err, errors.ErrCodeUnknownCategory))

	_, err = run(t, "--config", cfg, "draw", "-t", "money", "-t", "work")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	_, err = run(t, "--config", cfg, "draw", "--mode", "multi", "-t", "money", "-t", "work")
	assert.NoError(t, err)

	_, err = run(t, "--config", cfg, "draw", "-n", "0")
	assert.Error(t, err)

	_, err = run(t, "--config", cfg, "--catalog", "/does/not/exist.yml", "draw")
	assert.True(t, errors.Is(err, errors.ErrCodeCatalogNotFound))
}

func TestCategoriesJSON(t *testing.T) {
	cfg, _ := setupEnv(t)

	out, err := run(t, "--config", cfg, "categories", "--json")
	require.NoError(t, err)

	var infos []CategoryInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, len(advice.AllCategories()))

	byName := map[string]CategoryInfo{}
	for _, info := range infos {
		byName[info.Category] = info
	}
	assert.Equal(t, 3, byName["Health"].Count)
	assert.Equal(t, "3", byName["Health"].Key)
	assert.Equal(t, 0, byName["Work"].Count)
	assert.Equal(t, "0", byName["Digital Life"].Key)
}

func TestCategoriesTable(t *testing.T) {
	cfg, catalogPath := setupEnv(t)

	out, err := run(t, "--config", cfg, "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "Daily Habits")
	assert.Contains(t, out, "4 cards from "+catalogPath)
}

func TestCatalogValidate(t *testing.T) {
	_, catalogPath := setupEnv(t)

	out, err := run(t, "catalog", "validate", catalogPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Catalog is valid")
	assert.Contains(t, out, "Health")
	assert.Contains(t, out, "Work has no cards")
	assert.Contains(t, out, "Family has no cards")

	bad := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("categories:\n  Cooking:\n    - Salt the water.\n"), 0644))
	_, err = run(t, "catalog", "validate", bad)
	assert.True(t, errors.Is(err, errors.ErrCodeCatalogInvalid))
	assert.True(t, errors.Is(err, errors.ErrCodeUnknownCategory))
}

func TestCatalogSchema(t *testing.T) {
	out, err := run(t, "catalog", "schema")
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Contains(t, doc, "properties")
}

func TestCatalogExportRoundTrip(t *testing.T) {
	cfg, catalogPath := setupEnv(t)

	for _, format := range []catalog.Format{catalog.FormatYAML, catalog.FormatTOML, catalog.FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			out, err := run(t, "--config", cfg, "catalog", "export", "--format", string(format))
			require.NoError(t, err)

			exported, err := catalog.Parse([]byte(out), format)
			require.NoError(t, err)
			original, err := catalog.Load(catalogPath)
			require.NoError(t, err)
			assert.Equal(t, original.Counts(), exported.Counts())
		})
	}

	_, err := run(t, "--config", cfg, "catalog", "export", "--format", "xml")
	assert.Error(t, err)
}

func TestConfigCommand(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "config", "--final")
	require.NoError(t, err)
	assert.Contains(t, out, "FINAL MERGED CONFIG")
	assert.Contains(t, out, "mode: single")
	assert.NotContains(t, out, "GLOBAL CONFIG")
}

func TestPathsCommand(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "paths")
	require.NoError(t, err)

	var paths PathsOutput
	require.NoError(t, json.Unmarshal([]byte(out), &paths))
	assert.True(t, strings.HasSuffix(paths.GlobalConfig, filepath.Join("cardvice", "cardvice.yml")))
	assert.True(t, strings.HasSuffix(paths.LogDir, filepath.Join("cardvice", "logs")))
}

func TestScopeFromFlags(t *testing.T) {
	fallback := advice.ScopeOf(advice.Work)

	scope, err := scopeFromFlags(nil, advice.FilterSingle, fallback)
	require.NoError(t, err)
	assert.True(t, scope.Equal(fallback))

	scope, err = scopeFromFlags([]string{"self_care"}, advice.FilterSingle, fallback)
	require.NoError(t, err)
	assert.True(t, scope.Equal(advice.ScopeOf(advice.SelfCare)))

	scope, err = scopeFromFlags([]string{"money", "friends"}, advice.FilterMulti, fallback)
	require.NoError(t, err)
	assert.Equal(t, "Money+Friends", scope.Key())
}

func TestTimingFlag(t *testing.T) {
	cfg, _ := setupEnv(t)

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"--config", cfg, "--timing", "draw", "-n", "2"})
	require.NoError(t, root.Execute())

	assert.Contains(t, errOut.String(), "Timing Profile")
	assert.Contains(t, errOut.String(), "- load session")
	assert.Contains(t, errOut.String(), "- draw")
}
