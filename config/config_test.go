package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/grovetools/cardvice/errors"
	"github.com/grovetools/cardvice/pkg/advice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtensions verifies that custom extensions in cardvice.yml are properly loaded
func TestExtensions(t *testing.T) {
	yamlContent := []byte(`
filter:
  mode: multi

logging:
  level: debug
  file:
    enabled: true
    path: /tmp/cardvice.log
`)

	cfg, err := LoadFromBytes(yamlContent, FormatYAML)
	require.NoError(t, err)
	require.NotNil(t, cfg.Extensions)
	assert.Contains(t, cfg.Extensions, "logging")
	assert.NotContains(t, cfg.Extensions, "filter")

	type FileSink struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	}
	type LoggingConfig struct {
		Level string   `yaml:"level"`
		File  FileSink `yaml:"file"`
	}

	var logCfg LoggingConfig
	require.NoError(t, cfg.UnmarshalExtension("logging", &logCfg))
	assert.Equal(t, "debug", logCfg.Level)
	assert.True(t, logCfg.File.Enabled)
	assert.Equal(t, "/tmp/cardvice.log", logCfg.File.Path)

	// Missing extensions leave the target untouched
	var missing LoggingConfig
	require.NoError(t, cfg.UnmarshalExtension("nonexistent", &missing))
	assert.Empty(t, missing.Level)
}

func TestLoadFromBytesDefaults(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(""), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "single", cfg.Filter.Mode)
	assert.Equal(t, DefaultLeave, cfg.Animation.Leave.Std())
	assert.Equal(t, DefaultEnter, cfg.Animation.Enter.Std())
	assert.True(t, cfg.WatchEnabled())
	assert.True(t, cfg.InitialScope().IsAll())
	assert.Equal(t, advice.FilterSingle, cfg.FilterMode())
}

func TestLoadFromBytesYAML(t *testing.T) {
	yamlContent := []byte(`
catalog: /srv/advice.yml
theme: kanagawa
watch: false
filter:
  mode: multi
  initial: [money, self_care]
animation:
  leave: 150ms
  enter: 0.5s
keys:
  next: [space, j]
`)

	cfg, err := LoadFromBytes(yamlContent, FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "/srv/advice.yml", cfg.Catalog)
	assert.Equal(t, "kanagawa", cfg.Theme)
	assert.False(t, cfg.WatchEnabled())
	assert.Equal(t, advice.FilterMulti, cfg.FilterMode())
	assert.Equal(t, 150*time.Millisecond, cfg.Animation.Leave.Std())
	assert.Equal(t, 500*time.Millisecond, cfg.Animation.Enter.Std())
	assert.Equal(t, []string{"space", "j"}, cfg.Keys["next"])

	scope := cfg.InitialScope()
	assert.Equal(t, []advice.Category{advice.Money, advice.SelfCare}, scope.Categories())
}

func TestLoadFromBytesTOML(t *testing.T) {
	tomlContent := []byte(`
catalog = "/srv/advice.toml"

[filter]
mode = "single"
initial = ["Digital Life"]

[animation]
leave = "200ms"
enter = "250ms"

[logging]
level = "warn"
`)

	cfg, err := LoadFromBytes(tomlContent, FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, "/srv/advice.toml", cfg.Catalog)
	assert.Equal(t, 200*time.Millisecond, cfg.Animation.Leave.Std())
	assert.Equal(t, 250*time.Millisecond, cfg.Animation.Enter.Std())
	assert.Equal(t, []advice.Category{advice.DigitalLife}, cfg.InitialScope().Categories())

	var logCfg struct {
		Level string `yaml:"level"`
	}
	require.NoError(t, cfg.UnmarshalExtension("logging", &logCfg))
	assert.Equal(t, "warn", logCfg.Level)
}

func TestLoadFromBytesInvalid(t *testing.T) {
	_, err := LoadFromBytes([]byte("filter: [unclosed"), FormatYAML)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigInvalid, errors.GetCode(err))

	_, err = LoadFromBytes([]byte("animation:\n  leave: soon\n"), FormatYAML)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigInvalid, errors.GetCode(err))
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("CARDVICE_TEST_CATALOG", "/data/cards.yml")
	t.Setenv("CARDVICE_TEST_EMPTY", "")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"set variable", "catalog: ${CARDVICE_TEST_CATALOG}", "catalog: /data/cards.yml"},
		{"default used", "theme: ${CARDVICE_TEST_EMPTY:-terminal}", "theme: terminal"},
		{"default ignored", "catalog: ${CARDVICE_TEST_CATALOG:-/other}", "catalog: /data/cards.yml"},
		{"unset without default", "theme: ${CARDVICE_TEST_UNSET}", "theme: "},
		{"no variables", "theme: plain", "theme: plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, expandEnvVars(tt.input))
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0755))

	configPath := filepath.Join(root, "a", "cardvice.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("theme: terminal\n"), 0644))

	found, err := FindConfigFile(nested)
	require.NoError(t, err)
	assert.Equal(t, configPath, found)

	// The nearest file wins
	nearer := filepath.Join(nested, ".cardvice.yaml")
	require.NoError(t, os.WriteFile(nearer, []byte("theme: kanagawa\n"), 0644))
	found, err = FindConfigFile(nested)
	require.NoError(t, err)
	assert.Equal(t, nearer, found)
}

func TestLoadResolvesRelativeCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cardvice.yml")
	require.NoError(t, os.WriteFile(path, []byte("catalog: decks/advice.yml\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "decks", "advice.yml"), cfg.Catalog)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigNotFound))
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatTOML, FormatForPath("cardvice.toml"))
	assert.Equal(t, FormatTOML, FormatForPath("/etc/CARDVICE.TOML"))
	assert.Equal(t, FormatYAML, FormatForPath("cardvice.yml"))
	assert.Equal(t, FormatYAML, FormatForPath(".cardvice.yaml"))
}
