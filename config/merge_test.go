package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHierarchicalMerging tests the two-level configuration merge:
// global -> project
func TestHierarchicalMerging(t *testing.T) {
	tmpDir := t.TempDir()

	xdg := filepath.Join(tmpDir, "xdg")
	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "cardvice"), 0755))
	t.Setenv("XDG_CONFIG_HOME", xdg)

	globalConfig := `
theme: kanagawa
filter:
  mode: multi
animation:
  leave: 100ms
keys:
  next: [j]
  quit: [ctrl+c]
logging:
  level: info
`
	require.NoError(t, os.WriteFile(filepath.Join(xdg, "cardvice", "cardvice.yml"), []byte(globalConfig), 0644))

	projectDir := filepath.Join(tmpDir, "project")
	require.NoError(t, os.MkdirAll(projectDir, 0755))
	projectConfig := `
theme: gruvbox
animation:
  enter: 50ms
keys:
  next: [space]
`
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "cardvice.yml"), []byte(projectConfig), 0644))

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)

	cfg, err := LoadFromWithLogger(projectDir, logger)
	require.NoError(t, err)

	assert.Equal(t, "gruvbox", cfg.Theme, "project overrides global")
	assert.Equal(t, "multi", cfg.Filter.Mode, "global value survives")
	assert.Equal(t, 100*time.Millisecond, cfg.Animation.Leave.Std())
	assert.Equal(t, 50*time.Millisecond, cfg.Animation.Enter.Std())
	assert.Equal(t, []string{"space"}, cfg.Keys["next"])
	assert.Equal(t, []string{"ctrl+c"}, cfg.Keys["quit"])
	assert.Contains(t, cfg.Extensions, "logging")
}

func TestLoadLayered(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "empty-xdg"))

	projectDir := filepath.Join(tmpDir, "project")
	require.NoError(t, os.MkdirAll(projectDir, 0755))
	path := filepath.Join(projectDir, "cardvice.toml")
	require.NoError(t, os.WriteFile(path, []byte("theme = \"terminal\"\n"), 0644))

	layered, err := LoadLayered(projectDir)
	require.NoError(t, err)

	assert.Nil(t, layered.Global)
	require.NotNil(t, layered.Project)
	assert.Equal(t, path, layered.FilePaths[SourceProject])
	assert.Equal(t, "terminal", layered.Final.Theme)
	assert.Equal(t, "single", layered.Default.Filter.Mode)
}

func TestLoadFromWithoutFiles(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	cfg, err := LoadFrom(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "single", cfg.Filter.Mode)
	assert.Equal(t, DefaultLeave, cfg.Animation.Leave.Std())
}

func TestMergeConfigsWatch(t *testing.T) {
	off := false
	on := true

	merged := mergeConfigs(&Config{Watch: &on}, &Config{Watch: &off})
	assert.False(t, merged.WatchEnabled())

	merged = mergeConfigs(&Config{Watch: &off}, &Config{})
	assert.False(t, merged.WatchEnabled(), "unset override keeps the base value")
}
