package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPortableHome(t *testing.T) {
	t.Setenv("CARDVICE_HOME", "/opt/cardvice")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")

	assert.Equal(t, filepath.Join("/opt/cardvice", "config"), ConfigDir())
	assert.Equal(t, filepath.Join("/opt/cardvice", "state"), StateDir())
	assert.Equal(t, filepath.Join("/opt/cardvice", "state", "logs"), LogDir())
}

func TestXDGVariables(t *testing.T) {
	t.Setenv("CARDVICE_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_STATE_HOME", "/xdg/state")

	assert.Equal(t, filepath.Join("/xdg/config", "cardvice"), ConfigDir())
	assert.Equal(t, filepath.Join("/xdg/state", "cardvice", "logs"), LogDir())
}

func TestHomeFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("CARDVICE_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, ".config", "cardvice"), ConfigDir())
	assert.Equal(t, filepath.Join(home, ".local", "state", "cardvice"), StateDir())
}
