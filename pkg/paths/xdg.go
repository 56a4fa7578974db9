// Package paths provides XDG-compliant path resolution for cardvice.
//
// Resolution order:
// 1. CARDVICE_HOME (portable root) → $CARDVICE_HOME/{config,state}
// 2. XDG env vars → $XDG_*_HOME/cardvice
// 3. Platform defaults → ~/.config/cardvice, ~/.local/state/cardvice
package paths

import (
	"os"
	"path/filepath"
)

const appName = "cardvice"

// resolve returns <portable>/<sub> when CARDVICE_HOME is set, otherwise
// $<xdgVar>/cardvice or ~/<fallback...>/cardvice.
func resolve(sub, xdgVar string, fallback ...string) string {
	if home := os.Getenv("CARDVICE_HOME"); home != "" {
		return filepath.Join(home, sub)
	}
	if base := os.Getenv(xdgVar); base != "" {
		return filepath.Join(base, appName)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	parts := append([]string{homeDir}, fallback...)
	return filepath.Join(append(parts, appName)...)
}

// ConfigDir returns the directory of the global cardvice.yml.
func ConfigDir() string {
	return resolve("config", "XDG_CONFIG_HOME", ".config")
}

// StateDir returns the directory for runtime state such as logs.
func StateDir() string {
	return resolve("state", "XDG_STATE_HOME", ".local", "state")
}

// LogDir returns the directory of the component log files.
func LogDir() string {
	state := StateDir()
	if state == "" {
		return ""
	}
	return filepath.Join(state, "logs")
}
