// Package tui holds terminal setup shared by the card player and the styled
// CLI output.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// InitializeTUI sets the lipgloss color profile from the environment.
// CLICOLOR_FORCE=1 or COLORTERM=truecolor force true color, which keeps
// output stable when the player runs under tmux in e2e scenarios. NO_COLOR
// disables color entirely. Without these variables lipgloss detects the
// profile itself.
func InitializeTUI() {
	lipgloss.SetColorProfile(colorProfile(os.Getenv, lipgloss.ColorProfile()))
}

func colorProfile(getenv func(string) string, detected termenv.Profile) termenv.Profile {
	switch {
	case getenv("NO_COLOR") != "":
		return termenv.Ascii
	case getenv("CLICOLOR_FORCE") == "1" || getenv("COLORTERM") == "truecolor":
		return termenv.TrueColor
	default:
		return detected
	}
}
