package theme

import (
	"os"

	"github.com/grovetools/cardvice/config"
)

// Nerd Font icons
const (
	nerdIconSuccess   = "󰄬" // md-check (U+F012C)
	nerdIconError     = "" // cod-error (U+EA87)
	nerdIconWarning   = "" // fa-warning (U+F071)
	nerdIconInfo      = "󰋼" // md-information (U+F02FC)
	nerdIconSelect    = "󰄲" // md-checkbox_marked (U+F0132)
	nerdIconUnselect  = "󰄱" // md-checkbox_blank_outline (U+F0131)
	nerdIconArrow     = "󰁔" // md-arrow_right (U+F0054)
	nerdIconFilter    = "󱣬" // md-filter_check (U+F18EC)
	nerdIconCards     = "󰘸" // md-cards (U+F0638)
	nerdIconReloading = "" // fa-refresh (U+F021)
)

// Unicode icons that render without a patched font
const (
	unicodeIconSuccess   = "✓"
	unicodeIconError     = "✗"
	unicodeIconWarning   = "⚠"
	unicodeIconInfo      = "ℹ"
	unicodeIconSelect    = "●"
	unicodeIconUnselect  = "○"
	unicodeIconArrow     = "→"
	unicodeIconFilter    = "⧩"
	unicodeIconCards     = "▤"
	unicodeIconReloading = "↻"
)

// ASCII fallback icons
const (
	asciiIconSuccess   = "[OK]"
	asciiIconError     = "[X]"
	asciiIconWarning   = "[!]"
	asciiIconInfo      = "[i]"
	asciiIconSelect    = "[x]"
	asciiIconUnselect  = "[ ]"
	asciiIconArrow     = "->"
	asciiIconFilter    = "[F]"
	asciiIconCards     = "[#]"
	asciiIconReloading = "[~]"
)

var (
	IconSuccess   string
	IconError     string
	IconWarning   string
	IconInfo      string
	IconSelect    string
	IconUnselect  string
	IconArrow     string
	IconFilter    string
	IconCards     string
	IconReloading string
)

// init picks the icon set from CARDVICE_ICONS or the "tui.icons" config key.
func init() {
	SetIconSet(iconSetName())
}

// SetIconSet switches between the "unicode" (default), "nerd" and "ascii" sets.
func SetIconSet(name string) {
	switch name {
	case "nerd":
		IconSuccess = nerdIconSuccess
		IconError = nerdIconError
		IconWarning = nerdIconWarning
		IconInfo = nerdIconInfo
		IconSelect = nerdIconSelect
		IconUnselect = nerdIconUnselect
		IconArrow = nerdIconArrow
		IconFilter = nerdIconFilter
		IconCards = nerdIconCards
		IconReloading = nerdIconReloading
	case "ascii":
		IconSuccess = asciiIconSuccess
		IconError = asciiIconError
		IconWarning = asciiIconWarning
		IconInfo = asciiIconInfo
		IconSelect = asciiIconSelect
		IconUnselect = asciiIconUnselect
		IconArrow = asciiIconArrow
		IconFilter = asciiIconFilter
		IconCards = asciiIconCards
		IconReloading = asciiIconReloading
	default:
		IconSuccess = unicodeIconSuccess
		IconError = unicodeIconError
		IconWarning = unicodeIconWarning
		IconInfo = unicodeIconInfo
		IconSelect = unicodeIconSelect
		IconUnselect = unicodeIconUnselect
		IconArrow = unicodeIconArrow
		IconFilter = unicodeIconFilter
		IconCards = unicodeIconCards
		IconReloading = unicodeIconReloading
	}
}

func iconSetName() string {
	if env := os.Getenv("CARDVICE_ICONS"); env != "" {
		return env
	}

	cfg, err := config.LoadDefault()
	if err != nil {
		return "unicode"
	}
	var tuiCfg struct {
		Icons string `yaml:"icons"`
	}
	if err := cfg.UnmarshalExtension("tui", &tuiCfg); err == nil && tuiCfg.Icons != "" {
		return tuiCfg.Icons
	}
	return "unicode"
}
