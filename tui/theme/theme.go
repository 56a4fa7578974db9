package theme

import (
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/cardvice/config"
	"github.com/grovetools/cardvice/pkg/advice"
)

const defaultThemeName = "kanagawa"

// Colors is the palette a theme is built from.
type Colors struct {
	Green     lipgloss.TerminalColor
	Yellow    lipgloss.TerminalColor
	Red       lipgloss.TerminalColor
	Orange    lipgloss.TerminalColor
	Cyan      lipgloss.TerminalColor
	Blue      lipgloss.TerminalColor
	Violet    lipgloss.TerminalColor
	Pink      lipgloss.TerminalColor
	LightText lipgloss.TerminalColor
	MutedText lipgloss.TerminalColor
	DarkText  lipgloss.TerminalColor
	Border    lipgloss.TerminalColor
}

// Theme holds the styles shared by the CLI and the card view.
type Theme struct {
	Name   string
	Colors Colors

	Header lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	Bold      lipgloss.Style
	Normal    lipgloss.Style
	Muted     lipgloss.Style
	Highlight lipgloss.Style
	Accent    lipgloss.Style

	Sidebar lipgloss.Style
	Card    lipgloss.Style
	// CardShadow colors the edges drawn under the card to suggest a stack.
	CardShadow lipgloss.Style
	Button     lipgloss.Style

	// AccentColors are handed out to categories by display position.
	AccentColors []lipgloss.TerminalColor
}

// pair is a light/dark hex pair.
type pair [2]string

func (p pair) color() lipgloss.TerminalColor {
	return lipgloss.AdaptiveColor{Light: p[0], Dark: p[1]}
}

// palette lists roles in Colors field order.
type palette struct {
	green, yellow, red, orange, cyan, blue, violet, pink pair
	lightText, mutedText, darkText, border               pair
}

func (p palette) colors() Colors {
	return Colors{
		Green:     p.green.color(),
		Yellow:    p.yellow.color(),
		Red:       p.red.color(),
		Orange:    p.orange.color(),
		Cyan:      p.cyan.color(),
		Blue:      p.blue.color(),
		Violet:    p.violet.color(),
		Pink:      p.pink.color(),
		LightText: p.lightText.color(),
		MutedText: p.mutedText.color(),
		DarkText:  p.darkText.color(),
		Border:    p.border.color(),
	}
}

var palettes = map[string]func() Colors{
	"kanagawa": palette{
		green:     pair{"#4E7C5A", "#98BB6C"},
		yellow:    pair{"#A68A64", "#FF9E3B"},
		red:       pair{"#C34043", "#FF5D62"},
		orange:    pair{"#CC6B4E", "#FFA066"},
		cyan:      pair{"#5B8BBE", "#7E9CD8"},
		blue:      pair{"#4F7CAC", "#7FB4CA"},
		violet:    pair{"#674D7A", "#957FB8"},
		pink:      pair{"#B35C74", "#D27E99"},
		lightText: pair{"#2B2F42", "#DCD7BA"},
		mutedText: pair{"#6C7086", "#727169"},
		darkText:  pair{"#E6E9EF", "#1D1C19"},
		border:    pair{"#B5BDC5", "#363646"},
	}.colors,
	"gruvbox": palette{
		green:     pair{"#98971A", "#B8BB26"},
		yellow:    pair{"#D79921", "#FABD2F"},
		red:       pair{"#CC241D", "#FB4934"},
		orange:    pair{"#D65D0E", "#FE8019"},
		cyan:      pair{"#458588", "#83A598"},
		blue:      pair{"#076678", "#458588"},
		violet:    pair{"#8F3F71", "#B16286"},
		pink:      pair{"#B57679", "#D3869B"},
		lightText: pair{"#3C3836", "#EBDBB2"},
		mutedText: pair{"#928374", "#BDAE93"},
		darkText:  pair{"#F9F5D7", "#1D2021"},
		border:    pair{"#D5C4A1", "#504945"},
	}.colors,
	"terminal": ansiColors,
}

// ansiColors uses the terminal's own 16-color table.
func ansiColors() Colors {
	return Colors{
		Green:     lipgloss.Color("2"),
		Yellow:    lipgloss.Color("3"),
		Red:       lipgloss.Color("1"),
		Orange:    lipgloss.Color("208"),
		Cyan:      lipgloss.Color("6"),
		Blue:      lipgloss.Color("4"),
		Violet:    lipgloss.Color("5"),
		Pink:      lipgloss.Color("13"),
		LightText: lipgloss.Color("7"),
		MutedText: lipgloss.Color("8"),
		DarkText:  lipgloss.Color("0"),
		Border:    lipgloss.Color("8"),
	}
}

var aliases = map[string]string{
	"kanagawa-dark":   "kanagawa",
	"kanagawa-dragon": "kanagawa",
	"kanagawa-wave":   "kanagawa",
	"gruvbox-dark":    "gruvbox",
	"gruvbox-light":   "gruvbox",
	"ansi":            "terminal",
}

// DefaultTheme is picked from CARDVICE_THEME, then the theme key of the
// configuration.
var DefaultTheme = NewThemeWithName(configuredName())

// NewThemeWithName builds the named theme. Unknown names get the default.
func NewThemeWithName(name string) *Theme {
	key := canonicalName(name)
	return build(key, palettes[key]())
}

// Names lists the available palettes.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CategoryColor returns the accent of a category, or the muted text color
// for items without one.
func (t *Theme) CategoryColor(c advice.Category) lipgloss.TerminalColor {
	i := c.Index()
	if i < 0 {
		return t.Colors.MutedText
	}
	return t.AccentColors[i%len(t.AccentColors)]
}

// Known reports whether name selects a palette, directly or by alias.
func Known(name string) bool {
	key := normalize(name)
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	_, ok := palettes[key]
	return ok
}

func build(name string, c Colors) *Theme {
	bold := lipgloss.NewStyle().Bold(true)
	return &Theme{
		Name:   name,
		Colors: c,

		Header: bold.MarginBottom(1),

		Success: bold.Foreground(c.Green),
		Error:   bold.Foreground(c.Red),
		Warning: bold.Foreground(c.Yellow),
		Info:    bold.Foreground(c.Cyan),

		Bold:      bold,
		Normal:    lipgloss.NewStyle(),
		Muted:     lipgloss.NewStyle().Faint(true),
		Highlight: bold.Foreground(c.Orange),
		Accent:    bold.Foreground(c.Violet),

		Sidebar: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(c.Border).
			PaddingRight(2),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Violet).
			Padding(1, 3).
			Align(lipgloss.Center, lipgloss.Center),

		CardShadow: lipgloss.NewStyle().Foreground(c.Border),

		Button: lipgloss.NewStyle().
			Foreground(c.DarkText).
			Background(c.Violet).
			Padding(0, 2),

		AccentColors: []lipgloss.TerminalColor{
			c.Cyan, c.Blue, c.Violet, c.Pink, c.Green, c.Orange, c.Yellow, c.Red,
		},
	}
}

func canonicalName(name string) string {
	key := normalize(name)
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	if _, ok := palettes[key]; ok {
		return key
	}
	return defaultThemeName
}

func normalize(name string) string {
	return strings.NewReplacer(" ", "-", "_", "-").Replace(strings.ToLower(strings.TrimSpace(name)))
}

func configuredName() string {
	if name := os.Getenv("CARDVICE_THEME"); name != "" {
		return name
	}
	if cfg, err := config.LoadDefault(); err == nil && cfg != nil {
		return cfg.Theme
	}
	return defaultThemeName
}
