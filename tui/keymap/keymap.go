package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// Base contains the keybindings shared by every cardvice view: scrolling in
// overlays plus the system keys.
type Base struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding

	Back key.Binding
	Help key.Binding
	Quit key.Binding
}

// NewBase creates a Base keymap with the default bindings.
func NewBase() Base {
	return Base{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("ctrl+u", "pgup"),
			key.WithHelp("C-u", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("ctrl+d", "pgdown"),
			key.WithHelp("C-d", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the system bindings for the one-line help.
func (k Base) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// Sections returns the base bindings grouped for the full help overlay.
func (k Base) Sections() []Section {
	return []Section{
		k.NavigationSection(),
		k.SystemSection(),
	}
}

// NavigationSection returns the scrolling bindings.
func (k Base) NavigationSection() Section {
	return NavigationSection(k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom)
}

// SystemSection returns the system bindings.
func (k Base) SystemSection() Section {
	return SystemSection(k.Back, k.Help, k.Quit)
}

// Common returns the shared bindings; views embedding Base inherit it.
func (k Base) Common() Base {
	return k
}
