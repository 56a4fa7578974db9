package cardview

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/cardvice/config"
	"github.com/grovetools/cardvice/pkg/advice"
	"github.com/grovetools/cardvice/tui/keymap"
)

// KeyMap defines the keybindings for the card view. Field names map to
// snake_case keys in the "keys" section of cardvice.yml, e.g. toggle_self_care.
type KeyMap struct {
	keymap.Base

	Next        key.Binding
	ClearFilter key.Binding

	ToggleMoney       key.Binding
	ToggleRomance     key.Binding
	ToggleHealth      key.Binding
	ToggleSocial      key.Binding
	ToggleWork        key.Binding
	ToggleSelfCare    key.Binding
	ToggleFamily      key.Binding
	ToggleDailyHabits key.Binding
	ToggleFriends     key.Binding
	ToggleDigitalLife key.Binding
}

// DefaultKeyMap returns the default card view bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Base: keymap.NewBase(),
		Next: key.NewBinding(
			key.WithKeys(" ", "enter", "n"),
			key.WithHelp("space", "new card"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("a", "backspace"),
			key.WithHelp("a", "all categories"),
		),
		ToggleMoney:       toggleBinding("1", advice.Money),
		ToggleRomance:     toggleBinding("2", advice.Romance),
		ToggleHealth:      toggleBinding("3", advice.Health),
		ToggleSocial:      toggleBinding("4", advice.Social),
		ToggleWork:        toggleBinding("5", advice.Work),
		ToggleSelfCare:    toggleBinding("6", advice.SelfCare),
		ToggleFamily:      toggleBinding("7", advice.Family),
		ToggleDailyHabits: toggleBinding("8", advice.DailyHabits),
		ToggleFriends:     toggleBinding("9", advice.Friends),
		ToggleDigitalLife: toggleBinding("0", advice.DigitalLife),
	}
}

// NewKeyMap returns the default bindings with user overrides applied.
func NewKeyMap(overrides config.KeybindingSectionConfig) KeyMap {
	km := DefaultKeyMap()
	keymap.ApplyOverrides(&km, overrides)
	return km
}

// UnknownKeyActions returns the override names that match no player action.
func UnknownKeyActions(overrides config.KeybindingSectionConfig) []string {
	km := DefaultKeyMap()
	return keymap.ApplyOverrides(&km, overrides)
}

func toggleBinding(k string, c advice.Category) key.Binding {
	return key.NewBinding(
		key.WithKeys(k),
		key.WithHelp(k, c.String()),
	)
}

// Toggles returns the category toggles in display order, aligned with
// advice.AllCategories().
func (k KeyMap) Toggles() []key.Binding {
	return []key.Binding{
		k.ToggleMoney,
		k.ToggleRomance,
		k.ToggleHealth,
		k.ToggleSocial,
		k.ToggleWork,
		k.ToggleSelfCare,
		k.ToggleFamily,
		k.ToggleDailyHabits,
		k.ToggleFriends,
		k.ToggleDigitalLife,
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.ClearFilter, k.Help, k.Quit}
}

// Sections returns the bindings grouped for the full help overlay.
func (k KeyMap) Sections() []keymap.Section {
	return []keymap.Section{
		keymap.ActionsSection(k.Next),
		keymap.FilterSection(append(k.Toggles(), k.ClearFilter)...),
		k.Base.SystemSection(),
	}
}
