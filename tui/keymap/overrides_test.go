package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/cardvice/config"
)

func TestCamelToSnake(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"NextCard", "next_card"},
		{"ClearFilter", "clear_filter"},
		{"HTTPServer", "h_t_t_p_server"}, // Edge case with consecutive caps
		{"Up", "up"},
		{"PageUp", "page_up"},
		{"ToggleDigitalLife", "toggle_digital_life"},
		{"A", "a"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := camelToSnake(tt.input)
			if result != tt.expected {
				t.Errorf("camelToSnake(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

// TestKeyMap is a sample keymap for testing
type TestKeyMap struct {
	Base
	NextCard    key.Binding
	ClearFilter key.Binding
	ToggleHelp  key.Binding
	unexported  key.Binding // Should be skipped
	NotABinding string      // Should be skipped
}

func TestApplyOverrides(t *testing.T) {
	km := TestKeyMap{
		Base: NewBase(),
		NextCard: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "next card"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "clear filter"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "toggle help"),
		),
		NotABinding: "not a binding",
	}

	overrides := config.KeybindingSectionConfig{
		"next_card":     {"L"},
		"clear_filter":  {"R", "enter"},
		"not_a_binding": {"x"}, // string field, reported as unknown
	}

	unknown := ApplyOverrides(&km, overrides)
	if len(unknown) != 1 || unknown[0] != "not_a_binding" {
		t.Errorf("unknown = %v, want [not_a_binding]", unknown)
	}

	// Check NextCard was updated
	if keys := km.NextCard.Keys(); len(keys) != 1 || keys[0] != "L" {
		t.Errorf("NextCard keys = %v, want [L]", keys)
	}
	if help := km.NextCard.Help().Desc; help != "next card" {
		t.Errorf("NextCard help = %q, want %q", help, "next card")
	}

	// Check ClearFilter was updated with multiple keys
	if keys := km.ClearFilter.Keys(); len(keys) != 2 || keys[0] != "R" || keys[1] != "enter" {
		t.Errorf("ClearFilter keys = %v, want [R enter]", keys)
	}

	// Check ToggleHelp was NOT updated (no override provided)
	if keys := km.ToggleHelp.Keys(); len(keys) != 1 || keys[0] != "g" {
		t.Errorf("ToggleHelp keys = %v, want [g]", keys)
	}

	// Check NotABinding was NOT modified
	if km.NotABinding != "not a binding" {
		t.Errorf("NotABinding = %q, want %q", km.NotABinding, "not a binding")
	}
}

func TestApplyOverrides_NilOverrides(t *testing.T) {
	km := TestKeyMap{
		NextCard: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "next card"),
		),
	}

	// Should not panic with nil overrides
	ApplyOverrides(&km, nil)

	// Should remain unchanged
	if keys := km.NextCard.Keys(); len(keys) != 1 || keys[0] != "l" {
		t.Errorf("NextCard keys = %v, want [l]", keys)
	}
}

func TestApplyOverrides_NonPointer(t *testing.T) {
	km := TestKeyMap{
		NextCard: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "next card"),
		),
	}

	overrides := config.KeybindingSectionConfig{
		"next_card": []string{"L"},
	}

	// Should not panic when passed non-pointer (but won't modify)
	ApplyOverrides(km, overrides)

	// Should remain unchanged since we passed by value
	if keys := km.NextCard.Keys(); len(keys) != 1 || keys[0] != "l" {
		t.Errorf("NextCard keys = %v, want [l]", keys)
	}
}

func TestApplyOverrides_EmbeddedStruct(t *testing.T) {
	km := TestKeyMap{
		Base: NewBase(),
		NextCard: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "next card"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "clear filter"),
		),
	}

	overrides := config.KeybindingSectionConfig{
		"next_card": []string{"L"},      // Top-level field
		"up":        []string{"w"},      // From embedded Base struct
		"quit":      []string{"Q", "x"}, // From embedded Base struct
	}

	ApplyOverrides(&km, overrides)

	// Check NextCard was updated (top-level field)
	if keys := km.NextCard.Keys(); len(keys) != 1 || keys[0] != "L" {
		t.Errorf("NextCard keys = %v, want [L]", keys)
	}

	// Check Up was updated (embedded Base field)
	if keys := km.Base.Up.Keys(); len(keys) != 1 || keys[0] != "w" {
		t.Errorf("Base.Up keys = %v, want [w]", keys)
	}

	// Check Quit was updated with multiple keys (embedded Base field)
	if keys := km.Base.Quit.Keys(); len(keys) != 2 || keys[0] != "Q" || keys[1] != "x" {
		t.Errorf("Base.Quit keys = %v, want [Q x]", keys)
	}

	// Check ClearFilter was NOT updated (no override provided)
	if keys := km.ClearFilter.Keys(); len(keys) != 1 || keys[0] != "r" {
		t.Errorf("ClearFilter keys = %v, want [r]", keys)
	}

	// Check Down was NOT updated (no override provided, should remain default)
	defaultDownKeys := NewBase().Down.Keys()
	if keys := km.Base.Down.Keys(); len(keys) != len(defaultDownKeys) || keys[0] != defaultDownKeys[0] {
		t.Errorf("Base.Down keys = %v, want %v", keys, defaultDownKeys)
	}
}

func TestApplyOverrides_SpaceLabel(t *testing.T) {
	km := TestKeyMap{
		NextCard: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next card")),
	}

	ApplyOverrides(&km, config.KeybindingSectionConfig{"next_card": {" ", "n"}})

	if label := km.NextCard.Help().Key; label != "space" {
		t.Errorf("NextCard help key = %q, want %q", label, "space")
	}
}
