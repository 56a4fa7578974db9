package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
)

func TestBaseSections(t *testing.T) {
	km := NewBase()

	sections := km.Sections()
	if assert.Len(t, sections, 2) {
		assert.Equal(t, SectionNavigation, sections[0].Name)
		assert.Equal(t, SectionSystem, sections[1].Name)
	}
	assert.Equal(t, km.Quit.Keys(), km.Common().Quit.Keys())
	assert.Equal(t, []key.Binding{km.Help, km.Quit}, km.ShortHelp())
}

func TestSectionFilterEnabled(t *testing.T) {
	on := key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next"))
	off := key.NewBinding(key.WithKeys("x"), key.WithDisabled())

	s := ActionsSection(on, off)
	assert.Len(t, s.FilterEnabled(), 1)
	assert.False(t, s.IsEmpty())
	assert.True(t, NewSection("Empty", off).IsEmpty())
	assert.Equal(t, SectionFilter, FilterSection(on).Name)
}
