package keymap

import "github.com/charmbracelet/bubbles/key"

// Section names shown as headings in the help overlay.
const (
	SectionNavigation = "Navigation"
	SectionActions    = "Actions"
	SectionFilter     = "Filter"
	SectionSystem     = "System"
)

// Section is a named group of bindings in the help overlay.
type Section struct {
	Name     string
	Bindings []key.Binding
}

// SectionedKeyMap is implemented by keymaps that group their bindings for the
// help overlay.
type SectionedKeyMap interface {
	Sections() []Section
}

func NewSection(name string, bindings ...key.Binding) Section {
	return Section{Name: name, Bindings: bindings}
}

func NavigationSection(bindings ...key.Binding) Section {
	return NewSection(SectionNavigation, bindings...)
}

func ActionsSection(bindings ...key.Binding) Section {
	return NewSection(SectionActions, bindings...)
}

// FilterSection holds the category toggles and the clear binding.
func FilterSection(bindings ...key.Binding) Section {
	return NewSection(SectionFilter, bindings...)
}

func SystemSection(bindings ...key.Binding) Section {
	return NewSection(SectionSystem, bindings...)
}

// FilterEnabled returns the enabled bindings of the section.
func (s Section) FilterEnabled() []key.Binding {
	var result []key.Binding
	for _, b := range s.Bindings {
		if b.Enabled() {
			result = append(result, b)
		}
	}
	return result
}

// IsEmpty reports whether no binding of the section is enabled.
func (s Section) IsEmpty() bool {
	return len(s.FilterEnabled()) == 0
}
