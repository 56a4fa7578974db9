package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/grovetools/cardvice/tui/keymap"
	"github.com/grovetools/cardvice/tui/theme"
)

// KeyMap is what the help component needs from a view's keymap.
type KeyMap interface {
	ShortHelp() []key.Binding
	Sections() []keymap.Section
	Common() keymap.Base
}

const (
	// overlayMargin is left free around the overlay on each axis.
	overlayMargin = 4
	columnGutter  = 4
)

// Model renders a one-line key summary, or a full overlay listing every
// section of the keymap that scrolls when it does not fit.
type Model struct {
	Keys    KeyMap
	ShowAll bool
	Width   int
	Height  int
	Theme   *theme.Theme
	Title   string

	vp viewport.Model
}

func New(keys KeyMap) Model {
	base := keys.Common()

	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = false
	vp.KeyMap.Up = base.Up
	vp.KeyMap.Down = base.Down
	vp.KeyMap.PageUp = base.PageUp
	vp.KeyMap.PageDown = base.PageDown
	vp.KeyMap.HalfPageUp = key.NewBinding(key.WithDisabled())
	vp.KeyMap.HalfPageDown = key.NewBinding(key.WithDisabled())

	return Model{
		Keys:  keys,
		Theme: theme.DefaultTheme,
		Title: "Help",
		vp:    vp,
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		if m.ShowAll {
			m.layout()
		}
	case tea.KeyMsg:
		if !m.ShowAll {
			return m, nil
		}
		base := m.Keys.Common()
		switch {
		case key.Matches(msg, base.Back, base.Help, base.Quit):
			m.Toggle()
			return m, nil
		case key.Matches(msg, base.Top):
			m.vp.GotoTop()
			return m, nil
		case key.Matches(msg, base.Bottom):
			m.vp.GotoBottom()
			return m, nil
		}
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if !m.ShowAll {
		return m.short()
	}

	content := m.vp.View()
	if m.vp.TotalLineCount() > m.vp.Height {
		content = lipgloss.JoinVertical(lipgloss.Right, content,
			m.Theme.Muted.Width(m.vp.Width).Align(lipgloss.Right).Render(m.scrollHint()))
	}
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) scrollHint() string {
	switch {
	case m.vp.AtTop():
		return "↓ more"
	case m.vp.AtBottom():
		return "↑ more"
	default:
		return "↕ more"
	}
}

func (m Model) short() string {
	var parts []string
	for _, b := range m.Keys.ShortHelp() {
		h := b.Help()
		if !b.Enabled() || h.Key == "" || h.Desc == "" {
			continue
		}
		parts = append(parts, m.Theme.Highlight.Render(h.Key)+" "+m.Theme.Muted.Render(h.Desc))
	}
	return strings.Join(parts, m.Theme.Muted.Render(" • "))
}

// Toggle opens or closes the overlay. Opening lays it out again and scrolls
// to the top.
func (m *Model) Toggle() {
	m.ShowAll = !m.ShowAll
	if m.ShowAll {
		m.layout()
		m.vp.GotoTop()
	}
}

func (m *Model) SetSize(width, height int) {
	m.Width = width
	m.Height = height
}

// layout renders the sections in one column, or in two when one column is
// too tall and two fit the width, and loads the result into the viewport.
func (m *Model) layout() {
	var boxes []string
	for _, s := range m.Keys.Sections() {
		if box := m.sectionBox(s); box != "" {
			boxes = append(boxes, box)
		}
	}

	// One line below the viewport is kept for the scroll hint.
	maxHeight := m.Height - overlayMargin - 1
	content := m.titled(lipgloss.JoinVertical(lipgloss.Left, boxes...))
	if lipgloss.Height(content) > maxHeight && len(boxes) > 1 {
		if two := m.titled(twoColumns(boxes)); lipgloss.Width(two) <= m.Width-overlayMargin {
			content = two
		}
	}

	m.vp.SetContent(content)
	m.vp.Width = lipgloss.Width(content)
	m.vp.Height = maxHeight
}

func (m *Model) titled(body string) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.Theme.Colors.Orange).
		MarginBottom(1).
		Width(lipgloss.Width(body)).
		Align(lipgloss.Center).
		Render(m.Title)
	return lipgloss.JoinVertical(lipgloss.Center, title, body)
}

// twoColumns appends each box to the shorter column.
func twoColumns(boxes []string) string {
	var cols [2][]string
	var heights [2]int
	for _, box := range boxes {
		i := 0
		if heights[1] < heights[0] {
			i = 1
		}
		cols[i] = append(cols[i], box)
		heights[i] += lipgloss.Height(box)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, cols[0]...),
		strings.Repeat(" ", columnGutter),
		lipgloss.JoinVertical(lipgloss.Left, cols[1]...),
	)
}

func (m *Model) sectionBox(s keymap.Section) string {
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(m.Theme.Colors.Blue)
	descStyle := m.Theme.Muted.Italic(true)

	t := ltable.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})
	rows := 0
	for _, b := range s.FilterEnabled() {
		h := b.Help()
		if h.Key == "" || h.Desc == "" {
			continue
		}
		t.Row(keyStyle.Render(h.Key), descStyle.Render(h.Desc))
		rows++
	}
	if rows == 0 {
		return ""
	}

	heading := lipgloss.NewStyle().
		Foreground(m.Theme.Colors.Orange).
		Italic(true).
		MarginBottom(1).
		Render(sectionIcon(s.Name) + " " + s.Name)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Theme.Colors.Border).
		Padding(0, 1).
		MarginBottom(1).
		Render(lipgloss.JoinVertical(lipgloss.Left, heading, t.String()))
}

func sectionIcon(name string) string {
	switch name {
	case keymap.SectionNavigation:
		return theme.IconArrow
	case keymap.SectionActions:
		return theme.IconCards
	case keymap.SectionFilter:
		return theme.IconFilter
	default:
		return theme.IconInfo
	}
}
