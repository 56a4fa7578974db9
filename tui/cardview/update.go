package cardview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/cardvice/pkg/advice"
)

// Update handles messages and updates the model accordingly.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetSize(m.width, m.height)
		return m, nil

	case tea.KeyMsg:
		if m.help.ShowAll {
			var cmd tea.Cmd
			m.help, cmd = m.help.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.help.ShowAll || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.handleClick(msg.X, msg.Y)

	case exitDoneMsg:
		if m.deck.ExitDone() {
			return m, after(m.enter, enterDoneMsg{})
		}
		return m, nil

	case enterDoneMsg:
		// A request that arrived mid-transition starts the next one right away.
		return m, m.startLeave(m.deck.EnterDone())

	case CatalogReloadedMsg:
		m.notice = "catalog reloaded"
		return m, m.startLeave(m.deck.ReplaceCatalog(msg.Catalog))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.Toggle()
		return m, nil
	case key.Matches(msg, m.keys.Next):
		m.notice = ""
		return m, m.startLeave(m.deck.Advance())
	case key.Matches(msg, m.keys.ClearFilter):
		m.notice = ""
		return m, m.startLeave(m.deck.ClearFilter())
	}

	cats := advice.AllCategories()
	for i, binding := range m.keys.Toggles() {
		if key.Matches(msg, binding) {
			m.notice = ""
			return m, m.startLeave(m.deck.Toggle(cats[i]))
		}
	}
	return m, nil
}

// handleClick toggles a category when a sidebar row is clicked and asks for a
// new card anywhere else.
func (m Model) handleClick(x, y int) (tea.Model, tea.Cmd) {
	if x < sidebarWidth {
		row := y - sidebarFirstRow
		cats := advice.AllCategories()
		switch {
		case row == 0:
			return m, m.startLeave(m.deck.ClearFilter())
		case row >= 1 && row <= len(cats):
			return m, m.startLeave(m.deck.Toggle(cats[row-1]))
		}
		return m, nil
	}
	return m, m.startLeave(m.deck.Advance())
}
