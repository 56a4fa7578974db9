// Package cardview is the full-screen card player: a category sidebar, the
// current card with its leave and enter animations, and a status line.
package cardview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/cardvice/pkg/advice"
	"github.com/grovetools/cardvice/pkg/deck"
	"github.com/grovetools/cardvice/tui/components/help"
	"github.com/grovetools/cardvice/tui/theme"
)

// Options configures the card view.
type Options struct {
	// Leave and Enter are the durations of the two animation phases.
	Leave time.Duration
	Enter time.Duration
	Keys  KeyMap
	Theme *theme.Theme
	// Source names the catalog in the status line.
	Source string
}

// Model represents the state of the card view.
type Model struct {
	deck   *deck.Deck
	keys   KeyMap
	help   help.Model
	theme  *theme.Theme
	leave  time.Duration
	enter  time.Duration
	source string

	width  int
	height int
	notice string
}

// exitDoneMsg reports that the leave animation finished.
type exitDoneMsg struct{}

// enterDoneMsg reports that the enter animation finished.
type enterDoneMsg struct{}

// CatalogReloadedMsg carries a catalog parsed by the file watcher. It is
// delivered with Program.Send from the watcher goroutine.
type CatalogReloadedMsg struct {
	Catalog advice.Catalog
}

// New creates a card view driving d.
func New(d *deck.Deck, opts Options) Model {
	t := opts.Theme
	if t == nil {
		t = theme.DefaultTheme
	}
	keys := opts.Keys
	if len(keys.Next.Keys()) == 0 {
		keys = DefaultKeyMap()
	}

	h := help.New(keys)
	h.Theme = t
	h.Title = "cardvice keys"

	return Model{
		deck:   d,
		keys:   keys,
		help:   h,
		theme:  t,
		leave:  opts.Leave,
		enter:  opts.Enter,
		source: opts.Source,
	}
}

// Init is the first command that will be executed.
func (m Model) Init() tea.Cmd {
	return nil
}

// Deck returns the deck driven by the view.
func (m Model) Deck() *deck.Deck {
	return m.deck
}

// after delivers msg once d has elapsed.
func after(d time.Duration, msg tea.Msg) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// startLeave schedules the end of the leave animation when a transition began.
func (m Model) startLeave(started bool) tea.Cmd {
	if !started {
		return nil
	}
	return after(m.leave, exitDoneMsg{})
}
