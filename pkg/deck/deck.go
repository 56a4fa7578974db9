// Package deck wires the pool engine to the transition controller. It owns
// the logical current item, the request counter and the active filter scope.
package deck

import (
	"sync"

	"github.com/grovetools/cardvice/logging"
	"github.com/grovetools/cardvice/pkg/advice"
	"github.com/grovetools/cardvice/pkg/pool"
	"github.com/grovetools/cardvice/pkg/transition"
	"github.com/sirupsen/logrus"
)

// Options configures a Deck.
type Options struct {
	Mode   advice.FilterMode
	Scope  advice.Scope
	Logger *logrus.Entry
}

// Deck is the orchestrator between user triggers, the pool engine and the
// transition controller.
type Deck struct {
	mu       sync.Mutex
	engine   *pool.Engine
	ctrl     *transition.Controller
	mode     advice.FilterMode
	scope    advice.Scope
	current  advice.Item
	requests uint64
	pending  bool
	logger   *logrus.Entry
}

// New creates a deck and draws the first item, which is displayed without a
// transition.
func New(engine *pool.Engine, opts Options) *Deck {
	d := &Deck{
		engine: engine,
		mode:   opts.Mode,
		scope:  opts.Scope,
		logger: opts.Logger,
	}
	if d.mode == "" {
		d.mode = advice.FilterSingle
	}
	if d.logger == nil {
		d.logger = logging.NewLogger("deck")
	}
	d.current = engine.Draw(d.scope)
	d.ctrl = transition.New(d, d.current)
	d.ctrl.OnTransition(func(from, to transition.State) {
		d.logger.WithFields(logrus.Fields{"from": from, "to": to}).Debug("Transition")
	})
	return d
}

// Requests implements transition.Source.
func (d *Deck) Requests() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.requests
}

// Current implements transition.Source.
func (d *Deck) Current() advice.Item {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

// Advance handles a user request for a new card. It is ignored while a
// transition is running. Returns true when a transition began and the host
// should start the exit animation.
func (d *Deck) Advance() bool {
	if d.ctrl.Busy() {
		d.logger.Debug("Advance ignored while transition is running")
		return false
	}
	d.draw()
	return d.ctrl.Observe()
}

// Toggle applies a category filter action and forces a new card from the
// resulting scope. While busy only the scope changes; the card is drawn once
// the running transition has finished.
func (d *Deck) Toggle(c advice.Category) bool {
	d.mu.Lock()
	next := d.scope.Toggle(c, d.mode)
	d.mu.Unlock()
	return d.SetScope(next)
}

// ClearFilter resets the scope to all categories. It is a no-op when no
// filter is active.
func (d *Deck) ClearFilter() bool {
	if d.Scope().IsAll() {
		return false
	}
	return d.SetScope(advice.AllScope())
}

// SetScope switches the active scope and forces a new card. While busy the
// draw is deferred until EnterDone, so no item is consumed without being
// shown.
func (d *Deck) SetScope(s advice.Scope) bool {
	d.mu.Lock()
	d.scope = s
	d.mu.Unlock()

	d.logger.WithField("scope", s.Key()).Info("Filter changed")
	if d.deferDraw() {
		return false
	}
	d.draw()
	return d.ctrl.Observe()
}

// deferDraw marks a draw as pending when a transition is running.
func (d *Deck) deferDraw() bool {
	if !d.ctrl.Busy() {
		return false
	}
	d.mu.Lock()
	d.pending = true
	d.mu.Unlock()
	d.logger.Debug("Draw deferred until transition ends")
	return true
}

// draw pulls the next item for the active scope and bumps the counter. The
// controller is never called with mu held.
func (d *Deck) draw() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.current = d.engine.Draw(d.scope)
	d.requests++
	d.logger.WithFields(logrus.Fields{
		"scope":    d.scope.Key(),
		"category": d.current.Category,
		"request":  d.requests,
	}).Debug("Drew card")
}

// ExitDone forwards the exit animation completion. Returns true when the
// controller moved to entering and the host should start the enter animation.
func (d *Deck) ExitDone() bool {
	return d.ctrl.OnExitAnimationDone()
}

// EnterDone forwards the enter animation completion. If a draw was deferred
// during the transition it happens now, a new transition starts and true is
// returned.
func (d *Deck) EnterDone() bool {
	if !d.ctrl.OnEnterAnimationDone() {
		return false
	}
	d.mu.Lock()
	pending := d.pending
	d.pending = false
	d.mu.Unlock()
	if pending {
		d.draw()
	}
	return d.ctrl.Observe()
}

// ReplaceCatalog swaps in new content. Pools restart; if nothing could be
// shown before, a new card is forced.
func (d *Deck) ReplaceCatalog(c advice.Catalog) bool {
	d.engine.SetCatalog(c)
	if d.Current() == advice.NoAdvice {
		if d.deferDraw() {
			return false
		}
		d.draw()
		return d.ctrl.Observe()
	}
	return false
}

// State returns the transition phase.
func (d *Deck) State() transition.State {
	return d.ctrl.State()
}

// Busy reports whether triggers are currently disabled.
func (d *Deck) Busy() bool {
	return d.ctrl.Busy()
}

// Displayed returns the card that should be rendered.
func (d *Deck) Displayed() advice.Item {
	return d.ctrl.Displayed()
}

// Scope returns the active filter scope.
func (d *Deck) Scope() advice.Scope {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.scope
}

// Mode returns the filter mode.
func (d *Deck) Mode() advice.FilterMode {
	return d.mode
}

// Remaining returns how many unseen cards are left in the active scope's cycle.
func (d *Deck) Remaining() int {
	return d.engine.Remaining(d.Scope())
}

// Size returns the number of cards in the active scope.
func (d *Deck) Size() int {
	return d.engine.Size(d.Scope())
}

// Counts returns the number of cards per category.
func (d *Deck) Counts() map[advice.Category]int {
	return d.engine.Catalog().Counts()
}
