// Package transition sequences the leave and enter animations of the
// displayed advice item.
//
// The controller observes a request counter and a logical item owned by
// someone else. It copies the logical item into its displayed item only on
// the leaving -> entering edge, so visible content never changes outside a
// transition. There is no timeout: if an animation completion never arrives
// the controller stays in leaving or entering.
package transition

import (
	"sync"

	"github.com/grovetools/cardvice/pkg/advice"
)

// State is the phase of the transition cycle.
type State int

const (
	Idle State = iota
	Leaving
	Entering
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Leaving:
		return "leaving"
	case Entering:
		return "entering"
	default:
		return "unknown"
	}
}

// Source is the observed side of the controller: a monotonic request counter
// and the item that should be shown.
type Source interface {
	Requests() uint64
	Current() advice.Item
}

// Controller is the idle/leaving/entering state machine.
type Controller struct {
	mu        sync.Mutex
	source    Source
	state     State
	displayed advice.Item
	seen      uint64
	hook      func(from, to State)
}

// New creates an idle controller showing initial. Requests already counted by
// source are treated as seen.
func New(source Source, initial advice.Item) *Controller {
	return &Controller{
		source:    source,
		displayed: initial,
		seen:      source.Requests(),
	}
}

// OnTransition registers a hook called after every state change.
func (c *Controller) OnTransition(fn func(from, to State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hook = fn
}

// Observe checks the request counter. When idle and the counter moved, the
// controller enters Leaving and returns true; the caller should start the
// exit animation. In any other state the change stays pending.
func (c *Controller) Observe() bool {
	c.mu.Lock()
	if c.state != Idle {
		c.mu.Unlock()
		return false
	}
	requests := c.source.Requests()
	if requests == c.seen {
		c.mu.Unlock()
		return false
	}
	c.seen = requests
	hook := c.setState(Leaving)
	c.mu.Unlock()

	hook()
	return true
}

// OnExitAnimationDone moves Leaving -> Entering and copies the logical item
// into the displayed item. Returns false if the controller was not leaving.
func (c *Controller) OnExitAnimationDone() bool {
	c.mu.Lock()
	if c.state != Leaving {
		c.mu.Unlock()
		return false
	}
	c.displayed = c.source.Current()
	hook := c.setState(Entering)
	c.mu.Unlock()

	hook()
	return true
}

// OnEnterAnimationDone moves Entering -> Idle. Returns false if the controller
// was not entering.
func (c *Controller) OnEnterAnimationDone() bool {
	c.mu.Lock()
	if c.state != Entering {
		c.mu.Unlock()
		return false
	}
	hook := c.setState(Idle)
	c.mu.Unlock()

	hook()
	return true
}

// setState must be called with mu held. The returned func runs the hook and
// must be called after unlocking.
func (c *Controller) setState(to State) func() {
	from := c.state
	c.state = to
	fn := c.hook
	return func() {
		if fn != nil {
			fn(from, to)
		}
	}
}

// State returns the current phase.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Busy reports whether a transition is in progress.
func (c *Controller) Busy() bool {
	return c.State() != Idle
}

// Displayed returns the item currently rendered.
func (c *Controller) Displayed() advice.Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.displayed
}

// Pending reports whether the request counter moved since the last transition
// began.
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.source.Requests() != c.seen
}
