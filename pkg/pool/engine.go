// Package pool serves advice items from per-scope shuffled pools.
//
// Each scope owns a pool holding the not-yet-served items of its current
// cycle. An empty pool is refilled with a fresh uniform shuffle of the full
// scope, so every item is served exactly once before any repeats. The item
// drawn first after a refill is kept different from the previously served item
// when the scope allows it.
package pool

import (
	"math/rand/v2"
	"sync"

	"github.com/grovetools/cardvice/logging"
	"github.com/grovetools/cardvice/pkg/advice"
	"github.com/sirupsen/logrus"
)

// Engine draws items from a catalog. It is safe for concurrent use.
//
// The boundary guard compares against the last item the engine served, across
// all scopes. Callers that discard drawn items without showing them weaken the
// guard; the deck only draws while idle, so there every served item is shown.
type Engine struct {
	mu      sync.Mutex
	catalog advice.Catalog
	pools   map[string][]advice.Item
	last    advice.Item
	hasLast bool
	rng     *rand.Rand
	logger  *logrus.Entry
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used for shuffling.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = r
	}
}

// WithLogger sets the logger used for refill diagnostics.
func WithLogger(l *logrus.Entry) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an engine over the given catalog. The catalog is copied.
func New(catalog advice.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog: catalog.Clone(),
		pools:   make(map[string][]advice.Item),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if e.logger == nil {
		e.logger = logging.NewLogger("pool")
	}
	return e
}

// Draw removes and returns the next item for scope.
//
// A scope with no items yields advice.NoAdvice and leaves all state untouched.
// A scope with a single item always yields that item.
func (e *Engine) Draw(scope advice.Scope) advice.Item {
	e.mu.Lock()
	defer e.mu.Unlock()

	full := e.catalog.Items(scope)
	switch len(full) {
	case 0:
		return advice.NoAdvice
	case 1:
		e.remember(full[0])
		return full[0]
	}

	key := scope.Key()
	p := e.pools[key]
	if len(p) == 0 {
		p = e.refill(key, full)
	}

	// The pool is a stack: the last element is served next.
	item := p[len(p)-1]
	e.pools[key] = p[:len(p)-1]
	e.remember(item)
	return item
}

// refill shuffles a copy of full and guards the refill boundary against an
// immediate repeat of the previously served item. The swap target is picked
// among positions whose text differs from that item; when every text matches
// the shuffle is left alone. The guard swaps once and is not a guarantee for
// later draws of the same cycle.
func (e *Engine) refill(key string, full []advice.Item) []advice.Item {
	p := make([]advice.Item, len(full))
	copy(p, full)
	for i := len(p) - 1; i > 0; i-- {
		j := e.rng.IntN(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	swapped := false
	next := len(p) - 1
	if e.hasLast && p[next].SameText(e.last) {
		var candidates []int
		for i := 0; i < next; i++ {
			if !p[i].SameText(e.last) {
				candidates = append(candidates, i)
			}
		}
		if len(candidates) > 0 {
			other := candidates[e.rng.IntN(len(candidates))]
			p[next], p[other] = p[other], p[next]
			swapped = true
		}
	}

	e.logger.WithFields(logrus.Fields{
		"scope":   key,
		"size":    len(p),
		"swapped": swapped,
	}).Debug("Refilled pool")
	return p
}

func (e *Engine) remember(item advice.Item) {
	e.last = item
	e.hasLast = true
}

// Remaining returns how many items are left in the scope's current cycle.
func (e *Engine) Remaining(scope advice.Scope) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.pools[scope.Key()])
}

// Visited reports whether a pool has been created for scope.
func (e *Engine) Visited(scope advice.Scope) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.pools[scope.Key()]
	return ok
}

// Last returns the most recently served item, if any.
func (e *Engine) Last() (advice.Item, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.last, e.hasLast
}

// Catalog returns a copy of the catalog the engine draws from.
func (e *Engine) Catalog() advice.Catalog {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.catalog.Clone()
}

// Size returns the number of items scope resolves to.
func (e *Engine) Size(scope advice.Scope) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.catalog.Size(scope)
}

// SetCatalog replaces the catalog and discards every pool, so each scope
// starts a fresh cycle over the new content. The last served item is kept for
// the refill boundary guard.
func (e *Engine) SetCatalog(catalog advice.Catalog) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.catalog = catalog.Clone()
	e.pools = make(map[string][]advice.Item)
	e.logger.WithField("categories", len(catalog)).Info("Catalog replaced, pools reset")
}
