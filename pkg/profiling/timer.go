// Package profiling adds opt-in timing spans and pprof output to the
// cardvice commands.
package profiling

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Stopper ends a timed span.
type Stopper interface {
	Stop()
}

type span struct {
	name     string
	depth    int
	start    time.Time
	duration time.Duration
}

// Timer records nested spans in the order they started.
type Timer struct {
	mu      sync.Mutex
	enabled bool
	start   time.Time
	spans   []*span
	depth   int
}

var defaultTimer = &Timer{}

// Enable turns on the global timer. Spans started before are not recorded.
func Enable() {
	defaultTimer.Enable()
}

// Start begins a span on the global timer. Use it as
// defer profiling.Start("name").Stop().
func Start(name string) Stopper {
	return defaultTimer.Start(name)
}

// Summarize prints the global timer's spans.
func Summarize(w io.Writer) {
	defaultTimer.Summarize(w)
}

// Enable turns the timer on and resets the total.
func (t *Timer) Enable() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.enabled {
		return
	}
	t.enabled = true
	t.start = time.Now()
}

// Start begins a span nested under the spans still running.
func (t *Timer) Start(name string) Stopper {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.enabled {
		return noopStopper{}
	}
	s := &span{name: name, depth: t.depth, start: time.Now()}
	t.spans = append(t.spans, s)
	t.depth++
	return &spanStopper{timer: t, span: s}
}

// Summarize prints every span indented by nesting depth, with its share of
// the total time since Enable.
func (t *Timer) Summarize(w io.Writer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.enabled {
		return
	}

	total := time.Since(t.start)
	fmt.Fprintln(w, "\n--- Timing Profile ---")
	for _, s := range t.spans {
		pct := 0.0
		if total > 0 {
			pct = float64(s.duration) / float64(total) * 100
		}
		dur := "running"
		if s.duration > 0 {
			dur = s.duration.Round(100 * time.Microsecond).String()
		}
		fmt.Fprintf(w, "%s- %s (%s, %.1f%%)\n", strings.Repeat("  ", s.depth), s.name, dur, pct)
	}
	fmt.Fprintf(w, "total %s\n", total.Round(100*time.Microsecond))
}

type spanStopper struct {
	timer *Timer
	span  *span
	once  sync.Once
}

func (s *spanStopper) Stop() {
	s.once.Do(func() {
		s.timer.mu.Lock()
		defer s.timer.mu.Unlock()
		s.span.duration = time.Since(s.span.start)
		if s.timer.depth > 0 {
			s.timer.depth--
		}
	})
}

type noopStopper struct{}

func (noopStopper) Stop() {}
