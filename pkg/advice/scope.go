package advice

import (
	"sort"
	"strings"

	"github.com/grovetools/cardvice/errors"
)

// FilterMode controls how a category filter action changes the active scope.
type FilterMode string

const (
	// FilterSingle allows at most one active category. Selecting the active
	// category again clears the filter.
	FilterSingle FilterMode = "single"
	// FilterMulti allows any set of categories; the scope is their union.
	FilterMulti FilterMode = "multi"
)

// ParseFilterMode validates a configured mode. Empty means single.
func ParseFilterMode(s string) (FilterMode, error) {
	switch FilterMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", FilterSingle:
		return FilterSingle, nil
	case FilterMulti:
		return FilterMulti, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "filter mode must be 'single' or 'multi'").
		WithDetail("mode", s)
}

// Scope selects which catalog items are eligible for a draw. The zero value
// selects every category.
type Scope struct {
	tags []Category
}

const allScopeKey = "all"

// AllScope returns the scope covering the whole catalog.
func AllScope() Scope {
	return Scope{}
}

// ScopeOf returns a scope limited to the given categories. Unknown and
// duplicate tags are dropped; no tags means all categories.
func ScopeOf(categories ...Category) Scope {
	seen := make(map[Category]bool, len(categories))
	var tags []Category
	for _, c := range categories {
		if !c.Valid() || seen[c] {
			continue
		}
		seen[c] = true
		tags = append(tags, c)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Index() < tags[j].Index() })
	return Scope{tags: tags}
}

// IsAll reports whether the scope covers every category.
func (s Scope) IsAll() bool {
	return len(s.tags) == 0
}

// Categories returns the selected categories in display order.
func (s Scope) Categories() []Category {
	out := make([]Category, len(s.tags))
	copy(out, s.tags)
	return out
}

// Contains reports whether c is selected. The all scope contains every category.
func (s Scope) Contains(c Category) bool {
	if s.IsAll() {
		return c.Valid()
	}
	for _, t := range s.tags {
		if t == c {
			return true
		}
	}
	return false
}

// Selected reports whether c is explicitly part of the filter.
func (s Scope) Selected(c Category) bool {
	return !s.IsAll() && s.Contains(c)
}

// Key is the canonical identifier used to index per-scope pools.
func (s Scope) Key() string {
	if s.IsAll() {
		return allScopeKey
	}
	parts := make([]string, len(s.tags))
	for i, t := range s.tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, "+")
}

// Equal reports whether two scopes select the same categories.
func (s Scope) Equal(other Scope) bool {
	return s.Key() == other.Key()
}

func (s Scope) String() string {
	if s.IsAll() {
		return "All"
	}
	parts := make([]string, len(s.tags))
	for i, t := range s.tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, " + ")
}

// Toggle applies a category filter action and returns the resulting scope.
func (s Scope) Toggle(c Category, mode FilterMode) Scope {
	if !c.Valid() {
		return s
	}
	if mode == FilterMulti {
		if s.Selected(c) {
			var rest []Category
			for _, t := range s.tags {
				if t != c {
					rest = append(rest, t)
				}
			}
			return ScopeOf(rest...)
		}
		return ScopeOf(append(s.Categories(), c)...)
	}

	if len(s.tags) == 1 && s.tags[0] == c {
		return AllScope()
	}
	return ScopeOf(c)
}
