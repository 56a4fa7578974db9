package advice

import (
	"sort"

	"github.com/grovetools/cardvice/errors"
)

// Catalog maps each category to its ordered advice texts. A catalog is
// treated as read-only once handed to an engine.
type Catalog map[Category][]string

// Validate checks that every key is a known category.
func (c Catalog) Validate() error {
	var unknown []string
	for cat := range c {
		if !cat.Valid() {
			unknown = append(unknown, string(cat))
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return errors.UnknownCategory(unknown[0]).WithDetail("unknown", unknown)
}

// Items resolves a scope to its full item set. Categories are visited in
// display order and texts keep their catalog order.
func (c Catalog) Items(s Scope) []Item {
	var items []Item
	for _, cat := range allCategories {
		if !s.Contains(cat) {
			continue
		}
		for _, text := range c[cat] {
			items = append(items, Item{Text: text, Category: cat})
		}
	}
	return items
}

// Size returns the number of items a scope resolves to.
func (c Catalog) Size(s Scope) int {
	n := 0
	for _, cat := range allCategories {
		if s.Contains(cat) {
			n += len(c[cat])
		}
	}
	return n
}

// Counts returns the number of texts per known category, including zeros.
func (c Catalog) Counts() map[Category]int {
	counts := make(map[Category]int, len(allCategories))
	for _, cat := range allCategories {
		counts[cat] = len(c[cat])
	}
	return counts
}

// Clone returns a deep copy so callers cannot mutate a shared catalog.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for cat, texts := range c {
		cp := make([]string, len(texts))
		copy(cp, texts)
		out[cat] = cp
	}
	return out
}
