package advice

import (
	"strings"

	"github.com/grovetools/cardvice/errors"
)

// Category is one of the fixed advice category tags.
type Category string

const (
	Money       Category = "Money"
	Romance     Category = "Romance"
	Health      Category = "Health"
	Social      Category = "Social"
	Work        Category = "Work"
	SelfCare    Category = "Self-Care"
	Family      Category = "Family"
	DailyHabits Category = "Daily Habits"
	Friends     Category = "Friends"
	DigitalLife Category = "Digital Life"
)

var allCategories = []Category{
	Money,
	Romance,
	Health,
	Social,
	Work,
	SelfCare,
	Family,
	DailyHabits,
	Friends,
	DigitalLife,
}

var categoryIcons = map[Category]string{
	Money:       "💸",
	Romance:     "💘",
	Health:      "🧘",
	Social:      "🥂",
	Work:        "💼",
	SelfCare:    "🛁",
	Family:      "🏡",
	DailyHabits: "🗓",
	Friends:     "👯",
	DigitalLife: "📱",
}

// AllCategories returns every known category in display order.
func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// Index returns the display position of c, or -1 for an unknown tag.
func (c Category) Index() int {
	for i, known := range allCategories {
		if known == c {
			return i
		}
	}
	return -1
}

// Valid reports whether c is one of the fixed tags.
func (c Category) Valid() bool {
	return c.Index() >= 0
}

// Icon returns the emoji shown next to the category in the sidebar.
func (c Category) Icon() string {
	return categoryIcons[c]
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory resolves a user supplied name to a Category. Matching ignores
// case, spaces, hyphens and underscores, so "self_care" and "dailyhabits" work.
func ParseCategory(name string) (Category, error) {
	want := normalizeName(name)
	for _, c := range allCategories {
		if normalizeName(string(c)) == want {
			return c, nil
		}
	}
	return "", errors.UnknownCategory(name)
}

func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
