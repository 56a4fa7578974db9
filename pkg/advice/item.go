package advice

// Item is a single piece of advice. Items are values and never mutated.
type Item struct {
	Text     string   `json:"text" yaml:"text"`
	Category Category `json:"category,omitempty" yaml:"category,omitempty"`
}

// NoAdvice is returned when a scope resolves to zero items.
var NoAdvice = Item{Text: "No advice available for this category."}

// SameText reports whether two items would look identical on screen.
func (i Item) SameText(other Item) bool {
	return i.Text == other.Text
}

// IsZero reports whether the item is the empty value.
func (i Item) IsZero() bool {
	return i.Text == "" && i.Category == ""
}
