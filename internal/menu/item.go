package menu

// Dish is the canonical, normalized menu item.
// Allergens holds upper-case, de-duplicated codes in first-seen order.
// Treat a Dish as read-only once Normalize has produced it.
type Dish struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Allergens   []string `json:"allergens"`
	Price       any      `json:"price,omitempty"`
}

// HasAllergen reports whether the dish carries the (normalized) code.
func (d Dish) HasAllergen(code string) bool {
	for _, c := range d.Allergens {
		if c == code {
			return true
		}
	}
	return false
}

// Uncategorized reports whether the dish has no category.
func (d Dish) Uncategorized() bool {
	return d.Category == ""
}

// Raw converts the dish back into its source form.
func (d Dish) Raw() RawDish {
	return RawDish{
		Name:        d.Name,
		Description: d.Description,
		Category:    d.Category,
		Allergens:   append([]string(nil), d.Allergens...),
		Price:       d.Price,
	}
}
