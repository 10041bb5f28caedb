package menu

import (
	"strings"
	"unicode"
)

// CategoryRule assigns Category to dishes whose name contains one of Keywords.
type CategoryRule struct {
	Category string
	Keywords []string
}

// DefaultCategoryRules is a keyword table for menus exported without categories.
// The first matching rule wins.
var DefaultCategoryRules = []CategoryRule{
	{Category: "Soups", Keywords: []string{"soup", "broth", "wonton"}},
	{Category: "Starters", Keywords: []string{"dumpling", "spring roll", "gyoza", "bao", "satay", "edamame", "salad", "starter"}},
	{Category: "Desserts", Keywords: []string{"cake", "ice cream", "mochi", "pudding", "sorbet", "dessert", "tart"}},
	{Category: "Drinks", Keywords: []string{"tea", "juice", "soda", "lemonade", "beer", "wine", "coffee"}},
	{Category: "Rice & Noodles", Keywords: []string{"rice", "noodle", "chow mein", "lo mein", "udon", "ramen"}},
	{Category: "Mains", Keywords: []string{"chicken", "beef", "pork", "duck", "lamb", "fish", "prawn", "tofu", "curry"}},
}

// InferCategories fills in a category for dishes that have none, using the
// first rule with a keyword found in the dish name. Dishes that already have a
// category, or match nothing, are returned unchanged. The input is not modified.
func InferCategories(dishes []Dish, rules []CategoryRule) []Dish {
	out := make([]Dish, len(dishes))
	copy(out, dishes)

	if len(rules) == 0 {
		return out
	}

	for i, d := range out {
		if !d.Uncategorized() {
			continue
		}
		if c := classify(d.Name, rules); c != "" {
			out[i].Category = c
		}
	}
	return out
}

func classify(name string, rules []CategoryRule) string {
	words := " " + strings.Join(strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}), " ") + " "

	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			// match whole words, allowing a plural "s"
			if strings.Contains(words, " "+kw+" ") || strings.Contains(words, " "+kw+"s ") {
				return strings.TrimSpace(rule.Category)
			}
		}
	}
	return ""
}
