package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scenarioDishes() []Dish {
	return Normalize([]RawDish{
		{Name: "Soup", Category: "Mains", Allergens: []string{"GL", "MI"}},
		{Name: "Salad", Category: "Starters", Allergens: []string{}},
		{Name: "Cake", Category: "Mains", Allergens: []string{"EG"}},
	})
}

func names(dishes []Dish) []string {
	out := make([]string, len(dishes))
	for i, d := range dishes {
		out[i] = d.Name
	}
	return out
}

func TestEvaluate_SafeScenario(t *testing.T) {
	res := Evaluate(scenarioDishes(), NewSelection("MI"))

	assert.Equal(t, []string{"Salad", "Cake"}, names(res.Visible))
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, "SAFE from: MI", res.Summary)
}

func TestEvaluate_ContainsScenario(t *testing.T) {
	res := Evaluate(scenarioDishes(), NewSelection("MI").WithMode(ModeContains))

	assert.Equal(t, []string{"Soup"}, names(res.Visible))
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, "Contains: MI", res.Summary)
}

func TestEvaluate_CategoryScenario(t *testing.T) {
	res := Evaluate(scenarioDishes(), NewSelection().WithCategory("Mains"))

	assert.Equal(t, []string{"Soup", "Cake"}, names(res.Visible))
	assert.Equal(t, "Mains", res.Summary)
}

func TestEvaluate_CategoryIsCaseSensitive(t *testing.T) {
	res := Evaluate(scenarioDishes(), NewSelection().WithCategory("mains"))

	assert.Empty(t, res.Visible)
	assert.Equal(t, 0, res.Count)
}

func TestEvaluate_EmptySelection(t *testing.T) {
	dishes := scenarioDishes()
	res := Evaluate(dishes, NewSelection())

	assert.Equal(t, dishes, res.Visible)
	assert.Equal(t, 3, res.Count)
	assert.Equal(t, NoFiltersSummary, res.Summary)
}

func TestEvaluate_NoDishes(t *testing.T) {
	for _, sel := range []Selection{
		NewSelection(),
		NewSelection("MI"),
		NewSelection("MI").WithMode(ModeContains).WithSearch("x"),
	} {
		res := Evaluate(nil, sel)
		assert.NotNil(t, res.Visible)
		assert.Empty(t, res.Visible)
		assert.Equal(t, 0, res.Count)
	}
}

func TestEvaluate_UnmatchedSelection(t *testing.T) {
	res := Evaluate(scenarioDishes(), NewSelection("ZZ").WithMode(ModeContains))
	assert.Empty(t, res.Visible)

	res = Evaluate(scenarioDishes(), NewSelection("ZZ"))
	assert.Len(t, res.Visible, 3)
}

func TestEvaluate_Search(t *testing.T) {
	dishes := Normalize([]RawDish{
		{Name: "Crispy Duck", Description: "with hoisin"},
		{Name: "Mapo Tofu", Description: "Sichuan PEPPER, chilli"},
		{Name: "Egg Fried Rice"},
	})

	tests := []struct {
		search string
		want   []string
	}{
		{"duck", []string{"Crispy Duck"}},
		{"DUCK", []string{"Crispy Duck"}},
		{"pepper", []string{"Mapo Tofu"}},
		{"  rice ", []string{"Egg Fried Rice"}},
		{"i", []string{"Crispy Duck", "Mapo Tofu", "Egg Fried Rice"}},
		{"lobster", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			res := Evaluate(dishes, NewSelection().WithSearch(tt.search))
			assert.Equal(t, tt.want, names(res.Visible))
		})
	}
}

func TestEvaluate_AllPredicatesAnded(t *testing.T) {
	dishes := Normalize([]RawDish{
		{Name: "Beef Noodle Soup", Category: "Soups", Allergens: []string{"GL", "SO"}},
		{Name: "Tomato Egg Soup", Category: "Soups", Allergens: []string{"EG"}},
		{Name: "Beef Chow Fun", Category: "Mains", Allergens: []string{"SO"}},
	})

	sel := NewSelection("GL").WithCategory("Soups").WithSearch("soup")
	res := Evaluate(dishes, sel)

	assert.Equal(t, []string{"Tomato Egg Soup"}, names(res.Visible))
	assert.Equal(t, `SAFE from: GL · Soups · Search: "soup"`, res.Summary)
}

func TestEvaluate_SafeContainsPartition(t *testing.T) {
	dishes := Normalize([]RawDish{
		{Name: "A", Category: "Mains", Allergens: []string{"GL", "MI"}},
		{Name: "B", Category: "Mains", Allergens: []string{}},
		{Name: "C", Category: "Mains", Allergens: []string{"EG"}},
		{Name: "D", Category: "Starters", Allergens: []string{"MI"}},
		{Name: "E", Category: "Mains", Allergens: []string{"SO", "FI"}},
		{Name: "F", Category: "Mains"},
	})

	selections := [][]string{{"MI"}, {"GL", "EG"}, {"FI"}, {"ZZ"}, {"MI", "SO", "EG", "GL"}}
	categories := []string{"", "Mains"}

	for _, codes := range selections {
		for _, category := range categories {
			base := NewSelection(codes...).WithCategory(category)

			safe := Evaluate(dishes, base.WithMode(ModeSafe)).Visible
			contains := Evaluate(dishes, base.WithMode(ModeContains)).Visible
			all := Evaluate(dishes, NewSelection().WithCategory(category)).Visible

			inSafe := map[string]bool{}
			for _, d := range safe {
				inSafe[d.Name] = true
			}
			for _, d := range contains {
				assert.False(t, inSafe[d.Name], "%s in both SAFE and CONTAINS for %v", d.Name, codes)
			}
			assert.Equal(t, len(all), len(safe)+len(contains), "codes %v category %q", codes, category)

			for _, d := range all {
				if len(d.Allergens) == 0 {
					assert.True(t, inSafe[d.Name], "allergen-free %s must pass SAFE", d.Name)
				}
			}
		}
	}
}

func TestEvaluate_ReselectionStable(t *testing.T) {
	dishes := scenarioDishes()

	once := Evaluate(dishes, NewSelection().Toggle("MI"))

	sel := NewSelection().Toggle("MI")
	_ = Evaluate(dishes, sel)
	sel = sel.Toggle("MI")
	_ = Evaluate(dishes, sel)
	sel = sel.Toggle("MI")
	again := Evaluate(dishes, sel)

	assert.Equal(t, once, again)
}

func TestEvaluate_DoesNotModifyInput(t *testing.T) {
	dishes := scenarioDishes()
	_ = Evaluate(dishes, NewSelection("MI").WithCategory("Mains"))

	assert.Equal(t, scenarioDishes(), dishes)
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		want string
	}{
		{"empty", NewSelection(), "No filters active"},
		{"zero value", Selection{}, "No filters active"},
		{"safe sorted", NewSelection("MI", "GL"), "SAFE from: GL, MI"},
		{"contains", NewSelection("eg").WithMode(ModeContains), "Contains: EG"},
		{"category only", NewSelection().WithCategory("Desserts"), "Desserts"},
		{"search only", NewSelection().WithSearch("duck"), `Search: "duck"`},
		{"mode without codes", NewSelection().WithMode(ModeContains), "No filters active"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summary(tt.sel))
		})
	}
}

func TestCountLabel(t *testing.T) {
	assert.Equal(t, "0 dishes", Result{Count: 0}.CountLabel())
	assert.Equal(t, "1 dish", Result{Count: 1}.CountLabel())
	assert.Equal(t, "7 dishes", Result{Count: 7}.CountLabel())
}
