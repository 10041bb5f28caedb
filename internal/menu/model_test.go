package menu

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRawMenu_Array(t *testing.T) {
	data := []byte(`[
		{"name": "Soup", "allergens": ["GL", "MI"], "price": "6.50"},
		{"name": "Salad", "category": "Starters", "price": 7},
		{"name": "Cake", "allergens": ["EG", 42, null, "mi"], "description": "sponge"}
	]`)

	dishes, err := ParseRawMenu(data)
	require.NoError(t, err)
	require.Len(t, dishes, 3)

	assert.Equal(t, "Soup", dishes[0].Name)
	assert.Equal(t, []string{"GL", "MI"}, dishes[0].Allergens)
	assert.Equal(t, "6.50", dishes[0].Price)
	assert.Equal(t, "Starters", dishes[1].Category)
	assert.Equal(t, json.Number("7"), dishes[1].Price)
	assert.Nil(t, dishes[1].Allergens)
	assert.Equal(t, []string{"EG", "mi"}, dishes[2].Allergens)
}

func TestParseRawMenu_WrongFieldTypes(t *testing.T) {
	data := []byte(`[{"name": 12, "category": ["x"], "allergens": "GL, MI"}, "not an object", null]`)

	dishes, err := ParseRawMenu(data)
	require.NoError(t, err)
	require.Len(t, dishes, 3)

	for _, d := range dishes {
		assert.Empty(t, d.Name)
		assert.Empty(t, d.Category)
		assert.Empty(t, d.Allergens)
	}
}

func TestParseRawMenu_WrongFieldTypesDroppedByNormalize(t *testing.T) {
	data := []byte(`[{"name": 12, "category": "Mains"}, null, {"name": "Tea", "category": 3}]`)

	raw, err := ParseRawMenu(data)
	require.NoError(t, err)

	dishes := Normalize(raw)
	require.Len(t, dishes, 1)
	assert.Equal(t, "Tea", dishes[0].Name)
	assert.True(t, dishes[0].Uncategorized())
}

func TestParseRawMenu_PriceRoundTrip(t *testing.T) {
	data := []byte(`[
		{"name": "Duck", "price": 12.50},
		{"name": "Big", "price": 12345678901234567891},
		{"name": "Soup", "price": "6.50"},
		{"name": "Tea"}
	]`)

	raw, err := ParseRawMenu(data)
	require.NoError(t, err)

	out, err := json.Marshal(Normalize(raw))
	require.NoError(t, err)

	assert.JSONEq(t, `[
		{"name": "Duck", "allergens": [], "price": 12.50},
		{"name": "Big", "allergens": [], "price": 12345678901234567891},
		{"name": "Soup", "allergens": [], "price": "6.50"},
		{"name": "Tea", "allergens": []}
	]`, string(out))
	assert.Contains(t, string(out), `"price":12.50`)
	assert.Contains(t, string(out), `"price":12345678901234567891`)
}

func TestParseRawMenu_ItemsDocument(t *testing.T) {
	dishes, err := ParseRawMenu([]byte(`{"items": [{"name": "Tea"}], "tax_percent": 5}`))
	require.NoError(t, err)
	require.Len(t, dishes, 1)
	assert.Equal(t, "Tea", dishes[0].Name)

	dishes, err = ParseRawMenu([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, dishes)
}

func TestParseRawMenu_Empty(t *testing.T) {
	dishes, err := ParseRawMenu([]byte("  \n"))
	require.NoError(t, err)
	assert.Empty(t, dishes)
}

func TestParseRawMenu_Invalid(t *testing.T) {
	_, err := ParseRawMenu([]byte(`"menu"`))
	assert.ErrorIs(t, err, ErrInvalidMenu)

	_, err = ParseRawMenu([]byte(`[{"name": "Soup"`))
	assert.Error(t, err)
}

func TestValidateMenuFile(t *testing.T) {
	assert.NoError(t, ValidateMenuFile("menu.json"))
	assert.NoError(t, ValidateMenuFile("menus/v3/MENU.JSON"))
	assert.Error(t, ValidateMenuFile("menu"))
	assert.Error(t, ValidateMenuFile("menu.pdf"))
}
