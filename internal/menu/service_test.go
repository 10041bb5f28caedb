package menu

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMenu() []RawDish {
	return []RawDish{
		{Name: "Hot & Sour Soup", Category: "Soups", Allergens: []string{"GL", "SO", "EG"}},
		{Name: "Steamed Sea Bass", Category: "Mains", Allergens: []string{"fl", "SO"}},
		{Name: "Wok Greens", Category: "Mains", Allergens: []string{"GA"}},
		{Name: "Mango Pudding", Category: "Desserts", Allergens: []string{"MI", "HO"}},
		{Name: "Jasmine Tea"},
	}
}

func TestService_LoadAndFilter(t *testing.T) {
	svc := NewService(NewMemorySource(sampleMenu()), nil, nil)
	require.NoError(t, svc.Load(context.Background()))

	assert.Len(t, svc.Dishes(), 5)
	assert.Equal(t, []string{"Soups", "Mains", "Desserts"}, svc.Categories())
	assert.Equal(t, []string{"GL", "MI", "EG", "SO", "GA", "FI", "HO"}, svc.AllergenCodes())

	res := svc.Filter(NewSelection("FI").WithMode(ModeContains))
	assert.Equal(t, []string{"Steamed Sea Bass"}, names(res.Visible))
	assert.Equal(t, "Contains: FI", res.Summary)
}

func TestService_EmptyBeforeLoad(t *testing.T) {
	svc := NewService(NewMemorySource(sampleMenu()), nil, nil)

	res := svc.Filter(NewSelection())
	assert.Equal(t, 0, res.Count)
	assert.NotNil(t, res.Visible)
}

func TestService_LoadFailureServesEmptyMenu(t *testing.T) {
	boom := errors.New("menu.json unreachable")
	svc := NewService(NewFailingSource(boom), nil, nil)

	err := svc.Load(context.Background())
	assert.ErrorIs(t, err, boom)

	res := svc.Filter(NewSelection("MI"))
	assert.Empty(t, res.Visible)
	assert.Equal(t, 0, res.Count)
	assert.Equal(t, "SAFE from: MI", res.Summary)
	assert.Empty(t, svc.Categories())
	assert.Empty(t, svc.AllergenCodes())
}

func TestService_NilSource(t *testing.T) {
	svc := NewService(nil, nil, nil)

	assert.ErrorIs(t, svc.Load(context.Background()), ErrSourceNotConfigured)
	assert.Empty(t, svc.Dishes())
}

func TestService_InfersCategories(t *testing.T) {
	svc := NewService(NewMemorySource(sampleMenu()), DefaultCategoryRules, nil)
	require.NoError(t, svc.Load(context.Background()))

	assert.Equal(t, []string{"Soups", "Mains", "Desserts", "Drinks"}, svc.Categories())

	res := svc.Filter(NewSelection().WithCategory("Drinks"))
	assert.Equal(t, []string{"Jasmine Tea"}, names(res.Visible))
}
