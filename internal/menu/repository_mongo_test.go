package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func decodeMongoDish(t *testing.T, doc bson.M) RawDish {
	t.Helper()
	data, err := bson.Marshal(doc)
	require.NoError(t, err)

	var m mongoDish
	require.NoError(t, bson.Unmarshal(data, &m))
	return m.raw()
}

func TestMongoDish_WrongTypedFieldsDegrade(t *testing.T) {
	raw := decodeMongoDish(t, bson.M{
		"name":        12,
		"description": bson.A{"x"},
		"category":    "Mains",
		"allergens":   bson.A{"GL", 7, nil, "fl"},
	})

	assert.Empty(t, raw.Name)
	assert.Empty(t, raw.Description)
	assert.Equal(t, "Mains", raw.Category)
	assert.Equal(t, []string{"GL", "fl"}, raw.Allergens)
}

func TestMongoDish_AllergensNotAnArray(t *testing.T) {
	raw := decodeMongoDish(t, bson.M{"name": "Soup", "allergens": "GL, MI", "price": "6.50"})

	assert.Equal(t, "Soup", raw.Name)
	assert.Empty(t, raw.Allergens)
	assert.Equal(t, "6.50", raw.Price)
}

func TestMongoDish_MissingFields(t *testing.T) {
	raw := decodeMongoDish(t, bson.M{"name": "Tea"})

	assert.Equal(t, "Tea", raw.Name)
	assert.Empty(t, raw.Category)
	assert.NotNil(t, raw.Allergens)
	assert.Nil(t, raw.Price)
}
