package menu

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoDish mirrors a dish document. Every field is untyped so a document
// with a bad value still decodes; values of the wrong type are dropped.
type mongoDish struct {
	Name        interface{}   `bson:"name"`
	Description interface{}   `bson:"description"`
	Category    interface{}   `bson:"category"`
	Allergens   interface{}   `bson:"allergens"`
	Price       interface{}   `bson:"price"`
}

func (m mongoDish) raw() RawDish {
	var items []interface{}
	switch v := m.Allergens.(type) {
	case bson.A:
		items = v
	case []interface{}:
		items = v
	}

	codes := make([]string, 0, len(items))
	for _, a := range items {
		if s, ok := a.(string); ok {
			codes = append(codes, s)
		}
	}

	return RawDish{
		Name:        bsonString(m.Name),
		Description: bsonString(m.Description),
		Category:    bsonString(m.Category),
		Allergens:   codes,
		Price:       m.Price,
	}
}

func bsonString(v interface{}) string {
	s, _ := v.(string)
	return s
}

type MongoSource struct {
	collection *mongo.Collection
}

func NewMongoSource(client *mongo.Client, database, collection string) *MongoSource {
	return &MongoSource{collection: client.Database(database).Collection(collection)}
}

func (s *MongoSource) Load(ctx context.Context) ([]RawDish, error) {
	if s.collection == nil {
		return nil, ErrSourceNotConfigured
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "position", Value: 1},
		{Key: "_id", Value: 1},
	})

	cursor, err := s.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find dishes: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoDish
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode dishes: %w", err)
	}

	dishes := make([]RawDish, 0, len(docs))
	for _, d := range docs {
		dishes = append(dishes, d.raw())
	}
	return dishes, nil
}
