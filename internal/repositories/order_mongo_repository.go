package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"marketplace/internal/models"
)

type orderDoc struct {
	OID          primitive.ObjectID `bson:"_id,omitempty"`
	models.Order `bson:",inline"`
}

// MongoOrderRepository is a MongoDB implementation of OrderRepository.
type MongoOrderRepository struct {
	collection *mongo.Collection
}

// NewMongoOrderRepository creates a new instance of MongoOrderRepository.
func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{
		collection: db.Collection("order"),
	}
}

// Create inserts a new order document and returns its id as a hex string.
func (r *MongoOrderRepository) Create(ctx context.Context, order *models.Order) (string, error) {
	res, err := r.collection.InsertOne(ctx, orderDoc{Order: *order})
	if err != nil {
		return "", fmt.Errorf("failed to create order: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// Find retrieves the orders matching the query criteria.
func (r *MongoOrderRepository) Find(ctx context.Context, query *Query) ([]models.Order, error) {
	filter, opts := query.toMongo()
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []orderDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	orders := make([]models.Order, 0, len(docs))
	for _, doc := range docs {
		order := doc.Order
		order.ID = doc.OID.Hex()
		orders = append(orders, order)
	}
	return orders, nil
}
