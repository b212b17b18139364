package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"marketplace/internal/models"
)

type productDoc struct {
	OID            primitive.ObjectID `bson:"_id,omitempty"`
	models.Product `bson:",inline"`
}

// MongoProductRepository is a MongoDB implementation of ProductRepository.
type MongoProductRepository struct {
	collection *mongo.Collection
}

// NewMongoProductRepository creates a new instance of MongoProductRepository.
func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{
		collection: db.Collection("catalogproduct"),
	}
}

// Create inserts a new product document and returns its id as a hex string.
func (r *MongoProductRepository) Create(ctx context.Context, product *models.Product) (string, error) {
	res, err := r.collection.InsertOne(ctx, productDoc{Product: *product})
	if err != nil {
		return "", fmt.Errorf("failed to create product: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// GetByID retrieves a single product by its id. A malformed id yields
// ErrInvalidID before any store access.
func (r *MongoProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var doc productDoc
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}

	product := doc.Product
	product.ID = doc.OID.Hex()
	return &product, nil
}

// Find retrieves the products matching the query criteria.
func (r *MongoProductRepository) Find(ctx context.Context, query *Query) ([]models.Product, error) {
	filter, opts := query.toMongo()
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []productDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	products := make([]models.Product, 0, len(docs))
	for _, doc := range docs {
		product := doc.Product
		product.ID = doc.OID.Hex()
		products = append(products, product)
	}
	return products, nil
}
