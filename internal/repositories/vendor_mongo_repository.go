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

// vendorDoc is the persisted shape of a vendor: the model fields inline plus
// the store-assigned id, renamed onto the model's string ID when read.
type vendorDoc struct {
	OID           primitive.ObjectID `bson:"_id,omitempty"`
	models.Vendor `bson:",inline"`
}

// MongoVendorRepository is a MongoDB implementation of VendorRepository.
type MongoVendorRepository struct {
	collection *mongo.Collection
}

// NewMongoVendorRepository creates a new instance of MongoVendorRepository.
func NewMongoVendorRepository(db *mongo.Database) *MongoVendorRepository {
	return &MongoVendorRepository{
		collection: db.Collection("vendor"),
	}
}

// Create inserts a new vendor document and returns its id as a hex string.
func (r *MongoVendorRepository) Create(ctx context.Context, vendor *models.Vendor) (string, error) {
	res, err := r.collection.InsertOne(ctx, vendorDoc{Vendor: *vendor})
	if err != nil {
		return "", fmt.Errorf("failed to create vendor: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// GetByID retrieves a single vendor by its id. The id is parsed before any
// store access; a malformed id yields ErrInvalidID.
func (r *MongoVendorRepository) GetByID(ctx context.Context, id string) (*models.Vendor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var doc vendorDoc
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vendor %s: %w", id, err)
	}

	vendor := doc.Vendor
	vendor.ID = doc.OID.Hex()
	return &vendor, nil
}

// GetAll retrieves all vendors.
func (r *MongoVendorRepository) GetAll(ctx context.Context) ([]models.Vendor, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []vendorDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode vendors: %w", err)
	}

	vendors := make([]models.Vendor, 0, len(docs))
	for _, doc := range docs {
		vendor := doc.Vendor
		vendor.ID = doc.OID.Hex()
		vendors = append(vendors, vendor)
	}
	return vendors, nil
}
