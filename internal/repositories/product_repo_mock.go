package repositories

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"marketplace/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// Create adds a new product and returns its generated id.
func (r *MockProductRepository) Create(_ context.Context, product *models.Product) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := primitive.NewObjectID().Hex()
	stored := *product
	stored.ID = id
	r.products[id] = stored
	return id, nil
}

// GetByID returns a product by its id.
func (r *MockProductRepository) GetByID(_ context.Context, id string) (*models.Product, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}

// Find returns the products matching all query criteria, capped at the
// query limit.
func (r *MockProductRepository) Find(_ context.Context, query *Query) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if productMatches(p, query.Criteria) {
			productList = append(productList, p)
		}
		if query.Limit > 0 && int64(len(productList)) >= query.Limit {
			break
		}
	}
	return productList, nil
}

func productMatches(p models.Product, criteria []Criterion) bool {
	for _, c := range criteria {
		var field string
		switch c.Field {
		case "vendor_id":
			field = p.VendorID
		case "category":
			field = p.Category
		case "title":
			field = p.Title
		default:
			return false
		}
		if !matchField(field, c) {
			return false
		}
	}
	return true
}

func matchField(field string, c Criterion) bool {
	if c.Op == MatchSubstring {
		return strings.Contains(strings.ToLower(field), strings.ToLower(c.Value))
	}
	return field == c.Value
}
