package repositories

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"marketplace/internal/models"
)

// MockVendorRepository is an in-memory implementation of VendorRepository.
type MockVendorRepository struct {
	vendors map[string]models.Vendor
	mu      sync.RWMutex
}

// NewMockVendorRepository creates a new instance of MockVendorRepository.
func NewMockVendorRepository() *MockVendorRepository {
	return &MockVendorRepository{
		vendors: make(map[string]models.Vendor),
	}
}

// Create adds a new vendor and returns its generated id.
func (r *MockVendorRepository) Create(_ context.Context, vendor *models.Vendor) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := primitive.NewObjectID().Hex()
	stored := *vendor
	stored.ID = id
	r.vendors[id] = stored
	return id, nil
}

// GetByID returns a vendor by its id. Malformed ids fail the same way the
// real store does, before any lookup.
func (r *MockVendorRepository) GetByID(_ context.Context, id string) (*models.Vendor, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	vendor, ok := r.vendors[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &vendor, nil
}

// GetAll returns all vendors.
func (r *MockVendorRepository) GetAll(_ context.Context) ([]models.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vendorList := make([]models.Vendor, 0, len(r.vendors))
	for _, v := range r.vendors {
		vendorList = append(vendorList, v)
	}
	return vendorList, nil
}
