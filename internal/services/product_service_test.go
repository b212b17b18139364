package services_test

import (
	"context"
	"testing"

	"marketplace/internal/models"
	"marketplace/internal/repositories"
	"marketplace/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockVendorRepository is a mock implementation of repositories.VendorRepository
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) Create(ctx context.Context, vendor *models.Vendor) (string, error) {
	args := m.Called(ctx, vendor)
	return args.String(0), args.Error(1)
}

func (m *MockVendorRepository) GetByID(ctx context.Context, id string) (*models.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vendor), args.Error(1)
}

func (m *MockVendorRepository) GetAll(ctx context.Context) ([]models.Vendor, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Vendor), args.Error(1)
}

func productInput(vendorID string) models.ProductInput {
	price := 19.99
	stock := 3
	return models.ProductInput{
		VendorID: vendorID,
		Title:    "Blue Shirt",
		Price:    &price,
		Stock:    &stock,
		Category: "clothing",
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	productRepo := new(MockProductRepository)
	vendorRepo := new(MockVendorRepository)
	service := services.NewProductService(productRepo, vendorRepo)

	vendorID := "689c1f0000000000000000bb"
	vendorRepo.On("GetByID", mock.Anything, vendorID).Return(&models.Vendor{ID: vendorID, Name: "Acme"}, nil).Once()
	productRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
		return p.VendorID == vendorID && p.Title == "Blue Shirt" && p.Price == 19.99 && p.Stock == 3
	})).Return("new-product-id", nil).Once()

	id, err := service.CreateProduct(context.Background(), productInput(vendorID))

	assert.NoError(t, err)
	assert.Equal(t, "new-product-id", id)
	vendorRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_VendorNotFound(t *testing.T) {
	productRepo := new(MockProductRepository)
	vendorRepo := new(MockVendorRepository)
	service := services.NewProductService(productRepo, vendorRepo)

	vendorID := "689c1f0000000000000000ff"
	vendorRepo.On("GetByID", mock.Anything, vendorID).Return(nil, repositories.ErrNotFound).Once()

	id, err := service.CreateProduct(context.Background(), productInput(vendorID))

	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Empty(t, id)
	// No silent insert when the vendor does not exist.
	productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductService_CreateProduct_InvalidVendorID(t *testing.T) {
	productRepo := new(MockProductRepository)
	vendorRepo := new(MockVendorRepository)
	service := services.NewProductService(productRepo, vendorRepo)

	vendorRepo.On("GetByID", mock.Anything, "garbage").Return(nil, repositories.ErrInvalidID).Once()

	_, err := service.CreateProduct(context.Background(), productInput("garbage"))

	assert.ErrorIs(t, err, repositories.ErrInvalidID)
	productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductService_GetProductByID(t *testing.T) {
	productRepo := new(MockProductRepository)
	vendorRepo := new(MockVendorRepository)
	service := services.NewProductService(productRepo, vendorRepo)

	expected := &models.Product{ID: "689c1f0000000000000000aa", Title: "Blue Shirt", Price: 10.0, Stock: 5}
	productRepo.On("GetByID", mock.Anything, expected.ID).Return(expected, nil).Once()

	product, err := service.GetProductByID(context.Background(), expected.ID)
	assert.NoError(t, err)
	assert.Equal(t, expected, product)

	productRepo.On("GetByID", mock.Anything, "689c1f0000000000000000ff").Return(nil, repositories.ErrNotFound).Once()
	product, err = service.GetProductByID(context.Background(), "689c1f0000000000000000ff")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Nil(t, product)
	productRepo.AssertExpectations(t)
}

func TestProductService_ListProducts(t *testing.T) {
	productRepo := new(MockProductRepository)
	vendorRepo := new(MockVendorRepository)
	service := services.NewProductService(productRepo, vendorRepo)

	expected := []models.Product{{ID: "1", Title: "Blue Shirt"}}
	productRepo.On("Find", mock.Anything, mock.MatchedBy(func(q *repositories.Query) bool {
		if q.Limit != 100 || len(q.Criteria) != 3 {
			return false
		}
		byField := map[string]repositories.Criterion{}
		for _, c := range q.Criteria {
			byField[c.Field] = c
		}
		return byField["vendor_id"].Op == repositories.MatchEquals && byField["vendor_id"].Value == "v1" &&
			byField["category"].Op == repositories.MatchEquals && byField["category"].Value == "clothing" &&
			byField["title"].Op == repositories.MatchSubstring && byField["title"].Value == "shirt"
	})).Return(expected, nil).Once()

	products, err := service.ListProducts(context.Background(), services.ProductListOptions{
		VendorID: "v1",
		Category: "clothing",
		Search:   "shirt",
	})
	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	productRepo.AssertExpectations(t)

	// No filters: an unconstrained query, still capped at 100.
	productRepo.On("Find", mock.Anything, mock.MatchedBy(func(q *repositories.Query) bool {
		return len(q.Criteria) == 0 && q.Limit == 100
	})).Return(expected, nil).Once()

	_, err = service.ListProducts(context.Background(), services.ProductListOptions{})
	assert.NoError(t, err)
	productRepo.AssertExpectations(t)
}
