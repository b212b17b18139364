package services

import (
	"context"

	"marketplace/internal/models"
	"marketplace/internal/repositories"
)

// maxProductResults caps product listings.
const maxProductResults = 100

// ProductListOptions are the optional catalog filters, combined with
// logical AND.
type ProductListOptions struct {
	VendorID string // exact match
	Category string // exact match
	Search   string // case-insensitive substring match against title
}

// ProductService handles business logic related to catalog products.
type ProductService struct {
	productRepo repositories.ProductRepository
	vendorRepo  repositories.VendorRepository
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo repositories.ProductRepository, vendorRepo repositories.VendorRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		vendorRepo:  vendorRepo,
	}
}

// CreateProduct verifies the referenced vendor exists, then persists the
// product and returns its id. The vendor reference is not re-validated after
// creation.
func (s *ProductService) CreateProduct(ctx context.Context, input models.ProductInput) (string, error) {
	if _, err := s.vendorRepo.GetByID(ctx, input.VendorID); err != nil {
		return "", err
	}

	product := &models.Product{
		VendorID:    input.VendorID,
		Title:       input.Title,
		Description: input.Description,
		Price:       *input.Price,
		Stock:       *input.Stock,
		Category:    input.Category,
		Images:      input.Images,
	}
	return s.productRepo.Create(ctx, product)
}

// GetProductByID retrieves a single product by its id.
func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

// ListProducts retrieves products matching the provided filters, capped at
// 100 results.
func (s *ProductService) ListProducts(ctx context.Context, opts ProductListOptions) ([]models.Product, error) {
	query := repositories.NewQuery().WithLimit(maxProductResults)
	if opts.VendorID != "" {
		query.Where("vendor_id", opts.VendorID)
	}
	if opts.Category != "" {
		query.Where("category", opts.Category)
	}
	if opts.Search != "" {
		query.Match("title", opts.Search)
	}
	return s.productRepo.Find(ctx, query)
}
