package services

import (
	"context"

	"marketplace/internal/models"
	"marketplace/internal/repositories"
)

// VendorService handles business logic related to vendors.
type VendorService struct {
	repo repositories.VendorRepository
}

// NewVendorService creates a new VendorService.
func NewVendorService(repo repositories.VendorRepository) *VendorService {
	return &VendorService{
		repo: repo,
	}
}

// CreateVendor persists a new vendor and returns its id. No email-uniqueness
// check is performed.
func (s *VendorService) CreateVendor(ctx context.Context, input models.VendorInput) (string, error) {
	vendor := &models.Vendor{
		Name:        input.Name,
		Description: input.Description,
		Email:       input.Email,
	}
	return s.repo.Create(ctx, vendor)
}

// ListVendors retrieves all vendors.
func (s *VendorService) ListVendors(ctx context.Context) ([]models.Vendor, error) {
	return s.repo.GetAll(ctx)
}
