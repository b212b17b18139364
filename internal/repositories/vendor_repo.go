package repositories

import (
	"context"

	"marketplace/internal/models"
)

// VendorRepository defines the interface for vendor data access.
type VendorRepository interface {
	Create(ctx context.Context, vendor *models.Vendor) (string, error)
	GetByID(ctx context.Context, id string) (*models.Vendor, error)
	GetAll(ctx context.Context) ([]models.Vendor, error)
}
