package repositories

import (
	"context"

	"marketplace/internal/models"
)

// ProductRepository defines the interface for catalog product data access.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) (string, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Find(ctx context.Context, query *Query) ([]models.Product, error)
}
