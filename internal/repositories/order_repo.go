package repositories

import (
	"context"

	"marketplace/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// insert-only; there is no update or delete.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) (string, error)
	Find(ctx context.Context, query *Query) ([]models.Order, error)
}
