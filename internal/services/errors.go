package services

import (
	"errors"
	"fmt"
)

// ErrNoItems is returned when an order-creation payload has an empty item
// list. It is checked before any product lookup.
var ErrNoItems = errors.New("order must have items")

// ProductNotFoundError reports a requested order line whose product does not
// exist.
type ProductNotFoundError struct {
	ID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ID)
}

// InsufficientStockError reports a requested quantity exceeding the product's
// current stock.
type InsufficientStockError struct {
	Title string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s", e.Title)
}
