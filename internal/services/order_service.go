package services

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"marketplace/internal/models"
	"marketplace/internal/repositories"
)

// maxOrderResults caps order listings.
const maxOrderResults = 50

// OrderEventPublisher publishes order lifecycle events. A nil publisher
// disables event publication entirely.
type OrderEventPublisher interface {
	PublishOrderCreated(event map[string]interface{}) error
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	publisher   OrderEventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, publisher OrderEventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

// CreateOrder validates every requested line in input order, snapshots the
// product price, title and vendor onto each line, and persists the order
// with status "pending" and the total rounded to 2 decimal places. Any line
// failure aborts the whole order; nothing is persisted in that case.
//
// Stock is checked against the requested quantity but never decremented, and
// the check carries no atomicity guarantee: concurrent orders against the
// same product can both pass and oversell. Known limitation.
func (s *OrderService) CreateOrder(ctx context.Context, input models.OrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrNoItems
	}

	var total float64
	items := make([]models.OrderItem, 0, len(input.Items))
	for _, it := range input.Items {
		product, err := s.productRepo.GetByID(ctx, it.ProductID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, &ProductNotFoundError{ID: it.ProductID}
			}
			return nil, err
		}
		if product.Stock < it.Quantity {
			return nil, &InsufficientStockError{Title: product.Title}
		}

		total += product.Price * float64(it.Quantity)
		items = append(items, models.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     product.Price,
			Title:     product.Title,
			VendorID:  product.VendorID,
		})
	}

	order := &models.Order{
		BuyerEmail: input.BuyerEmail,
		Items:      items,
		Total:      math.Round(total*100) / 100,
		Status:     models.OrderStatusPending,
		CreatedAt:  time.Now(),
	}

	id, err := s.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = id

	s.publishOrderCreated(order)
	return order, nil
}

// ListOrders retrieves orders, optionally filtered by exact buyer email,
// newest first, capped at 50 results.
func (s *OrderService) ListOrders(ctx context.Context, buyerEmail string) ([]models.Order, error) {
	query := repositories.NewQuery().SortNewest("created_at").WithLimit(maxOrderResults)
	if buyerEmail != "" {
		query.Where("buyer_email", buyerEmail)
	}
	return s.orderRepo.Find(ctx, query)
}

// publishOrderCreated emits an order.created event. Publishing is strictly
// best-effort: a failure is logged and never surfaced to the caller.
func (s *OrderService) publishOrderCreated(order *models.Order) {
	if s.publisher == nil {
		return
	}
	event := map[string]interface{}{
		"order_id":    order.ID,
		"buyer_email": order.BuyerEmail,
		"total":       order.Total,
		"status":      order.Status,
	}
	if err := s.publisher.PublishOrderCreated(event); err != nil {
		log.Printf("Warning: failed to publish order created event for order %s: %v", order.ID, err)
	}
}
