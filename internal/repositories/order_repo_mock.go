package repositories

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"marketplace/internal/models"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	orders []models.Order
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{}
}

// Create adds a new order and returns its generated id.
func (r *MockOrderRepository) Create(_ context.Context, order *models.Order) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := primitive.NewObjectID().Hex()
	stored := *order
	stored.ID = id
	r.orders = append(r.orders, stored)
	return id, nil
}

// Find returns the orders matching all query criteria, sorted and capped per
// the query.
func (r *MockOrderRepository) Find(_ context.Context, query *Query) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if orderMatches(o, query.Criteria) {
			orderList = append(orderList, o)
		}
	}

	if query.SortField == "created_at" && query.SortDesc {
		sort.SliceStable(orderList, func(i, j int) bool {
			return orderList[i].CreatedAt.After(orderList[j].CreatedAt)
		})
	}
	if query.Limit > 0 && int64(len(orderList)) > query.Limit {
		orderList = orderList[:query.Limit]
	}
	return orderList, nil
}

// Count reports the number of stored orders. Tests use it to verify that a
// failed order creation left the store untouched.
func (r *MockOrderRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}

func orderMatches(o models.Order, criteria []Criterion) bool {
	for _, c := range criteria {
		if c.Field != "buyer_email" {
			return false
		}
		if !matchField(o.BuyerEmail, c) {
			return false
		}
	}
	return true
}
