package models

import "time"

// OrderStatusPending is the only status this service ever assigns; orders are
// never updated or cancelled after creation.
const OrderStatusPending = "pending"

// OrderItem is a single line within an order. Price, Title and VendorID are
// snapshots of the product at order time so historical orders stay stable.
type OrderItem struct {
	ProductID string  `json:"product_id" bson:"product_id" validate:"required"`
	Quantity  int     `json:"quantity" bson:"quantity" validate:"required,gt=0"`
	Price     float64 `json:"price" bson:"price"`
	Title     string  `json:"title" bson:"title"`
	VendorID  string  `json:"vendor_id" bson:"vendor_id"`
}

// Order represents a buyer's purchase request, potentially spanning multiple
// vendors.
type Order struct {
	ID         string      `json:"id,omitempty" bson:"-" schema:"-"`
	BuyerEmail string      `json:"buyer_email" bson:"buyer_email" validate:"required"`
	Items      []OrderItem `json:"items" bson:"items" validate:"required"`
	Total      float64     `json:"total" bson:"total"`
	Status     string      `json:"status" bson:"status"`
	CreatedAt  time.Time   `json:"created_at" bson:"created_at" schema:"-"`
}

// OrderItemInput is a requested line in an order-creation payload.
type OrderItemInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// OrderInput is the request payload for order creation.
type OrderInput struct {
	BuyerEmail string           `json:"buyer_email" validate:"required"`
	Items      []OrderItemInput `json:"items" validate:"dive"`
}
