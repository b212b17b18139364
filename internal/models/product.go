package models

// Product represents a catalog item listed for sale by exactly one vendor.
// Stock is read during order creation but never decremented by this service.
type Product struct {
	ID          string   `json:"id,omitempty" bson:"-" schema:"-"`
	VendorID    string   `json:"vendor_id" bson:"vendor_id" validate:"required"`
	Title       string   `json:"title" bson:"title" validate:"required"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64  `json:"price" bson:"price" validate:"required,gte=0"`
	Stock       int      `json:"stock" bson:"stock" validate:"required,gte=0"`
	Category    string   `json:"category,omitempty" bson:"category,omitempty"`
	Images      []string `json:"images,omitempty" bson:"images,omitempty"`
}

// ProductInput is the request payload for product creation. Price and Stock
// are pointers so that an explicit zero survives the required check.
type ProductInput struct {
	VendorID    string   `json:"vendor_id" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Stock       *int     `json:"stock" validate:"required,gte=0"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
}
