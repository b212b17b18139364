package models

// Vendor represents a seller owning zero or more catalog products.
type Vendor struct {
	ID          string `json:"id,omitempty" bson:"-" schema:"-"`
	Name        string `json:"name" bson:"name" validate:"required"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Email       string `json:"email" bson:"email" validate:"required"`
}

// VendorInput is the request payload for vendor creation.
type VendorInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Email       string `json:"email" validate:"required"`
}
