package models

// User represents a buyer account. Kept for schema introspection; this
// service has no user endpoints.
type User struct {
	ID    string `json:"id,omitempty" bson:"-" schema:"-"`
	Name  string `json:"name" bson:"name" validate:"required"`
	Email string `json:"email" bson:"email" validate:"required"`
}
