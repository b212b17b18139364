package models_test

import (
	"testing"

	"marketplace/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeEntities(t *testing.T) {
	entities := models.DescribeEntities()

	require.ElementsMatch(t,
		[]string{"user", "vendor", "product", "catalogproduct", "order", "orderitem"},
		keys(entities))

	assert.Equal(t, []models.FieldSchema{
		{Name: "name", Type: "string", Required: true},
		{Name: "description", Type: "string", Required: false},
		{Name: "email", Type: "string", Required: true},
	}, entities["vendor"])

	assert.Equal(t, []models.FieldSchema{
		{Name: "vendor_id", Type: "string", Required: true},
		{Name: "title", Type: "string", Required: true},
		{Name: "description", Type: "string", Required: false},
		{Name: "price", Type: "number", Required: true},
		{Name: "stock", Type: "integer", Required: true},
		{Name: "category", Type: "string", Required: false},
		{Name: "images", Type: "array", Required: false},
	}, entities["product"])
	assert.Equal(t, entities["product"], entities["catalogproduct"])

	assert.Equal(t, []models.FieldSchema{
		{Name: "buyer_email", Type: "string", Required: true},
		{Name: "items", Type: "array", Required: true},
		{Name: "total", Type: "number", Required: false},
		{Name: "status", Type: "string", Required: false},
	}, entities["order"])

	assert.Equal(t, []models.FieldSchema{
		{Name: "product_id", Type: "string", Required: true},
		{Name: "quantity", Type: "integer", Required: true},
		{Name: "price", Type: "number", Required: false},
		{Name: "title", Type: "string", Required: false},
		{Name: "vendor_id", Type: "string", Required: false},
	}, entities["orderitem"])
}

func TestDescribeSkipsInternalFields(t *testing.T) {
	for name, fieldNames := range entityFieldNames(t) {
		assert.NotContains(t, fieldNames, "id", "entity %s must not expose the store id field", name)
		assert.NotContains(t, fieldNames, "created_at", "entity %s must not expose timestamps", name)
	}
}

func entityFieldNames(t *testing.T) map[string][]string {
	t.Helper()
	out := make(map[string][]string)
	for name, fields := range models.DescribeEntities() {
		names := make([]string, 0, len(fields))
		for _, f := range fields {
			names = append(names, f.Name)
		}
		out[name] = names
	}
	return out
}

func keys(m map[string][]models.FieldSchema) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
