package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"marketplace/internal/models"
)

func TestQueryBuilder(t *testing.T) {
	q := NewQuery().
		Where("vendor_id", "v1").
		Match("title", "shirt").
		SortNewest("created_at").
		WithLimit(50)

	assert.Equal(t, []Criterion{
		{Field: "vendor_id", Op: MatchEquals, Value: "v1"},
		{Field: "title", Op: MatchSubstring, Value: "shirt"},
	}, q.Criteria)
	assert.Equal(t, "created_at", q.SortField)
	assert.True(t, q.SortDesc)
	assert.Equal(t, int64(50), q.Limit)
}

func TestQueryToMongo(t *testing.T) {
	q := NewQuery().
		Where("category", "clothing").
		Match("title", "shirt").
		SortNewest("created_at").
		WithLimit(100)

	filter, opts := q.toMongo()

	assert.Equal(t, bson.M{
		"category": "clothing",
		"title":    primitive.Regex{Pattern: "shirt", Options: "i"},
	}, filter)
	require.NotNil(t, opts.Limit)
	assert.Equal(t, int64(100), *opts.Limit)
	assert.Equal(t, bson.D{{Key: "created_at", Value: -1}}, opts.Sort)
}

func TestQueryToMongo_Empty(t *testing.T) {
	filter, opts := NewQuery().toMongo()

	assert.Equal(t, bson.M{}, filter)
	assert.Nil(t, opts.Limit)
	assert.Nil(t, opts.Sort)
}

func TestMockProductRepository_Find(t *testing.T) {
	ctx := context.Background()
	repo := NewMockProductRepository()

	for _, p := range []models.Product{
		{VendorID: "v1", Title: "Blue Shirt", Category: "clothing", Price: 10, Stock: 5},
		{VendorID: "v1", Title: "SHIRTING fabric", Category: "fabric", Price: 4, Stock: 100},
		{VendorID: "v2", Title: "Pants", Category: "clothing", Price: 20, Stock: 3},
	} {
		_, err := repo.Create(ctx, &p)
		require.NoError(t, err)
	}

	// Case-insensitive substring match on title.
	found, err := repo.Find(ctx, NewQuery().Match("title", "shirt"))
	require.NoError(t, err)
	assert.Len(t, found, 2)

	// AND-combined criteria.
	found, err = repo.Find(ctx, NewQuery().Where("vendor_id", "v1").Match("title", "shirt").Where("category", "clothing"))
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Blue Shirt", found[0].Title)

	// No match.
	found, err = repo.Find(ctx, NewQuery().Where("vendor_id", "v3"))
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestMockRepositories_IDHandling(t *testing.T) {
	ctx := context.Background()
	vendors := NewMockVendorRepository()

	id, err := vendors.Create(ctx, &models.Vendor{Name: "Acme", Email: "acme@example.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	vendor, err := vendors.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, vendor.ID)
	assert.Equal(t, "Acme", vendor.Name)

	_, err = vendors.GetByID(ctx, "not-hex")
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = vendors.GetByID(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMockOrderRepository_FindSortsAndCaps(t *testing.T) {
	ctx := context.Background()
	repo := NewMockOrderRepository()

	base := time.Now()
	for i := 0; i < 60; i++ {
		email := "a@example.com"
		if i%2 == 0 {
			email = "b@example.com"
		}
		_, err := repo.Create(ctx, &models.Order{
			BuyerEmail: email,
			Status:     models.OrderStatusPending,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	orders, err := repo.Find(ctx, NewQuery().SortNewest("created_at").WithLimit(50))
	require.NoError(t, err)
	require.Len(t, orders, 50)
	for i := 1; i < len(orders); i++ {
		assert.False(t, orders[i].CreatedAt.After(orders[i-1].CreatedAt), "orders must be newest first")
	}

	filtered, err := repo.Find(ctx, NewQuery().Where("buyer_email", "a@example.com").SortNewest("created_at").WithLimit(50))
	require.NoError(t, err)
	assert.Len(t, filtered, 30)
	for _, o := range filtered {
		assert.Equal(t, "a@example.com", o.BuyerEmail)
	}
}
