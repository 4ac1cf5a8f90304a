package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshcart/freshcart/internal/model"
)

func TestGetProductsCategoryFilter(t *testing.T) {
	svc := NewCatalogService(newSeededStore(t), Latency{})
	ctx := context.Background()

	all, err := svc.GetProducts(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 8)

	// CategoryAll is the filter pseudo-value, not a stored category.
	allAgain, err := svc.GetProducts(ctx, model.CategoryAll)
	require.NoError(t, err)
	assert.Len(t, allAgain, 8)

	vegetables, err := svc.GetProducts(ctx, model.CategoryVegetables)
	require.NoError(t, err)
	var names []string
	for _, p := range vegetables {
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"Organic Carrots", "Spinach Bunch", "Tomatoes"}, names)
}

func TestAddProductAssignsUniqueIDs(t *testing.T) {
	st := newSeededStore(t)
	svc := NewCatalogService(st, Latency{})
	ctx := context.Background()

	first, err := svc.AddProduct(ctx, model.Product{Name: "Okra", Category: model.CategoryVegetables, Price: 2.2, Stock: 30})
	require.NoError(t, err)
	second, err := svc.AddProduct(ctx, model.Product{Name: "Guava", Category: model.CategoryFruits, Price: 3.1, Stock: 25})
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, st.Products(), 10)
}

func TestUpdateProductMergesPartialFields(t *testing.T) {
	st := newSeededStore(t)
	svc := NewCatalogService(st, Latency{})

	price := 2.75
	merged, err := svc.UpdateProduct(context.Background(), "1", model.ProductUpdate{Price: &price})
	require.NoError(t, err)

	assert.Equal(t, 2.75, merged.Price)
	assert.Equal(t, "Organic Carrots", merged.Name)
	assert.Equal(t, 100, merged.Stock)

	// The merge was persisted.
	stored := st.Products()[0]
	assert.Equal(t, 2.75, stored.Price)
	assert.Equal(t, "Organic Carrots", stored.Name)
}

func TestUpdateProductMissingID(t *testing.T) {
	st := newSeededStore(t)
	svc := NewCatalogService(st, Latency{})

	before := st.Products()
	name := "Ghost"
	_, err := svc.UpdateProduct(context.Background(), "does-not-exist", model.ProductUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrProductNotFound)

	// Nothing changed.
	assert.Equal(t, before, st.Products())
}

func TestDeleteProduct(t *testing.T) {
	st := newSeededStore(t)
	svc := NewCatalogService(st, Latency{})
	ctx := context.Background()

	require.NoError(t, svc.DeleteProduct(ctx, "1"))
	assert.Len(t, st.Products(), 7)

	// Deleting an absent id is a no-op success.
	require.NoError(t, svc.DeleteProduct(ctx, "1"))
	assert.Len(t, st.Products(), 7)
}
