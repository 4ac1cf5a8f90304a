package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshcart/freshcart/internal/model"
)

func TestCreateOrderFreezesTotal(t *testing.T) {
	st := newSeededStore(t)
	orderSvc := NewOrderService(st, Latency{})
	catalogSvc := NewCatalogService(st, Latency{})
	ctx := context.Background()

	items := []model.CartItem{
		{Product: model.Product{ID: "1", Name: "Organic Carrots", Price: 2.50}, Quantity: 2},
		{Product: model.Product{ID: "8", Name: "Bananas", Price: 1.50}, Quantity: 1},
	}
	order, err := orderSvc.CreateOrder(ctx, "user1", items)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.ID, "ord-"))
	assert.Equal(t, "user1", order.UserID)
	assert.InDelta(t, 6.50, order.Total, 1e-9)

	// A later price change must not reach the frozen order.
	newPrice := 10.0
	_, err = catalogSvc.UpdateProduct(ctx, "1", model.ProductUpdate{Price: &newPrice})
	require.NoError(t, err)

	orders, err := orderSvc.GetUserOrders(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.InDelta(t, 6.50, orders[0].Total, 1e-9)
	assert.Equal(t, 2.50, orders[0].Items[0].Price)
}

func TestGetUserOrdersFiltersAndSortsDescending(t *testing.T) {
	st := newSeededStore(t)
	svc := NewOrderService(st, Latency{})

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	st.SetOrders([]model.Order{
		{ID: "ord-a", UserID: "user1", Date: base},
		{ID: "ord-b", UserID: "user1", Date: base.Add(2 * time.Hour)},
		{ID: "ord-c", UserID: "someone-else", Date: base.Add(time.Hour)},
		// Same timestamp as ord-b; the stored order must be kept.
		{ID: "ord-d", UserID: "user1", Date: base.Add(2 * time.Hour)},
	})

	orders, err := svc.GetUserOrders(context.Background(), "user1")
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "ord-b", orders[0].ID)
	assert.Equal(t, "ord-d", orders[1].ID)
	assert.Equal(t, "ord-a", orders[2].ID)
}

func TestGetUserOrdersEmpty(t *testing.T) {
	svc := NewOrderService(newSeededStore(t), Latency{})
	orders, err := svc.GetUserOrders(context.Background(), "user1")
	require.NoError(t, err)
	assert.Empty(t, orders)
}
