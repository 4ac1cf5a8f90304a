package service

import (
	"context"
	"sort"
	"time"

	"github.com/freshcart/freshcart/internal/model"
	"github.com/freshcart/freshcart/internal/store"
)

type OrderService struct {
	store   *store.Store
	latency Latency
}

func NewOrderService(st *store.Store, latency Latency) *OrderService {
	return &OrderService{store: st, latency: latency}
}

// CreateOrder freezes the given cart items into an immutable order. The
// total is computed here and never recomputed, so later price changes cannot
// reach it.
func (s *OrderService) CreateOrder(ctx context.Context, userID string, items []model.CartItem) (*model.Order, error) {
	s.latency.write()

	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}

	order := model.Order{
		ID:     "ord-" + newID(),
		UserID: userID,
		Items:  append([]model.CartItem(nil), items...),
		Total:  total,
		Date:   time.Now().UTC(),
	}

	s.store.SetOrders(append(s.store.Orders(), order))
	return &order, nil
}

// GetUserOrders returns the user's orders, newest first. Orders with equal
// timestamps keep their stored order.
func (s *OrderService) GetUserOrders(ctx context.Context, userID string) ([]model.Order, error) {
	s.latency.read()

	var orders []model.Order
	for _, o := range s.store.Orders() {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Date.After(orders[j].Date)
	})
	return orders, nil
}
