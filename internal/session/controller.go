package session

import (
	"context"
	"sync"

	"github.com/freshcart/freshcart/internal/model"
	"github.com/freshcart/freshcart/internal/service"
)

// MarkerStore holds the signed-in identity for the lifetime of one session,
// like a browser tab's session storage. It never outlives the process.
type MarkerStore interface {
	Load() (model.User, bool)
	Save(model.User)
	Clear()
}

// MemoryMarker is the MarkerStore used by live sessions and tests.
type MemoryMarker struct {
	mu   sync.Mutex
	user *model.User
}

func NewMemoryMarker() *MemoryMarker {
	return &MemoryMarker{}
}

func (m *MemoryMarker) Load() (model.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return model.User{}, false
	}
	return *m.user, true
}

func (m *MemoryMarker) Save(user model.User) {
	m.mu.Lock()
	m.user = &user
	m.mu.Unlock()
}

func (m *MemoryMarker) Clear() {
	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()
}

// Controller owns all per-session state: the signed-in user, the product
// cache, the cart, the order history, and the loading/error flags the
// storefront renders from. Every mutation goes through a named operation;
// nothing writes these fields from outside the package.
//
// Cart entries keep insertion order. Quantity changes never reorder them.
type Controller struct {
	auth    *service.AuthService
	catalog *service.CatalogService
	orders  *service.OrderService
	marker  MarkerStore

	mu       sync.RWMutex
	user     *model.User
	products []model.Product
	cart     []model.CartItem
	history  []model.Order
	loading  bool
	lastErr  string
}

// NewController fetches the catalog once and, when the marker still holds an
// identity from earlier in the session, restores the user and their order
// history.
func NewController(ctx context.Context, auth *service.AuthService, catalog *service.CatalogService, orders *service.OrderService, marker MarkerStore) *Controller {
	c := &Controller{
		auth:    auth,
		catalog: catalog,
		orders:  orders,
		marker:  marker,
	}
	c.refreshProducts(ctx)
	if user, ok := marker.Load(); ok {
		c.mu.Lock()
		c.user = &user
		c.mu.Unlock()
		c.refreshOrders(ctx, user.ID)
	}
	return c
}

// Login delegates to the access layer. On success the user is set, the
// identity marker saved, and the order history replaced; on failure nothing
// changes and the error goes back to the caller.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	user, err := c.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.user = user
	c.mu.Unlock()
	c.marker.Save(*user)
	c.refreshOrders(ctx, user.ID)
	return nil
}

// Register creates the account and signs it in. A fresh account has no
// orders, so any history left over from a previous login is dropped.
func (c *Controller) Register(ctx context.Context, email, password string) error {
	user, err := c.auth.Register(ctx, email, password)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.user = user
	c.history = nil
	c.mu.Unlock()
	c.marker.Save(*user)
	return nil
}

// Logout clears the user, cart, order history, and identity marker. There is
// no undo.
func (c *Controller) Logout() {
	c.mu.Lock()
	c.user = nil
	c.cart = nil
	c.history = nil
	c.mu.Unlock()
	c.marker.Clear()
}

// AddToCart increments the quantity of an existing entry with the same
// product id, or appends a new entry with quantity 1. The product snapshot
// is taken now; later catalog edits do not touch it.
func (c *Controller) AddToCart(product model.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.cart {
		if c.cart[i].ID == product.ID {
			c.cart[i].Quantity++
			return
		}
	}
	c.cart = append(c.cart, model.CartItem{Product: product, Quantity: 1})
}

// UpdateCartQuantity sets the matching entry's quantity, then drops any
// entry at or below zero. An absent id is a no-op; no entry is created.
func (c *Controller) UpdateCartQuantity(productID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := make([]model.CartItem, 0, len(c.cart))
	for _, item := range c.cart {
		if item.ID == productID {
			item.Quantity = quantity
		}
		if item.Quantity > 0 {
			kept = append(kept, item)
		}
	}
	c.cart = kept
}

func (c *Controller) RemoveFromCart(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := make([]model.CartItem, 0, len(c.cart))
	for _, item := range c.cart {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	c.cart = kept
}

func (c *Controller) ClearCart() {
	c.mu.Lock()
	c.cart = nil
	c.mu.Unlock()
}

// PlaceOrder checks the cart out: create the order, clear the cart, refetch
// the order history. Without a signed-in user or with an empty cart it does
// nothing and reports no error.
func (c *Controller) PlaceOrder(ctx context.Context) error {
	c.mu.RLock()
	user := c.user
	items := append([]model.CartItem(nil), c.cart...)
	c.mu.RUnlock()

	if user == nil || len(items) == 0 {
		return nil
	}
	if _, err := c.orders.CreateOrder(ctx, user.ID, items); err != nil {
		return err
	}
	c.ClearCart()
	c.refreshOrders(ctx, user.ID)
	return nil
}

// AddProduct delegates to the catalog, then refetches the product cache.
// Role gating happens at the surface above; the controller does not enforce
// it.
func (c *Controller) AddProduct(ctx context.Context, input model.Product) (*model.Product, error) {
	created, err := c.catalog.AddProduct(ctx, input)
	if err != nil {
		return nil, err
	}
	c.refreshProducts(ctx)
	return created, nil
}

func (c *Controller) UpdateProduct(ctx context.Context, id string, update model.ProductUpdate) (*model.Product, error) {
	merged, err := c.catalog.UpdateProduct(ctx, id, update)
	if err != nil {
		return nil, err
	}
	c.refreshProducts(ctx)
	return merged, nil
}

func (c *Controller) DeleteProduct(ctx context.Context, id string) error {
	if err := c.catalog.DeleteProduct(ctx, id); err != nil {
		return err
	}
	c.refreshProducts(ctx)
	return nil
}

// User returns the signed-in user, or nil.
func (c *Controller) User() *model.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

// Product looks a product up in the cached catalog.
func (c *Controller) Product(id string) (model.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

func (c *Controller) Products() []model.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]model.Product(nil), c.products...)
}

func (c *Controller) Cart() []model.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]model.CartItem(nil), c.cart...)
}

func (c *Controller) Orders() []model.Order {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]model.Order(nil), c.history...)
}

func (c *Controller) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// LastError is the most recent fetch failure message, for the UI banner.
func (c *Controller) LastError() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

func (c *Controller) refreshProducts(ctx context.Context) {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	products, err := c.catalog.GetProducts(ctx, "")

	c.mu.Lock()
	if err != nil {
		c.lastErr = "Failed to fetch products."
	} else {
		c.products = products
	}
	c.loading = false
	c.mu.Unlock()
}

func (c *Controller) refreshOrders(ctx context.Context, userID string) {
	orders, err := c.orders.GetUserOrders(ctx, userID)

	c.mu.Lock()
	if err != nil {
		c.lastErr = "Failed to fetch orders."
	} else {
		c.history = orders
	}
	c.mu.Unlock()
}
