package service

import (
	"context"

	"github.com/freshcart/freshcart/internal/model"
	"github.com/freshcart/freshcart/internal/store"
)

type CatalogService struct {
	store   *store.Store
	latency Latency
}

func NewCatalogService(st *store.Store, latency Latency) *CatalogService {
	return &CatalogService{store: st, latency: latency}
}

// GetProducts returns the catalog, optionally narrowed to one category.
// CategoryAll or an empty string means no filtering.
func (s *CatalogService) GetProducts(ctx context.Context, category string) ([]model.Product, error) {
	s.latency.read()

	products := s.store.Products()
	if category == "" || category == model.CategoryAll {
		return products, nil
	}

	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// AddProduct stores a new product under a fresh time-derived id. Whatever id
// the input carried is discarded.
func (s *CatalogService) AddProduct(ctx context.Context, input model.Product) (*model.Product, error) {
	s.latency.write()

	products := s.store.Products()
	input.ID = newID()
	s.store.SetProducts(append(products, input))
	return &input, nil
}

// UpdateProduct merges the partial update into the stored product and
// returns the result, or ErrProductNotFound when the id is absent.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, update model.ProductUpdate) (*model.Product, error) {
	s.latency.write()

	products := s.store.Products()
	for i := range products {
		if products[i].ID != id {
			continue
		}
		update.ApplyTo(&products[i])
		s.store.SetProducts(products)
		merged := products[i]
		return &merged, nil
	}
	return nil, ErrProductNotFound
}

// DeleteProduct removes a product. Deleting an absent id succeeds; existing
// cart and order line items keep their snapshots either way.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	s.latency.write()

	products := s.store.Products()
	kept := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.store.SetProducts(kept)
	return nil
}
