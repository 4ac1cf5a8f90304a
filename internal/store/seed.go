package store

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/freshcart/freshcart/internal/model"
)

var seedCatalog = []model.Product{
	{ID: "1", Name: "Organic Carrots", Category: model.CategoryVegetables, Price: 2.50, Stock: 100, ImageURL: "https://picsum.photos/seed/carrots/400/300", Description: "Fresh, crunchy organic carrots, perfect for snacking or cooking."},
	{ID: "2", Name: "Millet Murukku", Category: model.CategoryMilletSnacks, Price: 4.00, Stock: 50, ImageURL: "https://picsum.photos/seed/murukku/400/300", Description: "A savory, crunchy snack made from healthy millet flour."},
	{ID: "3", Name: "Fresh Apples", Category: model.CategoryFruits, Price: 3.00, Stock: 80, ImageURL: "https://picsum.photos/seed/apples/400/300", Description: "Crisp and juicy red apples, sourced from local orchards."},
	{ID: "4", Name: "Spinach Bunch", Category: model.CategoryVegetables, Price: 1.80, Stock: 120, ImageURL: "https://picsum.photos/seed/spinach/400/300", Description: "A bundle of fresh spinach, rich in iron and vitamins."},
	{ID: "5", Name: "Ragi Cookies", Category: model.CategoryMilletSnacks, Price: 5.50, Stock: 40, ImageURL: "https://picsum.photos/seed/cookies/400/300", Description: "Delicious and healthy cookies made with finger millet (ragi)."},
	{ID: "6", Name: "Organic Milk", Category: model.CategoryDairy, Price: 3.20, Stock: 60, ImageURL: "https://picsum.photos/seed/milk/400/300", Description: "1L carton of fresh, pasteurized organic cow's milk."},
	{ID: "7", Name: "Tomatoes", Category: model.CategoryVegetables, Price: 2.00, Stock: 90, ImageURL: "https://picsum.photos/seed/tomatoes/400/300", Description: "Ripe and juicy tomatoes, perfect for salads and sauces."},
	{ID: "8", Name: "Bananas", Category: model.CategoryFruits, Price: 1.50, Stock: 150, ImageURL: "https://picsum.photos/seed/bananas/400/300", Description: "A bunch of sweet and creamy bananas."},
}

type seedAccount struct {
	id       string
	email    string
	password string
	role     model.Role
}

var seedAccounts = []seedAccount{
	{id: "admin1", email: "admin@freshcart.com", password: "adminpassword", role: model.RoleAdmin},
	{id: "user1", email: "customer@freshcart.com", password: "customerpassword", role: model.RoleCustomer},
}

// Seed writes the default catalog and accounts on first run. A collection
// that already has a file is left alone, so seeding is idempotent.
func (s *Store) Seed() error {
	if !s.has(CollectionProducts) {
		Save(s, CollectionProducts, seedCatalog)
	}
	if !s.has(CollectionUsers) {
		users := make([]model.User, 0, len(seedAccounts))
		for _, a := range seedAccounts {
			hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash seed password for %s: %w", a.email, err)
			}
			users = append(users, model.User{
				ID:           a.id,
				Email:        a.email,
				PasswordHash: string(hash),
				Role:         a.role,
			})
		}
		Save(s, CollectionUsers, users)
	}
	if !s.has(CollectionOrders) {
		Save(s, CollectionOrders, []model.Order{})
	}
	return nil
}
