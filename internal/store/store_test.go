package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshcart/freshcart/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(t.TempDir())
	require.NoError(t, err)
	return st
}

func TestSeedCatalog(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Seed())

	products := st.Products()
	require.Len(t, products, 8)

	var vegetables []string
	for _, p := range products {
		if p.Category == model.CategoryVegetables {
			vegetables = append(vegetables, p.Name)
		}
	}
	assert.ElementsMatch(t, []string{"Organic Carrots", "Spinach Bunch", "Tomatoes"}, vegetables)

	users := st.Users()
	require.Len(t, users, 2)
	assert.Equal(t, "admin@freshcart.com", users[0].Email)
	assert.Equal(t, model.RoleAdmin, users[0].Role)
	assert.Equal(t, model.RoleCustomer, users[1].Role)
	// Credentials are hashed at seed time, never stored as plaintext.
	assert.NotEqual(t, "adminpassword", users[0].PasswordHash)
	assert.NotEmpty(t, users[0].PasswordHash)

	assert.Empty(t, st.Orders())
}

func TestSeedIsIdempotent(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Seed())

	products := st.Products()
	products[0].Price = 99.99
	st.SetProducts(products)
	st.SetOrders([]model.Order{{ID: "ord-1", UserID: "user1", Date: time.Now()}})

	require.NoError(t, st.Seed())

	assert.Equal(t, 99.99, st.Products()[0].Price)
	assert.Len(t, st.Orders(), 1)
	assert.Len(t, st.Users(), 2)
}

func TestLoadDefaultsOnCorruption(t *testing.T) {
	dir := t.TempDir()
	st, err := Open(dir)
	require.NoError(t, err)

	path := filepath.Join(dir, CollectionProducts+".json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	assert.Empty(t, st.Products())
	assert.EqualValues(t, 1, st.Diagnostics().LoadErrors.Load())
}

func TestLoadMissingCollectionUsesDefault(t *testing.T) {
	st := newTestStore(t)
	assert.Empty(t, st.Orders())
	// A missing file is not a failure, only corruption is.
	assert.EqualValues(t, 0, st.Diagnostics().LoadErrors.Load())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := newTestStore(t)
	date := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	orders := []model.Order{
		{
			ID:     "ord-1",
			UserID: "user1",
			Items: []model.CartItem{
				{Product: model.Product{ID: "1", Name: "Organic Carrots", Price: 2.5}, Quantity: 2},
			},
			Total: 5.0,
			Date:  date,
		},
	}
	st.SetOrders(orders)

	got := st.Orders()
	require.Len(t, got, 1)
	assert.Equal(t, "ord-1", got[0].ID)
	assert.Equal(t, 5.0, got[0].Total)
	assert.True(t, got[0].Date.Equal(date))
	require.Len(t, got[0].Items, 1)
	assert.Equal(t, 2, got[0].Items[0].Quantity)
}
