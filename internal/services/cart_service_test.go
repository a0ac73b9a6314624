package services_test

import (
	"testing"

	"storefront/internal/models"
	"storefront/internal/services"
	"storefront/pkg/cartstore"

	"github.com/stretchr/testify/assert"
)

func TestCartService_AddToCartMergesByID(t *testing.T) {
	cart := services.NewCartService(cartstore.NewMemoryStore())

	cart.AddToCart("sess-1", models.CartItem{ID: "A", Name: "Lipstick", Price: 10, Quantity: 2})
	cart.AddToCart("sess-1", models.CartItem{ID: "A", Name: "Lipstick", Price: 10, Quantity: 3})
	cart.AddToCart("sess-1", models.CartItem{ID: "A", Name: "Lipstick", Price: 10}) // Defaults to 1

	items := cart.Items("sess-1")
	assert.Len(t, items, 1)
	assert.Equal(t, "A", items[0].ID)
	assert.Equal(t, 6, items[0].Quantity)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	cart := services.NewCartService(cartstore.NewMemoryStore())
	cart.AddToCart("sess-1", models.CartItem{ID: "A", Price: 10, Quantity: 2})

	// Absolute set, not incremental
	cart.UpdateQuantity("sess-1", "A", 5)
	items := cart.Items("sess-1")
	assert.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)

	// Zero removes the entry
	cart.UpdateQuantity("sess-1", "A", 0)
	assert.Empty(t, cart.Items("sess-1"))

	// Negative removes too
	cart.AddToCart("sess-1", models.CartItem{ID: "B", Price: 5, Quantity: 1})
	cart.UpdateQuantity("sess-1", "B", -1)
	assert.Empty(t, cart.Items("sess-1"))
}

func TestCartService_RemoveFromCart(t *testing.T) {
	cart := services.NewCartService(cartstore.NewMemoryStore())
	cart.AddToCart("sess-1", models.CartItem{ID: "A", Price: 10, Quantity: 1})

	cart.RemoveFromCart("sess-1", "A")
	assert.Empty(t, cart.Items("sess-1"))

	// Removing an absent entry is a no-op
	cart.RemoveFromCart("sess-1", "missing")
	assert.Empty(t, cart.Items("sess-1"))
}

func TestCartService_DerivedTotals(t *testing.T) {
	cart := services.NewCartService(cartstore.NewMemoryStore())
	cart.AddToCart("sess-1", models.CartItem{ID: "A", Price: 10, Quantity: 2})
	cart.AddToCart("sess-1", models.CartItem{ID: "B", Price: 5, Quantity: 1})

	assert.Equal(t, 25.0, cart.CartTotal("sess-1"))
	assert.Equal(t, 3, cart.CartCount("sess-1"))

	cart.UpdateQuantity("sess-1", "B", 4)
	assert.Equal(t, 40.0, cart.CartTotal("sess-1"))
	assert.Equal(t, 6, cart.CartCount("sess-1"))

	cart.RemoveFromCart("sess-1", "A")
	assert.Equal(t, 20.0, cart.CartTotal("sess-1"))
	assert.Equal(t, 4, cart.CartCount("sess-1"))
}

func TestCartService_PersistsAndRehydrates(t *testing.T) {
	store := cartstore.NewMemoryStore()

	cart := services.NewCartService(store)
	cart.AddToCart("sess-1", models.CartItem{ID: "A", Name: "Serum", Price: 30, Quantity: 2})

	// A fresh service over the same store sees the cart.
	restarted := services.NewCartService(store)
	items := restarted.Items("sess-1")
	assert.Len(t, items, 1)
	assert.Equal(t, "Serum", items[0].Name)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartService_ClearCartEmptiesSnapshot(t *testing.T) {
	store := cartstore.NewMemoryStore()
	cart := services.NewCartService(store)
	cart.AddToCart("sess-1", models.CartItem{ID: "A", Price: 10, Quantity: 1})

	cart.ClearCart("sess-1")
	assert.Empty(t, cart.Items("sess-1"))

	_, found, err := store.Load("sess-1")
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestCartService_CorruptSnapshotDegradesToEmpty(t *testing.T) {
	store := cartstore.NewMemoryStore()
	assert.NoError(t, store.Save("sess-1", []byte("not json{")))

	cart := services.NewCartService(store)
	assert.Empty(t, cart.Items("sess-1"))

	// The session stays usable after the bad snapshot.
	cart.AddToCart("sess-1", models.CartItem{ID: "A", Price: 10, Quantity: 1})
	assert.Equal(t, 1, cart.CartCount("sess-1"))
}

func TestCartService_SessionsAreIsolated(t *testing.T) {
	cart := services.NewCartService(cartstore.NewMemoryStore())
	cart.AddToCart("sess-1", models.CartItem{ID: "A", Price: 10, Quantity: 1})
	cart.AddToCart("sess-2", models.CartItem{ID: "B", Price: 5, Quantity: 2})

	assert.Equal(t, 1, cart.CartCount("sess-1"))
	assert.Equal(t, 2, cart.CartCount("sess-2"))
	assert.Equal(t, 10.0, cart.CartTotal("sess-1"))
	assert.Equal(t, 10.0, cart.CartTotal("sess-2"))
}
