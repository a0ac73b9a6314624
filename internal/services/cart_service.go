package services

import (
	"encoding/json"
	"log"
	"sync"

	"storefront/internal/models"
	"storefront/pkg/cartstore"
)

// CartService maintains the authoritative cart of each session and mirrors it
// to the durable snapshot store on every mutation. Carts are rehydrated from
// the store on first access; a corrupt snapshot degrades to an empty cart.
type CartService struct {
	store cartstore.Store

	mu    sync.Mutex
	carts map[string][]models.CartItem
}

// NewCartService creates a new CartService over the given snapshot store.
func NewCartService(store cartstore.Store) *CartService {
	return &CartService{
		store: store,
		carts: make(map[string][]models.CartItem),
	}
}

// Items returns a copy of the session's cart lines.
func (s *CartService) Items(sessionID string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(sessionID)
	return append([]models.CartItem(nil), items...)
}

// Cart returns the session's cart with derived totals available.
func (s *CartService) Cart(sessionID string) models.Cart {
	return models.Cart{Items: s.Items(sessionID)}
}

// AddToCart merges an item into the session's cart: an existing entry with
// the same product ID has its quantity incremented, otherwise the item is
// appended. A non-positive quantity on the incoming item defaults to 1.
func (s *CartService) AddToCart(sessionID string, item models.CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(sessionID)
	merged := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}
	s.carts[sessionID] = items
	s.persist(sessionID)
}

// RemoveFromCart deletes the entry for a product ID. No-op if absent.
func (s *CartService) RemoveFromCart(sessionID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(sessionID)
	filtered := items[:0]
	for _, it := range items {
		if it.ID != productID {
			filtered = append(filtered, it)
		}
	}
	s.carts[sessionID] = filtered
	s.persist(sessionID)
}

// UpdateQuantity sets the absolute quantity of an entry. A quantity below 1
// removes the entry instead.
func (s *CartService) UpdateQuantity(sessionID, productID string, quantity int) {
	if quantity < 1 {
		s.RemoveFromCart(sessionID, productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(sessionID)
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity = quantity
			break
		}
	}
	s.carts[sessionID] = items
	s.persist(sessionID)
}

// ClearCart empties the session's cart and its persisted snapshot.
func (s *CartService) ClearCart(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[sessionID] = nil
	if err := s.store.Delete(sessionID); err != nil {
		log.Printf("Failed to delete cart snapshot for session %s: %v", sessionID, err)
	}
}

// CartTotal returns the subtotal of the session's cart.
func (s *CartService) CartTotal(sessionID string) float64 {
	return s.Cart(sessionID).Total()
}

// CartCount returns the summed quantity of the session's cart.
func (s *CartService) CartCount(sessionID string) int {
	return s.Cart(sessionID).Count()
}

// load returns the in-memory cart for a session, rehydrating it from the
// snapshot store on first access. Callers must hold s.mu.
func (s *CartService) load(sessionID string) []models.CartItem {
	if items, ok := s.carts[sessionID]; ok {
		return items
	}

	items := []models.CartItem{}
	data, found, err := s.store.Load(sessionID)
	if err != nil {
		log.Printf("Failed to load cart snapshot for session %s: %v", sessionID, err)
	} else if found {
		var cart models.Cart
		if err := json.Unmarshal(data, &cart); err != nil {
			// Corrupt snapshot: fall back to an empty cart, never surfaced.
			log.Printf("Failed to parse cart snapshot for session %s: %v", sessionID, err)
		} else {
			items = cart.Items
		}
	}
	s.carts[sessionID] = items
	return items
}

// persist writes the session's full cart to the snapshot store. Callers must
// hold s.mu.
func (s *CartService) persist(sessionID string) {
	data, err := json.Marshal(models.Cart{Items: s.carts[sessionID]})
	if err != nil {
		log.Printf("Failed to marshal cart for session %s: %v", sessionID, err)
		return
	}
	if err := s.store.Save(sessionID, data); err != nil {
		log.Printf("Failed to save cart snapshot for session %s: %v", sessionID, err)
	}
}
