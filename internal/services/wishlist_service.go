package services

import (
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// WishlistService handles the per-user wishlist.
type WishlistService struct {
	repo repositories.WishlistRepository
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(repo repositories.WishlistRepository) *WishlistService {
	return &WishlistService{
		repo: repo,
	}
}

// List returns the product IDs in the user's wishlist.
func (s *WishlistService) List(userID string) ([]string, error) {
	entries, err := s.repo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ProductID)
	}
	return ids, nil
}

// Toggle adds the product to the wishlist if absent, removes it if present.
// It reports whether the product ended up in the wishlist.
func (s *WishlistService) Toggle(userID, productID string) (bool, error) {
	exists, err := s.repo.Exists(userID, productID)
	if err != nil {
		return false, err
	}
	if exists {
		if err := s.repo.Delete(userID, productID); err != nil {
			return true, err
		}
		return false, nil
	}
	if err := s.repo.Create(&models.WishlistEntry{UserID: userID, ProductID: productID}); err != nil {
		return false, err
	}
	return true, nil
}
