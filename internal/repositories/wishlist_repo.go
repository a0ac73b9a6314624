package repositories

import (
	"fmt"
	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WishlistRepository defines the interface for wishlist data access.
type WishlistRepository interface {
	GetByUser(userID string) ([]models.WishlistEntry, error)
	Exists(userID, productID string) (bool, error)
	Create(entry *models.WishlistEntry) error
	Delete(userID, productID string) error
}

// GORMWishlistRepository is a GORM implementation of WishlistRepository.
type GORMWishlistRepository struct {
	db *gorm.DB
}

// NewGORMWishlistRepository creates a new instance of GORMWishlistRepository.
func NewGORMWishlistRepository(db *gorm.DB) *GORMWishlistRepository {
	return &GORMWishlistRepository{
		db: db,
	}
}

// GetByUser retrieves the wishlist entries of a user.
func (r *GORMWishlistRepository) GetByUser(userID string) ([]models.WishlistEntry, error) {
	var entries []models.WishlistEntry
	if err := r.db.Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get wishlist for user %s: %w", userID, err)
	}
	return entries, nil
}

// Exists reports whether a product is in the user's wishlist.
func (r *GORMWishlistRepository) Exists(userID, productID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.WishlistEntry{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check wishlist entry: %w", err)
	}
	return count > 0, nil
}

// Create inserts a wishlist entry.
func (r *GORMWishlistRepository) Create(entry *models.WishlistEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create wishlist entry: %w", err)
	}
	return nil
}

// Delete removes a wishlist entry.
func (r *GORMWishlistRepository) Delete(userID, productID string) error {
	res := r.db.Delete(&models.WishlistEntry{}, "user_id = ? AND product_id = ?", userID, productID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete wishlist entry: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("wishlist entry for product %s not found", productID)
	}
	return nil
}
