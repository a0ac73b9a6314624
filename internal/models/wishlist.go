package models

import "time"

// WishlistEntry links a user to a saved product. One row per (user, product).
type WishlistEntry struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"index:idx_wishlist_user_product,unique;type:varchar(36)"`
	ProductID string    `json:"product_id" gorm:"index:idx_wishlist_user_product,unique;type:varchar(36)"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName matches the wishlist table name.
func (WishlistEntry) TableName() string {
	return "wishlist"
}
