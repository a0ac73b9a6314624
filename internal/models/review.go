package models

import "gorm.io/gorm"

// Review is a user review attached to a product.
type Review struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID string `json:"product_id" gorm:"index;type:varchar(36)" validate:"required"`
	UserID    string `json:"user_id" gorm:"index;type:varchar(36)"`
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string `json:"comment" validate:"omitempty,max=1000"`
	gorm.Model
}
