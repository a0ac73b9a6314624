package models

import "gorm.io/gorm"

// Banner is a promotional banner shown on the storefront. The image is a URL
// into object storage, managed by admins.
type Banner struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title     string `json:"title" validate:"required,min=2,max=200"`
	Image     string `json:"image" validate:"required,url"`
	ProductID string `json:"product_id" gorm:"type:varchar(36)" validate:"omitempty,uuid"`
	Active    bool   `json:"active"`
	gorm.Model
}
