package models

import "gorm.io/gorm"

// Role values stored on a profile.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Profile represents a registered user of the store.
type Profile struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	FullName   string `json:"full_name" gorm:"type:varchar(100)" validate:"required,min=3,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	Role       string `json:"role" gorm:"type:varchar(20);default:user"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// TableName keeps the table aligned with the profiles schema.
func (Profile) TableName() string {
	return "profiles"
}
