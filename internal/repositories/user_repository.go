package repositories

import "storefront/internal/models"

// UserRepository defines the interface for profile data access.
type UserRepository interface {
	Create(profile *models.Profile) error
	GetByEmail(email string) (*models.Profile, error)
	GetByID(id string) (*models.Profile, error)
}
