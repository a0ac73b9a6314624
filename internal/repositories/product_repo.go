package repositories

import (
	"storefront/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll(category string) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	GetImages(productID string) ([]models.ProductImage, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	Create(category *models.Category) error
	Delete(id string) error
}
