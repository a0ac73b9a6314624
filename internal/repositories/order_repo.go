package repositories

import (
	"storefront/internal/models"
)

// OrderRepository defines the interface for order data access. Order creation
// is split in two: the order row is written first, then its items referencing
// the generated order ID. Delete exists so a failed item write can be
// compensated by removing the parent row.
type OrderRepository interface {
	Create(order *models.Order) error
	CreateItems(items []models.OrderItem) error
	Delete(id string) error
	GetByID(id string) (*models.Order, error)
	GetByUser(userID string) ([]models.Order, error)
}
