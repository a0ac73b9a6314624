package repositories

import (
	"fmt"
	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewsletterRepository defines the interface for newsletter subscription data access.
type NewsletterRepository interface {
	GetAll() ([]models.NewsletterSubscription, error)
	GetByEmail(email string) (*models.NewsletterSubscription, error)
	Create(sub *models.NewsletterSubscription) error
}

// GORMNewsletterRepository is a GORM implementation of NewsletterRepository.
type GORMNewsletterRepository struct {
	db *gorm.DB
}

// NewGORMNewsletterRepository creates a new instance of GORMNewsletterRepository.
func NewGORMNewsletterRepository(db *gorm.DB) *GORMNewsletterRepository {
	return &GORMNewsletterRepository{
		db: db,
	}
}

// GetAll retrieves all subscriptions, newest first.
func (r *GORMNewsletterRepository) GetAll() ([]models.NewsletterSubscription, error) {
	var subs []models.NewsletterSubscription
	if err := r.db.Order("created_at desc").Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("failed to get newsletter subscriptions: %w", err)
	}
	return subs, nil
}

// GetByEmail retrieves a subscription by email.
func (r *GORMNewsletterRepository) GetByEmail(email string) (*models.NewsletterSubscription, error) {
	var sub models.NewsletterSubscription
	if err := r.db.First(&sub, "email = ?", email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("subscription with email %s not found", email)
		}
		return nil, fmt.Errorf("failed to get subscription by email %s: %w", email, err)
	}
	return &sub, nil
}

// Create inserts a subscription.
func (r *GORMNewsletterRepository) Create(sub *models.NewsletterSubscription) error {
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	if err := r.db.Create(sub).Error; err != nil {
		return fmt.Errorf("failed to create newsletter subscription: %w", err)
	}
	return nil
}
