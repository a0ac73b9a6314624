package repositories

import (
	"fmt"
	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BannerRepository defines the interface for banner data access.
type BannerRepository interface {
	GetAll(activeOnly bool) ([]models.Banner, error)
	Create(banner *models.Banner) error
	Update(banner *models.Banner) error
	Delete(id string) error
}

// GORMBannerRepository is a GORM implementation of BannerRepository.
type GORMBannerRepository struct {
	db *gorm.DB
}

// NewGORMBannerRepository creates a new instance of GORMBannerRepository.
func NewGORMBannerRepository(db *gorm.DB) *GORMBannerRepository {
	return &GORMBannerRepository{
		db: db,
	}
}

// GetAll retrieves banners, optionally only active ones.
func (r *GORMBannerRepository) GetAll(activeOnly bool) ([]models.Banner, error) {
	var banners []models.Banner
	query := r.db
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Find(&banners).Error; err != nil {
		return nil, fmt.Errorf("failed to get banners: %w", err)
	}
	return banners, nil
}

// Create creates a new banner.
func (r *GORMBannerRepository) Create(banner *models.Banner) error {
	if banner.ID == "" {
		banner.ID = uuid.New().String()
	}
	if err := r.db.Create(banner).Error; err != nil {
		return fmt.Errorf("failed to create banner: %w", err)
	}
	return nil
}

// Update updates an existing banner.
func (r *GORMBannerRepository) Update(banner *models.Banner) error {
	res := r.db.Save(banner)
	if res.Error != nil {
		return fmt.Errorf("failed to update banner: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("banner with ID %s not found for update", banner.ID)
	}
	return nil
}

// Delete deletes a banner by its ID.
func (r *GORMBannerRepository) Delete(id string) error {
	res := r.db.Delete(&models.Banner{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete banner: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("banner with ID %s not found for deletion", id)
	}
	return nil
}
