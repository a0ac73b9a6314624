package services

import (
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// BannerService handles storefront banners.
type BannerService struct {
	repo repositories.BannerRepository
}

// NewBannerService creates a new BannerService.
func NewBannerService(repo repositories.BannerRepository) *BannerService {
	return &BannerService{
		repo: repo,
	}
}

// GetActiveBanners retrieves the banners shown on the storefront.
func (s *BannerService) GetActiveBanners() ([]models.Banner, error) {
	return s.repo.GetAll(true)
}

// GetAllBanners retrieves every banner, for the admin back office.
func (s *BannerService) GetAllBanners() ([]models.Banner, error) {
	return s.repo.GetAll(false)
}

// CreateBanner creates a new banner.
func (s *BannerService) CreateBanner(banner *models.Banner) error {
	return s.repo.Create(banner)
}

// UpdateBanner updates an existing banner.
func (s *BannerService) UpdateBanner(banner *models.Banner) error {
	return s.repo.Update(banner)
}

// DeleteBanner deletes a banner by its ID.
func (s *BannerService) DeleteBanner(id string) error {
	return s.repo.Delete(id)
}
