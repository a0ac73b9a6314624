package services

import (
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// ReviewService handles product reviews.
type ReviewService struct {
	repo        repositories.ReviewRepository
	productRepo repositories.ProductRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(repo repositories.ReviewRepository, productRepo repositories.ProductRepository) *ReviewService {
	return &ReviewService{
		repo:        repo,
		productRepo: productRepo,
	}
}

// GetByProduct retrieves all reviews of a product.
func (s *ReviewService) GetByProduct(productID string) ([]models.Review, error) {
	return s.repo.GetByProduct(productID)
}

// Create validates and stores a review for an existing product.
func (s *ReviewService) Create(review *models.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	if _, err := s.productRepo.GetByID(review.ProductID); err != nil {
		return fmt.Errorf("cannot review product %s: %w", review.ProductID, err)
	}
	return s.repo.Create(review)
}
