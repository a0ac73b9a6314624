package services

import (
	"fmt"
	"strings"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// NewsletterService handles newsletter subscriptions.
type NewsletterService struct {
	repo repositories.NewsletterRepository
}

// NewNewsletterService creates a new NewsletterService.
func NewNewsletterService(repo repositories.NewsletterRepository) *NewsletterService {
	return &NewsletterService{
		repo: repo,
	}
}

// Subscribe adds an email to the newsletter. Emails are normalized to lower
// case; subscribing twice is rejected.
func (s *NewsletterService) Subscribe(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if existing, err := s.repo.GetByEmail(email); err == nil && existing != nil {
		return fmt.Errorf("email '%s' already subscribed", email)
	}
	return s.repo.Create(&models.NewsletterSubscription{Email: email})
}

// GetAllSubscribers retrieves all subscriptions.
func (s *NewsletterService) GetAllSubscribers() ([]models.NewsletterSubscription, error) {
	return s.repo.GetAll()
}
