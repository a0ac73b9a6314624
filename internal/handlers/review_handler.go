package handlers

import (
	"log"
	"strings"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles HTTP requests for product reviews.
type ReviewHandler struct {
	service *services.ReviewService
	auth    fiber.Handler
}

// NewReviewHandler creates a new ReviewHandler. auth protects review
// creation; reading reviews is public.
func NewReviewHandler(service *services.ReviewService, auth fiber.Handler) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		auth:    auth,
	}
}

// RegisterRoutes registers the review routes with the Fiber app.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products/:id/reviews", h.HandleGetReviews)
	router.Post("/products/:id/reviews", h.auth, h.HandleCreateReview)
}

// HandleGetReviews retrieves the reviews of a product.
func (h *ReviewHandler) HandleGetReviews(c *fiber.Ctx) error {
	productID := c.Params("id")
	reviews, err := h.service.GetByProduct(productID)
	if err != nil {
		log.Printf("Error getting reviews for product %s: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve reviews",
			"error":   err.Error(),
		})
	}
	return c.JSON(reviews)
}

// HandleCreateReview stores a review by the authenticated user.
func (h *ReviewHandler) HandleCreateReview(c *fiber.Ctx) error {
	var review models.Review
	if err := c.BodyParser(&review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	review.ProductID = c.Params("id")
	review.UserID, _ = c.Locals("user_id").(string)

	if err := h.service.Create(&review); err != nil {
		log.Printf("Error creating review: %v", err)
		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "rating must be") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Review rejected",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create review",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}
