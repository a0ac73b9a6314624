package handlers

import (
	"log"
	"strings"

	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// NewsletterHandler handles HTTP requests for the newsletter.
type NewsletterHandler struct {
	service  *services.NewsletterService
	validate *validator.Validate
}

// NewNewsletterHandler creates a new NewsletterHandler.
func NewNewsletterHandler(service *services.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public subscribe route.
func (h *NewsletterHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/newsletter", h.HandleSubscribe)
}

// RegisterAdminRoutes registers the subscriber listing for the back office.
func (h *NewsletterHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/newsletter", h.HandleGetSubscribers)
}

// SubscribeRequest is the subscribe request body.
type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// HandleSubscribe adds an email to the newsletter.
func (h *NewsletterHandler) HandleSubscribe(c *fiber.Ctx) error {
	var req SubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A valid email is required",
		})
	}

	if err := h.service.Subscribe(req.Email); err != nil {
		log.Printf("Error subscribing %s: %v", req.Email, err)
		if strings.Contains(err.Error(), "already subscribed") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Subscription failed",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not subscribe",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Subscribed to the newsletter",
	})
}

// HandleGetSubscribers retrieves all subscriptions.
func (h *NewsletterHandler) HandleGetSubscribers(c *fiber.Ctx) error {
	subs, err := h.service.GetAllSubscribers()
	if err != nil {
		log.Printf("Error getting subscribers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve subscribers",
			"error":   err.Error(),
		})
	}
	return c.JSON(subs)
}
