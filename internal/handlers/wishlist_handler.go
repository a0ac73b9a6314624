package handlers

import (
	"log"

	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// WishlistHandler handles HTTP requests for the wishlist.
type WishlistHandler struct {
	service *services.WishlistService
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(service *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		service: service,
	}
}

// RegisterRoutes registers the wishlist routes. The router is expected to
// already carry auth middleware.
func (h *WishlistHandler) RegisterRoutes(router fiber.Router) {
	wishlistRoutes := router.Group("/wishlist")
	wishlistRoutes.Get("/", h.HandleGetWishlist)
	wishlistRoutes.Post("/:productId", h.HandleToggle)
}

// HandleGetWishlist returns the product IDs in the user's wishlist.
func (h *WishlistHandler) HandleGetWishlist(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	ids, err := h.service.List(userID)
	if err != nil {
		log.Printf("Error getting wishlist for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve wishlist",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"product_ids": ids,
	})
}

// HandleToggle adds or removes a product from the wishlist.
func (h *WishlistHandler) HandleToggle(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	productID := c.Params("productId")

	added, err := h.service.Toggle(userID, productID)
	if err != nil {
		log.Printf("Error toggling wishlist entry for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update wishlist",
			"error":   err.Error(),
		})
	}

	message := "Removed from wishlist"
	if added {
		message = "Added to wishlist"
	}
	return c.JSON(fiber.Map{
		"message": message,
		"added":   added,
	})
}
