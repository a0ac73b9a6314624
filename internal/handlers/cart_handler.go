package handlers

import (
	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SessionHeader carries the client cart session key.
const SessionHeader = "X-Cart-Session"

// CartHandler handles HTTP requests for the cart.
type CartHandler struct {
	service *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service: service,
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Patch("/items/:id", h.HandleUpdateQuantity)
	cartRoutes.Delete("/items/:id", h.HandleRemoveItem)
	cartRoutes.Delete("/", h.HandleClearCart)
}

// sessionID extracts the cart session key from the request.
func sessionID(c *fiber.Ctx) (string, error) {
	session := c.Get(SessionHeader)
	if session == "" {
		return "", c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "X-Cart-Session header is required",
		})
	}
	return session, nil
}

// HandleGetCart returns the cart with derived totals.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	session, err := sessionID(c)
	if session == "" {
		return err
	}

	cart := h.service.Cart(session)
	return c.JSON(fiber.Map{
		"items":      cart.Items,
		"cart_total": cart.Total(),
		"cart_count": cart.Count(),
	})
}

// HandleAddItem merges an item into the cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	session, err := sessionID(c)
	if session == "" {
		return err
	}

	var item models.CartItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if item.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Item id is required",
		})
	}

	h.service.AddToCart(session, item)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"items":      h.service.Items(session),
		"cart_total": h.service.CartTotal(session),
		"cart_count": h.service.CartCount(session),
	})
}

// HandleUpdateQuantity sets the absolute quantity of a cart line. A quantity
// below 1 removes the line.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	session, err := sessionID(c)
	if session == "" {
		return err
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	h.service.UpdateQuantity(session, c.Params("id"), body.Quantity)
	return c.JSON(fiber.Map{
		"items":      h.service.Items(session),
		"cart_total": h.service.CartTotal(session),
		"cart_count": h.service.CartCount(session),
	})
}

// HandleRemoveItem deletes a cart line.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	session, err := sessionID(c)
	if session == "" {
		return err
	}

	h.service.RemoveFromCart(session, c.Params("id"))
	return c.JSON(fiber.Map{
		"items":      h.service.Items(session),
		"cart_total": h.service.CartTotal(session),
		"cart_count": h.service.CartCount(session),
	})
}

// HandleClearCart empties the cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	session, err := sessionID(c)
	if session == "" {
		return err
	}

	h.service.ClearCart(session)
	return c.JSON(fiber.Map{
		"message": "Cart cleared",
	})
}
