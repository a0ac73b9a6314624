package handlers

import (
	"errors"
	"log"

	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler handles HTTP requests for the checkout wizard and order
// placement.
type CheckoutHandler struct {
	service *services.CheckoutService
	auth    fiber.Handler // guards the place-order route
}

// NewCheckoutHandler creates a new CheckoutHandler. auth is the JWT
// middleware protecting order placement.
func NewCheckoutHandler(service *services.CheckoutService, auth fiber.Handler) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		auth:    auth,
	}
}

// RegisterRoutes registers the checkout routes with the Fiber app. Only the
// terminal place-order route requires authentication; the wizard itself can
// be walked before signing in.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	checkoutRoutes := router.Group("/checkout")
	checkoutRoutes.Get("/", h.HandleGetSession)
	checkoutRoutes.Post("/shipping", h.HandleSubmitShipping)
	checkoutRoutes.Post("/delivery", h.HandleSelectDelivery)
	checkoutRoutes.Post("/payment", h.HandleSelectPayment)
	checkoutRoutes.Post("/back", h.HandleBack)
	checkoutRoutes.Post("/place", h.auth, h.HandlePlaceOrder)
}

// HandleGetSession returns the wizard state and the effective order total.
func (h *CheckoutHandler) HandleGetSession(c *fiber.Ctx) error {
	session, err := sessionID(c)
	if session == "" {
		return err
	}

	sess := h.service.Session(session)
	return c.JSON(fiber.Map{
		"checkout":    sess,
		"order_total": h.service.OrderTotal(session),
	})
}

// HandleSubmitShipping validates the shipping form and advances the wizard.
func (h *CheckoutHandler) HandleSubmitShipping(c *fiber.Ctx) error {
	session, err := sessionID(c)
	if session == "" {
		return err
	}

	var info services.ShippingInfo
	if err := c.BodyParser(&info); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.SubmitShipping(session, info); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Shipping validation failed",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"checkout": h.service.Session(session),
	})
}

// HandleSelectDelivery records the delivery method.
func (h *CheckoutHandler) HandleSelectDelivery(c *fiber.Ctx) error {
	session, err := sessionID(c)
	if session == "" {
		return err
	}

	var body struct {
		Method string `json:"method"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.SelectDelivery(session, body.Method); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not select delivery method",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"checkout":    h.service.Session(session),
		"order_total": h.service.OrderTotal(session),
	})
}

// HandleSelectPayment records the payment method.
func (h *CheckoutHandler) HandleSelectPayment(c *fiber.Ctx) error {
	session, err := sessionID(c)
	if session == "" {
		return err
	}

	var body struct {
		Method string                `json:"method"`
		Card   *services.CardDetails `json:"card"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.SelectPayment(session, body.Method, body.Card); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not select payment method",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"checkout": h.service.Session(session),
	})
}

// HandleBack navigates one wizard step backwards.
func (h *CheckoutHandler) HandleBack(c *fiber.Ctx) error {
	session, err := sessionID(c)
	if session == "" {
		return err
	}

	h.service.Back(session)
	return c.JSON(fiber.Map{
		"checkout": h.service.Session(session),
	})
}

// HandlePlaceOrder runs the order placement flow for the authenticated user.
func (h *CheckoutHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	session, err := sessionID(c)
	if session == "" {
		return err
	}

	userID, _ := c.Locals("user_id").(string)
	order, err := h.service.PlaceOrder(session, userID)
	if err != nil {
		log.Printf("Error placing order for session %s: %v", session, err)
		switch {
		case errors.Is(err, services.ErrAuthRequired):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message":  "Sign in to place an order",
				"redirect": "/login",
			})
		case errors.Is(err, services.ErrEmptyCart), errors.Is(err, services.ErrWrongStep):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Order could not be placed",
				"error":   err.Error(),
			})
		case errors.Is(err, services.ErrSubmissionInFlight):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "An order submission is already in progress",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not place order",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order placed successfully",
		"order":   order,
	})
}
