package handlers

import (
	"fmt"
	"log"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// BannerHandler handles HTTP requests for storefront banners.
type BannerHandler struct {
	service  *services.BannerService
	validate *validator.Validate
}

// NewBannerHandler creates a new BannerHandler.
func NewBannerHandler(service *services.BannerService) *BannerHandler {
	return &BannerHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public banner route.
func (h *BannerHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/banners", h.HandleGetBanners)
}

// RegisterAdminRoutes registers the banner management routes.
func (h *BannerHandler) RegisterAdminRoutes(router fiber.Router) {
	bannerRoutes := router.Group("/banners")
	bannerRoutes.Get("/", h.HandleGetAllBanners)
	bannerRoutes.Post("/", h.HandleCreateBanner)
	bannerRoutes.Put("/:id", h.HandleUpdateBanner)
	bannerRoutes.Delete("/:id", h.HandleDeleteBanner)
}

// HandleGetBanners retrieves the active banners.
func (h *BannerHandler) HandleGetBanners(c *fiber.Ctx) error {
	banners, err := h.service.GetActiveBanners()
	if err != nil {
		log.Printf("Error getting banners: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve banners",
			"error":   err.Error(),
		})
	}
	return c.JSON(banners)
}

// HandleGetAllBanners retrieves every banner for the back office.
func (h *BannerHandler) HandleGetAllBanners(c *fiber.Ctx) error {
	banners, err := h.service.GetAllBanners()
	if err != nil {
		log.Printf("Error getting all banners: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve banners",
			"error":   err.Error(),
		})
	}
	return c.JSON(banners)
}

// HandleCreateBanner creates a new banner.
func (h *BannerHandler) HandleCreateBanner(c *fiber.Ctx) error {
	var banner models.Banner
	if err := c.BodyParser(&banner); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(banner); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	if err := h.service.CreateBanner(&banner); err != nil {
		log.Printf("Error creating banner: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create banner",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(banner)
}

// HandleUpdateBanner updates an existing banner.
func (h *BannerHandler) HandleUpdateBanner(c *fiber.Ctx) error {
	var banner models.Banner
	if err := c.BodyParser(&banner); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	banner.ID = c.Params("id")

	if err := h.service.UpdateBanner(&banner); err != nil {
		log.Printf("Error updating banner %s: %v", banner.ID, err)
		if err.Error() == fmt.Sprintf("banner with ID %s not found for update", banner.ID) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Banner with ID %s not found", banner.ID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update banner",
			"error":   err.Error(),
		})
	}
	return c.JSON(banner)
}

// HandleDeleteBanner deletes a banner.
func (h *BannerHandler) HandleDeleteBanner(c *fiber.Ctx) error {
	bannerID := c.Params("id")
	if err := h.service.DeleteBanner(bannerID); err != nil {
		log.Printf("Error deleting banner %s: %v", bannerID, err)
		if err.Error() == fmt.Sprintf("banner with ID %s not found for deletion", bannerID) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Banner with ID %s not found", bannerID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete banner",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Banner %s deleted", bannerID),
	})
}
