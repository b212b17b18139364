package handlers

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"marketplace/internal/models"
	"marketplace/internal/services"
)

// VendorHandler handles HTTP requests for vendors.
type VendorHandler struct {
	service  *services.VendorService
	validate *validator.Validate
}

// NewVendorHandler creates a new VendorHandler.
func NewVendorHandler(service *services.VendorService) *VendorHandler {
	return &VendorHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the vendor routes with the Fiber app.
func (h *VendorHandler) RegisterRoutes(router fiber.Router) {
	vendorRoutes := router.Group("/vendors")
	vendorRoutes.Post("/", h.HandleCreateVendor)
	vendorRoutes.Get("/", h.HandleListVendors)
}

// HandleCreateVendor creates a new vendor and returns its id.
func (h *VendorHandler) HandleCreateVendor(c *fiber.Ctx) error {
	var input models.VendorInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing vendor request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return validationErrorResponse(c, err)
	}

	id, err := h.service.CreateVendor(c.Context(), input)
	if err != nil {
		log.Printf("Error creating vendor: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create vendor",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// HandleListVendors retrieves all vendors.
func (h *VendorHandler) HandleListVendors(c *fiber.Ctx) error {
	vendors, err := h.service.ListVendors(c.Context())
	if err != nil {
		log.Printf("Error listing vendors: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve vendors",
			"error":   err.Error(),
		})
	}
	return c.JSON(vendors)
}

// validationErrorResponse writes a 400 with a per-field error map.
func validationErrorResponse(c *fiber.Ctx, err error) error {
	validationErrors := err.(validator.ValidationErrors)
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}
