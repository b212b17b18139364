package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"marketplace/internal/models"
	"marketplace/internal/repositories"
	"marketplace/internal/services"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/", h.HandleListOrders)
}

// HandleCreateOrder creates a new order. Every line is validated against the
// current catalog; any failure aborts the whole order with nothing persisted.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var input models.OrderInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return validationErrorResponse(c, err)
	}

	order, err := h.service.CreateOrder(c.Context(), input)
	if err != nil {
		return orderCreateErrorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":     order.ID,
		"total":  order.Total,
		"status": order.Status,
	})
}

// HandleListOrders retrieves orders, optionally filtered by exact buyer
// email, newest first, capped at 50 results.
func (h *OrderHandler) HandleListOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListOrders(c.Context(), c.Query("buyer_email"))
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// orderCreateErrorResponse maps order-creation failures onto the HTTP error
// taxonomy: 400 for empty orders, malformed ids and insufficient stock, 404
// for missing products.
func orderCreateErrorResponse(c *fiber.Ctx, err error) error {
	var notFound *services.ProductNotFoundError
	var noStock *services.InsufficientStockError

	switch {
	case errors.Is(err, services.ErrNoItems):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Order must have items",
		})
	case errors.Is(err, repositories.ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid ID format",
		})
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Product %s not found", notFound.ID),
		})
	case errors.As(err, &noStock):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("Insufficient stock for %s", noStock.Title),
		})
	default:
		log.Printf("Error creating order: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create order",
			"error":   err.Error(),
		})
	}
}
