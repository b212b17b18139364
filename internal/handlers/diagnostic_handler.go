package handlers

import (
	"github.com/gofiber/fiber/v2"

	"marketplace/internal/models"
	"marketplace/internal/services"
)

// DiagnosticHandler handles the liveness, store-probe and schema
// introspection endpoints.
type DiagnosticHandler struct {
	service *services.DiagnosticService
}

// NewDiagnosticHandler creates a new DiagnosticHandler.
func NewDiagnosticHandler(service *services.DiagnosticService) *DiagnosticHandler {
	return &DiagnosticHandler{
		service: service,
	}
}

// RegisterRoutes registers the diagnostic routes with the Fiber app.
func (h *DiagnosticHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleRoot)
	router.Get("/test", h.HandleTest)
	router.Get("/schema", h.HandleSchema)
}

// HandleRoot returns a static liveness message.
func (h *DiagnosticHandler) HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Multi-vendor E-commerce Backend is running",
	})
}

// HandleTest reports backend and store liveness. It never fails to the
// caller; probe errors are embedded in the report.
func (h *DiagnosticHandler) HandleTest(c *fiber.Ctx) error {
	return c.JSON(h.service.Probe(c.Context()))
}

// HandleSchema returns the structural description of every known entity
// shape, derived from the static model definitions. No store access.
func (h *DiagnosticHandler) HandleSchema(c *fiber.Ctx) error {
	return c.JSON(models.DescribeEntities())
}
