package diagnostics

import (
	"insightflow-api/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the diagnostic probes.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the test routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/test")
	group.Get("/db", h.HandleListUsers)
	group.Get("/health", h.HandleHealth)
}

// HandleListUsers lists every user to prove the database round trip.
// @Summary Database probe
// @Description Lists every user stored in the database.
// @Tags test
// @Produce json
// @Security BearerAuth
// @Success 200 {array} database.User "Users"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /test/db [get]
func (h *Handler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.service.ListUsers(c.UserContext())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("User listing failed", zap.Error(err))
		return err
	}
	return c.JSON(users)
}

// HandleHealth returns the static liveness payload.
// @Summary Health probe
// @Description Always reports the service as healthy.
// @Tags test
// @Produce json
// @Security BearerAuth
// @Success 200 {object} HealthResponse "Health"
// @Router /test/health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(h.service.Health())
}
