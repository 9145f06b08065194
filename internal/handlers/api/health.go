package api

import (
	"github.com/gofiber/fiber/v3"

	"helphood/internal/models"
)

// HealthHandler reports service liveness.
type HealthHandler struct {
	svc Answerer
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(svc Answerer) *HealthHandler {
	return &HealthHandler{svc: svc}
}

// Check returns liveness and whether the AI upstream is configured.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status:       "ok",
		AIConfigured: h.svc.AIConfigured(),
	})
}
