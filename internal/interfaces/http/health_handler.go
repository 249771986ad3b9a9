package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
)

// HealthHandler expone /health (proceso) y /db-health (base de datos).
type HealthHandler struct {
	service string
	dbCheck func(ctx context.Context) error
}

// NewHealthHandler construye el handler. dbCheck puede ser nil (sin base de datos).
func NewHealthHandler(service string, dbCheck func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{service: service, dbCheck: dbCheck}
}

// Health godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "service": h.service})
}

// DBHealth godoc
// @Summary      Estado de la base de datos
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /db-health [get]
func (h *HealthHandler) DBHealth(c *fiber.Ctx) error {
	if h.dbCheck == nil {
		return c.JSON(fiber.Map{"status": "ok", "database": "none"})
	}
	if err := h.dbCheck(c.UserContext()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "DB_UNAVAILABLE", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"status": "ok", "database": "up"})
}
