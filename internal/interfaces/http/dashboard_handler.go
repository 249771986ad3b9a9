package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Proyectos-api/internal/application/analytics"
)

// DashboardHandler maneja el tablero de cartera y el catálogo de estados.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Totales de la cartera
// @Description  Proyectos y tareas por estado, revenue, cost y facturas pendientes.
// @Tags         dashboard
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(summary)
}

// Statuses godoc
// @Summary      Catálogo de estados
// @Description  Pares valor/etiqueta para proyectos y tareas; la API acepta cualquiera de las dos formas.
// @Tags         meta
// @Produce      json
// @Success      200  {object}  dto.StatusCatalogDTO
// @Router       /api/meta/statuses [get]
func (h *DashboardHandler) Statuses(c *fiber.Ctx) error {
	return c.JSON(h.uc.Statuses())
}
