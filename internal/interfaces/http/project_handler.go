package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Proyectos-api/internal/application/analytics"
	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/application/usecase"
)

// ProjectHandler maneja los endpoints de proyectos.
type ProjectHandler struct {
	uc      *usecase.ProjectUseCase
	summary *analytics.ProjectSummaryUseCase
}

// NewProjectHandler construye el handler.
func NewProjectHandler(uc *usecase.ProjectUseCase, summary *analytics.ProjectSummaryUseCase) *ProjectHandler {
	return &ProjectHandler{uc: uc, summary: summary}
}

// Create godoc
// @Summary      Crear proyecto
// @Description  manager_id toma el usuario autenticado si no viene. status acepta forma máquina o etiqueta.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      dto.CreateProjectRequest  true  "Proyecto"
// @Success      201   {object}  dto.ProjectResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProjectRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar proyectos
// @Tags         projects
// @Produce      json
// @Security     Bearer
// @Param        limit   query  int  false  "Límite (default 100)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.ListResponse[dto.ProjectResponse]
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	limit, offset, err := page(c)
	if err != nil {
		return err
	}
	out, err := h.uc.List(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener proyecto
// @Tags         projects
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "ID del proyecto"
// @Success      200  {object}  dto.ProjectResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar proyecto (parcial)
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                    true  "ID del proyecto"
// @Param        body  body      dto.UpdateProjectRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.ProjectResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/projects/{id} [put]
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProjectRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar proyecto
// @Description  Borra en una transacción horas, asignaciones, tareas y gastos; desvincula las órdenes.
// @Tags         projects
// @Produce      json
// @Security     Bearer
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {object}  map[string]int64
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	res, err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"time_entries":             res.TimeEntries,
		"task_assignees":           res.Assignees,
		"tasks":                    res.Tasks,
		"expenses":                 res.Expenses,
		"sales_orders_detached":    res.SalesOrders,
		"purchase_orders_detached": res.PurchaseOrders,
	})
}

// Tasks godoc
// @Summary      Tareas de un proyecto
// @Tags         projects
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "ID del proyecto"
// @Success      200  {array}   dto.TaskResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/tasks [get]
func (h *ProjectHandler) Tasks(c *fiber.Ctx) error {
	out, err := h.uc.ListTasks(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen financiero del proyecto
// @Description  progress, conteo de tareas, revenue (órdenes de venta) y cost (gastos + horas × tarifa).
// @Tags         projects
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "ID del proyecto"
// @Success      200  {object}  dto.ProjectSummaryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/summary [get]
func (h *ProjectHandler) Summary(c *fiber.Ctx) error {
	out, err := h.summary.GetSummary(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}
