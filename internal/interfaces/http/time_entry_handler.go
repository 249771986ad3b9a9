package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/application/usecase"
)

// TimeEntryHandler maneja el registro de horas.
type TimeEntryHandler struct {
	uc *usecase.TimeEntryUseCase
}

// NewTimeEntryHandler construye el handler.
func NewTimeEntryHandler(uc *usecase.TimeEntryUseCase) *TimeEntryHandler {
	return &TimeEntryHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar horas
// @Description  user_id toma el usuario autenticado si no viene; billable es false por defecto.
// @Tags         time-entries
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      dto.CreateTimeEntryRequest  true  "Entrada de horas"
// @Success      201   {object}  dto.TimeEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/time-entries [post]
func (h *TimeEntryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTimeEntryRequest
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
// @Summary      Listar horas
// @Tags         time-entries
// @Produce      json
// @Security     Bearer
// @Param        user_id  query  string  false  "Filtra por usuario"
// @Param        task_id  query  string  false  "Filtra por tarea"
// @Param        from     query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to       query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {object}  dto.ListResponse[dto.TimeEntryResponse]
// @Router       /api/time-entries [get]
func (h *TimeEntryHandler) List(c *fiber.Ctx) error {
	var q dto.TimeEntryQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	limit, offset, err := page(c)
	if err != nil {
		return err
	}
	out, err := h.uc.List(c.UserContext(), q, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener entrada de horas
// @Tags         time-entries
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "ID"
// @Success      200  {object}  dto.TimeEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/time-entries/{id} [get]
func (h *TimeEntryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar entrada de horas
// @Tags         time-entries
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                      true  "ID"
// @Param        body  body      dto.UpdateTimeEntryRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.TimeEntryResponse
// @Router       /api/time-entries/{id} [put]
func (h *TimeEntryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTimeEntryRequest
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
// @Summary      Eliminar entrada de horas
// @Tags         time-entries
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      204
// @Router       /api/time-entries/{id} [delete]
func (h *TimeEntryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
