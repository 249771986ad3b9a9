package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/application/usecase"
)

// ExpenseHandler maneja los gastos de proyecto.
type ExpenseHandler struct {
	uc *usecase.ExpenseUseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar gasto
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      dto.CreateExpenseRequest  true  "Gasto"
// @Success      201   {object}  dto.ExpenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
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
// @Summary      Listar gastos
// @Tags         expenses
// @Produce      json
// @Security     Bearer
// @Param        project_id  query  string  false  "Filtra por proyecto"
// @Param        user_id     query  string  false  "Filtra por usuario"
// @Param        status      query  string  false  "Filtra por estado"
// @Success      200  {object}  dto.ListResponse[dto.ExpenseResponse]
// @Router       /api/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	var q dto.ExpenseQuery
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
// @Summary      Obtener gasto
// @Tags         expenses
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "ID"
// @Success      200  {object}  dto.ExpenseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/expenses/{id} [get]
func (h *ExpenseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar gasto
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                    true  "ID"
// @Param        body  body      dto.UpdateExpenseRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.ExpenseResponse
// @Router       /api/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateExpenseRequest
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
// @Summary      Eliminar gasto
// @Tags         expenses
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      204
// @Router       /api/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
