package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/application/usecase"
)

// PartnerHandler maneja proveedores y clientes.
type PartnerHandler struct {
	uc *usecase.PartnerUseCase
}

// NewPartnerHandler construye el handler.
func NewPartnerHandler(uc *usecase.PartnerUseCase) *PartnerHandler {
	return &PartnerHandler{uc: uc}
}

type partnerQuery struct {
	Role string `query:"role" validate:"omitempty,oneof=vendor customer"`
}

// Create godoc
// @Summary      Crear partner
// @Tags         partners
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      dto.CreatePartnerRequest  true  "role: vendor | customer"
// @Success      201   {object}  dto.PartnerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/partners [post]
func (h *PartnerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartnerRequest
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
// @Summary      Listar partners
// @Tags         partners
// @Produce      json
// @Security     Bearer
// @Param        role  query  string  false  "vendor | customer"
// @Success      200  {object}  dto.ListResponse[dto.PartnerResponse]
// @Router       /api/partners [get]
func (h *PartnerHandler) List(c *fiber.Ctx) error {
	var q partnerQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	limit, offset, err := page(c)
	if err != nil {
		return err
	}
	out, err := h.uc.List(c.UserContext(), q.Role, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener partner
// @Tags         partners
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "ID"
// @Success      200  {object}  dto.PartnerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/partners/{id} [get]
func (h *PartnerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar partner
// @Tags         partners
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                    true  "ID"
// @Param        body  body      dto.UpdatePartnerRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.PartnerResponse
// @Router       /api/partners/{id} [put]
func (h *PartnerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePartnerRequest
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
// @Summary      Eliminar partner
// @Tags         partners
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/partners/{id} [delete]
func (h *PartnerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
