package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/application/usecase"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
)

// LineItemHandler maneja las líneas de un tipo de documento. Se registra una
// instancia por tipo (sales-order-items, purchase-order-items, ...).
type LineItemHandler struct {
	uc   *usecase.LineItemUseCase
	kind entity.ItemKind
}

// NewLineItemHandler construye el handler para el tipo de línea indicado.
func NewLineItemHandler(uc *usecase.LineItemUseCase, kind entity.ItemKind) *LineItemHandler {
	return &LineItemHandler{uc: uc, kind: kind}
}

type lineItemQuery struct {
	DocumentID string `query:"document_id"`
}

// Create godoc
// @Summary      Crear línea de documento
// @Description  quantity por defecto 1. Sin sub_total se deriva de quantity × (unit_price | precio del producto | costo).
// @Tags         line-items
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      dto.CreateLineItemRequest  true  "Línea"
// @Success      201   {object}  dto.LineItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales-order-items [post]
// @Router       /api/purchase-order-items [post]
// @Router       /api/invoice-items [post]
// @Router       /api/vendor-bill-items [post]
func (h *LineItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLineItemRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), h.kind, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar líneas
// @Tags         line-items
// @Produce      json
// @Security     Bearer
// @Param        document_id  query  string  false  "Filtra por documento padre"
// @Success      200  {object}  dto.ListResponse[dto.LineItemResponse]
// @Router       /api/sales-order-items [get]
// @Router       /api/purchase-order-items [get]
// @Router       /api/invoice-items [get]
// @Router       /api/vendor-bill-items [get]
func (h *LineItemHandler) List(c *fiber.Ctx) error {
	var q lineItemQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	limit, offset, err := page(c)
	if err != nil {
		return err
	}
	out, err := h.uc.List(c.UserContext(), h.kind, q.DocumentID, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID obtiene una línea.
func (h *LineItemHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), h.kind, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update actualización parcial; recalcula sub_total si cambian producto o cantidad.
func (h *LineItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLineItemRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), h.kind, c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete elimina una línea.
func (h *LineItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), h.kind, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
