package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/application/usecase"
)

// VendorBillHandler maneja las facturas de proveedor.
type VendorBillHandler struct {
	uc *usecase.VendorBillUseCase
}

// NewVendorBillHandler construye el handler.
func NewVendorBillHandler(uc *usecase.VendorBillUseCase) *VendorBillHandler {
	return &VendorBillHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar factura de proveedor
// @Tags         vendor-bills
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      dto.CreateVendorBillRequest  true  "vendor_id debe ser un partner vendor"
// @Success      201   {object}  dto.VendorBillResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/vendor-bills [post]
func (h *VendorBillHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVendorBillRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar facturas de proveedor
// @Tags         vendor-bills
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  dto.ListResponse[dto.VendorBillResponse]
// @Router       /api/vendor-bills [get]
func (h *VendorBillHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obtener factura de proveedor
// @Tags         vendor-bills
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "ID"
// @Success      200  {object}  dto.VendorBillResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendor-bills/{id} [get]
func (h *VendorBillHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar factura de proveedor
// @Tags         vendor-bills
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                       true  "ID"
// @Param        body  body      dto.UpdateVendorBillRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.VendorBillResponse
// @Router       /api/vendor-bills/{id} [put]
func (h *VendorBillHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateVendorBillRequest
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
// @Summary      Eliminar factura de proveedor
// @Tags         vendor-bills
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      204
// @Router       /api/vendor-bills/{id} [delete]
func (h *VendorBillHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
