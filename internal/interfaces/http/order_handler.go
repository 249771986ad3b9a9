package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/application/usecase"
)

// PurchaseOrderHandler maneja órdenes de compra.
type PurchaseOrderHandler struct {
	uc *usecase.PurchaseOrderUseCase
}

// NewPurchaseOrderHandler construye el handler.
func NewPurchaseOrderHandler(uc *usecase.PurchaseOrderUseCase) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden de compra
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      dto.CreatePurchaseOrderRequest  true  "vendor_id debe ser un partner vendor"
// @Success      201   {object}  dto.PurchaseOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders [post]
func (h *PurchaseOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseOrderRequest
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
// @Summary      Listar órdenes de compra
// @Tags         purchase-orders
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  dto.ListResponse[dto.PurchaseOrderResponse]
// @Router       /api/purchase-orders [get]
func (h *PurchaseOrderHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obtener orden de compra
// @Tags         purchase-orders
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "ID"
// @Success      200  {object}  dto.PurchaseOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id} [get]
func (h *PurchaseOrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar orden de compra
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                          true  "ID"
// @Param        body  body      dto.UpdatePurchaseOrderRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.PurchaseOrderResponse
// @Router       /api/purchase-orders/{id} [put]
func (h *PurchaseOrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePurchaseOrderRequest
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
// @Summary      Eliminar orden de compra
// @Description  Elimina también sus líneas y facturas de proveedor.
// @Tags         purchase-orders
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      204
// @Router       /api/purchase-orders/{id} [delete]
func (h *PurchaseOrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SalesOrderHandler maneja órdenes de venta.
type SalesOrderHandler struct {
	uc *usecase.SalesOrderUseCase
}

// NewSalesOrderHandler construye el handler.
func NewSalesOrderHandler(uc *usecase.SalesOrderUseCase) *SalesOrderHandler {
	return &SalesOrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden de venta
// @Tags         sales-orders
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      dto.CreateSalesOrderRequest  true  "partner_id debe ser un partner customer"
// @Success      201   {object}  dto.SalesOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales-orders [post]
func (h *SalesOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSalesOrderRequest
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
// @Summary      Listar órdenes de venta
// @Tags         sales-orders
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  dto.ListResponse[dto.SalesOrderResponse]
// @Router       /api/sales-orders [get]
func (h *SalesOrderHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obtener orden de venta
// @Tags         sales-orders
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "ID"
// @Success      200  {object}  dto.SalesOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales-orders/{id} [get]
func (h *SalesOrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar orden de venta
// @Tags         sales-orders
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                       true  "ID"
// @Param        body  body      dto.UpdateSalesOrderRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.SalesOrderResponse
// @Router       /api/sales-orders/{id} [put]
func (h *SalesOrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSalesOrderRequest
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
// @Summary      Eliminar orden de venta
// @Description  Elimina también sus líneas y facturas.
// @Tags         sales-orders
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      204
// @Router       /api/sales-orders/{id} [delete]
func (h *SalesOrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
