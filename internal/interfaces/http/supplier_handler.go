package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-stock/internal/application/dto"
	"github.com/jhoicas/inventario-stock/internal/application/usecase"
	"github.com/jhoicas/inventario-stock/pkg/logger"
)

// SupplierHandler maneja las peticiones HTTP para Supplier.
type SupplierHandler struct {
	uc  *usecase.SupplierUseCase
	log *logger.Logger
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase, log *logger.Logger) *SupplierHandler {
	return &SupplierHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.Response{data=dto.SupplierResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := in.Validate(); err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("Proveedor creado", out))
}

// List godoc
// @Summary      Listar proveedores con sus productos
// @Tags         suppliers
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.SupplierResponse}
// @Router       /suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OK("Proveedores obtenidos", out))
}

// GetByID godoc
// @Summary      Obtener proveedor por ID
// @Tags         suppliers
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.Response{data=dto.SupplierResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /suppliers/{id} [get]
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	id, ok, err := paramID(c, "id")
	if !ok {
		return err
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OK("Proveedor obtenido", out))
}

// Update godoc
// @Summary      Actualizar proveedor
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del proveedor"
// @Param        body  body  dto.UpdateSupplierRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Response{data=dto.SupplierResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /suppliers/{id} [put]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, ok, err := paramID(c, "id")
	if !ok {
		return err
	}
	var in dto.UpdateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := in.Validate(); err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OK("Proveedor actualizado", out))
}

// Delete godoc
// @Summary      Eliminar proveedor (en cascada: productos e historial)
// @Tags         suppliers
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, ok, err := paramID(c, "id")
	if !ok {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OK("Proveedor eliminado", nil))
}
