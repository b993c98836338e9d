package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-stock/internal/application/dto"
	"github.com/jhoicas/inventario-stock/internal/application/inventory"
	"github.com/jhoicas/inventario-stock/internal/application/usecase"
	"github.com/jhoicas/inventario-stock/pkg/logger"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc      *usecase.ProductUseCase
	stockUC *inventory.StockUseCase
	log     *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, stockUC *inventory.StockUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, stockUC: stockUC, log: log}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.Response{data=dto.ProductResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
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
	return c.Status(fiber.StatusCreated).JSON(dto.OK("Producto creado", out))
}

// List godoc
// @Summary      Listar productos con su proveedor
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.ProductResponse}
// @Router       /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OK("Productos obtenidos", out))
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Response{data=dto.ProductResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, ok, err := paramID(c, "id")
	if !ok {
		return err
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OK("Producto obtenido", out))
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Response{data=dto.ProductResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok, err := paramID(c, "id")
	if !ok {
		return err
	}
	var in dto.UpdateProductRequest
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
	return c.JSON(dto.OK("Producto actualizado", out))
}

// Delete godoc
// @Summary      Eliminar producto (en cascada: historial de stock)
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok, err := paramID(c, "id")
	if !ok {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OK("Producto eliminado", nil))
}

// ChangeStock godoc
// @Summary      Aplicar un cambio de stock y registrarlo en el historial
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.ChangeStockRequest  true  "Delta y motivo"
// @Success      200   {object}  dto.Response{data=dto.ProductResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /products/{id}/stock [post]
func (h *ProductHandler) ChangeStock(c *fiber.Ctx) error {
	id, ok, err := paramID(c, "id")
	if !ok {
		return err
	}
	var in dto.ChangeStockRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := in.Validate(); err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.stockUC.ChangeStock(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OK("Stock actualizado y registro creado", out))
}
