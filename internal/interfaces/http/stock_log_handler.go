package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-stock/internal/application/dto"
	"github.com/jhoicas/inventario-stock/internal/application/inventory"
	"github.com/jhoicas/inventario-stock/pkg/logger"
)

// StockLogHandler maneja el historial de cambios de stock.
type StockLogHandler struct {
	uc  *inventory.StockUseCase
	log *logger.Logger
}

// NewStockLogHandler construye el handler.
func NewStockLogHandler(uc *inventory.StockUseCase, log *logger.Logger) *StockLogHandler {
	return &StockLogHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Registrar un cambio de stock
// @Description  Con updateStock=true (por defecto) ajusta la cantidad del producto; con false solo registra.
// @Tags         stock-logs
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockLogRequest  true  "Producto, delta y motivo"
// @Success      201   {object}  dto.Response{data=dto.StockLogResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /stock-logs [post]
func (h *StockLogHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockLogRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := in.Validate(); err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.CreateStockLog(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	msg := "Stock actualizado y registro creado"
	if !in.ShouldUpdateStock() {
		msg = "Registro de stock creado"
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(msg, out))
}

// List godoc
// @Summary      Listar el historial de stock
// @Tags         stock-logs
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.StockLogResponse}
// @Router       /stock-logs [get]
func (h *StockLogHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OK("Historial de stock obtenido", out))
}

// ListByProduct godoc
// @Summary      Historial de stock de un producto (más reciente primero)
// @Tags         stock-logs
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.Response{data=[]dto.StockLogResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /stock-logs/{productId} [get]
func (h *StockLogHandler) ListByProduct(c *fiber.Ctx) error {
	productID, ok, err := paramID(c, "productId")
	if !ok {
		return err
	}
	out, err := h.uc.ListByProduct(c.UserContext(), productID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OK("Historial del producto obtenido", out))
}
