package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-stock/internal/application/dto"
	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/pkg/logger"
)

// errorBody construye el cuerpo de error con success=false.
func errorBody(code, message string) dto.ErrorResponse {
	return dto.ErrorResponse{Success: false, Code: code, Message: message}
}

// respondError traduce errores de dominio a status + código estable.
// Los errores no reconocidos se registran y se responden con un mensaje fijo.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		body := errorBody("VALIDATION", "datos inválidos")
		body.Errors = verr.Fields
		return c.Status(fiber.StatusBadRequest).JSON(body)
	case errors.Is(err, domain.ErrSupplierNotFound):
		return c.Status(fiber.StatusNotFound).JSON(errorBody("SUPPLIER_NOT_FOUND", "proveedor no encontrado"))
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(errorBody("PRODUCT_NOT_FOUND", "producto no encontrado"))
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(errorBody("NOT_FOUND", "recurso no encontrado"))
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(errorBody("INSUFFICIENT_STOCK", "stock insuficiente: la cantidad no puede quedar negativa"))
	case errors.Is(err, domain.ErrQuantityOverflow):
		return c.Status(fiber.StatusConflict).JSON(errorBody("QUANTITY_OVERFLOW", "la cantidad resultante excede el máximo permitido"))
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(errorBody("DUPLICATE", "ya existe un proveedor con ese contact_email"))
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(errorBody("INVALID_INPUT", "entrada inválida"))
	}
	log.Error().
		Err(err).
		Str("request_id", requestID(c)).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(errorBody("INTERNAL", "error interno del servidor"))
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(errorBody("INVALID_BODY", "cuerpo inválido"))
}

// paramID lee un parámetro de ruta UUID; ok=false si ya se respondió 400.
func paramID(c *fiber.Ctx, name string) (string, bool, error) {
	id := c.Params(name)
	if !dto.IsUUID(id) {
		return "", false, c.Status(fiber.StatusBadRequest).JSON(errorBody("INVALID_ID", name+" debe ser un UUID válido"))
	}
	return id, true, nil
}
