package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-stock/pkg/logger"
)

// requestID devuelve el id asignado por el middleware requestid (vacío si no está montado).
func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}

// AccessLog registra cada petición con zerolog: método, ruta, status y latencia.
func AccessLog(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			// El ErrorHandler de fiber aún no corrió; tomar el status del error.
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		} else if status >= fiber.StatusBadRequest {
			ev = log.Warn()
		}
		ev.Str("request_id", requestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("petición HTTP")
		return err
	}
}

// ErrorHandler responde los errores no manejados por los handlers (rutas inexistentes, panics
// recuperados) con el mismo envoltorio que el resto de la API.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if fe, ok := err.(*fiber.Error); ok {
			code := "HTTP_ERROR"
			switch fe.Code {
			case fiber.StatusNotFound:
				code = "ROUTE_NOT_FOUND"
			case fiber.StatusMethodNotAllowed:
				code = "METHOD_NOT_ALLOWED"
			}
			return c.Status(fe.Code).JSON(errorBody(code, fe.Message))
		}
		log.Error().Err(err).Str("request_id", requestID(c)).Str("path", c.Path()).Msg("error no manejado")
		return c.Status(fiber.StatusInternalServerError).JSON(errorBody("INTERNAL", "error interno del servidor"))
	}
}
