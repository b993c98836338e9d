package http

import (
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// ServerConfig opciones de la aplicación Fiber.
type ServerConfig struct {
	Name     string
	DocsPath string // swagger.json; si no existe no se monta /docs
}

// NewApp construye la aplicación Fiber con middlewares, /health, /docs y las rutas de la API.
func NewApp(cfg ServerConfig, deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(deps.Log),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(AccessLog(deps.Log))

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.DocsPath != "" {
		if _, err := os.Stat(cfg.DocsPath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.DocsPath,
				Path:     "docs",
				Title:    "Inventario Stock API",
			}))
		} else {
			deps.Log.Warn().Str("path", cfg.DocsPath).Msg("swagger.json no encontrado; /docs deshabilitado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.Name})
	})

	Router(app, deps)
	return app
}
