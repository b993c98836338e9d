package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-stock/internal/application/inventory"
	"github.com/jhoicas/inventario-stock/internal/application/usecase"
	"github.com/jhoicas/inventario-stock/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SupplierUC *usecase.SupplierUseCase
	ProductUC  *usecase.ProductUseCase
	StockUC    *inventory.StockUseCase
	Log        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Suppliers
	suppliers := app.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC, deps.Log)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Products
	products := app.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.StockUC, deps.Log)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/stock", productHandler.ChangeStock)

	// Stock logs
	stockLogs := app.Group("/stock-logs")
	stockLogHandler := NewStockLogHandler(deps.StockUC, deps.Log)
	stockLogs.Post("/", stockLogHandler.Create)
	stockLogs.Get("/", stockLogHandler.List)
	stockLogs.Get("/:productId", stockLogHandler.ListByProduct)
}
