package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/pkg/logger"
)

// LowStockEvaluator genera el reporte de alertas de una empresa.
type LowStockEvaluator interface {
	Evaluate(ctx context.Context, companyID int64) (*dto.LowStockReport, error)
}

// ProductCreator alta de producto con inventario inicial.
type ProductCreator interface {
	Create(ctx context.Context, in dto.CreateProductRequest) (*dto.CreateProductResponse, error)
}

// StockAdjuster ajuste transaccional de stock.
type StockAdjuster interface {
	Adjust(ctx context.Context, in dto.AdjustStockRequest) (*dto.InventoryResponse, error)
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Alerts      LowStockEvaluator
	Products    ProductCreator
	Adjustments StockAdjuster
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/", Welcome)

	// Producto + inventario inicial
	productHandler := NewProductHandler(deps.Products, deps.Log)
	app.Post("/product", productHandler.Create)

	api := app.Group("/api")

	// Alertas de stock bajo por empresa
	alertHandler := NewAlertHandler(deps.Alerts, deps.Log)
	api.Get("/companies/:companyId/alerts/low-stock", alertHandler.LowStock)

	// Ajustes de inventario
	inventoryHandler := NewInventoryHandler(deps.Adjustments, deps.Log)
	api.Post("/inventory/adjustments", inventoryHandler.Adjust)
}

// Welcome godoc
// @Summary  Mensaje de bienvenida
// @Produce  html
// @Success  200  {string}  string
// @Router   / [get]
func Welcome(c *fiber.Ctx) error {
	c.Type("html")
	return c.SendString("<h1>Welcome to the Bynry Inventory Management API</h1>")
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "An unexpected error occurred."})
}
