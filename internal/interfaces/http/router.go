package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ayoubkh/noorinv-api/internal/application/analytics"
	"github.com/ayoubkh/noorinv-api/internal/application/auth"
	"github.com/ayoubkh/noorinv-api/internal/application/inventory"
	"github.com/ayoubkh/noorinv-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC      *usecase.ItemUseCase
	OutputUC    *usecase.OutputUseCase
	StockOut    *inventory.StockOutUseCase
	DashboardUC *analytics.DashboardUseCase
	AIUC        *usecase.AIUseCase
	AuthUC      *auth.AuthUseCase
	PDF         ReportGenerator
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(MetricsMiddleware())

	// Operación (público)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Auth (login público, logout protegido)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/auth/logout", authHandler.Logout)

	// Inventario
	itemHandler := NewItemHandler(deps.ItemUC, deps.StockOut)
	items := protected.Group("/items")
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	// Antes de /:id para que "subsections" no se capture como id.
	items.Get("/subsections", itemHandler.Subsections)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)
	items.Post("/:id/stock-out", itemHandler.StockOut)

	// Libro de salidas
	outputHandler := NewOutputHandler(deps.OutputUC)
	protected.Get("/outputs", outputHandler.List)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)

	// Asistente de IA
	aiHandler := NewAIHandler(deps.AIUC)
	ai := protected.Group("/ai")
	ai.Post("/suggest-details", aiHandler.SuggestDetails)
	ai.Post("/chat", aiHandler.Chat)

	// Exports
	exportHandler := NewExportHandler(deps.ItemUC, deps.OutputUC, deps.PDF)
	exports := protected.Group("/export")
	exports.Get("/inventory.csv", exportHandler.InventoryCSV)
	exports.Get("/inventory.xlsx", exportHandler.InventoryXLSX)
	exports.Get("/inventory.xml", exportHandler.InventoryXML)
	exports.Get("/inventory.pdf", exportHandler.InventoryPDF)
	exports.Get("/outputs.csv", exportHandler.OutputsCSV)
	exports.Get("/outputs.xlsx", exportHandler.OutputsXLSX)
	exports.Get("/outputs.xml", exportHandler.OutputsXML)
}
