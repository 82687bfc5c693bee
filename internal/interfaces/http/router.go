package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/analytics"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/auth"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/ingest"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/inventory"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/leaks"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/reports"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LeakQueryUC   *leaks.QueryUseCase
	LeakResolveUC *leaks.ResolveUseCase
	SummaryUC     *reports.SummaryUseCase
	ActivityPDF   *reports.PDFUseCase
	DashboardUC   *analytics.DashboardUseCase
	InventoryUC   *inventory.UseCase
	IngestUC      *ingest.UseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Leak Detector (protegido)
	leaksGroup := protected.Group("/leaks")
	leaksHandler := NewLeaksHandler(deps.LeakQueryUC, deps.LeakResolveUC)
	leaksGroup.Get("/", leaksHandler.List)
	leaksGroup.Get("/verdicts", leaksHandler.Verdicts)
	leaksGroup.Get("/:id", leaksHandler.GetDetail)
	leaksGroup.Post("/:id/resolve", leaksHandler.Resolve)

	// Audit Trail (protegido)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.SummaryUC, deps.ActivityPDF)
	reportsGroup.Get("/employee-activity", reportHandler.EmployeeActivity)
	reportsGroup.Get("/employee-activity/pdf", reportHandler.EmployeeActivityPDF)

	// God View KPIs (protegido)
	dashboardGroup := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboardGroup.Get("/summary", dashboardHandler.GetSummary)

	// Navegador de existencias (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Get("/:part_number", inventoryHandler.GetByPartNumber)

	// Carga de CSV (solo admin)
	ingestGroup := protected.Group("/ingest", RequireRole(auth.RoleAdmin))
	ingestHandler := NewIngestHandler(deps.IngestUC)
	ingestGroup.Post("/movements", ingestHandler.UploadMovements)
	ingestGroup.Post("/inventory", ingestHandler.UploadInventory)
}
