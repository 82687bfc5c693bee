package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/analytics"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/auth"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/ingest"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/inventory"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/leaks"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/reports"
	infracache "github.com/brettsimpson1971-buildai/ride1dashboard/internal/infrastructure/cache"
	infrapdf "github.com/brettsimpson1971-buildai/ride1dashboard/internal/infrastructure/pdf"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/infrastructure/postgres"
	httpRouter "github.com/brettsimpson1971-buildai/ride1dashboard/internal/interfaces/http"
	"github.com/brettsimpson1971-buildai/ride1dashboard/pkg/config"
	"github.com/brettsimpson1971-buildai/ride1dashboard/pkg/logger"
)

const swaggerSpecPath = "./docs/swagger.json"

func swaggerSpecExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	movementRepo := postgres.NewMovementRecordRepository(pool)
	itemRepo := postgres.NewInventoryItemRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Caché Redis del resumen de KPIs — opcional: sin REDIS_HOST el
	// dashboard consulta directo a PostgreSQL.
	var summaryCache appanalytics.SummaryCache
	if cfg.Redis.Enabled() {
		redisCache, err := infracache.NewRedisCache(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, dashboard sin caché")
		} else {
			defer redisCache.Close()
			summaryCache = redisCache
		}
	}

	leakQueryUC := leaks.NewQueryUseCase(movementRepo, cfg.Leaks.ViewCap)
	leakResolveUC := leaks.NewResolveUseCase(movementRepo)
	summaryUC := reports.NewSummaryUseCase(movementRepo, cfg.Leaks.AuditWindow)
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	activityPDFUC := reports.NewPDFUseCase(summaryUC, pdfGenerator)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, summaryCache)
	inventoryUC := inventory.NewUseCase(itemRepo)
	ingestUC := ingest.NewUseCase(txRunner)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs. El spec se genera
	// aparte; sin el archivo se omite la UI, porque el middleware entra en
	// pánico con un FilePath inexistente.
	if swaggerSpecExists(swaggerSpecPath) {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerSpecPath,
			Path:     "docs",
			Title:    "Ride1 Command Center API",
		}))
	} else {
		log.Warn().Str("file", swaggerSpecPath).Msg("swagger.json no encontrado, UI de docs deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LeakQueryUC:   leakQueryUC,
		LeakResolveUC: leakResolveUC,
		SummaryUC:     summaryUC,
		ActivityPDF:   activityPDFUC,
		DashboardUC:   dashboardUC,
		InventoryUC:   inventoryUC,
		IngestUC:      ingestUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
