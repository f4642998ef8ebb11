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

	_ "github.com/ayoubkh/noorinv-api/docs"
	"github.com/ayoubkh/noorinv-api/internal/application/analytics"
	"github.com/ayoubkh/noorinv-api/internal/application/auth"
	"github.com/ayoubkh/noorinv-api/internal/application/inventory"
	"github.com/ayoubkh/noorinv-api/internal/application/usecase"
	infraai "github.com/ayoubkh/noorinv-api/internal/infrastructure/ai"
	infrapdf "github.com/ayoubkh/noorinv-api/internal/infrastructure/pdf"
	"github.com/ayoubkh/noorinv-api/internal/infrastructure/state"
	"github.com/ayoubkh/noorinv-api/internal/infrastructure/storage"
	httpRouter "github.com/ayoubkh/noorinv-api/internal/interfaces/http"
	"github.com/ayoubkh/noorinv-api/pkg/config"
	"github.com/ayoubkh/noorinv-api/pkg/logger"
)

// devJWTSecret secreto de respaldo solo para desarrollo local sin configurar.
const devJWTSecret = "noorinv-dev-secret-change-me"

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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	if cfg.Auth.JWTSecret == "" {
		if cfg.App.Env != "development" {
			log.Fatal().Msg("JWT_SECRET es obligatorio fuera de development")
		}
		log.Warn().Msg("JWT_SECRET no configurado, usando secreto de desarrollo")
		cfg.Auth.JWTSecret = devJWTSecret
	}

	ctx := context.Background()

	// Colaborador de persistencia según driver configurado.
	var kv storage.KV
	switch cfg.Storage.Driver {
	case "sqlite":
		kv, err = storage.NewSQLiteKV(cfg.Storage.SQLitePath)
	case "postgres":
		kv, err = storage.NewPostgresKV(ctx, cfg.Storage.DatabaseURL)
	case "memory":
		kv = storage.NewMemoryKV()
	default:
		log.Fatal().Str("driver", cfg.Storage.Driver).Msg("STORAGE_DRIVER desconocido")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén de persistencia")
	}
	defer kv.Close()

	// Estado de la aplicación: las dos colecciones en memoria con escritura a
	// través del almacén.
	store := state.NewStore(ctx, kv, log)
	items := store.Items()
	outputs := store.Outputs()

	itemUC := usecase.NewItemUseCase(items)
	outputUC := usecase.NewOutputUseCase(outputs)
	stockOutUC := inventory.NewStockOutUseCase(store)
	dashboardUC := analytics.NewDashboardUseCase(items, outputs)

	anthropicSvc := infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	aiUC := usecase.NewAIUseCase(anthropicSvc, items, log)

	authUC, err := auth.NewAuthUseCase(cfg.Auth.AccessPIN, auth.JWTConfig{
		Secret:     cfg.Auth.JWTSecret,
		ExpMinutes: cfg.Auth.JWTExpiration,
		Issuer:     cfg.Auth.JWTIssuer,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar autenticación")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "NoorInv API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:      itemUC,
		OutputUC:    outputUC,
		StockOut:    stockOutUC,
		DashboardUC: dashboardUC,
		AIUC:        aiUC,
		AuthUC:      authUC,
		PDF:         infrapdf.NewMarotoReportGenerator(),
		JWTSecret:   cfg.Auth.JWTSecret,
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
