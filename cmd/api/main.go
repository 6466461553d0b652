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

	"github.com/jhoicas/cafetero-api/internal/application/auth"
	"github.com/jhoicas/cafetero-api/internal/application/catalog"
	"github.com/jhoicas/cafetero-api/internal/application/ledger"
	"github.com/jhoicas/cafetero-api/internal/application/listing"
	"github.com/jhoicas/cafetero-api/internal/application/usecase"
	"github.com/jhoicas/cafetero-api/internal/infrastructure/postgres"
	"github.com/jhoicas/cafetero-api/internal/infrastructure/redisstore"
	httpRouter "github.com/jhoicas/cafetero-api/internal/interfaces/http"
	"github.com/jhoicas/cafetero-api/pkg/config"
	"github.com/jhoicas/cafetero-api/pkg/logger"
)

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

	userRepo := postgres.NewUserRepository(pool)
	typeRepo := postgres.NewCoffeeTypeRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, cfg.Session.BcryptCost)
	ledgerUC := ledger.NewLedgerUseCase(stockRepo, typeRepo)
	listingUC := listing.NewListingUseCase(stockRepo)
	catalogUC := catalog.NewCatalogUseCase(typeRepo, stockRepo, txRunner)
	sellerUC := usecase.NewSellerUseCase(userRepo, stockRepo, analyticsRepo)
	reportUC := usecase.NewReportUseCase(analyticsRepo, stockRepo)

	// Sesiones en Redis si hay URL configurada; si no, en memoria.
	var sessionStorage fiber.Storage
	if cfg.Redis.URL != "" {
		store, err := redisstore.New(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer store.Close()
		sessionStorage = store
		log.Info().Msg("sesiones en Redis")
	}
	sessions := httpRouter.NewSessionManager(cfg.Session, sessionStorage)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cafetero API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		LedgerUC:  ledgerUC,
		ListingUC: listingUC,
		CatalogUC: catalogUC,
		SellerUC:  sellerUC,
		ReportUC:  reportUC,
		Sessions:  sessions,
		Log:       log,
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
