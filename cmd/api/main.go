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
	"github.com/jhoicas/market-api/internal/application/usecase"
	infraai "github.com/jhoicas/market-api/internal/infrastructure/ai"
	"github.com/jhoicas/market-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/market-api/internal/interfaces/http"
	"github.com/jhoicas/market-api/pkg/config"
	"github.com/jhoicas/market-api/pkg/logger"
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

	if err := os.MkdirAll(cfg.Uploads.Dir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("crear directorio de uploads")
	}

	listingRepo := postgres.NewListingRepository(pool)
	bannerRepo := postgres.NewBannerRepository(pool)

	// Gateway al modelo de visión. Sin API key el gateway devuelve "no
	// disponible" y los artículos se publican sin categoría: el catálogo no
	// depende de la salud del clasificador.
	classifier := infraai.NewGeminiVisionService(cfg.Classifier.APIKey, cfg.Classifier.Model, cfg.Classifier.Timeout)

	listingUC := usecase.NewListingUseCase(listingRepo, classifier, cfg.Classifier.Timeout, log)
	recommendUC := usecase.NewRecommendationUseCase(listingRepo, cfg.Recommend.Limit)
	purchaseUC := usecase.NewPurchaseUseCase(listingRepo)
	bannerUC := usecase.NewBannerUseCase(bannerRepo)

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
		Title:    "Market API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ListingUC:   listingUC,
		RecommendUC: recommendUC,
		PurchaseUC:  purchaseUC,
		BannerUC:    bannerUC,
		UploadDir:   cfg.Uploads.Dir,
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
