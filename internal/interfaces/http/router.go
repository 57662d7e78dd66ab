package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/market-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ListingUC   *usecase.ListingUseCase
	RecommendUC *usecase.RecommendationUseCase
	PurchaseUC  *usecase.PurchaseUseCase
	BannerUC    *usecase.BannerUseCase
	UploadDir   string
}

// Router registra las rutas de la API. Las rutas son públicas: el sistema de
// origen no tiene autenticación y este servicio preserva ese contrato.
func Router(app *fiber.App, deps RouterDeps) {
	listingHandler := NewListingHandler(deps.ListingUC, deps.RecommendUC)
	products := app.Group("/products")
	products.Get("/", listingHandler.List)
	products.Post("/", listingHandler.Create)
	products.Get("/:id", listingHandler.GetByID)
	products.Get("/:id/recommendation", listingHandler.Recommend)

	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	app.Post("/purchase/:id", purchaseHandler.Purchase)

	bannerHandler := NewBannerHandler(deps.BannerUC)
	app.Get("/banners", bannerHandler.List)

	imageHandler := NewImageHandler(deps.UploadDir)
	app.Post("/image", imageHandler.Upload)

	// Imágenes subidas: las sirve directamente Fiber como archivos estáticos.
	app.Static("/uploads", deps.UploadDir)
}
