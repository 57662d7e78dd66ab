package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateListingRequest entrada para publicar un artículo.
// Todos los campos son obligatorios y price debe ser > 0.
type CreateListingRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Seller      string          `json:"seller" validate:"required,min=1,max=100"`
	ImageURL    string          `json:"imageUrl" validate:"required"`
}

// ListingResponse salida completa de un artículo.
type ListingResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Seller      string          `json:"seller"`
	ImageURL    string          `json:"imageUrl"`
	Category    *string         `json:"category"`
	Soldout     bool            `json:"soldout"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ListingSummary proyección para el listado del catálogo
// (id, name, price, createdAt, seller, imageUrl, soldout).
type ListingSummary struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Seller    string          `json:"seller"`
	ImageURL  string          `json:"imageUrl"`
	Soldout   bool            `json:"soldout"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ListingListResponse envoltura {"products": [...]} del catálogo.
type ListingListResponse struct {
	Products []ListingSummary `json:"products"`
}

// ListingDetailResponse envoltura {"product": {...}} del detalle.
type ListingDetailResponse struct {
	Product ListingResponse `json:"product"`
}

// RecommendationResponse envoltura {"products": [...]} de artículos relacionados.
type RecommendationResponse struct {
	Products []ListingResponse `json:"products"`
}

// UploadResponse respuesta de la subida de imagen.
type UploadResponse struct {
	ImageURL string `json:"imageUrl"`
}
