package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/market-api/internal/application/dto"
	"github.com/jhoicas/market-api/internal/application/usecase"
	"github.com/jhoicas/market-api/internal/domain"
)

// ListingHandler maneja las peticiones HTTP del catálogo.
type ListingHandler struct {
	uc        *usecase.ListingUseCase
	recommend *usecase.RecommendationUseCase
}

// NewListingHandler construye el handler.
func NewListingHandler(uc *usecase.ListingUseCase, recommend *usecase.RecommendationUseCase) *ListingHandler {
	return &ListingHandler{uc: uc, recommend: recommend}
}

// List godoc
// @Summary      Listar artículos del catálogo
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ListingListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /products [get]
func (h *ListingHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener artículo por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {object}  dto.ListingDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [get]
func (h *ListingHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	}
	return c.JSON(dto.ListingDetailResponse{Product: *out})
}

// Create godoc
// @Summary      Publicar un artículo
// @Description  Clasifica la imagen con el modelo de visión y persiste el
// @Description  artículo. Si el clasificador falla, el artículo se publica
// @Description  igual con categoría ausente.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateListingRequest  true  "Datos del artículo"
// @Success      201   {object}  dto.ListingDetailResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /products [post]
func (h *ListingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateListingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "todos los campos son obligatorios y price debe ser mayor a 0"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ListingDetailResponse{Product: *out})
}

// Recommend godoc
// @Summary      Artículos relacionados por categoría
// @Description  Devuelve lista vacía si el artículo no existe o no tiene
// @Description  categoría asignada; nunca incluye al propio artículo.
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {object}  dto.RecommendationResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /products/{id}/recommendation [get]
func (h *ListingHandler) Recommend(c *fiber.Ctx) error {
	out, err := h.recommend.Recommend(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
