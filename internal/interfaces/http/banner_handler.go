package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/market-api/internal/application/dto"
	"github.com/jhoicas/market-api/internal/application/usecase"
)

// BannerHandler maneja la lectura de banners promocionales.
type BannerHandler struct {
	uc *usecase.BannerUseCase
}

// NewBannerHandler construye el handler.
func NewBannerHandler(uc *usecase.BannerUseCase) *BannerHandler {
	return &BannerHandler{uc: uc}
}

// List godoc
// @Summary      Banners del carrusel principal
// @Tags         banners
// @Produce      json
// @Success      200  {object}  dto.BannerListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /banners [get]
func (h *BannerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
