package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/market-api/internal/application/dto"
	"github.com/jhoicas/market-api/internal/application/usecase"
	"github.com/jhoicas/market-api/internal/domain"
)

// PurchaseHandler maneja la compra de artículos.
type PurchaseHandler struct {
	uc *usecase.PurchaseUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *usecase.PurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// Purchase godoc
// @Summary      Comprar un artículo
// @Description  Marca el artículo como vendido exactamente una vez. Un
// @Description  artículo ya vendido responde 409; es un resultado esperado,
// @Description  no una falla.
// @Tags         purchase
// @Produce      json
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {object}  dto.ResultResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /purchase/{id} [post]
func (h *PurchaseHandler) Purchase(c *fiber.Ctx) error {
	err := h.uc.Purchase(c.Context(), c.Params("id"))
	switch {
	case err == nil:
		return c.JSON(dto.ResultResponse{Result: true})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	case errors.Is(err, domain.ErrAlreadySoldOut):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_SOLD_OUT", Message: "el artículo ya fue vendido"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
