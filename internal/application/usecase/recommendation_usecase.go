package usecase

import (
	"context"

	"github.com/jhoicas/market-api/internal/application/dto"
	"github.com/jhoicas/market-api/internal/domain/repository"
)

// RecommendationUseCase artículos relacionados por igualdad de categoría.
// Es un resultado consultivo: un artículo inexistente o sin clasificar
// produce una lista vacía, nunca un error. Los artículos vendidos siguen
// siendo recomendables (el cliente decide cómo mostrarlos).
type RecommendationUseCase struct {
	repo  repository.ListingRepository
	limit int // máximo de resultados; <= 0 significa sin límite
}

// NewRecommendationUseCase construye el caso de uso. limit lo fija el
// operador vía configuración (RECOMMEND_LIMIT, por defecto sin límite).
func NewRecommendationUseCase(repo repository.ListingRepository, limit int) *RecommendationUseCase {
	return &RecommendationUseCase{repo: repo, limit: limit}
}

// Recommend devuelve los artículos que comparten categoría con id,
// excluyéndolo a él mismo, en orden created_at DESC.
func (uc *RecommendationUseCase) Recommend(ctx context.Context, id string) (*dto.RecommendationResponse, error) {
	out := &dto.RecommendationResponse{Products: []dto.ListingResponse{}}

	source, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if source == nil || !source.Classified() {
		return out, nil
	}

	related, err := uc.repo.ListByCategory(ctx, *source.Category, source.ID, uc.limit)
	if err != nil {
		return nil, err
	}
	for _, l := range related {
		out.Products = append(out.Products, *toListingResponse(l))
	}
	return out, nil
}
