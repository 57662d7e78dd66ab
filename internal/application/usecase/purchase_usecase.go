package usecase

import (
	"context"

	"github.com/jhoicas/market-api/internal/domain"
	"github.com/jhoicas/market-api/internal/domain/repository"
)

// PurchaseUseCase aplica la transición Available → SoldOut con semántica
// at-most-once. La transición es una escritura condicional del store
// (set soldout = true where id = X and soldout = false); un read-then-write
// sin condición sería una carrera entre compradores concurrentes.
type PurchaseUseCase struct {
	repo repository.ListingRepository
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(repo repository.ListingRepository) *PurchaseUseCase {
	return &PurchaseUseCase{repo: repo}
}

// Purchase marca el artículo como vendido. De N llamadas concurrentes sobre
// el mismo id exactamente una gana; las demás reciben ErrAlreadySoldOut.
// Un id inexistente produce ErrNotFound sin mutar nada.
func (uc *PurchaseUseCase) Purchase(ctx context.Context, id string) error {
	applied, err := uc.repo.TrySetSold(ctx, id)
	if err != nil {
		return err
	}
	if applied {
		return nil
	}

	// La escritura condicional no encontró fila disponible: distinguir entre
	// artículo inexistente y artículo ya vendido. Esta lectura solo clasifica
	// el resultado, la atomicidad ya quedó resuelta en TrySetSold.
	listing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if listing == nil {
		return domain.ErrNotFound
	}
	return domain.ErrAlreadySoldOut
}
