package repository

import (
	"context"

	"github.com/jhoicas/market-api/internal/domain/entity"
)

// ListingRepository puerto de persistencia del catálogo.
// GetByID devuelve (nil, nil) si el artículo no existe.
type ListingRepository interface {
	// Create persiste un artículo nuevo. El ID ya viene asignado por el caso de uso.
	Create(ctx context.Context, listing *entity.Listing) error

	GetByID(ctx context.Context, id string) (*entity.Listing, error)

	// ListAll devuelve el catálogo completo ordenado por created_at DESC.
	ListAll(ctx context.Context) ([]*entity.Listing, error)

	// ListByCategory devuelve los artículos con la categoría dada excluyendo
	// excludeID, ordenados por created_at DESC (desempate por id ASC).
	// limit <= 0 significa sin límite.
	ListByCategory(ctx context.Context, category, excludeID string, limit int) ([]*entity.Listing, error)

	// TrySetSold marca el artículo como vendido solo si aún no lo está
	// (escritura condicional atómica). Devuelve true si este llamado aplicó
	// la transición; false si no había fila disponible para actualizar.
	TrySetSold(ctx context.Context, id string) (bool, error)
}
