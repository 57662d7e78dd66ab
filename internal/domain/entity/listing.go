package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Listing representa un artículo publicado por un vendedor en el catálogo.
// Category la asigna únicamente el clasificador de visión; queda en nil si la
// clasificación falló y puede rellenarse después por un proceso de mantenimiento.
// Soldout solo transiciona de false a true (vía ListingRepository.TrySetSold).
type Listing struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, siempre > 0
	Seller      string          // texto libre, no es una identidad resuelta
	ImageURL    string          // referencia opaca; la sirve la capa estática
	Category    *string
	Soldout     bool
	CreatedAt   time.Time
}

// Classified indica si el artículo ya tiene categoría asignada.
func (l *Listing) Classified() bool {
	return l.Category != nil && *l.Category != ""
}
