package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/market-api/internal/domain"
	"github.com/jhoicas/market-api/internal/domain/entity"
	"github.com/jhoicas/market-api/internal/domain/repository"
)

var _ repository.ListingRepository = (*ListingRepo)(nil)

// ListingRepo implementación del puerto ListingRepository sobre PostgreSQL.
type ListingRepo struct {
	q Querier
}

// NewListingRepository construye el adaptador de persistencia del catálogo.
// Pasar pool o tx (Querier).
func NewListingRepository(q Querier) *ListingRepo {
	return &ListingRepo{q: q}
}

// Create persiste un artículo nuevo. Soldout siempre inicia en false.
func (r *ListingRepo) Create(ctx context.Context, listing *entity.Listing) error {
	query := `
		INSERT INTO listings (id, name, description, price, seller, image_url, category, soldout, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		listing.ID, listing.Name, listing.Description, listing.Price,
		listing.Seller, listing.ImageURL, listing.Category, listing.Soldout, listing.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert listing: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID. Devuelve (nil, nil) si no existe.
func (r *ListingRepo) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	query := `
		SELECT id, name, description, price, seller, image_url, category, soldout, created_at
		FROM listings WHERE id = $1`
	var l entity.Listing
	err := r.q.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.Name, &l.Description, &l.Price, &l.Seller,
		&l.ImageURL, &l.Category, &l.Soldout, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get listing: %w", err)
	}
	return &l, nil
}

// ListAll devuelve el catálogo completo, más reciente primero.
func (r *ListingRepo) ListAll(ctx context.Context) ([]*entity.Listing, error) {
	query := `
		SELECT id, name, description, price, seller, image_url, category, soldout, created_at
		FROM listings ORDER BY created_at DESC, id ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()
	return scanListings(rows)
}

// ListByCategory devuelve los artículos de la categoría excluyendo excludeID.
// limit <= 0 significa sin límite.
func (r *ListingRepo) ListByCategory(ctx context.Context, category, excludeID string, limit int) ([]*entity.Listing, error) {
	query := `
		SELECT id, name, description, price, seller, image_url, category, soldout, created_at
		FROM listings WHERE category = $1 AND id <> $2
		ORDER BY created_at DESC, id ASC`
	args := []any{category, excludeID}
	if limit > 0 {
		query += ` LIMIT $3`
		args = append(args, limit)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list listings by category: %w", err)
	}
	defer rows.Close()
	return scanListings(rows)
}

// TrySetSold escritura condicional atómica: marca vendido solo si aún no lo
// está. Devuelve true si esta llamada aplicó la transición. Una fila afectada
// en cero no distingue inexistente de ya vendido; eso lo resuelve el caller.
func (r *ListingRepo) TrySetSold(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE listings SET soldout = true WHERE id = $1 AND soldout = false`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("set listing sold: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

func scanListings(rows pgx.Rows) ([]*entity.Listing, error) {
	var list []*entity.Listing
	for rows.Next() {
		var l entity.Listing
		if err := rows.Scan(&l.ID, &l.Name, &l.Description, &l.Price, &l.Seller,
			&l.ImageURL, &l.Category, &l.Soldout, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
