package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/market-api/internal/domain/entity"
	"github.com/jhoicas/market-api/internal/domain/repository"
)

var _ repository.BannerRepository = (*BannerRepo)(nil)

// BannerRepo implementación del puerto BannerRepository sobre PostgreSQL.
type BannerRepo struct {
	q Querier
}

// NewBannerRepository construye el adaptador de banners.
func NewBannerRepository(q Querier) *BannerRepo {
	return &BannerRepo{q: q}
}

// List devuelve hasta limit banners ordenados por id.
func (r *BannerRepo) List(ctx context.Context, limit int) ([]*entity.Banner, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, image_url, created_at FROM banners ORDER BY id LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	defer rows.Close()
	var list []*entity.Banner
	for rows.Next() {
		var b entity.Banner
		if err := rows.Scan(&b.ID, &b.ImageURL, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan banner: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
