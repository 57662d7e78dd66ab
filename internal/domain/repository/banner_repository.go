package repository

import (
	"context"

	"github.com/jhoicas/market-api/internal/domain/entity"
)

// BannerRepository puerto de lectura de banners promocionales.
type BannerRepository interface {
	// List devuelve hasta limit banners ordenados por id.
	List(ctx context.Context, limit int) ([]*entity.Banner, error)
}
