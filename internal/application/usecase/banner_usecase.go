package usecase

import (
	"context"

	"github.com/jhoicas/market-api/internal/application/dto"
	"github.com/jhoicas/market-api/internal/domain/repository"
)

// bannerLimit máximo de banners que muestra el carrusel de la página principal.
const bannerLimit = 2

// BannerUseCase lectura de banners promocionales (passthrough).
type BannerUseCase struct {
	repo repository.BannerRepository
}

// NewBannerUseCase construye el caso de uso.
func NewBannerUseCase(repo repository.BannerRepository) *BannerUseCase {
	return &BannerUseCase{repo: repo}
}

// List devuelve hasta dos banners para el carrusel.
func (uc *BannerUseCase) List(ctx context.Context) (*dto.BannerListResponse, error) {
	banners, err := uc.repo.List(ctx, bannerLimit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BannerResponse, 0, len(banners))
	for _, b := range banners {
		items = append(items, dto.BannerResponse{ID: b.ID, ImageURL: b.ImageURL})
	}
	return &dto.BannerListResponse{Banners: items}, nil
}
