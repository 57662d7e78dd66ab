package dto

// BannerResponse salida de un banner promocional.
type BannerResponse struct {
	ID       string `json:"id"`
	ImageURL string `json:"imageUrl"`
}

// BannerListResponse envoltura {"banners": [...]}.
type BannerListResponse struct {
	Banners []BannerResponse `json:"banners"`
}
