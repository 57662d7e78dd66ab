package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/market-api/internal/application/usecase"
	"github.com/jhoicas/market-api/internal/domain/entity"
)

func seedListing(t *testing.T, repo *fakeListingRepo, id, category string, soldout bool, createdAt time.Time) {
	t.Helper()
	var cat *string
	if category != "" {
		cat = &category
	}
	err := repo.Create(context.Background(), &entity.Listing{
		ID:          id,
		Name:        "artículo " + id,
		Description: "descripción",
		Price:       decimal.NewFromInt(1000),
		Seller:      "Bob",
		ImageURL:    "uploads/" + id + ".png",
		Category:    cat,
		Soldout:     soldout,
		CreatedAt:   createdAt,
	})
	require.NoError(t, err)
}

// Un artículo inexistente produce lista vacía, no error: la recomendación es
// consultiva.
func TestRecommend_ArticuloInexistente(t *testing.T) {
	repo := newFakeListingRepo()
	uc := usecase.NewRecommendationUseCase(repo, 0)

	out, err := uc.Recommend(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Empty(t, out.Products)
}

// Sin categoría asignada no hay señal de similitud: lista vacía.
func TestRecommend_SinCategoria(t *testing.T) {
	repo := newFakeListingRepo()
	now := time.Now()
	seedListing(t, repo, "a", "", false, now)
	seedListing(t, repo, "b", "furniture", false, now)
	uc := usecase.NewRecommendationUseCase(repo, 0)

	out, err := uc.Recommend(context.Background(), "a")
	require.NoError(t, err)
	assert.Empty(t, out.Products)
}

// Devuelve exactamente los artículos de la misma categoría, excluyendo al
// origen, más reciente primero.
func TestRecommend_ConjuntoExactoYOrden(t *testing.T) {
	repo := newFakeListingRepo()
	now := time.Now()
	seedListing(t, repo, "origen", "furniture", false, now)
	seedListing(t, repo, "viejo", "furniture", false, now.Add(-2*time.Hour))
	seedListing(t, repo, "nuevo", "furniture", false, now.Add(-1*time.Hour))
	seedListing(t, repo, "otro", "electronics", false, now)
	uc := usecase.NewRecommendationUseCase(repo, 0)

	out, err := uc.Recommend(context.Background(), "origen")
	require.NoError(t, err)
	require.Len(t, out.Products, 2)
	assert.Equal(t, "nuevo", out.Products[0].ID)
	assert.Equal(t, "viejo", out.Products[1].ID)
	for _, p := range out.Products {
		assert.NotEqual(t, "origen", p.ID, "el origen nunca se recomienda a sí mismo")
	}
}

// Los artículos vendidos siguen siendo recomendables: se preserva el
// comportamiento del catálogo, el filtrado visual es del cliente.
func TestRecommend_IncluyeVendidos(t *testing.T) {
	repo := newFakeListingRepo()
	now := time.Now()
	seedListing(t, repo, "origen", "clothing", false, now)
	seedListing(t, repo, "vendido", "clothing", true, now.Add(-time.Minute))
	uc := usecase.NewRecommendationUseCase(repo, 0)

	out, err := uc.Recommend(context.Background(), "origen")
	require.NoError(t, err)
	require.Len(t, out.Products, 1)
	assert.Equal(t, "vendido", out.Products[0].ID)
	assert.True(t, out.Products[0].Soldout)
}

// El límite del operador acota el resultado; cero significa sin límite.
func TestRecommend_Limite(t *testing.T) {
	repo := newFakeListingRepo()
	now := time.Now()
	seedListing(t, repo, "origen", "books", false, now)
	for i := 0; i < 5; i++ {
		seedListing(t, repo, string(rune('a'+i)), "books", false, now.Add(-time.Duration(i+1)*time.Minute))
	}

	limited := usecase.NewRecommendationUseCase(repo, 3)
	out, err := limited.Recommend(context.Background(), "origen")
	require.NoError(t, err)
	assert.Len(t, out.Products, 3)

	unbounded := usecase.NewRecommendationUseCase(repo, 0)
	out, err = unbounded.Recommend(context.Background(), "origen")
	require.NoError(t, err)
	assert.Len(t, out.Products, 5)
}

// Escenario completo: silla de madera clasificada como furniture, un segundo
// furniture y un electronics; la recomendación del primero es exactamente el
// segundo.
func TestRecommend_EscenarioCatalogo(t *testing.T) {
	repo := newFakeListingRepo()
	classifier := &fakeClassifier{results: []classifyResult{
		{label: "furniture"},
		{label: "furniture"},
		{label: "electronics"},
	}}
	listingUC := usecase.NewListingUseCase(repo, classifier, time.Second, nopLogger())
	recommendUC := usecase.NewRecommendationUseCase(repo, 0)

	chair, err := listingUC.Create(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, chair.Category)
	assert.Equal(t, "furniture", *chair.Category)
	assert.False(t, chair.Soldout)

	table, err := listingUC.Create(context.Background(), validRequest())
	require.NoError(t, err)
	_, err = listingUC.Create(context.Background(), validRequest())
	require.NoError(t, err)

	out, err := recommendUC.Recommend(context.Background(), chair.ID)
	require.NoError(t, err)
	require.Len(t, out.Products, 1)
	assert.Equal(t, table.ID, out.Products[0].ID)
}
