package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/market-api/internal/application/dto"
	"github.com/jhoicas/market-api/internal/application/ports"
	"github.com/jhoicas/market-api/internal/domain"
	"github.com/jhoicas/market-api/internal/domain/entity"
	"github.com/jhoicas/market-api/internal/domain/repository"
	"github.com/jhoicas/market-api/pkg/logger"
)

// ListingUseCase casos de uso de ingesta y consulta del catálogo.
// La clasificación de imagen es best-effort: si el clasificador falla, el
// artículo se publica igual con categoría ausente para no acoplar la
// disponibilidad del catálogo a la del modelo de visión.
type ListingUseCase struct {
	repo            repository.ListingRepository
	classifier      ports.ImageClassifier
	classifyTimeout time.Duration
	log             *logger.Logger
}

// NewListingUseCase construye el caso de uso. classifyTimeout acota cada
// llamada al clasificador; con cero se usan 10 s.
func NewListingUseCase(repo repository.ListingRepository, classifier ports.ImageClassifier, classifyTimeout time.Duration, log *logger.Logger) *ListingUseCase {
	if classifyTimeout <= 0 {
		classifyTimeout = 10 * time.Second
	}
	return &ListingUseCase{
		repo:            repo,
		classifier:      classifier,
		classifyTimeout: classifyTimeout,
		log:             log,
	}
}

// Create valida la entrada, intenta clasificar la imagen y persiste el
// artículo. La validación ocurre SIEMPRE antes de cualquier llamada externa;
// una entrada inválida nunca llega al clasificador ni al store.
func (uc *ListingUseCase) Create(ctx context.Context, in dto.CreateListingRequest) (*dto.ListingResponse, error) {
	if in.Name == "" || in.Description == "" || in.Seller == "" || in.ImageURL == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Price.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	category := uc.classify(ctx, in.ImageURL)

	listing := &entity.Listing{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Seller:      in.Seller,
		ImageURL:    in.ImageURL,
		Category:    category,
		Soldout:     false,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, listing); err != nil {
		return nil, err
	}
	return toListingResponse(listing), nil
}

// classify llama al clasificador con timeout y devuelve nil si falla.
// Reintenta una sola vez y solo ante fallos transitorios (timeout o servicio
// no disponible); una imagen irreconocible o sin categoría no mejora
// reintentando.
func (uc *ListingUseCase) classify(ctx context.Context, imageRef string) *string {
	label, err := uc.classifyOnce(ctx, imageRef)
	if errors.Is(err, ports.ErrClassifierTimeout) || errors.Is(err, ports.ErrClassifierUnavailable) {
		label, err = uc.classifyOnce(ctx, imageRef)
	}
	if err != nil {
		uc.log.Warn().Err(err).Str("image", imageRef).
			Msg("clasificación fallida; se publica sin categoría")
		return nil
	}
	return &label
}

func (uc *ListingUseCase) classifyOnce(ctx context.Context, imageRef string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.classifyTimeout)
	defer cancel()
	return uc.classifier.Classify(ctx, imageRef)
}

// List devuelve el catálogo completo en orden created_at DESC, proyectado a
// los campos del listado.
func (uc *ListingUseCase) List(ctx context.Context) (*dto.ListingListResponse, error) {
	listings, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ListingSummary, 0, len(listings))
	for _, l := range listings {
		items = append(items, dto.ListingSummary{
			ID:        l.ID,
			Name:      l.Name,
			Price:     l.Price,
			Seller:    l.Seller,
			ImageURL:  l.ImageURL,
			Soldout:   l.Soldout,
			CreatedAt: l.CreatedAt,
		})
	}
	return &dto.ListingListResponse{Products: items}, nil
}

// GetByID obtiene un artículo por ID. Devuelve (nil, nil) si no existe.
func (uc *ListingUseCase) GetByID(ctx context.Context, id string) (*dto.ListingResponse, error) {
	listing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, nil
	}
	return toListingResponse(listing), nil
}

func toListingResponse(l *entity.Listing) *dto.ListingResponse {
	if l == nil {
		return nil
	}
	return &dto.ListingResponse{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		Price:       l.Price,
		Seller:      l.Seller,
		ImageURL:    l.ImageURL,
		Category:    l.Category,
		Soldout:     l.Soldout,
		CreatedAt:   l.CreatedAt,
	}
}
