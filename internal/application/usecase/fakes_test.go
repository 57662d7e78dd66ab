package usecase_test

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/market-api/internal/domain/entity"
	"github.com/jhoicas/market-api/internal/domain/repository"
	"github.com/jhoicas/market-api/pkg/logger"
)

func nopLogger() *logger.Logger { return logger.Nop() }

// ──────────────────────────────────────────────────────────────────────────────
// Fakes compartidos por los tests de casos de uso
// ──────────────────────────────────────────────────────────────────────────────

// fakeListingRepo store en memoria con la misma semántica que el adaptador
// PostgreSQL: (nil, nil) para ausente, TrySetSold condicional bajo lock.
type fakeListingRepo struct {
	mu       sync.Mutex
	listings map[string]*entity.Listing
}

var _ repository.ListingRepository = (*fakeListingRepo)(nil)

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: make(map[string]*entity.Listing)}
}

func (r *fakeListingRepo) Create(_ context.Context, listing *entity.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *listing
	r.listings[listing.ID] = &cp
	return nil
}

func (r *fakeListingRepo) GetByID(_ context.Context, id string) (*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeListingRepo) ListAll(_ context.Context) ([]*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Listing, 0, len(r.listings))
	for _, l := range r.listings {
		cp := *l
		out = append(out, &cp)
	}
	sortListings(out)
	return out, nil
}

func (r *fakeListingRepo) ListByCategory(_ context.Context, category, excludeID string, limit int) ([]*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Listing
	for _, l := range r.listings {
		if l.ID == excludeID || l.Category == nil || *l.Category != category {
			continue
		}
		cp := *l
		out = append(out, &cp)
	}
	sortListings(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeListingRepo) TrySetSold(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[id]
	if !ok || l.Soldout {
		return false, nil
	}
	l.Soldout = true
	return true, nil
}

// sortListings created_at DESC con desempate por id ASC, igual que el SQL.
func sortListings(list []*entity.Listing) {
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID < list[j].ID
	})
}

// fakeClassifier devuelve resultados en el orden de la cola y cuenta llamadas
// para poder afirmar política de reintento y orden de validación.
type fakeClassifier struct {
	mu      sync.Mutex
	results []classifyResult
	calls   int
}

type classifyResult struct {
	label string
	err   error
}

func (f *fakeClassifier) Classify(_ context.Context, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if len(f.results) == 0 {
		return "", nil
	}
	res := f.results[0]
	if len(f.results) > 1 {
		f.results = f.results[1:]
	}
	return res.label, res.err
}

func (f *fakeClassifier) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeBannerRepo lista fija de banners.
type fakeBannerRepo struct {
	banners []*entity.Banner
}

func (r *fakeBannerRepo) List(_ context.Context, limit int) ([]*entity.Banner, error) {
	if limit > 0 && len(r.banners) > limit {
		return r.banners[:limit], nil
	}
	return r.banners, nil
}
