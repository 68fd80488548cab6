package memory

import (
	"context"
	"sort"

	"github.com/uteeni/storefront-api/internal/core/domain"
)

// CatalogRepository is the immutable in-memory product catalog. Safe for
// unsynchronized concurrent reads.
type CatalogRepository struct {
	byID    map[int64]domain.Product
	ordered []domain.Product
}

func NewCatalogRepository(products []domain.Product) *CatalogRepository {
	r := &CatalogRepository{
		byID:    make(map[int64]domain.Product, len(products)),
		ordered: make([]domain.Product, len(products)),
	}
	copy(r.ordered, products)
	sort.Slice(r.ordered, func(i, j int) bool { return r.ordered[i].ID < r.ordered[j].ID })
	for _, p := range products {
		r.byID[p.ID] = p
	}
	return r
}

func (r *CatalogRepository) FindByID(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := p
	return &clone, nil
}

// List returns the catalog ordered by id, so repeated listings are
// byte-identical given unchanged state.
func (r *CatalogRepository) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.ordered))
	copy(out, r.ordered)
	return out, nil
}
