package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/uteeni/storefront-api/internal/core/ports"
	"github.com/uteeni/storefront-api/internal/core/search"
	"github.com/uteeni/storefront-api/internal/core/view"
	"github.com/uteeni/storefront-api/internal/pkg/metrics"
)

// CatalogService serves the public product catalog.
type CatalogService struct {
	catalog ports.CatalogRepository
	log     zerolog.Logger
}

func NewCatalogService(catalog ports.CatalogRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{catalog: catalog, log: log}
}

// ListProducts returns the full catalog as projected views.
func (s *CatalogService) ListProducts(ctx context.Context) ([]view.Product, error) {
	products, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	return view.Products(products), nil
}

// SearchProducts sanitizes rawQuery into a literal term and returns the
// projected products whose name or description contains it. The rejected
// input is never matched against anything.
func (s *CatalogService) SearchProducts(ctx context.Context, rawQuery string) (*ports.SearchResult, error) {
	term, err := search.Sanitize(rawQuery)
	if err != nil {
		metrics.SearchQueriesTotal.WithLabelValues("rejected").Inc()
		s.log.Debug().Str("query", rawQuery).Msg("search query rejected")
		return nil, err
	}
	metrics.SearchQueriesTotal.WithLabelValues("accepted").Inc()

	products, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]view.Product, 0)
	for _, p := range products {
		if search.Matches(term, p) {
			matched = append(matched, view.NewProduct(p))
		}
	}

	// The response echoes the query as the caller typed it, trimmed;
	// matching uses the normalized term.
	return &ports.SearchResult{Query: strings.TrimSpace(rawQuery), Results: matched}, nil
}
