package ports

import (
	"context"

	"github.com/uteeni/storefront-api/internal/core/view"
)

// SearchResult is returned by SearchProducts. Query is the caller's query,
// trimmed but otherwise as typed.
type SearchResult struct {
	Query   string
	Results []view.Product
}

// CatalogService defines the public catalog use-cases. Both operations are
// anonymous; every product leaves through the projected view.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]view.Product, error)
	// SearchProducts validates rawQuery as a literal term before matching.
	// Rejected input yields domain.ErrInvalidQuery; it is never evaluated.
	SearchProducts(ctx context.Context, rawQuery string) (*SearchResult, error)
}
