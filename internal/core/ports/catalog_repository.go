package ports

import (
	"context"

	"github.com/uteeni/storefront-api/internal/core/domain"
)

// CatalogRepository defines read access to the immutable product catalog.
type CatalogRepository interface {
	// FindByID returns domain.ErrProductNotFound for unknown ids.
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	// List returns the full catalog ordered by id.
	List(ctx context.Context) ([]domain.Product, error)
}
