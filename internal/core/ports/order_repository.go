package ports

import (
	"context"

	"github.com/uteeni/storefront-api/internal/core/domain"
)

// OrderRepository defines persistence for orders.
//
// Create assigns the order id: id allocation and append must be atomic, so
// two concurrent creates never share an id and a partially built order is
// never visible to readers.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	// FindByID returns domain.ErrOrderNotFound for unknown ids.
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
}
