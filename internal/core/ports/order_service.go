package ports

import (
	"context"

	"github.com/uteeni/storefront-api/internal/core/domain"
)

// OrderLineInput is the only order data a client may supply: which product
// and how many. Prices and payment state are server-authoritative.
type OrderLineInput struct {
	ProductID int64
	Quantity  int
}

// CreateOrderInput carries all data needed to create an order.
type CreateOrderInput struct {
	Lines []OrderLineInput
	// IdempotencyKey, when non-empty, makes the create replayable: a repeated
	// key returns the originally created order without side effects.
	IdempotencyKey string
}

// OrderService defines order use-cases. The acting identity is passed
// explicitly on every call; a nil identity is denied, never dereferenced.
type OrderService interface {
	CreateOrder(ctx context.Context, identity *domain.Identity, input CreateOrderInput) (*domain.Order, error)
	// GetOrder enforces the owner-or-admin rule per order instance.
	GetOrder(ctx context.Context, identity *domain.Identity, orderID int64) (*domain.Order, error)
}
