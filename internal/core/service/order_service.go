package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/uteeni/storefront-api/internal/core/domain"
	"github.com/uteeni/storefront-api/internal/core/policy"
	"github.com/uteeni/storefront-api/internal/core/ports"
	"github.com/uteeni/storefront-api/internal/core/pricing"
	"github.com/uteeni/storefront-api/internal/pkg/metrics"
)

// IdempotencyStore abstracts the Idempotency-Key store (Redis in production,
// an in-process map in memory mode).
type IdempotencyStore interface {
	// Lookup returns the order id previously remembered for key, if any.
	Lookup(ctx context.Context, key string) (int64, bool, error)
	Remember(ctx context.Context, key string, orderID int64) error
}

// OrderService implements order creation and retrieval behind the access
// policy and the pricing authority.
type OrderService struct {
	orders ports.OrderRepository
	pricer *pricing.Authority
	idem   IdempotencyStore // nil disables idempotency tracking
	log    zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, pricer *pricing.Authority, idem IdempotencyStore, log zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, pricer: pricer, idem: idem, log: log}
}

// CreateOrder prices the requested lines against the catalog and appends a
// new order owned by the acting identity. The order carries catalog unit
// prices, a server-computed total, IsPaid=false, and status PENDING;
// regardless of anything else in the request.
func (s *OrderService) CreateOrder(ctx context.Context, identity *domain.Identity, input ports.CreateOrderInput) (*domain.Order, error) {
	if err := s.deny(policy.Authorize(identity, policy.ActionCreateOrder, nil)); err != nil {
		return nil, err
	}

	// Keys are scoped to the acting identity: a key only ever replays an
	// order that identity created itself.
	var idemKey string
	if input.IdempotencyKey != "" && s.idem != nil {
		idemKey = fmt.Sprintf("%d:%s", identity.ID, input.IdempotencyKey)
		if id, ok, err := s.idem.Lookup(ctx, idemKey); err != nil {
			s.log.Warn().Err(err).Msg("idempotency lookup failed, creating anyway")
		} else if ok {
			existing, err := s.orders.FindByID(ctx, id)
			if err == nil {
				metrics.IdempotentReplaysTotal.Inc()
				s.log.Info().Str("idempotency_key", input.IdempotencyKey).Int64("order_id", id).Msg("idempotent replay")
				return existing, nil
			}
		}
	}

	items, total, err := s.pricer.PriceLines(ctx, input.Lines)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		UserID:         identity.ID,
		Items:          items,
		Total:          total,
		IsPaid:         false, // settled only by the payment workflow
		InternalStatus: domain.OrderStatusPending,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.log.Error().Err(err).Msg("failed to create order")
		return nil, fmt.Errorf("create order: %w", err)
	}

	if idemKey != "" {
		if err := s.idem.Remember(ctx, idemKey, order.ID); err != nil {
			s.log.Warn().Err(err).Str("idempotency_key", input.IdempotencyKey).Msg("failed to record idempotency key")
		}
	}

	metrics.OrdersCreatedTotal.Inc()
	metrics.OrderTotalAmount.Observe(order.Total)
	s.log.Info().Int64("order_id", order.ID).Int64("user_id", identity.ID).Float64("total", order.Total).Msg("order created")

	return order, nil
}

// GetOrder retrieves a single order, enforcing the owner-or-admin rule
// against the fetched instance, not only the route.
func (s *OrderService) GetOrder(ctx context.Context, identity *domain.Identity, orderID int64) (*domain.Order, error) {
	if err := s.deny(policy.Authorize(identity, policy.ActionReadOrder, nil)); err != nil {
		return nil, err
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.deny(policy.Authorize(identity, policy.ActionReadOrder, order)); err != nil {
		return nil, err
	}

	return order, nil
}

// deny records a denied decision and converts it to a domain error.
func (s *OrderService) deny(d policy.Decision) error {
	if d.Allowed {
		return nil
	}
	metrics.AuthzDenialsTotal.WithLabelValues(string(d.Reason)).Inc()
	return d.Err()
}
