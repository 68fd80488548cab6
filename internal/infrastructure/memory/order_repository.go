package memory

import (
	"context"
	"sync"

	"github.com/uteeni/storefront-api/internal/core/domain"
)

// OrderRepository is the in-memory order store. Id assignment and append
// happen under a single lock, so concurrent creates get distinct monotonic
// ids and readers never observe a partially inserted order.
type OrderRepository struct {
	mu     sync.RWMutex
	byID   map[int64]domain.Order
	nextID int64
}

// NewOrderRepository seeds the store and continues id assignment after the
// highest seeded id.
func NewOrderRepository(seed []domain.Order) *OrderRepository {
	r := &OrderRepository{
		byID:   make(map[int64]domain.Order, len(seed)),
		nextID: 1,
	}
	for _, o := range seed {
		r.byID[o.ID] = cloneOrder(o)
		if o.ID >= r.nextID {
			r.nextID = o.ID + 1
		}
	}
	return r
}

func (r *OrderRepository) Create(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = r.nextID
	r.nextID++
	r.byID[order.ID] = cloneOrder(*order)
	return nil
}

func (r *OrderRepository) FindByID(_ context.Context, id int64) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	clone := cloneOrder(o)
	return &clone, nil
}

// cloneOrder deep-copies an order so callers never share the stored slice.
func cloneOrder(o domain.Order) domain.Order {
	clone := o
	clone.Items = make([]domain.OrderItem, len(o.Items))
	copy(clone.Items, o.Items)
	return clone
}
