package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyStore maps Idempotency-Key headers to created order ids.
// Key format: idem:<key>
type IdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore creates an IdempotencyStore wrapping the given Redis client.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Lookup returns the order id previously remembered for key, if any.
func (s *IdempotencyStore) Lookup(ctx context.Context, key string) (int64, bool, error) {
	id, err := s.client.Get(ctx, s.key(key)).Int64()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("idempotency lookup: %w", err)
	}
	return id, true, nil
}

// Remember records the order created for key (expires after idempotencyTTL).
func (s *IdempotencyStore) Remember(ctx context.Context, key string, orderID int64) error {
	return s.client.Set(ctx, s.key(key), orderID, idempotencyTTL).Err()
}

func (s *IdempotencyStore) key(key string) string {
	return "idem:" + key
}
