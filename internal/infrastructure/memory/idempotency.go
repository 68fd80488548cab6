package memory

import (
	"context"
	"sync"
)

// IdempotencyStore is the in-process Idempotency-Key table used when Redis
// is not configured. Entries live for the process lifetime.
type IdempotencyStore struct {
	mu   sync.RWMutex
	keys map[string]int64
}

func NewIdempotencyStore() *IdempotencyStore {
	return &IdempotencyStore{keys: make(map[string]int64)}
}

func (s *IdempotencyStore) Lookup(_ context.Context, key string) (int64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.keys[key]
	return id, ok, nil
}

func (s *IdempotencyStore) Remember(_ context.Context, key string, orderID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[key] = orderID
	return nil
}
