package memory

import (
	"context"
	"sort"

	"github.com/uteeni/storefront-api/internal/core/domain"
)

// IdentityRepository is an immutable in-memory identity directory. Both maps
// are built once at construction and only ever read afterwards, so lookups
// need no synchronization.
type IdentityRepository struct {
	byID         map[int64]domain.Identity
	byCredential map[string]int64
	ordered      []domain.Identity
}

// NewIdentityRepository builds the directory from the given identities and
// credential table.
func NewIdentityRepository(identities []domain.Identity, credentials map[string]int64) *IdentityRepository {
	r := &IdentityRepository{
		byID:         make(map[int64]domain.Identity, len(identities)),
		byCredential: make(map[string]int64, len(credentials)),
		ordered:      make([]domain.Identity, len(identities)),
	}
	copy(r.ordered, identities)
	sort.Slice(r.ordered, func(i, j int) bool { return r.ordered[i].ID < r.ordered[j].ID })
	for _, id := range identities {
		r.byID[id.ID] = id
	}
	for token, id := range credentials {
		r.byCredential[token] = id
	}
	return r
}

func (r *IdentityRepository) FindByCredential(_ context.Context, token string) (*domain.Identity, error) {
	id, ok := r.byCredential[token]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return r.find(id)
}

func (r *IdentityRepository) FindByID(_ context.Context, id int64) (*domain.Identity, error) {
	return r.find(id)
}

func (r *IdentityRepository) List(_ context.Context) ([]domain.Identity, error) {
	out := make([]domain.Identity, len(r.ordered))
	copy(out, r.ordered)
	return out, nil
}

func (r *IdentityRepository) find(id int64) (*domain.Identity, error) {
	identity, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := identity
	return &clone, nil
}
