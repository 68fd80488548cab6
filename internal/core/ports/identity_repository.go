package ports

import (
	"context"

	"github.com/uteeni/storefront-api/internal/core/domain"
)

// IdentityRepository defines lookups over the identity directory. The
// directory is loaded at process start and immutable afterwards.
type IdentityRepository interface {
	// FindByCredential resolves an opaque bearer token to its identity.
	// Unknown tokens yield domain.ErrUserNotFound.
	FindByCredential(ctx context.Context, token string) (*domain.Identity, error)
	FindByID(ctx context.Context, id int64) (*domain.Identity, error)
	// List returns all identities ordered by id.
	List(ctx context.Context) ([]domain.Identity, error)
}
