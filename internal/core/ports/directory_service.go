package ports

import (
	"context"

	"github.com/uteeni/storefront-api/internal/core/domain"
	"github.com/uteeni/storefront-api/internal/core/view"
)

// DirectoryService exposes the identity directory to administrators.
type DirectoryService interface {
	// ListUsers requires the admin role and returns projected identities.
	ListUsers(ctx context.Context, identity *domain.Identity) ([]view.User, error)
}
