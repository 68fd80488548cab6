package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/uteeni/storefront-api/internal/core/domain"
	"github.com/uteeni/storefront-api/internal/core/policy"
	"github.com/uteeni/storefront-api/internal/core/ports"
	"github.com/uteeni/storefront-api/internal/core/view"
	"github.com/uteeni/storefront-api/internal/pkg/metrics"
)

// DirectoryService exposes the identity directory to administrators.
type DirectoryService struct {
	identities ports.IdentityRepository
	log        zerolog.Logger
}

func NewDirectoryService(identities ports.IdentityRepository, log zerolog.Logger) *DirectoryService {
	return &DirectoryService{identities: identities, log: log}
}

// ListUsers returns every identity as a projected view. Admin only.
func (s *DirectoryService) ListUsers(ctx context.Context, identity *domain.Identity) ([]view.User, error) {
	if d := policy.Authorize(identity, policy.ActionListUsers, nil); !d.Allowed {
		metrics.AuthzDenialsTotal.WithLabelValues(string(d.Reason)).Inc()
		s.log.Debug().Str("reason", string(d.Reason)).Msg("user listing denied")
		return nil, d.Err()
	}

	users, err := s.identities.List(ctx)
	if err != nil {
		return nil, err
	}
	return view.Users(users), nil
}
