package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/uteeni/storefront-api/internal/core/domain"
	"github.com/uteeni/storefront-api/internal/core/ports"
)

// identityKey is the echo context key under which Identify stores the
// resolved identity.
const identityKey = "identity"

// Identify resolves the Authorization header to an identity and injects it
// into the request context. It runs on every request and never rejects one:
// a missing, malformed, or unknown credential simply leaves the request
// anonymous. Handlers that require authentication layer RequireAuth on top.
func Identify(identities ports.IdentityRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := bearerToken(c.Request().Header.Get("Authorization")); token != "" {
				identity, err := identities.FindByCredential(c.Request().Context(), token)
				if err == nil {
					c.Set(identityKey, identity)
				}
			}
			return next(c)
		}
	}
}

// RequireAuth rejects anonymous requests with 401. It assumes Identify has
// already run.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if Identity(c) == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}

// Identity returns the identity resolved for this request, or nil for
// anonymous callers.
func Identity(c echo.Context) *domain.Identity {
	identity, _ := c.Get(identityKey).(*domain.Identity)
	return identity
}

// SetIdentity injects an identity into the context. Intended for tests.
func SetIdentity(c echo.Context, identity *domain.Identity) {
	c.Set(identityKey, identity)
}

// bearerToken extracts the opaque token from an "Authorization: Bearer x"
// header, returning "" for any other shape.
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
