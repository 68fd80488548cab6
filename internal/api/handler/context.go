package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/uteeni/storefront-api/internal/api/middleware"
	"github.com/uteeni/storefront-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Identify middleware.
// Handlers behind RequireAuth still call this rather than trusting the route
// configuration: a nil identity here means the middleware chain was
// misassembled, and the request is rejected rather than served anonymously.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	identity := middleware.Identity(c)
	if identity == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return identity, nil
}
