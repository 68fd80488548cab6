package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/uteeni/storefront-api/internal/core/ports"
	"github.com/uteeni/storefront-api/internal/core/view"
)

// UserHandler handles identity-facing endpoints.
type UserHandler struct {
	directory ports.DirectoryService
}

func NewUserHandler(directory ports.DirectoryService) *UserHandler {
	return &UserHandler{directory: directory}
}

// Users handles GET /admin/users: the projected identity directory, admin
// only. The role check lives in the directory service's policy evaluation.
func (h *UserHandler) Users(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	users, err := h.directory.ListUsers(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// WhoAmI handles GET /whoami, the caller's own projected identity.
func (h *UserHandler) WhoAmI(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, whoamiResponse{User: view.NewUser(*identity)})
}
