package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/uteeni/storefront-api/internal/core/ports"
)

// CatalogHandler handles the public product endpoints.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// List handles GET /products, the full projected catalog, no auth required.
func (h *CatalogHandler) List(c echo.Context) error {
	products, err := h.service.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Search handles GET /products/search?q=<text>. The raw q parameter goes
// straight to the sanitizer; a rejection surfaces as 400 via the central
// error handler.
func (h *CatalogHandler) Search(c echo.Context) error {
	result, err := h.service.SearchProducts(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, searchResponse{
		Query:   result.Query,
		Count:   len(result.Results),
		Results: result.Results,
	})
}
