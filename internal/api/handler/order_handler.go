package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/uteeni/storefront-api/internal/core/domain"
	"github.com/uteeni/storefront-api/internal/core/ports"
)

// OrderHandler handles order retrieval and creation.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Get handles GET /orders/:id. The stored order contains only public-safe
// fields, so it is returned as-is; ownership is enforced by the service
// against the fetched instance.
func (h *OrderHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// A non-numeric id can never name an order.
		return domain.ErrOrderNotFound
	}

	order, err := h.service.GetOrder(c.Request().Context(), identity, orderID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Create handles POST /orders. The body supplies product ids and quantities
// only; the stored order is computed entirely server-side. An optional
// Idempotency-Key header makes the call replayable.
func (h *OrderHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lines := make([]ports.OrderLineInput, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, ports.OrderLineInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.service.CreateOrder(c.Request().Context(), identity, ports.CreateOrderInput{
		Lines:          lines,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, order)
}
