package handler

import "github.com/uteeni/storefront-api/internal/core/view"

// --- Request / Response types ---

// orderLineRequest is a single requested order line. Quantity carries no
// validation floor: zero and negative values are coerced to 1 by the pricing
// authority rather than rejected.
type orderLineRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int   `json:"quantity"`
}

// createOrderRequest is the only payload POST /orders reads. Monetary or
// payment fields a client may append to the body have no counterpart here
// and are dropped at bind time.
type createOrderRequest struct {
	Items []orderLineRequest `json:"items" validate:"required,min=1,dive"`
}

type searchResponse struct {
	Query   string         `json:"q"`
	Count   int            `json:"count"`
	Results []view.Product `json:"results"`
}

type whoamiResponse struct {
	User view.User `json:"user"`
}
