package domain

// OrderStatusPending is the internal status assigned at creation. Further
// transitions are driven by fulfilment systems outside this service.
const OrderStatusPending = "PENDING"

// OrderItem is a single priced line of an order. UnitPrice always holds the
// catalog price at creation time, never a client-supplied value.
type OrderItem struct {
	ProductID int64   `json:"product_id" bson:"product_id"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	UnitPrice float64 `json:"unit_price" bson:"unit_price"`
}

// Order is the aggregate created by an authenticated identity. UserID is the
// owning identity and the basis for the owner-or-admin access rule.
//
// IsPaid is false at creation and only a payment-settlement collaborator may
// flip it; no request body field reaches it.
type Order struct {
	ID             int64       `json:"id" bson:"_id"`
	UserID         int64       `json:"user_id" bson:"user_id"`
	Items          []OrderItem `json:"items" bson:"items"`
	Total          float64     `json:"total" bson:"total"`
	IsPaid         bool        `json:"is_paid" bson:"is_paid"`
	InternalStatus string      `json:"internal_status" bson:"internal_status"`
}

// OwnedBy reports the identity that owns the order.
func (o *Order) OwnedBy() int64 {
	return o.UserID
}
