package domain

// Product is a catalog entry. The catalog is immutable after load and safe
// for unsynchronized concurrent reads.
//
// SupplierCost, InventoryCount, and InternalNotes are internal attributes and
// must never appear in a projected view.
type Product struct {
	ID          int64   `json:"id" bson:"_id"`
	SKU         string  `json:"sku" bson:"sku"`
	Name        string  `json:"name" bson:"name"`
	Price       float64 `json:"price" bson:"price"`
	Category    string  `json:"category" bson:"category"`
	Description string  `json:"description" bson:"description"`

	SupplierCost   float64 `json:"-" bson:"supplier_cost"`
	InventoryCount int     `json:"-" bson:"inventory_count"`
	InternalNotes  string  `json:"-" bson:"internal_notes"`
}
