// Package memory provides the in-process storage backend: immutable
// identity and catalog tables seeded at construction, and a mutex-guarded
// order store with atomic id assignment. It is the default backend and the
// reference implementation of the concurrency contract the Mongo backend
// must also honour.
package memory

import "github.com/uteeni/storefront-api/internal/core/domain"

// SeedIdentities is the fixed identity directory loaded at process start.
// Hashes, addresses, and phone numbers are private attributes; they exist in
// the seed precisely so tests can prove they never cross the boundary.
func SeedIdentities() []domain.Identity {
	return []domain.Identity{
		{ID: 1, Name: "Alice", Email: "alice@example.com", Role: domain.RoleUser, PasswordHash: "hash1", Address: "1 Main St", Phone: "555-1111"},
		{ID: 2, Name: "Bob", Email: "bob@example.com", Role: domain.RoleUser, PasswordHash: "hash2", Address: "2 Main St", Phone: "555-2222"},
		{ID: 3, Name: "Admin", Email: "admin@example.com", Role: domain.RoleAdmin, PasswordHash: "hash3", Address: "99 Root", Phone: "555-0000"},
	}
}

// SeedCredentials maps opaque bearer tokens to identity ids. Many-to-one in
// principle; one-to-one in this deployment.
func SeedCredentials() map[string]int64 {
	return map[string]int64{
		"token-alice": 1,
		"token-bob":   2,
		"token-admin": 3,
	}
}

// SeedProducts is the immutable catalog.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID: 501, SKU: "SPK-501", Name: "Desk Speaker", Price: 45,
			Category: "audio", Description: "Compact powered desk speaker",
			SupplierCost: 19.5, InventoryCount: 182, InternalNotes: "supplier renegotiation due Q3",
		},
		{
			ID: 502, SKU: "HDP-502", Name: "Wireless Headphones", Price: 89.99,
			Category: "audio", Description: "Over-ear wireless headphones with mic",
			SupplierCost: 41, InventoryCount: 64, InternalNotes: "return rate above average",
		},
		{
			ID: 510, SKU: "KBD-510", Name: "Mechanical Keyboard", Price: 129.5,
			Category: "peripherals", Description: "Tenkeyless mechanical keyboard, brown switches",
			SupplierCost: 58, InventoryCount: 37, InternalNotes: "",
		},
		{
			ID: 540, SKU: "MON-540", Name: "27in Monitor", Price: 320,
			Category: "displays", Description: "27 inch QHD IPS monitor",
			SupplierCost: 204, InventoryCount: 12, InternalNotes: "low stock, reorder placed",
		},
	}
}

// SeedOrders are the pre-existing orders; ids continue from 2003.
func SeedOrders() []domain.Order {
	return []domain.Order{
		{
			ID: 2001, UserID: 1,
			Items: []domain.OrderItem{{ProductID: 501, Quantity: 2, UnitPrice: 45}},
			Total: 90, IsPaid: false, InternalStatus: domain.OrderStatusPending,
		},
		{
			ID: 2002, UserID: 2,
			Items: []domain.OrderItem{{ProductID: 540, Quantity: 1, UnitPrice: 320}},
			Total: 320, IsPaid: true, InternalStatus: "SHIPPED",
		},
	}
}
