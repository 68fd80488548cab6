// Package view holds the public projections of domain records.
//
// Each view is an explicit allow-list: a projection copies named fields and
// nothing else, so internal attributes added to a domain record later are
// invisible by default. Every record that crosses the trust boundary goes
// through one of these constructors, including every element of every
// collection.
package view

import "github.com/uteeni/storefront-api/internal/core/domain"

// Product is the public shape of a catalog entry.
type Product struct {
	ID          int64   `json:"id"`
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// User is the public shape of an identity.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// NewProduct projects a catalog entry to its public view.
func NewProduct(p domain.Product) Product {
	return Product{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Price:       p.Price,
		Category:    p.Category,
		Description: p.Description,
	}
}

// NewUser projects an identity to its public view.
func NewUser(u domain.Identity) User {
	return User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// Products projects a full collection, preserving order.
func Products(ps []domain.Product) []Product {
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewProduct(p))
	}
	return out
}

// Users projects a full collection, preserving order.
func Users(us []domain.Identity) []User {
	out := make([]User, 0, len(us))
	for _, u := range us {
		out = append(out, NewUser(u))
	}
	return out
}
