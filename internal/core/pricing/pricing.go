// Package pricing computes server-authoritative order pricing.
//
// Unit prices always come from the catalog; any monetary field a client
// sends is never read. An order is priced in full or not at all.
package pricing

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/uteeni/storefront-api/internal/core/domain"
	"github.com/uteeni/storefront-api/internal/core/ports"
)

// Authority prices requested lines against the canonical catalog.
type Authority struct {
	catalog ports.CatalogRepository
}

func NewAuthority(catalog ports.CatalogRepository) *Authority {
	return &Authority{catalog: catalog}
}

// PriceLines resolves every requested line to a priced order item and the
// order total. An empty request yields domain.ErrEmptyOrder; a line whose
// product id is not in the catalog fails the whole operation with
// domain.ErrUnknownProduct, so no partial order is ever produced.
func (a *Authority) PriceLines(ctx context.Context, lines []ports.OrderLineInput) ([]domain.OrderItem, float64, error) {
	if len(lines) == 0 {
		return nil, 0, domain.ErrEmptyOrder
	}

	items := make([]domain.OrderItem, 0, len(lines))
	var total float64
	for _, line := range lines {
		product, err := a.catalog.FindByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				return nil, 0, fmt.Errorf("%w: %d", domain.ErrUnknownProduct, line.ProductID)
			}
			return nil, 0, fmt.Errorf("price lines: %w", err)
		}

		qty := NormalizeQuantity(line.Quantity)
		items = append(items, domain.OrderItem{
			ProductID: product.ID,
			Quantity:  qty,
			UnitPrice: product.Price,
		})
		total += product.Price * float64(qty)
	}

	return items, RoundCents(total), nil
}

// NormalizeQuantity coerces zero and negative quantities to 1. Coercion
// rather than rejection mirrors the reference checkout behaviour.
func NormalizeQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}

// RoundCents rounds to 2 decimal places, half away from zero.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
