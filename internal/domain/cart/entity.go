// internal/domain/cart/entity.go
package cart

import (
	"github.com/shopspring/decimal"
)

// LineItem represents one product-and-variant entry in the cart.
// ID is the stable product identifier and is unique within a cart:
// adding an existing id merges quantities instead of appending a
// duplicate entry.
type LineItem struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	ImageRef     string          `json:"image_ref,omitempty"`
	Quantity     int             `json:"quantity"`
	VariantLabel string          `json:"variant_label,omitempty"`
}

// LineTotal returns unit price multiplied by quantity
func (i LineItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Totals represents calculated cart totals
type Totals struct {
	LineCount  int             `json:"line_count"`  // Number of unique items
	ItemCount  int             `json:"item_count"`  // Sum of all quantities
	TotalPrice decimal.Decimal `json:"total_price"` // Sum of unit price * quantity
}
