// internal/domain/product/entity.go
package product

import (
	"github.com/shopspring/decimal"
)

// Product represents a catalog record as returned by the remote
// storefront API. The core only reads the shape; interpretation of
// titles and image urls belongs to the presentation layer.
type Product struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Tags     []string  `json:"tags,omitempty"`
	ImageURL string    `json:"image_url,omitempty"`
	Variants []Variant `json:"variants"`
}

// Variant represents a purchasable variant with its price
type Variant struct {
	// Amount is the raw price string from the API; empty when the
	// record carries no price.
	Amount           string          `json:"amount"`
	Price            decimal.Decimal `json:"price"`
	AvailableForSale bool            `json:"available_for_sale"`
}

// IsComplete reports whether the record has an image, at least one
// variant, and a price on its first variant. Incomplete records are
// sorted after complete ones.
func (p Product) IsComplete() bool {
	return p.ImageURL != "" && len(p.Variants) > 0 && p.Variants[0].Amount != ""
}

// FirstPrice returns the first variant's price, or zero when absent
func (p Product) FirstPrice() decimal.Decimal {
	if len(p.Variants) == 0 {
		return decimal.Zero
	}
	return p.Variants[0].Price
}

// Page represents one page of catalog results
type Page struct {
	Products    []Product `json:"products"`
	HasNextPage bool      `json:"has_next_page"`
	EndCursor   string    `json:"end_cursor,omitempty"`
}
