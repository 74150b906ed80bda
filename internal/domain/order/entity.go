// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status represents the order status
type Status string

const (
	StatusCompleted  Status = "completed"
	StatusProcessing Status = "processing"
	StatusCancelled  Status = "cancelled"
)

// Order represents a recorded order
type Order struct {
	ID        uint            `gorm:"primaryKey" json:"-"`
	OrderID   string          `gorm:"uniqueIndex;not null;size:50" json:"order_id"`
	SessionID string          `gorm:"index;size:64" json:"-"`
	Status    Status          `gorm:"not null;default:'completed'" json:"status"`
	Total     decimal.Decimal `gorm:"type:numeric;not null" json:"total"`
	Currency  string          `gorm:"size:3" json:"currency"`

	// Shipping details captured at checkout
	Shipping ShippingInfo `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	Items []Item `gorm:"foreignKey:OrderRef;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// Item represents one line item of a recorded order
type Item struct {
	ID        uint            `gorm:"primaryKey" json:"-"`
	OrderRef  uint            `gorm:"not null;index" json:"-"`
	ProductID string          `gorm:"not null;size:255" json:"id"`
	Title     string          `gorm:"not null;size:255" json:"title"`
	UnitPrice decimal.Decimal `gorm:"type:numeric;not null" json:"unit_price"`
	Quantity  int             `gorm:"not null" json:"quantity"`
}

// ShippingInfo represents the shipping details of a checkout attempt
type ShippingInfo struct {
	FirstName  string `gorm:"size:100" json:"first_name"`
	LastName   string `gorm:"size:100" json:"last_name"`
	Email      string `gorm:"size:255" json:"email"`
	Phone      string `gorm:"size:20" json:"phone"`
	Address    string `gorm:"size:255" json:"address"`
	City       string `gorm:"size:100" json:"city"`
	PostalCode string `gorm:"size:20" json:"postal_code"`
}

// TableName overrides
func (Order) TableName() string { return "orders" }
func (Item) TableName() string  { return "order_items" }
