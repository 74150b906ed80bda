// internal/domain/order/history.go
package order

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// HistoryStore keeps recorded orders in the in-process database so the
// order history and order detail surfaces can read them back.
type HistoryStore struct {
	db *gorm.DB
}

// NewHistoryStore creates a new order history store
func NewHistoryStore(db *gorm.DB) *HistoryStore {
	return &HistoryStore{db: db}
}

// Record persists an order with its items
func (h *HistoryStore) Record(ctx context.Context, ord *Order) error {
	if err := h.db.WithContext(ctx).Create(ord).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// List returns the orders recorded for a session, newest first
func (h *HistoryStore) List(ctx context.Context, sessionID string) ([]Order, error) {
	var orders []Order
	err := h.db.WithContext(ctx).
		Preload("Items").
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}
	return orders, nil
}

// Get returns a single order by its public order id
func (h *HistoryStore) Get(ctx context.Context, orderID string) (*Order, error) {
	var ord Order
	err := h.db.WithContext(ctx).
		Preload("Items").
		Where("order_id = ?", orderID).
		First(&ord).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %s not found", orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve order: %w", err)
	}
	return &ord, nil
}
