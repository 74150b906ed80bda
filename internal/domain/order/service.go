// internal/domain/order/service.go
package order

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/storefront-backend/internal/domain/payment"
	"github.com/your-org/storefront-backend/internal/pkg/idgen"
)

// CreateOrderRequest carries everything the order service needs to
// record one order: the cart snapshot, shipping details, the payment
// details echoed from the gateway step, and the total.
type CreateOrderRequest struct {
	SessionID string          `json:"session_id"`
	Items     []Item          `json:"items"`
	Shipping  ShippingInfo    `json:"shipping"`
	Payment   payment.Request `json:"payment"`
	Total     decimal.Decimal `json:"total"`
}

// Confirmation is returned once an order has been recorded
type Confirmation struct {
	OrderID   string    `json:"order_id"`
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Service records orders after a confirmed payment. May fail by
// returning an error; the caller must treat that as a partial failure
// because payment has already happened.
type Service interface {
	CreateOrder(ctx context.Context, req *CreateOrderRequest) (*Confirmation, error)
}

// MockService simulates an order backend. Order ids come from an
// injected generator so tests can assert exact values, and timestamps
// from an injected clock. Recorded orders land in the history store. A
// real order backend implements the same Service contract.
type MockService struct {
	history *HistoryStore
	ids     idgen.Generator
	now     func() time.Time
	latency time.Duration
}

// NewMockService creates a mock order service
func NewMockService(history *HistoryStore, ids idgen.Generator, latency time.Duration) *MockService {
	return &MockService{
		history: history,
		ids:     ids,
		now:     func() time.Time { return time.Now().UTC() },
		latency: latency,
	}
}

// WithClock overrides the timestamp source, for tests
func (s *MockService) WithClock(now func() time.Time) *MockService {
	s.now = now
	return s
}

// CreateOrder simulates recording an order
func (s *MockService) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*Confirmation, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}

	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	ord := &Order{
		OrderID:   s.ids(),
		SessionID: req.SessionID,
		Status:    StatusCompleted,
		Total:     req.Total,
		Currency:  req.Payment.Currency,
		Shipping:  req.Shipping,
		CreatedAt: s.now(),
		Items:     req.Items,
	}

	if s.history != nil {
		if err := s.history.Record(ctx, ord); err != nil {
			return nil, fmt.Errorf("failed to record order: %w", err)
		}
	}

	return &Confirmation{
		OrderID:   ord.OrderID,
		Status:    ord.Status,
		Timestamp: ord.CreatedAt,
	}, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
