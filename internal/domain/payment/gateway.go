// internal/domain/payment/gateway.go
package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Request carries the payment fields and charge amount for one attempt
type Request struct {
	CardNumber string          `json:"card_number"`
	ExpiryDate string          `json:"expiry_date"`
	CVV        string          `json:"cvv"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
}

// Gateway processes a payment for a checkout attempt. A declined
// payment is reported as (false, nil); transport or gateway errors are
// returned as a non-nil error.
type Gateway interface {
	ProcessPayment(ctx context.Context, req Request) (bool, error)
}

// MockGateway simulates a payment gateway. It re-validates card details
// the way a real gateway would reject malformed input, waits for a
// configurable latency, and approves the charge. A real gateway
// integration implements the same Gateway contract.
type MockGateway struct {
	latency time.Duration
}

// NewMockGateway creates a mock gateway with the given simulated latency
func NewMockGateway(latency time.Duration) *MockGateway {
	return &MockGateway{latency: latency}
}

// ProcessPayment simulates processing a payment
func (g *MockGateway) ProcessPayment(ctx context.Context, req Request) (bool, error) {
	if !ValidateCardNumber(req.CardNumber) {
		return false, fmt.Errorf("invalid card number")
	}
	if !ValidateExpiryDate(req.ExpiryDate) {
		return false, fmt.Errorf("invalid expiry date")
	}
	if !ValidateCVV(req.CVV) {
		return false, fmt.Errorf("invalid CVV")
	}
	if req.Amount.Sign() <= 0 {
		return false, fmt.Errorf("charge amount must be positive")
	}

	if err := wait(ctx, g.latency); err != nil {
		return false, err
	}

	return true, nil
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
