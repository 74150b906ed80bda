// internal/domain/checkout/service.go
package checkout

import (
	"context"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/payment"
)

// Service orchestrates one checkout attempt: form validation, payment
// processing, order creation, then clearing the cart. The two
// collaborator calls are strictly sequential; order creation never
// starts before payment has been confirmed. The service performs
// exactly one attempt per invocation and never retries internally.
type Service struct {
	gateway  payment.Gateway
	orders   order.Service
	currency string
}

// NewService creates a new checkout service
func NewService(gateway payment.Gateway, orders order.Service, cfg *config.Config) *Service {
	return &Service{
		gateway:  gateway,
		orders:   orders,
		currency: cfg.Checkout.Currency,
	}
}

// Checkout runs one attempt against the given cart and form. The cart
// snapshot taken here is what gets submitted, even if the cart mutates
// while collaborators are in flight. Every failure path leaves the
// cart exactly as it was; only the Succeeded path clears it, once.
func (s *Service) Checkout(ctx context.Context, sessionID string, store *cart.Store, form *Form) *Outcome {
	// Validating
	snapshot := store.Snapshot()
	totals := store.Totals()

	if len(snapshot) == 0 {
		return failed(StateValidating, FailureValidation, "cart", "cart is empty")
	}

	if field, ok := form.validate(); !ok {
		return failed(StateValidating, FailureValidation, field, "invalid "+field)
	}

	if err := ctx.Err(); err != nil {
		return failed(StateValidating, FailureCancelled, "", err.Error())
	}

	// ProcessingPayment
	paymentReq := payment.Request{
		CardNumber: form.CardNumber,
		ExpiryDate: form.ExpiryDate,
		CVV:        form.CVV,
		Amount:     totals.TotalPrice,
		Currency:   s.currency,
	}

	approved, err := s.gateway.ProcessPayment(ctx, paymentReq)
	if err != nil {
		return failed(StateProcessingPayment, FailurePayment, "", err.Error())
	}
	if !approved {
		return failed(StateProcessingPayment, FailurePayment, "", "payment declined")
	}

	if err := ctx.Err(); err != nil {
		return failed(StateProcessingPayment, FailureCancelled, "", err.Error())
	}

	// CreatingOrder
	orderReq := &order.CreateOrderRequest{
		SessionID: sessionID,
		Items:     toOrderItems(snapshot),
		Shipping: order.ShippingInfo{
			FirstName:  form.FirstName,
			LastName:   form.LastName,
			Email:      form.Email,
			Phone:      form.Phone,
			Address:    form.Address,
			City:       form.City,
			PostalCode: form.PostalCode,
		},
		Payment: paymentReq,
		Total:   totals.TotalPrice,
	}

	confirmation, err := s.orders.CreateOrder(ctx, orderReq)
	if err != nil {
		// Partial failure: payment has nominally succeeded but no order
		// exists. Surfaced distinctly so the caller can tell the user
		// money may have moved without a confirmed order.
		return failed(StateCreatingOrder, FailureOrderCreation, "", err.Error())
	}

	// Succeeded
	store.Clear()

	return succeeded(confirmation.OrderID, confirmation.Timestamp)
}

func toOrderItems(snapshot []cart.LineItem) []order.Item {
	items := make([]order.Item, len(snapshot))
	for i, line := range snapshot {
		items[i] = order.Item{
			ProductID: line.ID,
			Title:     line.Title,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		}
	}
	return items
}
