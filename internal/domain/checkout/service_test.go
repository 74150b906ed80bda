package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/payment"
)

// stubGateway implements payment.Gateway for testing
type stubGateway struct {
	approved bool
	err      error
	called   bool
	gotReq   payment.Request
	onCall   func()
}

func (g *stubGateway) ProcessPayment(_ context.Context, req payment.Request) (bool, error) {
	g.called = true
	g.gotReq = req
	if g.onCall != nil {
		g.onCall()
	}
	return g.approved, g.err
}

// stubOrders implements order.Service for testing
type stubOrders struct {
	confirmation *order.Confirmation
	err          error
	called       bool
	gotReq       *order.CreateOrderRequest
}

func (o *stubOrders) CreateOrder(_ context.Context, req *order.CreateOrderRequest) (*order.Confirmation, error) {
	o.called = true
	o.gotReq = req
	return o.confirmation, o.err
}

func testConfig() *config.Config {
	return &config.Config{
		Checkout: config.CheckoutConfig{Currency: "ZAR"},
	}
}

func validForm() *Form {
	return &Form{
		FirstName:  "Thandi",
		LastName:   "Nkosi",
		Email:      "thandi@example.com",
		Phone:      "0821234567",
		Address:    "12 Long Street",
		City:       "Cape Town",
		PostalCode: "8001",
		CardNumber: "4532015112830366",
		ExpiryDate: time.Now().AddDate(1, 0, 0).Format("01/06"),
		CVV:        "123",
	}
}

func populatedCart() *cart.Store {
	s := cart.NewStore()
	s.AddItem(cart.LineItem{
		ID:        "p1",
		Title:     "Old Skool",
		UnitPrice: decimal.RequireFromString("1299.99"),
		Quantity:  2,
	})
	s.AddItem(cart.LineItem{
		ID:        "p2",
		Title:     "Checkerboard Slip-On",
		UnitPrice: decimal.RequireFromString("999.50"),
		Quantity:  1,
	})
	return s
}

func TestCheckoutValidationShortCircuits(t *testing.T) {
	gateway := &stubGateway{approved: true}
	orders := &stubOrders{}
	svc := NewService(gateway, orders, testConfig())

	// Both lastName and cvv are invalid; the first-checked field wins.
	form := validForm()
	form.LastName = ""
	form.CVV = "12"

	store := populatedCart()
	outcome := svc.Checkout(context.Background(), "s1", store, form)

	require.NotNil(t, outcome.Failure)
	assert.Equal(t, StateFailed, outcome.State)
	assert.Equal(t, FailureValidation, outcome.Failure.Reason)
	assert.Equal(t, "lastName", outcome.Failure.Field)
	assert.Equal(t, StateValidating, outcome.Failure.At)

	// No external call was made and the cart is untouched
	assert.False(t, gateway.called)
	assert.False(t, orders.called)
	assert.Equal(t, 3, store.Totals().ItemCount)
}

func TestCheckoutValidationFieldOrder(t *testing.T) {
	svc := NewService(&stubGateway{approved: true}, &stubOrders{}, testConfig())

	mutations := []struct {
		field  string
		mutate func(*Form)
	}{
		{"firstName", func(f *Form) { f.FirstName = "" }},
		{"lastName", func(f *Form) { f.LastName = "" }},
		{"email", func(f *Form) { f.Email = "" }},
		{"phone", func(f *Form) { f.Phone = "" }},
		{"address", func(f *Form) { f.Address = "" }},
		{"city", func(f *Form) { f.City = "" }},
		{"postalCode", func(f *Form) { f.PostalCode = "" }},
		{"email", func(f *Form) { f.Email = "not-an-email" }},
		{"cardNumber", func(f *Form) { f.CardNumber = "4532015112830367" }},
		{"expiryDate", func(f *Form) { f.ExpiryDate = "13/99" }},
		{"cvv", func(f *Form) { f.CVV = "12345" }},
	}

	for _, m := range mutations {
		t.Run(m.field, func(t *testing.T) {
			form := validForm()
			m.mutate(form)

			outcome := svc.Checkout(context.Background(), "s1", populatedCart(), form)
			require.NotNil(t, outcome.Failure)
			assert.Equal(t, FailureValidation, outcome.Failure.Reason)
			assert.Equal(t, m.field, outcome.Failure.Field)
		})
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	gateway := &stubGateway{approved: true}
	svc := NewService(gateway, &stubOrders{}, testConfig())

	outcome := svc.Checkout(context.Background(), "s1", cart.NewStore(), validForm())

	require.NotNil(t, outcome.Failure)
	assert.Equal(t, FailureValidation, outcome.Failure.Reason)
	assert.Equal(t, "cart", outcome.Failure.Field)
	assert.False(t, gateway.called)
}

func TestCheckoutPaymentError(t *testing.T) {
	gateway := &stubGateway{err: errors.New("gateway unreachable")}
	orders := &stubOrders{}
	svc := NewService(gateway, orders, testConfig())

	store := populatedCart()
	outcome := svc.Checkout(context.Background(), "s1", store, validForm())

	require.NotNil(t, outcome.Failure)
	assert.Equal(t, FailurePayment, outcome.Failure.Reason)
	assert.Equal(t, StateProcessingPayment, outcome.Failure.At)
	assert.Contains(t, outcome.Failure.Detail, "gateway unreachable")

	// No order was created and the cart is untouched
	assert.False(t, orders.called)
	assert.False(t, store.IsEmpty())
}

func TestCheckoutPaymentDeclined(t *testing.T) {
	gateway := &stubGateway{approved: false}
	orders := &stubOrders{}
	svc := NewService(gateway, orders, testConfig())

	outcome := svc.Checkout(context.Background(), "s1", populatedCart(), validForm())

	require.NotNil(t, outcome.Failure)
	assert.Equal(t, FailurePayment, outcome.Failure.Reason)
	assert.Equal(t, "payment declined", outcome.Failure.Detail)
	assert.False(t, orders.called)
}

func TestCheckoutOrderCreationFailureLeavesCartPopulated(t *testing.T) {
	gateway := &stubGateway{approved: true}
	orders := &stubOrders{err: errors.New("order backend down")}
	svc := NewService(gateway, orders, testConfig())

	store := populatedCart()
	outcome := svc.Checkout(context.Background(), "s1", store, validForm())

	require.NotNil(t, outcome.Failure)
	assert.Equal(t, FailureOrderCreation, outcome.Failure.Reason)
	assert.Equal(t, StateCreatingOrder, outcome.Failure.At)

	// Payment went through but the cart must not be cleared
	assert.True(t, gateway.called)
	assert.False(t, store.IsEmpty())
	assert.Equal(t, 3, store.Totals().ItemCount)
}

func TestCheckoutSuccess(t *testing.T) {
	ts := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	gateway := &stubGateway{approved: true}
	orders := &stubOrders{
		confirmation: &order.Confirmation{
			OrderID:   "ORD-123456789",
			Status:    order.StatusCompleted,
			Timestamp: ts,
		},
	}
	svc := NewService(gateway, orders, testConfig())

	store := populatedCart()
	total := store.Totals().TotalPrice

	outcome := svc.Checkout(context.Background(), "s1", store, validForm())

	require.Nil(t, outcome.Failure)
	assert.True(t, outcome.Succeeded())
	assert.Equal(t, "ORD-123456789", outcome.OrderID)
	assert.Equal(t, ts, outcome.Timestamp)

	// Cart cleared exactly on success
	assert.True(t, store.IsEmpty())

	// Gateway was charged the cart total in the fixed currency
	assert.True(t, gateway.gotReq.Amount.Equal(total))
	assert.Equal(t, "ZAR", gateway.gotReq.Currency)

	// Order request carried the full line item list and total
	require.NotNil(t, orders.gotReq)
	assert.Equal(t, "s1", orders.gotReq.SessionID)
	require.Len(t, orders.gotReq.Items, 2)
	assert.Equal(t, "p1", orders.gotReq.Items[0].ProductID)
	assert.Equal(t, 2, orders.gotReq.Items[0].Quantity)
	assert.True(t, orders.gotReq.Total.Equal(total))
	assert.Equal(t, "thandi@example.com", orders.gotReq.Shipping.Email)
}

func TestCheckoutSubmitsSnapshotNotLiveCart(t *testing.T) {
	store := populatedCart()

	// Mutate the cart while the payment call is in flight; the order
	// service must still receive the snapshot taken at submission.
	gateway := &stubGateway{approved: true}
	gateway.onCall = func() {
		store.AddItem(cart.LineItem{
			ID:        "p3",
			Title:     "Sk8-Hi",
			UnitPrice: decimal.RequireFromString("1499.00"),
			Quantity:  4,
		})
	}
	orders := &stubOrders{
		confirmation: &order.Confirmation{OrderID: "ORD-1", Timestamp: time.Now()},
	}
	svc := NewService(gateway, orders, testConfig())

	outcome := svc.Checkout(context.Background(), "s1", store, validForm())

	require.True(t, outcome.Succeeded())
	require.Len(t, orders.gotReq.Items, 2)
}

func TestCheckoutCancelledBeforePayment(t *testing.T) {
	gateway := &stubGateway{approved: true}
	orders := &stubOrders{}
	svc := NewService(gateway, orders, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := populatedCart()
	outcome := svc.Checkout(ctx, "s1", store, validForm())

	require.NotNil(t, outcome.Failure)
	assert.Equal(t, FailureCancelled, outcome.Failure.Reason)
	assert.False(t, gateway.called)
	assert.False(t, orders.called)
	assert.False(t, store.IsEmpty())
}

func TestCheckoutEndToEndWithMockCollaborators(t *testing.T) {
	gateway := payment.NewMockGateway(0)
	orderSvc := order.NewMockService(nil, func() string { return "ORD-fixed0001" }, 0)
	svc := NewService(gateway, orderSvc, testConfig())

	store := populatedCart()
	outcome := svc.Checkout(context.Background(), "s1", store, validForm())

	require.Nil(t, outcome.Failure)
	assert.Equal(t, "ORD-fixed0001", outcome.OrderID)
	assert.False(t, outcome.Timestamp.IsZero())
	assert.True(t, store.IsEmpty())
}
