// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/payment"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-backend/internal/pkg/idgen"
	"gorm.io/gorm"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	registry        *cart.Registry
	checkoutService *checkout.Service
	config          *config.Config
}

// NewCheckoutHandler creates a new checkout handler wired to the mock
// payment and order collaborators
func NewCheckoutHandler(db *gorm.DB, registry *cart.Registry, cfg *config.Config) *CheckoutHandler {
	gateway := payment.NewMockGateway(cfg.Checkout.SimulatedLatency)
	history := order.NewHistoryStore(db)
	orderService := order.NewMockService(history, idgen.NewOrderID(), cfg.Checkout.SimulatedLatency)

	return &CheckoutHandler{
		registry:        registry,
		checkoutService: checkout.NewService(gateway, orderService, cfg),
		config:          cfg,
	}
}

// Checkout handles POST /checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var form checkout.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	sessionID := middleware.GetSessionIDFromContext(c)
	store := h.registry.GetOrCreate(sessionID)

	outcome := h.checkoutService.Checkout(c.Request.Context(), sessionID, store, &form)
	if !outcome.Succeeded() {
		c.JSON(statusForFailure(outcome.Failure.Reason), gin.H{
			"error": "Checkout failed",
			"data":  outcome,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order placed successfully",
		"data":    outcome,
	})
}

func statusForFailure(reason checkout.FailureReason) int {
	switch reason {
	case checkout.FailureValidation:
		return http.StatusBadRequest
	case checkout.FailurePayment:
		return http.StatusPaymentRequired
	case checkout.FailureOrderCreation:
		// Payment may have been taken without a confirmed order; the
		// client must show this distinctly, not as a retryable decline.
		return http.StatusBadGateway
	case checkout.FailureCancelled:
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}
