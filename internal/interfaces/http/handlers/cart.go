// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	registry *cart.Registry
	config   *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(registry *cart.Registry, cfg *config.Config) *CartHandler {
	return &CartHandler{
		registry: registry,
		config:   cfg,
	}
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	ID           string          `json:"id" binding:"required"`
	Title        string          `json:"title" binding:"required"`
	UnitPrice    decimal.Decimal `json:"unit_price" binding:"required"`
	ImageRef     string          `json:"image_ref"`
	Quantity     int             `json:"quantity"`
	VariantLabel string          `json:"variant_label"`
}

// UpdateCartItemRequest represents update cart item request
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// CartResponse represents the cart with its derived totals
type CartResponse struct {
	Items  []cart.LineItem `json:"items"`
	Totals cart.Totals     `json:"totals"`
}

func (h *CartHandler) store(c *gin.Context) *cart.Store {
	return h.registry.GetOrCreate(middleware.GetSessionIDFromContext(c))
}

func (h *CartHandler) cartResponse(store *cart.Store) CartResponse {
	return CartResponse{
		Items:  store.Snapshot(),
		Totals: store.Totals(),
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	store := h.store(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    h.cartResponse(store),
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if req.UnitPrice.Sign() < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unit price cannot be negative",
		})
		return
	}

	store := h.store(c)
	store.AddItem(cart.LineItem{
		ID:           req.ID,
		Title:        req.Title,
		UnitPrice:    req.UnitPrice,
		ImageRef:     req.ImageRef,
		Quantity:     req.Quantity,
		VariantLabel: req.VariantLabel,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    h.cartResponse(store),
	})
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	store := h.store(c)
	store.UpdateQuantity(c.Param("id"), *req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    h.cartResponse(store),
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	store := h.store(c)
	store.RemoveItem(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    h.cartResponse(store),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.store(c).Clear()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}

// GetCartCount handles GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	totals := h.store(c).Totals()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": totals.ItemCount,
		},
	})
}
