// internal/interfaces/http/handlers/product.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/product"
)

// ProductHandler handles product catalog endpoints
type ProductHandler struct {
	productService *product.Service
	config         *config.Config
}

// NewProductHandler creates a new product handler
func NewProductHandler(redisClient *redis.Client, cfg *config.Config) *ProductHandler {
	return &ProductHandler{
		productService: product.NewService(redisClient, cfg),
		config:         cfg,
	}
}

// GetProducts handles GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	after := c.Query("after")

	page, err := h.productService.GetProducts(c.Request.Context(), after)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load products. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    page,
	})
}
