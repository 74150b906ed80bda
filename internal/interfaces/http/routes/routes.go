// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"gorm.io/gorm"
)

// SetupRoutes sets up all storefront routes
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, registry *cart.Registry, cfg *config.Config) {
	SetupProductRoutes(rg, redisClient, cfg)
	SetupCartRoutes(rg, registry, cfg)
	SetupCheckoutRoutes(rg, db, registry, cfg)
	SetupOrderRoutes(rg, db, cfg)
}

// SetupProductRoutes sets up product catalog routes
func SetupProductRoutes(rg *gin.RouterGroup, redisClient *redis.Client, cfg *config.Config) {
	productHandler := handlers.NewProductHandler(redisClient, cfg)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
	}
}

// SetupCartRoutes sets up cart routes
func SetupCartRoutes(rg *gin.RouterGroup, registry *cart.Registry, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(registry, cfg)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.GET("/count", cartHandler.GetCartCount)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.PUT("/items/:id", cartHandler.UpdateCartItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
	}
}

// SetupCheckoutRoutes sets up checkout routes
func SetupCheckoutRoutes(rg *gin.RouterGroup, db *gorm.DB, registry *cart.Registry, cfg *config.Config) {
	checkoutHandler := handlers.NewCheckoutHandler(db, registry, cfg)

	checkoutGroup := rg.Group("/checkout")
	{
		checkoutGroup.POST("", checkoutHandler.Checkout)
	}
}

// SetupOrderRoutes sets up order history routes
func SetupOrderRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	orderHandler := handlers.NewOrderHandler(db, cfg)

	orders := rg.Group("/orders")
	{
		orders.GET("", orderHandler.GetOrders)
		orders.GET("/:id", orderHandler.GetOrder)
	}
}
