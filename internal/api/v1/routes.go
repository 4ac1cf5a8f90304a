package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/freshcart/freshcart/internal/model"
	"github.com/freshcart/freshcart/internal/service"
	"github.com/freshcart/freshcart/internal/session"
	"github.com/freshcart/freshcart/internal/store"
	"github.com/freshcart/freshcart/pkg/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, st *store.Store, latency service.Latency) {
	// Initialize services
	authService := service.NewAuthService(st, latency)
	catalogService := service.NewCatalogService(st, latency)
	orderService := service.NewOrderService(st, latency)
	registry := session.NewRegistry()

	// Initialize handlers
	authHandler := NewAuthHandler(authService, catalogService, orderService, registry)
	productHandler := NewProductHandler(catalogService)
	cartHandler := NewCartHandler()
	orderHandler := NewOrderHandler()

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authService, registry)

	// Auth routes
	auth := rg.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authMiddleware.SessionAuth(), authHandler.Logout)
	}

	// Public catalog
	rg.GET("/products", productHandler.List)

	// Session-scoped routes
	api := rg.Group("/")
	api.Use(authMiddleware.SessionAuth())
	{
		// Admin catalog management
		products := api.Group("/products")
		products.Use(authMiddleware.RequireRole(model.RoleAdmin))
		{
			products.POST("", productHandler.Create)
			products.POST("/upload", productHandler.Upload)
			products.PUT("/:id", productHandler.Update)
			products.DELETE("/:id", productHandler.Delete)
		}

		// Cart
		cart := api.Group("/cart")
		{
			cart.GET("", cartHandler.Get)
			cart.POST("", cartHandler.Add)
			cart.POST("/clear", cartHandler.Clear)
			cart.PUT("/:productId", cartHandler.Update)
			cart.DELETE("/:productId", cartHandler.Remove)
		}

		// Orders
		api.GET("/orders", orderHandler.History)
		api.POST("/orders", orderHandler.Create)
	}
}
