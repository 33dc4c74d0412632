// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/member"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// Services bundles the domain services the API serves.
type Services struct {
	Catalog catalog.Repository
	Members *member.Service
	Carts   *cart.Service
	Orders  *order.Service
}

// SetupRoutes wires every API route
func SetupRoutes(rg *gin.RouterGroup, svc Services, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(svc.Members, cfg)
	productHandler := handlers.NewProductHandler(svc.Catalog)
	cartHandler := handlers.NewCartHandler(svc.Carts, svc.Members)
	orderHandler := handlers.NewOrderHandler(svc.Orders, cfg)
	memberHandler := handlers.NewMemberHandler(svc.Members)

	// Public endpoints
	auth := rg.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
	}

	// Shopper endpoints, all keyed by the authenticated member
	cartItems := rg.Group("/cart-items")
	cartItems.Use(middleware.AuthMiddleware(cfg))
	{
		cartItems.GET("", cartHandler.GetCartItems)
		cartItems.POST("", cartHandler.AddCartItem)
		cartItems.GET("/costs", cartHandler.GetCheckoutCosts)
		cartItems.PATCH("/:id", cartHandler.UpdateCartItem)
		cartItems.DELETE("/:id", cartHandler.RemoveCartItem)
	}

	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware(cfg))
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.GET("/:id/receipt", orderHandler.GetOrderReceipt)
	}

	members := rg.Group("/members")
	members.Use(middleware.AuthMiddleware(cfg))
	{
		members.GET("/me", memberHandler.GetMemberInformation)
	}
}
