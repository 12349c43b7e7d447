// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-api/internal/config"
	"github.com/your-org/storefront-api/internal/domain/account"
	"github.com/your-org/storefront-api/internal/domain/catalog"
	"github.com/your-org/storefront-api/internal/domain/checkout"
	"github.com/your-org/storefront-api/internal/domain/review"
	"github.com/your-org/storefront-api/internal/domain/wishlist"
	"github.com/your-org/storefront-api/internal/infrastructure/storage"
	"github.com/your-org/storefront-api/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-api/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-api/internal/remotestore"
)

// SetupRoutes wires all API routes
func SetupRoutes(rg *gin.RouterGroup, gateway remotestore.Gateway, kv storage.KV, cfg *config.Config, logger *logrus.Logger) {
	catalogService := catalog.NewService(gateway)
	accountService := account.NewService(gateway)
	checkoutService := checkout.NewService(gateway, logger)
	wishlistService := wishlist.NewService(gateway, catalogService)
	reviewService := review.NewService(gateway, accountService)

	productHandler := handlers.NewProductHandler(catalogService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	cartHandler := handlers.NewCartHandler(kv, catalogService, accountService, logger)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, accountService, kv, logger)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	profileHandler := handlers.NewProfileHandler(accountService)

	// Public catalog endpoints
	products := rg.Group("/products")
	products.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/featured", productHandler.GetFeaturedProducts)
		products.GET("/trending", productHandler.GetTrendingProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.GET("/:id/reviews", reviewHandler.GetProductReviews)
		products.POST("/:id/reviews", middleware.AuthMiddleware(cfg), reviewHandler.AddReview)
	}

	rg.GET("/categories", productHandler.GetCategories)
	rg.GET("/promotions", productHandler.GetPromotions)

	// Cart endpoints, scoped to the authenticated customer
	cart := rg.Group("/cart")
	cart.Use(middleware.AuthMiddleware(cfg))
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PUT("/items/:id", cartHandler.UpdateCartItem)
		cart.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cart.DELETE("", cartHandler.ClearCart)
	}

	// Checkout and order history
	orders := rg.Group("")
	orders.Use(middleware.AuthMiddleware(cfg))
	{
		orders.POST("/checkout", checkoutHandler.SubmitOrder)
		orders.GET("/orders", checkoutHandler.ListOrders)
	}

	// Wishlist
	wishlistGroup := rg.Group("/wishlist")
	wishlistGroup.Use(middleware.AuthMiddleware(cfg))
	{
		wishlistGroup.GET("", wishlistHandler.GetWishlist)
		wishlistGroup.POST("", wishlistHandler.AddToWishlist)
		wishlistGroup.DELETE("/:productId", wishlistHandler.RemoveFromWishlist)
	}

	// Profile
	profile := rg.Group("/profile")
	profile.Use(middleware.AuthMiddleware(cfg))
	{
		profile.GET("", profileHandler.GetProfile)
		profile.PUT("", profileHandler.UpdateProfile)
	}
}
