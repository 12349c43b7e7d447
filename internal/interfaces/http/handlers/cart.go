// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-api/internal/domain/account"
	"github.com/your-org/storefront-api/internal/domain/cart"
	"github.com/your-org/storefront-api/internal/domain/catalog"
	"github.com/your-org/storefront-api/internal/infrastructure/storage"
	"github.com/your-org/storefront-api/internal/interfaces/http/middleware"
)

// CartHandler handles cart endpoints. The cart store is loaded per
// request for the authenticated customer, so carts never cross account
// boundaries on a shared device.
type CartHandler struct {
	kv             storage.KV
	catalogService *catalog.Service
	accountService *account.Service
	logger         *logrus.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(kv storage.KV, catalogService *catalog.Service, accountService *account.Service, logger *logrus.Logger) *CartHandler {
	return &CartHandler{
		kv:             kv,
		catalogService: catalogService,
		accountService: accountService,
		logger:         logger,
	}
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItemRequest represents update cart item request
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	customerID, _ := middleware.GetCustomerIDFromContext(c)
	store := cart.Load(c.Request.Context(), h.kv, h.logger, customerID)

	h.respond(c, store, customerID)
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	customerID, _ := middleware.GetCustomerIDFromContext(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	// Snapshot the product at add time
	product, err := h.catalogService.GetProduct(c.Request.Context(), req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	store := cart.Load(c.Request.Context(), h.kv, h.logger, customerID)
	if err := store.AddItem(c.Request.Context(), *product, req.Quantity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	h.respond(c, store, customerID)
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	customerID, _ := middleware.GetCustomerIDFromContext(c)

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	store := cart.Load(c.Request.Context(), h.kv, h.logger, customerID)
	store.UpdateQuantity(c.Request.Context(), c.Param("id"), *req.Quantity)

	h.respond(c, store, customerID)
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	customerID, _ := middleware.GetCustomerIDFromContext(c)

	store := cart.Load(c.Request.Context(), h.kv, h.logger, customerID)
	store.RemoveItem(c.Request.Context(), c.Param("id"))

	h.respond(c, store, customerID)
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	customerID, _ := middleware.GetCustomerIDFromContext(c)

	store := cart.Load(c.Request.Context(), h.kv, h.logger, customerID)
	store.Clear(c.Request.Context())

	h.respond(c, store, customerID)
}

func (h *CartHandler) respond(c *gin.Context, store *cart.Store, customerID string) {
	tier := h.accountService.TierFor(c.Request.Context(), customerID)

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"items":        store.Items(),
			"total_items":  store.TotalItems(),
			"total_amount": store.TotalAmount(tier),
			"tier":         tier,
		},
	})
}
