// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-api/internal/domain/account"
	"github.com/your-org/storefront-api/internal/domain/cart"
	"github.com/your-org/storefront-api/internal/domain/checkout"
	"github.com/your-org/storefront-api/internal/infrastructure/storage"
	"github.com/your-org/storefront-api/internal/interfaces/http/middleware"
)

// CheckoutHandler handles order submission and order history
type CheckoutHandler struct {
	checkoutService *checkout.Service
	accountService  *account.Service
	kv              storage.KV
	logger          *logrus.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service, accountService *account.Service, kv storage.KV, logger *logrus.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		accountService:  accountService,
		kv:              kv,
		logger:          logger,
	}
}

// SubmitOrderRequest represents a checkout submission
type SubmitOrderRequest struct {
	ShippingAddress string `json:"shipping_address" binding:"required"`
	ShippingCity    string `json:"shipping_city" binding:"required"`
	ContactPhone    string `json:"contact_phone" binding:"required"`
	PaymentMethod   string `json:"payment_method" binding:"required"`
	PaymentPhone    string `json:"payment_phone"`
	Notes           string `json:"notes"`
}

// SubmitOrder handles POST /checkout
func (h *CheckoutHandler) SubmitOrder(c *gin.Context) {
	customerID, _ := middleware.GetCustomerIDFromContext(c)

	var req SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	store := cart.Load(c.Request.Context(), h.kv, h.logger, customerID)
	tier := h.accountService.TierFor(c.Request.Context(), customerID)

	shipping := checkout.ShippingInfo{
		Address:      req.ShippingAddress,
		City:         req.ShippingCity,
		ContactPhone: req.ContactPhone,
		PaymentPhone: req.PaymentPhone,
		Notes:        req.Notes,
	}

	result, err := h.checkoutService.SubmitOrder(
		c.Request.Context(),
		store.Items(),
		shipping,
		checkout.PaymentMethod(req.PaymentMethod),
		customerID,
		tier,
	)
	if err != nil {
		h.respondSubmissionError(c, err)
		return
	}

	// Both steps succeeded; only now is the cart cleared
	store.Clear(c.Request.Context())

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order submitted successfully",
		"data":    result,
	})
}

// ListOrders handles GET /orders
func (h *CheckoutHandler) ListOrders(c *gin.Context) {
	customerID, _ := middleware.GetCustomerIDFromContext(c)

	orders, err := h.checkoutService.ListOrders(c.Request.Context(), customerID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to retrieve orders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": orders,
	})
}

// respondSubmissionError maps the checkout failure taxonomy to distinct
// recovery instructions: correct the input, plain retry, or contact
// support with the order reference.
func (h *CheckoutHandler) respondSubmissionError(c *gin.Context, err error) {
	var validationErr *checkout.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": validationErr.Error(),
			"field": validationErr.Field,
		})
		return
	}

	var headerErr *checkout.HeaderCreationError
	if errors.As(err, &headerErr) {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":     "Order could not be submitted. Nothing was created; please try again.",
			"retryable": true,
		})
		return
	}

	var itemsErr *checkout.ItemsCreationError
	if errors.As(err, &itemsErr) {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":           "Order was partially submitted. Please contact support with the order reference instead of resubmitting.",
			"retryable":       false,
			"order_reference": itemsErr.HeaderID,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Failed to submit order",
	})
}
