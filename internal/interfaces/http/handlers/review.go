// internal/interfaces/http/handlers/review.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-api/internal/domain/review"
	"github.com/your-org/storefront-api/internal/interfaces/http/middleware"
)

// ReviewHandler handles product review endpoints
type ReviewHandler struct {
	reviewService *review.Service
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService *review.Service) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// AddReviewRequest represents an add-review request
type AddReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// GetProductReviews handles GET /products/:id/reviews
func (h *ReviewHandler) GetProductReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListForProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to retrieve reviews",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": reviews,
	})
}

// AddReview handles POST /products/:id/reviews
func (h *ReviewHandler) AddReview(c *gin.Context) {
	customerID, _ := middleware.GetCustomerIDFromContext(c)

	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	created, err := h.reviewService.Add(c.Request.Context(), customerID, c.Param("id"), req.Rating, req.Comment)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to add review",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": created,
	})
}
