// internal/interfaces/http/handlers/profile.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-api/internal/domain/account"
	"github.com/your-org/storefront-api/internal/interfaces/http/middleware"
)

// ProfileHandler handles customer profile endpoints
type ProfileHandler struct {
	accountService *account.Service
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(accountService *account.Service) *ProfileHandler {
	return &ProfileHandler{accountService: accountService}
}

// GetProfile handles GET /profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	customerID, _ := middleware.GetCustomerIDFromContext(c)

	profile, err := h.accountService.GetProfile(c.Request.Context(), customerID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Profile not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": profile,
	})
}

// UpdateProfile handles PUT /profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	customerID, _ := middleware.GetCustomerIDFromContext(c)

	var req account.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.accountService.UpdateProfile(c.Request.Context(), customerID, &req); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to update profile",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
	})
}
