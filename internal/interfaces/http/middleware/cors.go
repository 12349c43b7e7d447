// internal/interfaces/http/middleware/cors.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-api/internal/config"
)

// devOrigins are the Expo/Metro origins the mobile app is served from
// during development. Outside production they are accepted in addition
// to CORS_ALLOWED_ORIGINS so a local client works without extra config.
var devOrigins = []string{
	"http://localhost:19006",
	"http://localhost:8081",
	"http://localhost:3000",
}

// CORS handles cross-origin requests from the storefront clients
func CORS(cfg *config.Config) gin.HandlerFunc {
	allowed := append([]string{}, cfg.Security.CORSAllowedOrigins...)
	if !cfg.IsProduction() {
		allowed = append(allowed, devOrigins...)
	}

	methods := strings.Join(cfg.Security.CORSAllowedMethods, ", ")
	headers := strings.Join(cfg.Security.CORSAllowedHeaders, ", ")

	return func(c *gin.Context) {
		if origin := c.Request.Header.Get("Origin"); originAllowed(allowed, origin) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}

		c.Header("Access-Control-Allow-Methods", methods)
		c.Header("Access-Control-Allow-Headers", headers)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// originAllowed matches an origin against the allowed list, including
// the "*" and "*.domain" wildcard forms.
func originAllowed(allowed []string, origin string) bool {
	if origin == "" {
		return false
	}
	for _, candidate := range allowed {
		if candidate == "*" || candidate == origin {
			return true
		}
		if strings.HasPrefix(candidate, "*.") && strings.HasSuffix(origin, strings.TrimPrefix(candidate, "*.")) {
			return true
		}
	}
	return false
}
