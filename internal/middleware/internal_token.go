package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"smartconnect/internal/pkg/response"
)

// InternalTokenAuth protects internal endpoints using a static bearer token.
// Used by city systems pushing broadcast alerts; not meant for end users.
func InternalTokenAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !internalEnabled() {
			response.CustomError(c, http.StatusForbidden, "AUTH_INVALID", "Internal API disabled")
			c.Abort()
			return
		}

		if !internalIPAllowed(c) {
			response.CustomError(c, http.StatusForbidden, "AUTH_INVALID", "IP not allowed")
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.CustomError(c, http.StatusUnauthorized, "AUTH_MISSING", "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.CustomError(c, http.StatusUnauthorized, "AUTH_INVALID", "Authorization header must be 'Bearer <token>'")
			c.Abort()
			return
		}

		expected := os.Getenv("INTERNAL_TOKEN")
		if expected == "" {
			response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal token is not configured")
			c.Abort()
			return
		}

		if parts[1] != expected {
			response.CustomError(c, http.StatusForbidden, "AUTH_INVALID", "Invalid internal token")
			c.Abort()
			return
		}

		c.Next()
	}
}

func internalEnabled() bool {
	v := strings.TrimSpace(os.Getenv("INTERNAL_API_ENABLED"))
	if v == "" {
		return true
	}
	return v != "false" && v != "0"
}

func internalIPAllowed(c *gin.Context) bool {
	allowed := strings.TrimSpace(os.Getenv("INTERNAL_ALLOWED_IPS"))
	if allowed == "" {
		return true
	}
	clientIP := c.ClientIP()
	for _, ip := range strings.Split(allowed, ",") {
		if strings.TrimSpace(ip) == clientIP {
			return true
		}
	}
	return false
}
