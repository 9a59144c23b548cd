package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartconnect/internal/pkg/response"
)

// RequireRole ensures that the authenticated user has the specified role
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.CustomError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if role.(string) != requiredRole {
			response.CustomError(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// OfficialOnly guards the officials surface. A role mismatch answers with
// the generic not-found body instead of 403, so the guarded routes stay
// invisible to citizens. Evaluated on every request: a role change takes
// effect on the next call.
func OfficialOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role != "official" {
			response.NotFound(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
