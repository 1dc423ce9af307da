// File: middleware/role.go
package middleware

import (
	"net/http"

	"slotbook/models"

	"github.com/gin-gonic/gin"
)

// RequireRole gates an endpoint to callers holding the given role. Must run
// after JWTAuthMiddleware.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := CallerFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Caller not authenticated"})
			return
		}
		if caller.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Insufficient role for this operation",
			})
			return
		}
		c.Next()
	}
}
