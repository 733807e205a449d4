package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"podium/internal/authz"
)

// FinanceGuard limits the finance forms and sync tooling to roles that may
// edit financials.
func FinanceGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get("role_id")
		roleID, _ := v.(int)
		if !ok || !authz.CanEditFinances(roleID) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// ReadOnlyGuard blocks mutating methods for read-only roles.
func ReadOnlyGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			if v, ok := c.Get("role_id"); ok {
				if roleID, _ := v.(int); authz.IsReadOnly(roleID) {
					c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "read-only role"})
					return
				}
			}
		}
		c.Next()
	}
}
