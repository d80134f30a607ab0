package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/realtorcrm/authsvc/internal/config"
)

// TenantResolver rejects requests from unknown hosts and exposes the
// workspace slug for multi-tenant routing downstream.
func TenantResolver(tenant *config.TenantConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug, ok := tenant.ResolveWorkspace(c.Request.Host)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Unknown host"})
			c.Abort()
			return
		}
		if slug != "" {
			c.Set("workspace", slug)
		}
		c.Next()
	}
}
