package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/realtorcrm/authsvc/domain"
)

// CasbinMiddleware abstracts policy enforcement for the router
type CasbinMiddleware interface {
	Enforce() gin.HandlerFunc
}

// CasbinMW enforces role-to-route policy using the Casbin enforcer.
// Subjects are "role_<UserType>"; objects are request paths.
type CasbinMW struct {
	enforcer domain.CasbinEnforcer
}

// NewCasbinMW creates new Casbin enforcement middleware
func NewCasbinMW(enforcer domain.CasbinEnforcer) *CasbinMW {
	return &CasbinMW{enforcer: enforcer}
}

// Enforce returns the enforcement middleware function
func (mw *CasbinMW) Enforce() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, exists := c.Get("user_type")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Role not established"})
			c.Abort()
			return
		}

		userType, ok := raw.(string)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Role not established"})
			c.Abort()
			return
		}

		sub := "role_" + userType
		allowed, err := mw.enforcer.Enforce(sub, c.Request.URL.Path, c.Request.Method)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Policy evaluation failed"})
			c.Abort()
			return
		}
		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Access denied"})
			c.Abort()
			return
		}

		c.Next()
	}
}
