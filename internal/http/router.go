package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/realtorcrm/authsvc/domain"
	"github.com/realtorcrm/authsvc/internal/http/handlers"
	"github.com/realtorcrm/authsvc/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, lh *handlers.LeadHandlers, ph *handlers.PolicyHandlers, jwtmw *middleware.AuthMW, cb middleware.CasbinMiddleware, tenant gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if tenant != nil {
		r.Use(tenant)
	}

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/api/auth")
	auth.POST("/signup", ah.Signup)
	auth.POST("/verify-signup", ah.VerifySignup)
	auth.POST("/request-verification-code", ah.RequestVerificationCode)
	auth.POST("/lead-signup/:realtorId", ah.LeadSignup)
	auth.POST("/login", ah.Login)
	auth.POST("/forgot-password", ah.ForgotPassword)
	auth.POST("/verify-forgot-password", ah.VerifyForgotPassword)
	auth.POST("/reset-password", ah.ResetPassword)
	auth.POST("/check-user-email-exists", ah.CheckEmailExists)
	auth.POST("/checkout", ah.Checkout)

	authed := r.Group("/api/auth").Use(jwtmw.WithJWT())
	authed.GET("/current-user", ah.CurrentUser)
	authed.POST("/account-setup", ah.AccountSetup)
	authed.POST("/logout", ah.Logout)

	realtor := r.Group("/api/realtor").Use(jwtmw.WithJWT(), middleware.RequireRoles(domain.RoleRealtor, domain.RoleOrganization))
	realtor.GET("/leads", lh.List)

	adm := r.Group("/admin").Use(jwtmw.WithJWT(), cb.Enforce())
	adm.GET("/policies", ph.List)
	adm.POST("/policies", ph.Add)
	adm.DELETE("/policies", ph.Remove)

	return r
}
