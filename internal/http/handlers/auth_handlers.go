package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/realtorcrm/authsvc/domain"
	"github.com/realtorcrm/authsvc/pkg/logger"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// SignupRequest represents the signup form submission
type SignupRequest struct {
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	Email           string `json:"email" binding:"omitempty,email"`
	Phone           string `json:"phone"`
	Method          string `json:"method" binding:"required,oneof=email phone"`
	UserType        string `json:"user_type" binding:"required"`
}

// VerifySignupRequest represents the one-time code submission
type VerifySignupRequest struct {
	Email string `json:"email" binding:"required"`
	Code  string `json:"code" binding:"required,len=5"`
}

// ContactRequest carries a bare contact value (email or phone)
type ContactRequest struct {
	Email string `json:"email" binding:"required"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// VerifyForgotPasswordRequest represents the reset-code submission
type VerifyForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=5"`
}

// ResetPasswordRequest represents the new-password submission
type ResetPasswordRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// CheckoutRequest marks a user's plan as paid
type CheckoutRequest struct {
	UserID   uint   `json:"user_id" binding:"required"`
	UserType string `json:"user_type" binding:"required"`
}

// LeadSignupRequest represents a public lead-capture submission
type LeadSignupRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone"`
	Source    string `json:"source"`
	Notes     string `json:"notes"`
}

func userPayload(user *domain.User) gin.H {
	return gin.H{
		"id":                   user.ID,
		"email":                user.Email,
		"phone":                user.Phone,
		"first_name":           user.FirstName,
		"last_name":            user.LastName,
		"user_type":            user.UserType,
		"user_ref":             user.UserRef,
		"verified":             user.Verified,
		"payment_verification": user.PaymentVerification,
	}
}

// Signup handles account registration and fires the first verification code
func (h *AuthHandlers) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid signup payload", err.Error())
		return
	}

	if req.Password != req.ConfirmPassword {
		respondError(c, http.StatusBadRequest, "Passwords do not match")
		return
	}

	method := domain.ContactMethod(req.Method)
	if method == domain.MethodEmail && req.Email == "" {
		respondError(c, http.StatusBadRequest, "Email is required for email verification")
		return
	}
	if method == domain.MethodPhone && req.Phone == "" {
		respondError(c, http.StatusBadRequest, "Phone is required for SMS verification")
		return
	}

	userType, ok := domain.ParseRole(req.UserType)
	if !ok {
		respondError(c, http.StatusBadRequest, "Unknown user type")
		return
	}

	draft := &domain.SignupDraft{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Email:           req.Email,
		Phone:           req.Phone,
		Method:          method,
		UserType:        userType,
	}

	user, err := h.authSvc.Signup(c.Request.Context(), draft)
	if err != nil {
		if err == domain.ErrUserAlreadyExists {
			respondError(c, http.StatusConflict, "An account with this contact already exists")
			return
		}
		logAudit(domain.NewAuditEvent(domain.SignupFailureEvent, 0).WithContact(draft.Contact()).WithError(err))
		respondError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	logAudit(domain.NewAuditEvent(domain.SignupEvent, user.ID).WithUserType(user.UserType))
	respond(c, http.StatusCreated, "Account created. Please verify your contact.", gin.H{
		"user_id":             user.ID,
		"user_ref":            user.UserRef,
		"verification_method": string(method.Channel()),
	})
}

// VerifySignup handles one-time code verification and opens a session
func (h *AuthHandlers) VerifySignup(c *gin.Context) {
	var req VerifySignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid verification payload", err.Error())
		return
	}

	result, err := h.authSvc.VerifySignup(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		switch err {
		case domain.ErrUserNotFound:
			respondError(c, http.StatusNotFound, "Account not found")
		case domain.ErrOTPNotFound, domain.ErrOTPExpired:
			respondError(c, http.StatusBadRequest, "Verification code expired")
		case domain.ErrOTPMaxAttempts:
			respondError(c, http.StatusTooManyRequests, "Maximum attempts exceeded")
		case domain.ErrOTPInvalid:
			respondError(c, http.StatusBadRequest, "Invalid verification code")
		default:
			logAudit(domain.NewAuditEvent(domain.SignupVerifyFailedEvent, 0).WithContact(req.Email).WithError(err))
			respondError(c, http.StatusInternalServerError, "Verification failed")
		}
		return
	}

	logAudit(domain.NewAuditEvent(domain.SignupVerifiedEvent, result.User.ID).WithUserType(result.User.UserType))
	respond(c, http.StatusOK, "Account verified", gin.H{
		"user":      userPayload(result.User),
		"user_type": result.User.UserType,
		"token":     result.AccessToken,
	})
}

// RequestVerificationCode handles resending a one-time code
func (h *AuthHandlers) RequestVerificationCode(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}

	if err := h.authSvc.ResendCode(c.Request.Context(), req.Email); err != nil {
		switch err {
		case domain.ErrUserNotFound:
			respondError(c, http.StatusNotFound, "Account not found")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to send verification code")
		}
		return
	}

	logAudit(domain.NewAuditEvent(domain.CodeRequestEvent, 0).WithContact(req.Email))
	respond(c, http.StatusOK, "Verification code sent", nil)
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid login payload", err.Error())
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch err {
		case domain.ErrInvalidCredentials:
			respondError(c, http.StatusUnauthorized, "Invalid credentials")
		case domain.ErrUserInactive:
			respondError(c, http.StatusForbidden, "Account is inactive")
		case domain.ErrUserNotVerified:
			respondError(c, http.StatusForbidden, "Account not verified")
		default:
			logAudit(domain.NewAuditEvent(domain.UserLoginFailureEvent, 0).WithContact(req.Email).WithError(err))
			respondError(c, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	logAudit(domain.NewAuditEvent(domain.UserLoginEvent, result.User.ID).WithUserType(result.User.UserType))
	respond(c, http.StatusOK, "Logged in", gin.H{
		"token":         result.AccessToken,
		"refresh_token": result.RefreshToken,
		"expires_in":    result.ExpiresIn,
		"user":          userPayload(result.User),
	})
}

// Logout handles user logout (requires authentication)
func (h *AuthHandlers) Logout(c *gin.Context) {
	sessionID, exists := c.Get("session_id")
	if !exists {
		respondError(c, http.StatusBadRequest, "Session not found")
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), sessionID.(string)); err != nil {
		respondError(c, http.StatusInternalServerError, "Logout failed")
		return
	}

	log := logger.Get()
	log.Info().Str("session_id", sessionID.(string)).Msg(string(domain.UserLogoutEvent))
	respond(c, http.StatusOK, "Logged out", nil)
}

// CurrentUser returns the authenticated user's profile
func (h *AuthHandlers) CurrentUser(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	user, err := h.authSvc.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			respondError(c, http.StatusNotFound, "User not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	respond(c, http.StatusOK, "OK", gin.H{"auth": userPayload(user)})
}

// CheckEmailExists reports whether an account exists for the given email
func (h *AuthHandlers) CheckEmailExists(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}

	exists, err := h.authSvc.EmailExists(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Lookup failed")
		return
	}

	respond(c, http.StatusOK, "OK", gin.H{"exists": exists})
}

// ForgotPassword starts the password reset sequence
func (h *AuthHandlers) ForgotPassword(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}

	if err := h.authSvc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to send reset code")
		return
	}

	// Same response whether or not the account exists
	respond(c, http.StatusOK, "If the account exists, a reset code has been sent", nil)
}

// VerifyForgotPassword verifies the reset code
func (h *AuthHandlers) VerifyForgotPassword(c *gin.Context) {
	var req VerifyForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}

	if err := h.authSvc.VerifyForgotPassword(c.Request.Context(), req.Email, req.Code); err != nil {
		switch err {
		case domain.ErrUserNotFound:
			respondError(c, http.StatusNotFound, "Account not found")
		case domain.ErrOTPInvalid, domain.ErrOTPNotFound, domain.ErrOTPExpired:
			respondError(c, http.StatusBadRequest, "Invalid or expired reset code")
		case domain.ErrOTPMaxAttempts:
			respondError(c, http.StatusTooManyRequests, "Maximum attempts exceeded")
		default:
			respondError(c, http.StatusInternalServerError, "Verification failed")
		}
		return
	}

	respond(c, http.StatusOK, "Reset code verified", nil)
}

// ResetPassword sets a new password after a verified reset code
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}

	if err := h.authSvc.ResetPassword(c.Request.Context(), req.Email, req.Password); err != nil {
		switch err {
		case domain.ErrUserNotFound:
			respondError(c, http.StatusNotFound, "Account not found")
		case domain.ErrNoResetGrant:
			respondError(c, http.StatusForbidden, "Reset code not verified")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to reset password")
		}
		return
	}

	logAudit(domain.NewAuditEvent(domain.PasswordResetEvent, 0).WithContact(req.Email))
	respond(c, http.StatusOK, "Password updated", nil)
}

// AccountSetup merges profile fields for the authenticated user
func (h *AuthHandlers) AccountSetup(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	var params domain.AccountSetupParams
	if err := c.ShouldBindJSON(&params); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}

	user, err := h.authSvc.AccountSetup(c.Request.Context(), userID, params)
	if err != nil {
		if err == domain.ErrUserNotFound {
			respondError(c, http.StatusNotFound, "User not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to update account")
		return
	}

	respond(c, http.StatusOK, "Account updated", gin.H{"auth": userPayload(user)})
}

// Checkout marks a user's payment as verified
func (h *AuthHandlers) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}

	userType, ok := domain.ParseRole(req.UserType)
	if !ok {
		respondError(c, http.StatusBadRequest, "Unknown user type")
		return
	}

	if err := h.authSvc.Checkout(c.Request.Context(), req.UserID, userType); err != nil {
		switch err {
		case domain.ErrUserNotFound:
			respondError(c, http.StatusNotFound, "User not found")
		case domain.ErrInsufficientRole:
			respondError(c, http.StatusConflict, "User type does not match account")
		default:
			respondError(c, http.StatusInternalServerError, "Checkout failed")
		}
		return
	}

	logAudit(domain.NewAuditEvent(domain.CheckoutEvent, req.UserID).WithUserType(userType))
	respond(c, http.StatusOK, "Checkout completed", nil)
}

// LeadSignup captures a lead submitted through a realtor's public form
func (h *AuthHandlers) LeadSignup(c *gin.Context) {
	realtorID, err := strconv.ParseUint(c.Param("realtorId"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid realtor id")
		return
	}

	var req LeadSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid lead payload", err.Error())
		return
	}

	lead := &domain.Lead{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Source:    req.Source,
		Notes:     req.Notes,
	}

	if err := h.authSvc.LeadSignup(c.Request.Context(), uint(realtorID), lead); err != nil {
		if err == domain.ErrRealtorNotFound {
			respondError(c, http.StatusNotFound, "Realtor not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to capture lead")
		return
	}

	log := logger.Get()
	log.Info().Uint("realtor_id", uint(realtorID)).Uint("lead_id", lead.ID).Msg(string(domain.LeadCapturedEvent))
	respond(c, http.StatusCreated, "Lead captured", gin.H{"lead_id": lead.ID})
}

// contextUserID reads the user id set by the auth middleware.
func contextUserID(c *gin.Context) (uint, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, err := strconv.ParseUint(raw.(string), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
