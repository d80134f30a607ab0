package domain

import "context"

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByPhone(ctx context.Context, phone string) (*User, error)
	// FindByContact resolves a contact value that may be either an email
	// or a phone number, as submitted on the verification step.
	FindByContact(ctx context.Context, contact string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, user *User) error
	MarkVerified(ctx context.Context, userID uint) error
	MarkPaymentVerified(ctx context.Context, userID uint) error
	UpdatePassword(ctx context.Context, userID uint, passwordHash string) error
}

// LeadRepository defines lead capture data access operations
type LeadRepository interface {
	Create(ctx context.Context, lead *Lead) error
	ListByRealtor(ctx context.Context, realtorID uint) ([]Lead, error)
}

// SessionRepository defines session data access operations
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
	DeleteExpired(ctx context.Context) error
}

// AuthService defines the authentication business logic consumed by the
// HTTP layer. Contact values are email addresses or phone numbers
// depending on the signup method.
type AuthService interface {
	Signup(ctx context.Context, draft *SignupDraft) (*User, error)
	VerifySignup(ctx context.Context, contact, code string) (*AuthResult, error)
	ResendCode(ctx context.Context, contact string) error
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	CurrentUser(ctx context.Context, userID uint) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	ForgotPassword(ctx context.Context, email string) error
	VerifyForgotPassword(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, password string) error
	AccountSetup(ctx context.Context, userID uint, params AccountSetupParams) (*User, error)
	Checkout(ctx context.Context, userID uint, userType Role) error
	LeadSignup(ctx context.Context, realtorID uint, lead *Lead) error
}

// OTPService defines one-time code operations
type OTPService interface {
	Generate(ctx context.Context, contact string, channel VerificationChannel, userID uint) (*OTPRequest, error)
	Verify(ctx context.Context, contact, code string, userID uint) (bool, error)
	CanResend(ctx context.Context, contact string) (bool, int64, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations
type TokenService interface {
	GenerateAccessToken(userID uint, userType Role, sessionID string) (string, error)
	GenerateRefreshToken(userID uint, userType Role, sessionID string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
	ValidateRefreshToken(token string) (*TokenClaims, error)
}

// NotificationService defines outbound delivery operations
type NotificationService interface {
	SendSMS(to, message string) error
	SendEmail(to, subject, body string) error
}

// PolicyService defines authorization policy operations
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() [][]string
}

// CasbinEnforcer defines the methods we need from the Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
