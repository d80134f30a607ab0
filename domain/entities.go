package domain

import "time"

// Role classifies an account. The set is fixed; user_type on a profile
// always holds one of these values once the account has been classified.
type Role string

const (
	RoleClient       Role = "Client"
	RoleOrganization Role = "Organization"
	RoleRealtor      Role = "Realtor"
)

// ParseRole returns the Role for s, or false when s is not a known role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleClient, RoleOrganization, RoleRealtor:
		return Role(s), true
	}
	return "", false
}

// ContactMethod is the channel a signup chose to be reached on.
type ContactMethod string

const (
	MethodEmail ContactMethod = "email"
	MethodPhone ContactMethod = "phone"
)

// VerificationChannel is the delivery channel for one-time codes.
type VerificationChannel string

const (
	ChannelEmail VerificationChannel = "email"
	ChannelSMS   VerificationChannel = "sms"
)

// Channel returns the delivery channel codes are sent over for the chosen
// contact method. A phone contact maps to SMS delivery.
func (m ContactMethod) Channel() VerificationChannel {
	if m == MethodPhone {
		return ChannelSMS
	}
	return ChannelEmail
}

// User represents an account in the CRM
type User struct {
	ID                  uint
	Email               string
	Phone               string
	FirstName           string
	LastName            string
	PasswordHash        string `gorm:"column:password"`
	UserType            Role
	UserRef             string
	Verified            bool
	PaymentVerification bool
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Contact returns the value verification codes for this user are sent to:
// the email when present, otherwise the phone number.
func (u *User) Contact() string {
	if u.Email != "" {
		return u.Email
	}
	return u.Phone
}

// SignupDraft is the transient in-progress registration. Exactly one of
// Email/Phone is populated, matching Method.
type SignupDraft struct {
	FirstName       string        `json:"first_name" validate:"required"`
	LastName        string        `json:"last_name" validate:"required"`
	Password        string        `json:"password" validate:"required,min=6"`
	ConfirmPassword string        `json:"confirmPassword" validate:"required"`
	Email           string        `json:"email,omitempty" validate:"omitempty,email"`
	Phone           string        `json:"phone,omitempty"`
	Method          ContactMethod `json:"method" validate:"required,oneof=email phone"`
	UserType        Role          `json:"user_type,omitempty"`
}

// Contact returns the populated contact value for the chosen method.
func (d *SignupDraft) Contact() string {
	if d.Method == MethodPhone {
		return d.Phone
	}
	return d.Email
}

// VerificationState records which contact a one-time code was sent to.
// The zero value means no signup context exists and the verification step
// must not be entered.
type VerificationState struct {
	Contact     string              `json:"email_or_phone"`
	Method      VerificationChannel `json:"verificationMethod"`
	CodeAttempt string              `json:"code_attempt,omitempty"`
}

// IsEmpty reports whether no signup context has been established.
func (v VerificationState) IsEmpty() bool {
	return v.Contact == "" && v.Method == ""
}

// AuthResult represents a successful authentication outcome
type AuthResult struct {
	User         *User
	AccessToken  string
	RefreshToken string
	SessionID    string
	ExpiresIn    int64
}

// OTPRequest represents a one-time code issued to a contact
type OTPRequest struct {
	Contact   string
	Channel   VerificationChannel
	Code      string
	UserID    uint
	ExpiresAt time.Time
	Attempts  int
}

// Session represents a server-side user session
type Session struct {
	ID        string
	UserID    uint
	UserType  Role
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Lead is a prospect captured through a realtor's public lead form.
type Lead struct {
	ID        uint
	RealtorID uint
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Source    string
	Notes     string
	CreatedAt time.Time
}

// TokenClaims represents JWT token claims
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	UserType  Role   `json:"user_type"`
	SessionID string `json:"session_id,omitempty"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// AccountSetupParams carries the profile fields an authenticated user may
// fill in after verification. Empty fields are left untouched.
type AccountSetupParams struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
}
