package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrUserNotVerified    = errors.New("account not verified")
	ErrMissingUserType    = errors.New("user type not selected")
)

// One-time code errors
var (
	ErrOTPExpired     = errors.New("verification code has expired")
	ErrOTPInvalid     = errors.New("invalid verification code")
	ErrOTPMaxAttempts = errors.New("maximum verification attempts exceeded")
	ErrOTPNotFound    = errors.New("verification code not found")
	ErrOTPResendLimit = errors.New("verification code resend limit exceeded")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
)

// Authorization errors
var (
	ErrUnauthorized     = errors.New("unauthorized access")
	ErrInsufficientRole = errors.New("insufficient role permissions")
	ErrRealtorNotFound  = errors.New("realtor not found")
	ErrNoResetGrant     = errors.New("password reset not authorized")
)

// ErrorKind tags an Error with its failure class so callers can route it
// (inline field errors, banner message, or redirect) without string matching.
type ErrorKind string

const (
	KindValidation ErrorKind = "ValidationError"
	KindNetwork    ErrorKind = "NetworkError"
	KindAuth       ErrorKind = "AuthError"
)

// Error is the tagged failure variant threaded through the client core.
// Details carries per-field messages for validation failures.
type Error struct {
	Kind    ErrorKind
	Message string
	Details map[string]string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// NewValidationError builds a validation failure with per-field details.
func NewValidationError(message string, details map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: message, Details: details}
}

// NewNetworkError wraps a transport or server failure.
func NewNetworkError(message string, cause error) *Error {
	return &Error{Kind: KindNetwork, Message: message, cause: cause}
}

// NewAuthError wraps a credential or session failure.
func NewAuthError(message string, cause error) *Error {
	return &Error{Kind: KindAuth, Message: message, cause: cause}
}

// KindOf returns the kind of err when it is (or wraps) a tagged Error.
// Untagged errors report as network failures, matching the uniform
// treatment of unexpected responses.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindNetwork
}
