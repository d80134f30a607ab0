package domain

import "time"

// AuditEventType defines the type of audit event
type AuditEventType string

const (
	// Signup and verification events
	SignupEvent             AuditEventType = "USER_SIGNED_UP"
	SignupFailureEvent      AuditEventType = "USER_SIGNUP_FAILED"
	CodeRequestEvent        AuditEventType = "VERIFICATION_CODE_REQUESTED"
	SignupVerifiedEvent     AuditEventType = "SIGNUP_VERIFIED"
	SignupVerifyFailedEvent AuditEventType = "SIGNUP_VERIFY_FAILED"

	// Authentication events
	UserLoginEvent        AuditEventType = "USER_LOGIN"
	UserLoginFailureEvent AuditEventType = "USER_LOGIN_FAILED"
	UserLogoutEvent       AuditEventType = "USER_LOGOUT"
	PasswordResetEvent    AuditEventType = "PASSWORD_RESET"

	// Commerce and lead events
	CheckoutEvent     AuditEventType = "CHECKOUT_COMPLETED"
	LeadCapturedEvent AuditEventType = "LEAD_CAPTURED"

	// Authorization events
	AccessDeniedEvent AuditEventType = "ACCESS_DENIED"
)

// AuditEvent represents a business event that occurred in the system
type AuditEvent struct {
	EventType AuditEventType `json:"event_type"`
	UserID    uint           `json:"user_id"`
	Contact   string         `json:"contact,omitempty"`
	UserType  Role           `json:"user_type,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	ErrorMsg  string         `json:"error_msg,omitempty"`
	Success   bool           `json:"success"`
}

// NewAuditEvent creates a new audit event with common fields populated
func NewAuditEvent(eventType AuditEventType, userID uint) *AuditEvent {
	return &AuditEvent{
		EventType: eventType,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Success:   true,
	}
}

// WithError sets error information on the audit event
func (e *AuditEvent) WithError(err error) *AuditEvent {
	e.Success = false
	if err != nil {
		e.ErrorMsg = err.Error()
	}
	return e
}

// WithContact sets the contact field
func (e *AuditEvent) WithContact(contact string) *AuditEvent {
	e.Contact = contact
	return e
}

// WithUserType sets the user type field
func (e *AuditEvent) WithUserType(role Role) *AuditEvent {
	e.UserType = role
	return e
}
