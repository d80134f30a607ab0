package mocks

import (
	"context"
	"time"

	"github.com/realtorcrm/authsvc/domain"
)

// MockOTPService implements domain.OTPService for testing
type MockOTPService struct {
	GenerateFunc  func(ctx context.Context, contact string, channel domain.VerificationChannel, userID uint) (*domain.OTPRequest, error)
	VerifyFunc    func(ctx context.Context, contact, code string, userID uint) (bool, error)
	CanResendFunc func(ctx context.Context, contact string) (bool, int64, error)
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

func (m *MockOTPService) Generate(ctx context.Context, contact string, channel domain.VerificationChannel, userID uint) (*domain.OTPRequest, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, contact, channel, userID)
	}
	return &domain.OTPRequest{
		Contact:   contact,
		Channel:   channel,
		Code:      "12345",
		UserID:    userID,
		ExpiresAt: time.Now().Add(5 * time.Minute),
		Attempts:  0,
	}, nil
}

func (m *MockOTPService) Verify(ctx context.Context, contact, code string, userID uint) (bool, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, contact, code, userID)
	}
	// Default behavior: accept "12345" as the valid code
	if code == "12345" {
		return true, nil
	}
	return false, domain.ErrOTPInvalid
}

func (m *MockOTPService) CanResend(ctx context.Context, contact string) (bool, int64, error) {
	if m.CanResendFunc != nil {
		return m.CanResendFunc(ctx, contact)
	}
	return true, 0, nil
}

// Compile-time interface compliance verification
var _ domain.OTPService = (*MockOTPService)(nil)
