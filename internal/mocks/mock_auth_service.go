package mocks

import (
	"context"

	"github.com/realtorcrm/authsvc/domain"
)

// MockAuthService implements domain.AuthService for handler testing
type MockAuthService struct {
	SignupFunc               func(ctx context.Context, draft *domain.SignupDraft) (*domain.User, error)
	VerifySignupFunc         func(ctx context.Context, contact, code string) (*domain.AuthResult, error)
	ResendCodeFunc           func(ctx context.Context, contact string) error
	LoginFunc                func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	LogoutFunc               func(ctx context.Context, sessionID string) error
	CurrentUserFunc          func(ctx context.Context, userID uint) (*domain.User, error)
	EmailExistsFunc          func(ctx context.Context, email string) (bool, error)
	ForgotPasswordFunc       func(ctx context.Context, email string) error
	VerifyForgotPasswordFunc func(ctx context.Context, email, code string) error
	ResetPasswordFunc        func(ctx context.Context, email, password string) error
	AccountSetupFunc         func(ctx context.Context, userID uint, params domain.AccountSetupParams) (*domain.User, error)
	CheckoutFunc             func(ctx context.Context, userID uint, userType domain.Role) error
	LeadSignupFunc           func(ctx context.Context, realtorID uint, lead *domain.Lead) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Signup(ctx context.Context, draft *domain.SignupDraft) (*domain.User, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, draft)
	}
	return &domain.User{ID: 1, Email: draft.Email, Phone: draft.Phone, UserType: draft.UserType}, nil
}

func (m *MockAuthService) VerifySignup(ctx context.Context, contact, code string) (*domain.AuthResult, error) {
	if m.VerifySignupFunc != nil {
		return m.VerifySignupFunc(ctx, contact, code)
	}
	return nil, domain.ErrOTPInvalid
}

func (m *MockAuthService) ResendCode(ctx context.Context, contact string) error {
	if m.ResendCodeFunc != nil {
		return m.ResendCodeFunc(ctx, contact)
	}
	return nil
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, domain.ErrInvalidCredentials
}

func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, sessionID)
	}
	return nil
}

func (m *MockAuthService) CurrentUser(ctx context.Context, userID uint) (*domain.User, error) {
	if m.CurrentUserFunc != nil {
		return m.CurrentUserFunc(ctx, userID)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockAuthService) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.EmailExistsFunc != nil {
		return m.EmailExistsFunc(ctx, email)
	}
	return false, nil
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) error {
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, email)
	}
	return nil
}

func (m *MockAuthService) VerifyForgotPassword(ctx context.Context, email, code string) error {
	if m.VerifyForgotPasswordFunc != nil {
		return m.VerifyForgotPasswordFunc(ctx, email, code)
	}
	return nil
}

func (m *MockAuthService) ResetPassword(ctx context.Context, email, password string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, email, password)
	}
	return nil
}

func (m *MockAuthService) AccountSetup(ctx context.Context, userID uint, params domain.AccountSetupParams) (*domain.User, error) {
	if m.AccountSetupFunc != nil {
		return m.AccountSetupFunc(ctx, userID, params)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockAuthService) Checkout(ctx context.Context, userID uint, userType domain.Role) error {
	if m.CheckoutFunc != nil {
		return m.CheckoutFunc(ctx, userID, userType)
	}
	return nil
}

func (m *MockAuthService) LeadSignup(ctx context.Context, realtorID uint, lead *domain.Lead) error {
	if m.LeadSignupFunc != nil {
		return m.LeadSignupFunc(ctx, realtorID, lead)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
