package mocks

import (
	"fmt"
	"time"

	"github.com/realtorcrm/authsvc/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateAccessTokenFunc  func(userID uint, userType domain.Role, sessionID string) (string, error)
	GenerateRefreshTokenFunc func(userID uint, userType domain.Role, sessionID string) (string, error)
	ValidateAccessTokenFunc  func(token string) (*domain.TokenClaims, error)
	ValidateRefreshTokenFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

func (m *MockTokenService) GenerateAccessToken(userID uint, userType domain.Role, sessionID string) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(userID, userType, sessionID)
	}
	return fmt.Sprintf("access_%d_%s", userID, sessionID), nil
}

func (m *MockTokenService) GenerateRefreshToken(userID uint, userType domain.Role, sessionID string) (string, error) {
	if m.GenerateRefreshTokenFunc != nil {
		return m.GenerateRefreshTokenFunc(userID, userType, sessionID)
	}
	return fmt.Sprintf("refresh_%d_%s", userID, sessionID), nil
}

func (m *MockTokenService) ValidateAccessToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateAccessTokenFunc != nil {
		return m.ValidateAccessTokenFunc(token)
	}
	return &domain.TokenClaims{
		UserID:    1,
		UserType:  domain.RoleClient,
		SessionID: "session-1",
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: time.Now().Add(15 * time.Minute).Unix(),
	}, nil
}

func (m *MockTokenService) ValidateRefreshToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateRefreshTokenFunc != nil {
		return m.ValidateRefreshTokenFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
