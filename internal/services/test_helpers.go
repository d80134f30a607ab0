package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/realtorcrm/authsvc/domain"
	"github.com/realtorcrm/authsvc/internal/mocks"
)

// createAuthServiceForTest creates an AuthService with mock dependencies.
// Nil arguments get default mocks; redisClient may stay nil for paths that
// never touch the reset-grant keys.
func createAuthServiceForTest(t *testing.T,
	userRepo domain.UserRepository,
	leadRepo domain.LeadRepository,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	redisClient *redis.Client) domain.AuthService {
	t.Helper()

	if userRepo == nil {
		userRepo = mocks.NewMockUserRepository()
	}
	if leadRepo == nil {
		leadRepo = mocks.NewMockLeadRepository()
	}
	if sessionRepo == nil {
		sessionRepo = mocks.NewMockSessionRepository()
	}
	if passwordSvc == nil {
		passwordSvc = mocks.NewMockPasswordService()
	}
	if tokenSvc == nil {
		tokenSvc = mocks.NewMockTokenService()
	}
	if otpSvc == nil {
		otpSvc = mocks.NewMockOTPService()
	}

	return NewAuthService(userRepo, leadRepo, sessionRepo, passwordSvc, tokenSvc, otpSvc,
		redisClient, 7*24*time.Hour, 15*time.Minute)
}

// createTestRedis spins up an in-memory redis and a client against it.
func createTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

// createValidUser creates a verified, active client account.
func createValidUser(t *testing.T) *domain.User {
	t.Helper()

	return &domain.User{
		ID:           1,
		Email:        "test@example.com",
		Phone:        "+15551234567",
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: "hashed_password123",
		UserType:     domain.RoleClient,
		UserRef:      "ref-0001",
		Verified:     true,
		IsActive:     true,
		CreatedAt:    time.Now().Add(-24 * time.Hour),
		UpdatedAt:    time.Now().Add(-1 * time.Hour),
	}
}

// createRealtorUser creates a verified realtor account.
func createRealtorUser(t *testing.T) *domain.User {
	t.Helper()

	user := createValidUser(t)
	user.ID = 2
	user.Email = "realtor@example.com"
	user.UserType = domain.RoleRealtor
	return user
}

// createUnverifiedUser creates an account awaiting code verification.
func createUnverifiedUser(t *testing.T) *domain.User {
	t.Helper()

	user := createValidUser(t)
	user.Verified = false
	return user
}

// createTestContext creates a context with a test-scoped timeout.
func createTestContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// createEmailDraft builds a valid email-method signup draft.
func createEmailDraft(t *testing.T) *domain.SignupDraft {
	t.Helper()

	return &domain.SignupDraft{
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane@example.com",
		Password:        "securepass",
		ConfirmPassword: "securepass",
		Method:          domain.MethodEmail,
		UserType:        domain.RoleClient,
	}
}

// assertAuthResult validates the structure of a login/verify result.
func assertAuthResult(t *testing.T, result *domain.AuthResult, expectedUser *domain.User) {
	t.Helper()

	if result == nil {
		t.Fatal("AuthResult is nil")
	}
	if result.User == nil {
		t.Fatal("AuthResult.User is nil")
	}
	if result.User.ID != expectedUser.ID {
		t.Errorf("expected user ID %d, got %d", expectedUser.ID, result.User.ID)
	}
	if result.User.Email != expectedUser.Email {
		t.Errorf("expected user email %s, got %s", expectedUser.Email, result.User.Email)
	}
	if result.AccessToken == "" {
		t.Error("AccessToken is empty")
	}
	if result.RefreshToken == "" {
		t.Error("RefreshToken is empty")
	}
	if result.SessionID == "" {
		t.Error("SessionID is empty")
	}
	if result.ExpiresIn <= 0 {
		t.Errorf("expected positive ExpiresIn, got %d", result.ExpiresIn)
	}
}
