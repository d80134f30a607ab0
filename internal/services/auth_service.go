package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/realtorcrm/authsvc/domain"
)

// resetGrantTTL bounds the window between a verified forgot-password code
// and the actual password reset.
const resetGrantTTL = 10 * time.Minute

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	leadRepo    domain.LeadRepository
	sessionRepo domain.SessionRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	otpSvc      domain.OTPService
	redisClient *redis.Client
	sessionTTL  time.Duration
	accessTTL   time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	leadRepo domain.LeadRepository,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	redisClient *redis.Client,
	sessionTTL time.Duration,
	accessTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		leadRepo:    leadRepo,
		sessionRepo: sessionRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		otpSvc:      otpSvc,
		redisClient: redisClient,
		sessionTTL:  sessionTTL,
		accessTTL:   accessTTL,
	}
}

// Signup implements domain.AuthService. The draft has already passed
// transport validation; the service enforces the business invariants.
func (s *AuthServiceImpl) Signup(ctx context.Context, draft *domain.SignupDraft) (*domain.User, error) {
	if draft.UserType == "" {
		return nil, domain.ErrMissingUserType
	}

	contact := draft.Contact()
	existingUser, err := s.userRepo.FindByContact(ctx, contact)
	if err == nil && existingUser != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	hashedPassword, err := s.passwordSvc.Hash(draft.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        draft.Email,
		Phone:        draft.Phone,
		FirstName:    draft.FirstName,
		LastName:     draft.LastName,
		PasswordHash: hashedPassword,
		UserType:     draft.UserType,
		UserRef:      uuid.NewString(),
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if _, err := s.otpSvc.Generate(ctx, contact, draft.Method.Channel(), user.ID); err != nil {
		return nil, fmt.Errorf("failed to send verification code: %w", err)
	}

	return user, nil
}

// VerifySignup implements domain.AuthService. On success the account is
// marked verified and a session is opened so the client can proceed
// straight to the payment step.
func (s *AuthServiceImpl) VerifySignup(ctx context.Context, contact, code string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByContact(ctx, contact)
	if err != nil {
		return nil, err
	}

	valid, err := s.otpSvc.Verify(ctx, contact, code, user.ID)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, domain.ErrOTPInvalid
	}

	if err := s.userRepo.MarkVerified(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to mark user verified: %w", err)
	}
	user.Verified = true

	return s.openSession(ctx, user)
}

// ResendCode implements domain.AuthService
func (s *AuthServiceImpl) ResendCode(ctx context.Context, contact string) error {
	user, err := s.userRepo.FindByContact(ctx, contact)
	if err != nil {
		return err
	}

	channel := domain.ChannelEmail
	if user.Email == "" || user.Email != contact {
		channel = domain.ChannelSMS
	}

	if _, err := s.otpSvc.Generate(ctx, contact, channel, user.ID); err != nil {
		return fmt.Errorf("failed to resend verification code: %w", err)
	}
	return nil
}

// Login implements domain.AuthService
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	if !user.Verified {
		return nil, domain.ErrUserNotVerified
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.openSession(ctx, user)
}

func (s *AuthServiceImpl) openSession(ctx context.Context, user *domain.User) (*domain.AuthResult, error) {
	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		UserType:  user.UserType,
		ExpiresAt: time.Now().Add(s.sessionTTL),
		CreatedAt: time.Now(),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(user.ID, user.UserType, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.tokenSvc.GenerateRefreshToken(user.ID, user.UserType, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &domain.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    session.ID,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

// Logout implements domain.AuthService
func (s *AuthServiceImpl) Logout(ctx context.Context, sessionID string) error {
	return s.sessionRepo.Delete(ctx, sessionID)
}

// CurrentUser implements domain.AuthService
func (s *AuthServiceImpl) CurrentUser(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// EmailExists implements domain.AuthService
func (s *AuthServiceImpl) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == domain.ErrUserNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ForgotPassword implements domain.AuthService. An unknown email is not an
// error so the endpoint cannot be used to probe for accounts.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err == domain.ErrUserNotFound {
		return nil
	}
	if err != nil {
		return err
	}

	if _, err := s.otpSvc.Generate(ctx, email, domain.ChannelEmail, user.ID); err != nil {
		return fmt.Errorf("failed to send reset code: %w", err)
	}
	return nil
}

// VerifyForgotPassword implements domain.AuthService. A verified code
// leaves a short-lived reset grant behind; ResetPassword consumes it.
func (s *AuthServiceImpl) VerifyForgotPassword(ctx context.Context, email, code string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	valid, err := s.otpSvc.Verify(ctx, email, code, user.ID)
	if err != nil {
		return err
	}
	if !valid {
		return domain.ErrOTPInvalid
	}

	grantKey := fmt.Sprintf("reset:%d", user.ID)
	if err := s.redisClient.Set(ctx, grantKey, 1, resetGrantTTL).Err(); err != nil {
		return fmt.Errorf("failed to record reset grant: %w", err)
	}
	return nil
}

// ResetPassword implements domain.AuthService
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, email, password string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	grantKey := fmt.Sprintf("reset:%d", user.ID)
	n, err := s.redisClient.Del(ctx, grantKey).Result()
	if err != nil {
		return fmt.Errorf("failed to consume reset grant: %w", err)
	}
	if n == 0 {
		return domain.ErrNoResetGrant
	}

	hashed, err := s.passwordSvc.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.UpdatePassword(ctx, user.ID, hashed)
}

// AccountSetup implements domain.AuthService
func (s *AuthServiceImpl) AccountSetup(ctx context.Context, userID uint, params domain.AccountSetupParams) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if params.FirstName != "" {
		user.FirstName = params.FirstName
	}
	if params.LastName != "" {
		user.LastName = params.LastName
	}
	if params.Phone != "" {
		user.Phone = params.Phone
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// Checkout implements domain.AuthService. The declared user type must
// match the stored one; a mismatch means the client is out of date.
func (s *AuthServiceImpl) Checkout(ctx context.Context, userID uint, userType domain.Role) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.UserType != userType {
		return domain.ErrInsufficientRole
	}

	return s.userRepo.MarkPaymentVerified(ctx, userID)
}

// LeadSignup implements domain.AuthService
func (s *AuthServiceImpl) LeadSignup(ctx context.Context, realtorID uint, lead *domain.Lead) error {
	realtor, err := s.userRepo.FindByID(ctx, realtorID)
	if err != nil {
		return domain.ErrRealtorNotFound
	}
	if realtor.UserType != domain.RoleRealtor {
		return domain.ErrRealtorNotFound
	}

	lead.RealtorID = realtorID
	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return fmt.Errorf("failed to store lead: %w", err)
	}
	return nil
}
