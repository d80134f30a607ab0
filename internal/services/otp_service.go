package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/realtorcrm/authsvc/domain"
)

// OTPServiceImpl implements domain.OTPService using Redis persistence.
// Codes are delivered over SMS or email depending on the signup method.
type OTPServiceImpl struct {
	notificationSvc domain.NotificationService
	redisClient     *redis.Client
	config          OTPConfig
}

type OTPConfig struct {
	Length       int
	TTL          time.Duration
	MaxAttempts  int
	ResendWindow time.Duration
}

// NewOTPService creates a new Redis-based OTP service
func NewOTPService(notificationSvc domain.NotificationService, redisClient *redis.Client, config OTPConfig) domain.OTPService {
	return &OTPServiceImpl{
		notificationSvc: notificationSvc,
		redisClient:     redisClient,
		config:          config,
	}
}

// Generate implements domain.OTPService with Redis persistence
func (s *OTPServiceImpl) Generate(ctx context.Context, contact string, channel domain.VerificationChannel, userID uint) (*domain.OTPRequest, error) {
	otpKey := fmt.Sprintf("otp:%s:%d", contact, userID)
	resendKey := fmt.Sprintf("otp:res:%s", contact)
	attemptsKey := fmt.Sprintf("otp:att:%s:%d", contact, userID)

	// Check resend throttle
	if canResend, waitTime, _ := s.CanResend(ctx, contact); !canResend {
		return nil, fmt.Errorf("please wait %d seconds before requesting a new code: %w", waitTime, domain.ErrOTPResendLimit)
	}

	code, err := s.generateSecureCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate code: %w", err)
	}

	if err := s.redisClient.Set(ctx, otpKey, code, s.config.TTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to store code in Redis: %w", err)
	}

	if err := s.redisClient.Set(ctx, attemptsKey, 0, s.config.TTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to initialize attempts counter: %w", err)
	}

	if err := s.redisClient.Set(ctx, resendKey, 1, s.config.ResendWindow).Err(); err != nil {
		return nil, fmt.Errorf("failed to set resend throttle: %w", err)
	}

	otpReq := &domain.OTPRequest{
		Contact:   contact,
		Channel:   channel,
		Code:      code,
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.config.TTL),
		Attempts:  0,
	}

	message := fmt.Sprintf("Your verification code is: %s. Valid for %d minutes.", code, int(s.config.TTL.Minutes()))
	if err := s.deliver(contact, channel, message); err != nil {
		// Clean up Redis entries if delivery fails
		s.redisClient.Del(ctx, otpKey, attemptsKey, resendKey)
		return nil, fmt.Errorf("failed to deliver code: %w", err)
	}

	return otpReq, nil
}

func (s *OTPServiceImpl) deliver(contact string, channel domain.VerificationChannel, message string) error {
	if channel == domain.ChannelSMS {
		return s.notificationSvc.SendSMS(contact, message)
	}
	return s.notificationSvc.SendEmail(contact, "Your verification code", message)
}

// Verify implements domain.OTPService with Redis persistence
func (s *OTPServiceImpl) Verify(ctx context.Context, contact, code string, userID uint) (bool, error) {
	otpKey := fmt.Sprintf("otp:%s:%d", contact, userID)
	attemptsKey := fmt.Sprintf("otp:att:%s:%d", contact, userID)

	// Increment attempts counter atomically
	attempts, err := s.redisClient.Incr(ctx, attemptsKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment attempts: %w", err)
	}

	if attempts > int64(s.config.MaxAttempts) {
		s.redisClient.Del(ctx, otpKey, attemptsKey)
		return false, domain.ErrOTPMaxAttempts
	}

	storedCode, err := s.redisClient.Get(ctx, otpKey).Result()
	if err == redis.Nil {
		return false, domain.ErrOTPNotFound
	}
	if err != nil {
		return false, fmt.Errorf("failed to get code from Redis: %w", err)
	}

	if storedCode != code {
		return false, domain.ErrOTPInvalid
	}

	// Success, consume the code
	s.redisClient.Del(ctx, otpKey, attemptsKey)

	return true, nil
}

// CanResend implements domain.OTPService with Redis-based throttling
func (s *OTPServiceImpl) CanResend(ctx context.Context, contact string) (bool, int64, error) {
	resendKey := fmt.Sprintf("otp:res:%s", contact)

	ttl, err := s.redisClient.TTL(ctx, resendKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to check resend TTL: %w", err)
	}

	// TTL <= 0 means the key does not exist or has expired
	if ttl <= 0 {
		return true, 0, nil
	}

	return false, int64(ttl.Seconds()), nil
}

// generateSecureCode generates a cryptographically secure numeric code
func (s *OTPServiceImpl) generateSecureCode() (string, error) {
	digits := make([]byte, s.config.Length)

	for i := 0; i < s.config.Length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}

	return string(digits), nil
}
