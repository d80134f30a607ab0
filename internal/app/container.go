package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/realtorcrm/authsvc/domain"
	"github.com/realtorcrm/authsvc/internal/config"
	"github.com/realtorcrm/authsvc/internal/infrastructure/auth"
	"github.com/realtorcrm/authsvc/internal/infrastructure/database"
	"github.com/realtorcrm/authsvc/internal/infrastructure/notifications"
	"github.com/realtorcrm/authsvc/internal/infrastructure/repositories"
	"github.com/realtorcrm/authsvc/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redis.Client
	Enforcer    domain.CasbinEnforcer

	UserRepo    domain.UserRepository
	LeadRepo    domain.LeadRepository
	SessionRepo domain.SessionRepository

	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	OTPSvc          domain.OTPService
	AuthSvc         domain.AuthService
	PolicySvc       domain.PolicyService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	db, err := database.Open(cfg.DSN)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}
	c.DB = db

	cas, err := auth.NewCasbinService(db, cfg.CasbinModelPath)
	if err != nil {
		return nil, err
	}
	c.Enforcer = cas.E

	c.RedisClient = database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client

	c.UserRepo = repositories.NewUserRepository(db)
	c.LeadRepo = repositories.NewLeadRepository(db)
	c.SessionRepo = repositories.NewSessionRepository(c.RedisClient, cfg.RefreshTTL)

	c.PasswordSvc = auth.NewPasswordService(cfg.BcryptCost)
	c.TokenSvc = auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL)
	c.NotificationSvc = notifications.NewTwilioService(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioFrom)

	c.OTPSvc = services.NewOTPService(c.NotificationSvc, c.RedisClient, services.OTPConfig{
		Length:       cfg.OTP_Length,
		TTL:          cfg.OTP_TTL,
		MaxAttempts:  cfg.OTP_MaxAttempts,
		ResendWindow: cfg.OTP_ResendWindow,
	})

	c.PolicySvc = services.NewPolicyService(c.Enforcer)

	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.LeadRepo,
		c.SessionRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.OTPSvc,
		c.RedisClient,
		cfg.RefreshTTL,
		cfg.AccessTTL,
	)

	return c, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
