package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/realtorcrm/authsvc/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID                  uint           `gorm:"primaryKey"`
	Email               string         `gorm:"uniqueIndex;size:255"`
	Phone               string         `gorm:"index;size:32"`
	FirstName           string         `gorm:"size:128"`
	LastName            string         `gorm:"size:128"`
	PasswordHash        string         `gorm:"column:password"`
	UserType            string         `gorm:"index;size:32"`
	UserRef             string         `gorm:"uniqueIndex;size:36"`
	Verified            bool           `gorm:"index"`
	PaymentVerification bool
	IsActive            bool           `gorm:"index"`
	CreatedAt           time.Time      `gorm:"index"`
	UpdatedAt           time.Time
	DeletedAt           gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return err
	}
	user.ID = dbUser.ID
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

// FindByPhone implements domain.UserRepository
func (r *UserRepositoryImpl) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return r.findOne(ctx, "phone = ?", phone)
}

// FindByContact implements domain.UserRepository. The verification step
// submits whichever contact the signup chose, so both columns are checked.
func (r *UserRepositoryImpl) FindByContact(ctx context.Context, contact string) (*domain.User, error) {
	return r.findOne(ctx, "email = ? OR phone = ?", contact, contact)
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepositoryImpl) findOne(ctx context.Context, query string, args ...interface{}) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where(query, args...).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// Update implements domain.UserRepository
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	return r.db.WithContext(ctx).Save(dbUser).Error
}

// MarkVerified implements domain.UserRepository
func (r *UserRepositoryImpl) MarkVerified(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).Update("verified", true).Error
}

// MarkPaymentVerified implements domain.UserRepository
func (r *UserRepositoryImpl) MarkPaymentVerified(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).Update("payment_verification", true).Error
}

// UpdatePassword implements domain.UserRepository
func (r *UserRepositoryImpl) UpdatePassword(ctx context.Context, userID uint, passwordHash string) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).Update("password", passwordHash).Error
}

func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:                  user.ID,
		Email:               user.Email,
		Phone:               user.Phone,
		FirstName:           user.FirstName,
		LastName:            user.LastName,
		PasswordHash:        user.PasswordHash,
		UserType:            string(user.UserType),
		UserRef:             user.UserRef,
		Verified:            user.Verified,
		PaymentVerification: user.PaymentVerification,
		IsActive:            user.IsActive,
	}
}

func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:                  dbUser.ID,
		Email:               dbUser.Email,
		Phone:               dbUser.Phone,
		FirstName:           dbUser.FirstName,
		LastName:            dbUser.LastName,
		PasswordHash:        dbUser.PasswordHash,
		UserType:            domain.Role(dbUser.UserType),
		UserRef:             dbUser.UserRef,
		Verified:            dbUser.Verified,
		PaymentVerification: dbUser.PaymentVerification,
		IsActive:            dbUser.IsActive,
		CreatedAt:           dbUser.CreatedAt,
		UpdatedAt:           dbUser.UpdatedAt,
	}
}
