package mocks

import (
	"context"

	"github.com/realtorcrm/authsvc/domain"
)

// MockUserRepository implements domain.UserRepository for testing
type MockUserRepository struct {
	CreateFunc              func(ctx context.Context, user *domain.User) error
	FindByEmailFunc         func(ctx context.Context, email string) (*domain.User, error)
	FindByPhoneFunc         func(ctx context.Context, phone string) (*domain.User, error)
	FindByContactFunc       func(ctx context.Context, contact string) (*domain.User, error)
	FindByIDFunc            func(ctx context.Context, id uint) (*domain.User, error)
	UpdateFunc              func(ctx context.Context, user *domain.User) error
	MarkVerifiedFunc        func(ctx context.Context, userID uint) error
	MarkPaymentVerifiedFunc func(ctx context.Context, userID uint) error
	UpdatePasswordFunc      func(ctx context.Context, userID uint, passwordHash string) error
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	if m.FindByPhoneFunc != nil {
		return m.FindByPhoneFunc(ctx, phone)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByContact(ctx context.Context, contact string) (*domain.User, error) {
	if m.FindByContactFunc != nil {
		return m.FindByContactFunc(ctx, contact)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) MarkVerified(ctx context.Context, userID uint) error {
	if m.MarkVerifiedFunc != nil {
		return m.MarkVerifiedFunc(ctx, userID)
	}
	return nil
}

func (m *MockUserRepository) MarkPaymentVerified(ctx context.Context, userID uint) error {
	if m.MarkPaymentVerifiedFunc != nil {
		return m.MarkPaymentVerifiedFunc(ctx, userID)
	}
	return nil
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID uint, passwordHash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, userID, passwordHash)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)
