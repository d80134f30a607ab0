package mocks

import (
	"context"

	"github.com/realtorcrm/authsvc/domain"
)

// MockLeadRepository implements domain.LeadRepository for testing
type MockLeadRepository struct {
	CreateFunc        func(ctx context.Context, lead *domain.Lead) error
	ListByRealtorFunc func(ctx context.Context, realtorID uint) ([]domain.Lead, error)
}

// NewMockLeadRepository creates a new MockLeadRepository with default behaviors
func NewMockLeadRepository() *MockLeadRepository {
	return &MockLeadRepository{}
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, lead)
	}
	return nil
}

func (m *MockLeadRepository) ListByRealtor(ctx context.Context, realtorID uint) ([]domain.Lead, error) {
	if m.ListByRealtorFunc != nil {
		return m.ListByRealtorFunc(ctx, realtorID)
	}
	return nil, nil
}

// Compile-time interface compliance verification
var _ domain.LeadRepository = (*MockLeadRepository)(nil)
