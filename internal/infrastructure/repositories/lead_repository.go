package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/realtorcrm/authsvc/domain"
)

// LeadRepositoryImpl implements domain.LeadRepository using GORM
type LeadRepositoryImpl struct {
	db *gorm.DB
}

// DBLead represents the database model for a captured lead
type DBLead struct {
	ID        uint      `gorm:"primaryKey"`
	RealtorID uint      `gorm:"index"`
	FirstName string    `gorm:"size:128"`
	LastName  string    `gorm:"size:128"`
	Email     string    `gorm:"index;size:255"`
	Phone     string    `gorm:"size:32"`
	Source    string    `gorm:"size:64"`
	Notes     string
	CreatedAt time.Time `gorm:"index"`
}

func (DBLead) TableName() string {
	return "leads"
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) domain.LeadRepository {
	return &LeadRepositoryImpl{db: db}
}

// Create implements domain.LeadRepository
func (r *LeadRepositoryImpl) Create(ctx context.Context, lead *domain.Lead) error {
	dbLead := &DBLead{
		RealtorID: lead.RealtorID,
		FirstName: lead.FirstName,
		LastName:  lead.LastName,
		Email:     lead.Email,
		Phone:     lead.Phone,
		Source:    lead.Source,
		Notes:     lead.Notes,
	}
	if err := r.db.WithContext(ctx).Create(dbLead).Error; err != nil {
		return err
	}
	lead.ID = dbLead.ID
	lead.CreatedAt = dbLead.CreatedAt
	return nil
}

// ListByRealtor implements domain.LeadRepository
func (r *LeadRepositoryImpl) ListByRealtor(ctx context.Context, realtorID uint) ([]domain.Lead, error) {
	var dbLeads []DBLead
	err := r.db.WithContext(ctx).Where("realtor_id = ?", realtorID).Order("created_at DESC").Find(&dbLeads).Error
	if err != nil {
		return nil, err
	}

	leads := make([]domain.Lead, 0, len(dbLeads))
	for _, l := range dbLeads {
		leads = append(leads, domain.Lead{
			ID:        l.ID,
			RealtorID: l.RealtorID,
			FirstName: l.FirstName,
			LastName:  l.LastName,
			Email:     l.Email,
			Phone:     l.Phone,
			Source:    l.Source,
			Notes:     l.Notes,
			CreatedAt: l.CreatedAt,
		})
	}
	return leads, nil
}
