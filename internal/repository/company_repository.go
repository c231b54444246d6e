package repository

import (
	"context"

	"github.com/gstledger/ledger-api/internal/models"

	"gorm.io/gorm"
)

// CompanyRepository defines the interface for the company profile
type CompanyRepository interface {
	First(ctx context.Context) (*models.Company, error)
	Update(ctx context.Context, id string, company *models.Company) error
}

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

// First returns the persisted profile, or nil when none exists yet
func (r *companyRepository) First(ctx context.Context) (*models.Company, error) {
	var companies []models.Company
	if err := r.db.WithContext(ctx).Limit(1).Find(&companies).Error; err != nil {
		return nil, translate(err)
	}
	if len(companies) == 0 {
		return nil, nil
	}
	return &companies[0], nil
}

func (r *companyRepository) Update(ctx context.Context, id string, company *models.Company) error {
	return affected(r.db.WithContext(ctx).
		Model(&models.Company{}).
		Where("id = ?", id).
		Updates(company.Columns()))
}
