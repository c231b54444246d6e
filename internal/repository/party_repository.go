package repository

import (
	"context"

	"github.com/gstledger/ledger-api/internal/models"

	"gorm.io/gorm"
)

// PartyRepository defines the interface for party data access
type PartyRepository interface {
	List(ctx context.Context) ([]models.Party, error)
	Create(ctx context.Context, party *models.Party) error
	Update(ctx context.Context, id string, columns map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type partyRepository struct {
	db *gorm.DB
}

// NewPartyRepository creates a new party repository
func NewPartyRepository(db *gorm.DB) PartyRepository {
	return &partyRepository{db: db}
}

// List returns parties, most recently created first
func (r *partyRepository) List(ctx context.Context) ([]models.Party, error) {
	var parties []models.Party
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&parties).Error
	return parties, translate(err)
}

func (r *partyRepository) Create(ctx context.Context, party *models.Party) error {
	party.ID = newID(party.ID)
	return translate(r.db.WithContext(ctx).Create(party).Error)
}

func (r *partyRepository) Update(ctx context.Context, id string, columns map[string]interface{}) error {
	return affected(r.db.WithContext(ctx).
		Model(&models.Party{}).
		Where("id = ?", id).
		Updates(columns))
}

// Delete removes a party; invoices and ledger entries referencing it are left in place
func (r *partyRepository) Delete(ctx context.Context, id string) error {
	return affected(r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Party{}))
}
