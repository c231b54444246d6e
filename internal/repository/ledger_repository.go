package repository

import (
	"context"

	"github.com/gstledger/ledger-api/internal/models"

	"gorm.io/gorm"
)

// LedgerRepository defines the interface for ledger entry data access
type LedgerRepository interface {
	List(ctx context.Context) ([]models.LedgerEntry, error)
	Create(ctx context.Context, entry *models.LedgerEntry) error
	Update(ctx context.Context, id string, columns map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

// ledgerRepository handles database operations for ledger entries
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

// List retrieves all ledger entries ordered by date
func (r *ledgerRepository) List(ctx context.Context) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	err := r.db.WithContext(ctx).
		Order("date ASC, created_at ASC").
		Find(&entries).Error
	return entries, translate(err)
}

// Create creates a new ledger entry
func (r *ledgerRepository) Create(ctx context.Context, entry *models.LedgerEntry) error {
	entry.ID = newID(entry.ID)
	return translate(r.db.WithContext(ctx).Create(entry).Error)
}

func (r *ledgerRepository) Update(ctx context.Context, id string, columns map[string]interface{}) error {
	return affected(r.db.WithContext(ctx).
		Model(&models.LedgerEntry{}).
		Where("id = ?", id).
		Updates(columns))
}

func (r *ledgerRepository) Delete(ctx context.Context, id string) error {
	return affected(r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.LedgerEntry{}))
}
