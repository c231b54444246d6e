package repository

import (
	"context"

	"github.com/gstledger/ledger-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InvoiceRepository defines the interface for invoice data access
type InvoiceRepository interface {
	List(ctx context.Context) ([]models.Invoice, error)
	Create(ctx context.Context, invoice *models.Invoice) error
	Update(ctx context.Context, id string, columns map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

// List returns invoices by ascending invoice number with their party joined
func (r *invoiceRepository) List(ctx context.Context) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.WithContext(ctx).
		Preload("Party").
		Order("invoice_no ASC").
		Find(&invoices).Error
	return invoices, translate(err)
}

// Create inserts the invoice row only; the party association is never written
func (r *invoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	invoice.ID = newID(invoice.ID)
	invoice.PartyID = invoice.Party.ID
	return translate(r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(invoice).Error)
}

func (r *invoiceRepository) Update(ctx context.Context, id string, columns map[string]interface{}) error {
	return affected(r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("id = ?", id).
		Updates(columns))
}

func (r *invoiceRepository) Delete(ctx context.Context, id string) error {
	return affected(r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Invoice{}))
}
