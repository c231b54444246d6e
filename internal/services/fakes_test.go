package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/gstledger/ledger-api/internal/models"
	"github.com/gstledger/ledger-api/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var errBackend = errors.New("connection refused")

type fakeCompanyRepo struct {
	repository.CompanyRepository
	company   *models.Company
	firstErr  error
	updateErr error
	updates   int
}

func (f *fakeCompanyRepo) First(ctx context.Context) (*models.Company, error) {
	if f.firstErr != nil {
		return nil, f.firstErr
	}
	if f.company == nil {
		return nil, nil
	}
	c := f.company.Clone()
	return &c, nil
}

func (f *fakeCompanyRepo) Update(ctx context.Context, id string, company *models.Company) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates++
	c := company.Clone()
	f.company = &c
	return nil
}

type fakePartyRepo struct {
	repository.PartyRepository
	rows      []models.Party
	seq       int
	listErr   error
	createErr error
	updateErr error
	deleteErr error
}

func (f *fakePartyRepo) List(ctx context.Context) ([]models.Party, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Party, len(f.rows))
	for i, p := range f.rows {
		out[i] = p.Clone()
	}
	return out, nil
}

func (f *fakePartyRepo) Create(ctx context.Context, party *models.Party) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.seq++
	party.ID = fmt.Sprintf("party-%d", f.seq)
	f.rows = append([]models.Party{party.Clone()}, f.rows...)
	return nil
}

func (f *fakePartyRepo) Update(ctx context.Context, id string, columns map[string]interface{}) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.rows {
		if f.rows[i].ID == id {
			if name, ok := columns["name"].(string); ok {
				f.rows[i].Name = name
			}
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakePartyRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeInvoiceRepo struct {
	repository.InvoiceRepository
	rows      []models.Invoice
	seq       int
	listErr   error
	createErr error
	updateErr error
	deleteErr error
	updates   []map[string]interface{}
	// afterUpdateErr fails every update after the first one
	afterUpdateErr error
}

func (f *fakeInvoiceRepo) List(ctx context.Context) ([]models.Invoice, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Invoice, len(f.rows))
	for i, inv := range f.rows {
		out[i] = inv.Clone()
	}
	return out, nil
}

func (f *fakeInvoiceRepo) Create(ctx context.Context, invoice *models.Invoice) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.seq++
	invoice.ID = fmt.Sprintf("invoice-%d", f.seq)
	row := invoice.Clone()
	// the join is not stored with the row
	row.Party = models.Party{}
	f.rows = append(f.rows, row)
	return nil
}

func (f *fakeInvoiceRepo) Update(ctx context.Context, id string, columns map[string]interface{}) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.afterUpdateErr != nil && len(f.updates) > 0 {
		return f.afterUpdateErr
	}
	f.updates = append(f.updates, columns)
	for i := range f.rows {
		if f.rows[i].ID == id {
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeInvoiceRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeLedgerRepo struct {
	repository.LedgerRepository
	rows      []models.LedgerEntry
	seq       int
	listErr   error
	createErr error
	updateErr error
	deleteErr error
	deleted   []string
}

func (f *fakeLedgerRepo) List(ctx context.Context) ([]models.LedgerEntry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.LedgerEntry, len(f.rows))
	for i, e := range f.rows {
		out[i] = e.Clone()
	}
	return out, nil
}

func (f *fakeLedgerRepo) Create(ctx context.Context, entry *models.LedgerEntry) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.seq++
	entry.ID = fmt.Sprintf("entry-%d", f.seq)
	f.rows = append(f.rows, entry.Clone())
	return nil
}

func (f *fakeLedgerRepo) Update(ctx context.Context, id string, columns map[string]interface{}) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.rows {
		if f.rows[i].ID == id {
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeLedgerRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeBackend struct {
	company  *fakeCompanyRepo
	parties  *fakePartyRepo
	invoices *fakeInvoiceRepo
	ledger   *fakeLedgerRepo
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		company:  &fakeCompanyRepo{},
		parties:  &fakePartyRepo{},
		invoices: &fakeInvoiceRepo{},
		ledger:   &fakeLedgerRepo{},
	}
}

func (b *fakeBackend) repos() *repository.Repositories {
	return &repository.Repositories{
		Company: b.company,
		Party:   b.parties,
		Invoice: b.invoices,
		Ledger:  b.ledger,
	}
}

var testCompany = models.Company{
	Name:    "Sri Balaji Traders",
	Address: []string{"14 Market Road", "Coimbatore"},
	GSTIN:   "33AABCS1234F1Z5",
	State:   "Tamil Nadu",
}

// newLoadedStore returns a store that has completed a load of backend
func newLoadedStore(t *testing.T, backend *fakeBackend) *AccountingStore {
	t.Helper()
	store := NewAccountingStore(backend.repos(), testCompany)
	require.NoError(t, store.LoadAll(context.Background()))
	return store
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}
