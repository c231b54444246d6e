package services

import (
	"context"
	"sync"

	"github.com/gstledger/ledger-api/internal/models"
	"github.com/gstledger/ledger-api/internal/repository"
	"github.com/gstledger/ledger-api/internal/statemachine"
	"github.com/gstledger/ledger-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// AccountingStore holds the in-memory snapshot of company, parties, invoices
// and ledger entries. Every mutation is written to the backend first; the
// snapshot only changes once the write succeeded.
//
// The mutex guards the snapshot itself and is never held across a backend
// call, so sequence numbers read from NextInvoiceNo/NextVoucherNo are not
// reserved: two creations started before either completes can compute the
// same number.
type AccountingStore struct {
	companyRepo repository.CompanyRepository
	partyRepo   repository.PartyRepository
	invoiceRepo repository.InvoiceRepository
	ledgerRepo  repository.LedgerRepository

	defaultCompany models.Company
	state          *statemachine.SnapshotFSM

	mu       sync.RWMutex
	company  models.Company
	parties  []models.Party
	invoices []models.Invoice
	entries  []models.LedgerEntry
}

// NewAccountingStore creates an empty store. Call LoadAll to populate it.
func NewAccountingStore(repos *repository.Repositories, defaultCompany models.Company) *AccountingStore {
	return &AccountingStore{
		companyRepo:    repos.Company,
		partyRepo:      repos.Party,
		invoiceRepo:    repos.Invoice,
		ledgerRepo:     repos.Ledger,
		defaultCompany: defaultCompany.Clone(),
		state:          statemachine.NewSnapshotFSM(),
		company:        defaultCompany.Clone(),
		parties:        []models.Party{},
		invoices:       []models.Invoice{},
		entries:        []models.LedgerEntry{},
	}
}

// LoadAll replaces the whole snapshot with the backend's contents. On a
// read failure the snapshot is left as it was and loading is marked complete.
func (s *AccountingStore) LoadAll(ctx context.Context) error {
	if err := s.state.BeginLoad(ctx); err != nil {
		return ErrLoadInProgress
	}

	company, parties, invoices, entries, err := s.fetchAll(ctx)
	if err != nil {
		logger.Error("Failed to load accounting snapshot", "error", err)
		if failErr := s.state.Fail(ctx); failErr != nil {
			logger.Error("Failed to mark snapshot load as failed", "error", failErr)
		}
		return err
	}

	current := s.defaultCompany.Clone()
	if company != nil {
		current = company.Clone()
	}
	if parties == nil {
		parties = []models.Party{}
	}
	if invoices == nil {
		invoices = []models.Invoice{}
	}
	if entries == nil {
		entries = []models.LedgerEntry{}
	}
	for i := range invoices {
		invoices[i].Party = resolveParty(invoices[i], parties)
	}

	s.mu.Lock()
	s.company = current
	s.parties = parties
	s.invoices = invoices
	s.entries = entries
	s.mu.Unlock()

	logger.Info("Loaded accounting snapshot",
		"parties", len(parties),
		"invoices", len(invoices),
		"ledger_entries", len(entries),
	)
	return s.state.Loaded(ctx)
}

func (s *AccountingStore) fetchAll(ctx context.Context) (*models.Company, []models.Party, []models.Invoice, []models.LedgerEntry, error) {
	company, err := s.companyRepo.First(ctx)
	if err != nil {
		return nil, nil, nil, nil, persistenceError("load company", err)
	}
	parties, err := s.partyRepo.List(ctx)
	if err != nil {
		return nil, nil, nil, nil, persistenceError("load parties", err)
	}
	invoices, err := s.invoiceRepo.List(ctx)
	if err != nil {
		return nil, nil, nil, nil, persistenceError("load invoices", err)
	}
	entries, err := s.ledgerRepo.List(ctx)
	if err != nil {
		return nil, nil, nil, nil, persistenceError("load ledger entries", err)
	}
	return company, parties, invoices, entries, nil
}

// resolveParty prefers the joined row, then the loaded party list, then "Unknown"
func resolveParty(inv models.Invoice, parties []models.Party) models.Party {
	if inv.Party.ID != "" {
		return inv.Party
	}
	for _, p := range parties {
		if p.ID == inv.PartyID {
			return p.Clone()
		}
	}
	return models.UnknownParty()
}

// RefreshData reloads the snapshot from the backend
func (s *AccountingStore) RefreshData(ctx context.Context) error {
	return s.LoadAll(ctx)
}

// Loading reports whether the snapshot has not finished loading yet
func (s *AccountingStore) Loading() bool {
	return s.state.Loading()
}

// State returns the snapshot lifecycle state
func (s *AccountingStore) State() string {
	return s.state.Current()
}

// --- company ---

// Company returns the company profile
func (s *AccountingStore) Company() models.Company {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.company.Clone()
}

// SetCompany updates the profile. It is only written to the backend when the
// current profile has an identity; otherwise only the in-memory value changes.
func (s *AccountingStore) SetCompany(ctx context.Context, company models.Company) error {
	s.mu.RLock()
	id := s.company.ID
	s.mu.RUnlock()

	company = company.Clone()
	company.ID = id
	if id != "" {
		if err := s.companyRepo.Update(ctx, id, &company); err != nil {
			logger.Error("Failed to update company", "error", err)
			return persistenceError("update company", err)
		}
	}

	s.mu.Lock()
	s.company = company
	s.mu.Unlock()
	return nil
}

// --- parties ---

// Parties returns the party directory, most recently created first
func (s *AccountingStore) Parties() []models.Party {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Party, len(s.parties))
	for i, p := range s.parties {
		out[i] = p.Clone()
	}
	return out
}

// FindParty looks a party up in the snapshot
func (s *AccountingStore) FindParty(id string) (models.Party, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.parties {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return models.Party{}, false
}

// PartyName returns the name of a party, or "Unknown" for a dangling reference
func (s *AccountingStore) PartyName(id string) string {
	if p, ok := s.FindParty(id); ok {
		return p.Name
	}
	return models.UnknownParty().Name
}

// AddParty persists a new party with a fresh identity and a state code
// resolved from its state name, then puts it at the front of the directory
func (s *AccountingStore) AddParty(ctx context.Context, party models.Party) (models.Party, error) {
	party = party.Clone()
	party.ID = ""
	party.StateCode = models.LookupStateCode(party.State)

	if err := s.partyRepo.Create(ctx, &party); err != nil {
		logger.Error("Failed to create party", "error", err)
		return models.Party{}, persistenceError("create party", err)
	}

	s.mu.Lock()
	s.parties = append([]models.Party{party.Clone()}, s.parties...)
	s.mu.Unlock()
	return party, nil
}

// UpdateParty applies a partial update to a party
func (s *AccountingStore) UpdateParty(ctx context.Context, id string, req models.UpdatePartyRequest) error {
	cols := req.Columns()
	if len(cols) == 0 {
		return nil
	}
	if err := s.partyRepo.Update(ctx, id, cols); err != nil {
		logger.Error("Failed to update party", "party_id", id, "error", err)
		return persistenceError("update party", err)
	}

	s.mu.Lock()
	for i := range s.parties {
		if s.parties[i].ID == id {
			req.ApplyTo(&s.parties[i])
		}
	}
	s.mu.Unlock()
	return nil
}

// DeleteParty removes a party. Invoices and ledger entries that reference it
// are kept and will resolve the party as "Unknown".
func (s *AccountingStore) DeleteParty(ctx context.Context, id string) error {
	if err := s.partyRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete party", "party_id", id, "error", err)
		return persistenceError("delete party", err)
	}

	s.mu.Lock()
	kept := s.parties[:0:0]
	for _, p := range s.parties {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.parties = kept
	s.mu.Unlock()
	return nil
}

// --- invoices ---

// Invoices returns all invoices in snapshot order
func (s *AccountingStore) Invoices() []models.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Invoice, len(s.invoices))
	for i, inv := range s.invoices {
		out[i] = inv.Clone()
	}
	return out
}

// FindInvoice looks an invoice up in the snapshot
func (s *AccountingStore) FindInvoice(id string) (models.Invoice, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, inv := range s.invoices {
		if inv.ID == id {
			return inv.Clone(), true
		}
	}
	return models.Invoice{}, false
}

// NextInvoiceNo returns 1 for an empty register, otherwise the highest
// invoice number plus one. The number is not reserved.
func (s *AccountingStore) NextInvoiceNo() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	next := 1
	for _, inv := range s.invoices {
		if inv.InvoiceNo >= next {
			next = inv.InvoiceNo + 1
		}
	}
	return next
}

// AddInvoice persists an invoice as supplied (items and totals are not
// recomputed) and appends it to the register
func (s *AccountingStore) AddInvoice(ctx context.Context, invoice models.Invoice) (models.Invoice, error) {
	invoice = invoice.Clone()
	invoice.ID = ""

	if err := s.invoiceRepo.Create(ctx, &invoice); err != nil {
		logger.Error("Failed to create invoice", "invoice_no", invoice.InvoiceNo, "error", err)
		return models.Invoice{}, persistenceError("create invoice", err)
	}

	s.mu.Lock()
	s.invoices = append(s.invoices, invoice.Clone())
	s.mu.Unlock()
	return invoice, nil
}

// UpdateInvoice applies a partial update to an invoice. The paired ledger
// entry is not touched.
func (s *AccountingStore) UpdateInvoice(ctx context.Context, id string, req models.UpdateInvoiceRequest) error {
	cols := req.Columns()
	if len(cols) == 0 {
		return nil
	}
	if err := s.invoiceRepo.Update(ctx, id, cols); err != nil {
		logger.Error("Failed to update invoice", "invoice_id", id, "error", err)
		return persistenceError("update invoice", err)
	}

	s.mu.Lock()
	for i := range s.invoices {
		if s.invoices[i].ID == id {
			req.ApplyTo(&s.invoices[i])
		}
	}
	s.mu.Unlock()
	return nil
}

// DeleteInvoice removes an invoice. The paired Sales ledger entry is not
// removed; see InvoiceService.DeleteInvoice for the paired operation.
func (s *AccountingStore) DeleteInvoice(ctx context.Context, id string) error {
	if err := s.invoiceRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete invoice", "invoice_id", id, "error", err)
		return persistenceError("delete invoice", err)
	}

	s.mu.Lock()
	kept := s.invoices[:0:0]
	for _, inv := range s.invoices {
		if inv.ID != id {
			kept = append(kept, inv)
		}
	}
	s.invoices = kept
	s.mu.Unlock()
	return nil
}

// --- ledger ---

// LedgerEntries returns all ledger entries in snapshot order
func (s *AccountingStore) LedgerEntries() []models.LedgerEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.LedgerEntry, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Clone()
	}
	return out
}

// FindLedgerEntry looks an entry up in the snapshot
func (s *AccountingStore) FindLedgerEntry(id string) (models.LedgerEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.ID == id {
			return e.Clone(), true
		}
	}
	return models.LedgerEntry{}, false
}

// FindSalesEntry returns the Sales entry whose voucher number is invoiceNo
func (s *AccountingStore) FindSalesEntry(invoiceNo int) (models.LedgerEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.IsSalesEntryFor(invoiceNo) {
			return e.Clone(), true
		}
	}
	return models.LedgerEntry{}, false
}

// NextVoucherNo returns the next number in the sequence of one voucher type
func (s *AccountingStore) NextVoucherNo(voucherType models.VoucherType) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	next := 1
	for _, e := range s.entries {
		if e.VoucherType == voucherType && e.VoucherNo >= next {
			next = e.VoucherNo + 1
		}
	}
	return next
}

// VoucherNoInUse reports whether another entry than exceptID already carries
// voucherNo in the sequence of voucherType
func (s *AccountingStore) VoucherNoInUse(voucherType models.VoucherType, voucherNo int, exceptID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.ID != exceptID && e.VoucherType == voucherType && e.VoucherNo == voucherNo {
			return true
		}
	}
	return false
}

// AddLedgerEntry persists an entry as supplied and appends it to the ledger
func (s *AccountingStore) AddLedgerEntry(ctx context.Context, entry models.LedgerEntry) (models.LedgerEntry, error) {
	entry = entry.Clone()
	entry.ID = ""

	if err := s.ledgerRepo.Create(ctx, &entry); err != nil {
		logger.Error("Failed to create ledger entry",
			"voucher_type", entry.VoucherType,
			"voucher_no", entry.VoucherNo,
			"error", err,
		)
		return models.LedgerEntry{}, persistenceError("create ledger entry", err)
	}

	s.mu.Lock()
	s.entries = append(s.entries, entry.Clone())
	s.mu.Unlock()
	return entry, nil
}

// UpdateLedgerEntry applies a partial update to a ledger entry
func (s *AccountingStore) UpdateLedgerEntry(ctx context.Context, id string, req models.UpdateLedgerEntryRequest) error {
	cols := req.Columns()
	if len(cols) == 0 {
		return nil
	}
	if err := s.ledgerRepo.Update(ctx, id, cols); err != nil {
		logger.Error("Failed to update ledger entry", "entry_id", id, "error", err)
		return persistenceError("update ledger entry", err)
	}

	s.mu.Lock()
	for i := range s.entries {
		if s.entries[i].ID == id {
			req.ApplyTo(&s.entries[i])
		}
	}
	s.mu.Unlock()
	return nil
}

// DeleteLedgerEntry removes a ledger entry
func (s *AccountingStore) DeleteLedgerEntry(ctx context.Context, id string) error {
	if err := s.ledgerRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete ledger entry", "entry_id", id, "error", err)
		return persistenceError("delete ledger entry", err)
	}

	s.mu.Lock()
	kept := s.entries[:0:0]
	for _, e := range s.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.entries = kept
	s.mu.Unlock()
	return nil
}

// --- aggregates, recomputed on every call ---

// TotalSales sums the totals of all invoices
func (s *AccountingStore) TotalSales() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := decimal.Zero
	for _, inv := range s.invoices {
		total = total.Add(inv.TotalAmount)
	}
	return total
}

// AverageInvoice is total sales over invoice count rounded to paise, zero
// when there are no invoices
func (s *AccountingStore) AverageInvoice() decimal.Decimal {
	s.mu.RLock()
	count := len(s.invoices)
	s.mu.RUnlock()
	if count == 0 {
		return decimal.Zero
	}
	return s.TotalSales().Div(decimal.NewFromInt(int64(count))).Round(2)
}

// TotalDebits sums debits, for one party or for all when partyID is empty
func (s *AccountingStore) TotalDebits(partyID string) decimal.Decimal {
	debits, _ := s.totals(partyID)
	return debits
}

// TotalCredits sums credits, for one party or for all when partyID is empty
func (s *AccountingStore) TotalCredits(partyID string) decimal.Decimal {
	_, credits := s.totals(partyID)
	return credits
}

// NetBalance is total credits minus total debits, labeled Cr when non-negative
func (s *AccountingStore) NetBalance(partyID string) models.Balance {
	debits, credits := s.totals(partyID)
	return models.NewBalance(credits.Sub(debits))
}

func (s *AccountingStore) totals(partyID string) (debits, credits decimal.Decimal) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	debits, credits = decimal.Zero, decimal.Zero
	for i := range s.entries {
		e := &s.entries[i]
		if partyID != "" && e.PartyID != partyID {
			continue
		}
		debits = debits.Add(e.DebitAmount())
		credits = credits.Add(e.CreditAmount())
	}
	return debits, credits
}
