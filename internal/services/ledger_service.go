package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/gstledger/ledger-api/internal/models"
	"github.com/shopspring/decimal"
)

// Entry directions
const (
	DirectionDebit  = "debit"
	DirectionCredit = "credit"
)

// LedgerService posts manual ledger entries and builds party statements
type LedgerService struct {
	store *AccountingStore
}

// NewLedgerService creates a new ledger service
func NewLedgerService(store *AccountingStore) *LedgerService {
	return &LedgerService{store: store}
}

// PostEntryRequest is the input for a manual ledger entry. VoucherNo is taken
// from the voucher type's sequence when omitted and must not already be used
// in it. Particulars defaults to "By <party>" for credits and "To <party>"
// for debits. Sales vouchers are only posted by invoices.
type PostEntryRequest struct {
	PartyID     string             `json:"party_id" validate:"required"`
	Date        string             `json:"date" validate:"required"`
	VoucherType models.VoucherType `json:"voucher_type" validate:"required,oneof=Receipt Payment Sales Purchase Journal Contra"`
	VoucherNo   *int               `json:"voucher_no,omitempty"`
	Direction   string             `json:"direction" validate:"required,oneof=debit credit"`
	Amount      decimal.Decimal    `json:"amount"`
	Particulars string             `json:"particulars"`
}

// StatementRow is one ledger line with the balance after it
type StatementRow struct {
	models.LedgerEntry
	PartyName string         `json:"party_name"`
	Balance   models.Balance `json:"balance"`
}

// LedgerStatement is the ledger of one party, or of all parties when PartyID is empty
type LedgerStatement struct {
	PartyID      string          `json:"party_id,omitempty"`
	PartyName    string          `json:"party_name,omitempty"`
	Rows         []StatementRow  `json:"rows"`
	TotalDebits  decimal.Decimal `json:"total_debits"`
	TotalCredits decimal.Decimal `json:"total_credits"`
	Closing      models.Balance  `json:"closing_balance"`
}

// NextVoucherNo returns the number the next voucher of the given type would get
func (s *LedgerService) NextVoucherNo(voucherType models.VoucherType) (int, error) {
	if !voucherType.IsValid() {
		return 0, &ValidationError{Fields: map[string]string{"voucher_type": "must be one of: " + voucherTypeList()}}
	}
	return s.store.NextVoucherNo(voucherType), nil
}

// PostEntry validates req and appends the entry to the ledger
func (s *LedgerService) PostEntry(ctx context.Context, req PostEntryRequest) (models.LedgerEntry, error) {
	req.PartyID = strings.TrimSpace(req.PartyID)
	req.Direction = strings.ToLower(strings.TrimSpace(req.Direction))
	req.Particulars = strings.TrimSpace(req.Particulars)

	errs := fieldErrors{}
	date, err := models.FormatDisplayDate(strings.TrimSpace(req.Date))
	if req.Date != "" && err != nil {
		errs.add("date", "must be a date in YYYY-MM-DD form")
	}
	if !req.Amount.IsPositive() {
		errs.add("amount", "must be greater than zero")
	}
	if req.VoucherNo != nil && *req.VoucherNo < 1 {
		errs.add("voucher_no", "must be positive")
	}
	if req.VoucherType == models.VoucherSales {
		errs.add("voucher_type", salesVoucherMessage)
	}
	if err := errs.merge(validateStruct(&req)); err != nil {
		return models.LedgerEntry{}, err
	}

	party, ok := s.store.FindParty(req.PartyID)
	if !ok {
		return models.LedgerEntry{}, ErrUnknownParty
	}

	voucherNo := s.store.NextVoucherNo(req.VoucherType)
	if req.VoucherNo != nil {
		voucherNo = *req.VoucherNo
		if s.store.VoucherNoInUse(req.VoucherType, voucherNo, "") {
			return models.LedgerEntry{}, duplicateVoucher(req.VoucherType, voucherNo)
		}
	}

	entry := models.LedgerEntry{
		Date:        date,
		PartyID:     party.ID,
		Particulars: req.Particulars,
		VoucherType: req.VoucherType,
		VoucherNo:   voucherNo,
	}
	amount := req.Amount
	if req.Direction == DirectionCredit {
		entry.Credit = &amount
		if entry.Particulars == "" {
			entry.Particulars = "By " + party.Name
		}
	} else {
		entry.Debit = &amount
		if entry.Particulars == "" {
			entry.Particulars = "To " + party.Name
		}
	}
	return s.store.AddLedgerEntry(ctx, entry)
}

// EditEntry applies a partial update to a ledger entry
func (s *LedgerService) EditEntry(ctx context.Context, id string, req models.UpdateLedgerEntryRequest) (models.LedgerEntry, error) {
	current, ok := s.store.FindLedgerEntry(id)
	if !ok {
		return models.LedgerEntry{}, ErrNotFound
	}

	errs := fieldErrors{}
	if req.Date != nil {
		date, err := models.FormatDisplayDate(strings.TrimSpace(*req.Date))
		if err != nil {
			errs.add("date", "must be a date in YYYY-MM-DD form")
		}
		req.Date = &date
	}
	if req.VoucherType != nil && !req.VoucherType.IsValid() {
		errs.add("voucher_type", "must be one of: "+voucherTypeList())
	} else if req.VoucherType != nil && *req.VoucherType != current.VoucherType &&
		(*req.VoucherType == models.VoucherSales || current.VoucherType == models.VoucherSales) {
		errs.add("voucher_type", salesVoucherMessage)
	}
	if req.VoucherNo != nil && *req.VoucherNo < 1 {
		errs.add("voucher_no", "must be positive")
	} else if req.VoucherNo != nil && *req.VoucherNo != current.VoucherNo && current.VoucherType == models.VoucherSales {
		errs.add("voucher_no", "follows the invoice number of a Sales voucher")
	}
	if req.Debit != nil && req.Debit.IsNegative() {
		errs.add("debit", "must not be negative")
	}
	if req.Credit != nil && req.Credit.IsNegative() {
		errs.add("credit", "must not be negative")
	}
	if err := errs.merge(nil); err != nil {
		return models.LedgerEntry{}, err
	}
	if req.PartyID != nil {
		if _, ok := s.store.FindParty(*req.PartyID); !ok {
			return models.LedgerEntry{}, ErrUnknownParty
		}
	}
	if req.VoucherType != nil || req.VoucherNo != nil {
		voucherType, voucherNo := current.VoucherType, current.VoucherNo
		if req.VoucherType != nil {
			voucherType = *req.VoucherType
		}
		if req.VoucherNo != nil {
			voucherNo = *req.VoucherNo
		}
		if s.store.VoucherNoInUse(voucherType, voucherNo, id) {
			return models.LedgerEntry{}, duplicateVoucher(voucherType, voucherNo)
		}
	}

	if err := s.store.UpdateLedgerEntry(ctx, id, req); err != nil {
		return models.LedgerEntry{}, err
	}
	entry, _ := s.store.FindLedgerEntry(id)
	return entry, nil
}

// DeleteEntry removes a ledger entry
func (s *LedgerService) DeleteEntry(ctx context.Context, id string) error {
	if _, ok := s.store.FindLedgerEntry(id); !ok {
		return ErrNotFound
	}
	return s.store.DeleteLedgerEntry(ctx, id)
}

// Statement lists the ledger in snapshot order with a running balance
// (credits minus debits) after each row
func (s *LedgerService) Statement(partyID string) LedgerStatement {
	statement := LedgerStatement{
		PartyID:      partyID,
		Rows:         []StatementRow{},
		TotalDebits:  decimal.Zero,
		TotalCredits: decimal.Zero,
	}
	if partyID != "" {
		statement.PartyName = s.store.PartyName(partyID)
	}

	names := map[string]string{}
	for _, p := range s.store.Parties() {
		names[p.ID] = p.Name
	}

	running := decimal.Zero
	for _, e := range s.store.LedgerEntries() {
		if partyID != "" && e.PartyID != partyID {
			continue
		}
		statement.TotalDebits = statement.TotalDebits.Add(e.DebitAmount())
		statement.TotalCredits = statement.TotalCredits.Add(e.CreditAmount())
		running = running.Add(e.CreditAmount()).Sub(e.DebitAmount())

		name, ok := names[e.PartyID]
		if !ok {
			name = models.UnknownParty().Name
		}
		statement.Rows = append(statement.Rows, StatementRow{
			LedgerEntry: e,
			PartyName:   name,
			Balance:     models.NewBalance(running),
		})
	}
	statement.Closing = models.NewBalance(running)
	return statement
}

const salesVoucherMessage = "Sales vouchers are posted by invoices"

func duplicateVoucher(voucherType models.VoucherType, voucherNo int) error {
	return fmt.Errorf("%w: %s voucher %d is already used", ErrDuplicate, voucherType, voucherNo)
}

func voucherTypeList() string {
	names := make([]string, len(models.VoucherTypes))
	for i, t := range models.VoucherTypes {
		names[i] = string(t)
	}
	return strings.Join(names, " ")
}
