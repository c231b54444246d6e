package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType classifies a ledger transaction; each type has its own number sequence
type VoucherType string

// Voucher type constants
const (
	VoucherReceipt  VoucherType = "Receipt"
	VoucherPayment  VoucherType = "Payment"
	VoucherSales    VoucherType = "Sales"
	VoucherPurchase VoucherType = "Purchase"
	VoucherJournal  VoucherType = "Journal"
	VoucherContra   VoucherType = "Contra"
)

// VoucherTypes lists every voucher type in display order
var VoucherTypes = []VoucherType{
	VoucherReceipt, VoucherPayment, VoucherSales, VoucherPurchase, VoucherJournal, VoucherContra,
}

// IsValid reports whether v is one of the known voucher types
func (v VoucherType) IsValid() bool {
	for _, t := range VoucherTypes {
		if t == v {
			return true
		}
	}
	return false
}

// SalesParticulars is the particulars text of the entry paired with an invoice
const SalesParticulars = "To Sales"

// LedgerEntry is a debit or credit posted against a party.
// Exactly one of Debit and Credit is expected to be set.
type LedgerEntry struct {
	ID          string           `gorm:"primaryKey;type:uuid" json:"id"`
	Date        string           `gorm:"not null;index" json:"date"`
	PartyID     string           `gorm:"column:party_id;type:uuid;index" json:"party_id"`
	Particulars string           `json:"particulars"`
	VoucherType VoucherType      `gorm:"column:voucher_type;not null;uniqueIndex:idx_ledger_entries_voucher,priority:1" json:"voucher_type"`
	VoucherNo   int              `gorm:"column:voucher_no;not null;uniqueIndex:idx_ledger_entries_voucher,priority:2" json:"voucher_no"`
	Debit       *decimal.Decimal `gorm:"type:decimal(14,2)" json:"debit,omitempty"`
	Credit      *decimal.Decimal `gorm:"type:decimal(14,2)" json:"credit,omitempty"`
	CreatedAt   time.Time        `json:"-"`
}

// TableName specifies the table name for LedgerEntry
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}

// DebitAmount returns the debit or zero when unset
func (e *LedgerEntry) DebitAmount() decimal.Decimal {
	if e.Debit == nil {
		return decimal.Zero
	}
	return *e.Debit
}

// CreditAmount returns the credit or zero when unset
func (e *LedgerEntry) CreditAmount() decimal.Decimal {
	if e.Credit == nil {
		return decimal.Zero
	}
	return *e.Credit
}

// IsSalesEntryFor reports whether e is the ledger entry paired with invoice number invoiceNo
func (e *LedgerEntry) IsSalesEntryFor(invoiceNo int) bool {
	return e.VoucherType == VoucherSales && e.VoucherNo == invoiceNo
}

// Clone returns a deep copy of the entry
func (e LedgerEntry) Clone() LedgerEntry {
	e.Debit = cloneDecimal(e.Debit)
	e.Credit = cloneDecimal(e.Credit)
	return e
}

// UpdateLedgerEntryRequest carries the fields of a partial ledger entry update.
// Nil fields are left untouched.
type UpdateLedgerEntryRequest struct {
	Date        *string          `json:"date,omitempty"`
	PartyID     *string          `json:"party_id,omitempty"`
	Particulars *string          `json:"particulars,omitempty"`
	VoucherType *VoucherType     `json:"voucher_type,omitempty"`
	VoucherNo   *int             `json:"voucher_no,omitempty"`
	Debit       *decimal.Decimal `json:"debit,omitempty"`
	Credit      *decimal.Decimal `json:"credit,omitempty"`
}

// Columns maps the provided fields to their at-rest column names
func (r *UpdateLedgerEntryRequest) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if r.Date != nil {
		cols["date"] = *r.Date
	}
	if r.PartyID != nil {
		cols["party_id"] = *r.PartyID
	}
	if r.Particulars != nil {
		cols["particulars"] = *r.Particulars
	}
	if r.VoucherType != nil {
		cols["voucher_type"] = *r.VoucherType
	}
	if r.VoucherNo != nil {
		cols["voucher_no"] = *r.VoucherNo
	}
	if r.Debit != nil {
		cols["debit"] = *r.Debit
	}
	if r.Credit != nil {
		cols["credit"] = *r.Credit
	}
	return cols
}

// ApplyTo merges the provided fields into e
func (r *UpdateLedgerEntryRequest) ApplyTo(e *LedgerEntry) {
	if r.Date != nil {
		e.Date = *r.Date
	}
	if r.PartyID != nil {
		e.PartyID = *r.PartyID
	}
	if r.Particulars != nil {
		e.Particulars = *r.Particulars
	}
	if r.VoucherType != nil {
		e.VoucherType = *r.VoucherType
	}
	if r.VoucherNo != nil {
		e.VoucherNo = *r.VoucherNo
	}
	if r.Debit != nil {
		e.Debit = cloneDecimal(r.Debit)
	}
	if r.Credit != nil {
		e.Credit = cloneDecimal(r.Credit)
	}
}

func cloneDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
