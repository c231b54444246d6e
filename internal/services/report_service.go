package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// ReportService produces plain CSV reports of the ledger and the sales register
type ReportService struct {
	store  *AccountingStore
	ledger *LedgerService
}

func NewReportService(store *AccountingStore, ledger *LedgerService) *ReportService {
	return &ReportService{store: store, ledger: ledger}
}

// LedgerCSV generates the ledger statement, optionally for one party
func (s *ReportService) LedgerCSV(partyID string) (*bytes.Buffer, string, error) {
	statement := s.ledger.Statement(partyID)

	records := [][]string{{"Date", "Party", "Particulars", "Voucher Type", "Voucher No.", "Debit", "Credit", "Balance"}}
	for _, r := range statement.Rows {
		debit, credit := "", ""
		if r.Debit != nil {
			debit = r.Debit.StringFixed(2)
		}
		if r.Credit != nil {
			credit = r.Credit.StringFixed(2)
		}
		records = append(records, []string{
			r.Date,
			r.PartyName,
			r.Particulars,
			string(r.VoucherType),
			fmt.Sprintf("%d", r.VoucherNo),
			debit,
			credit,
			r.Balance.Amount.StringFixed(2) + " " + string(r.Balance.Type),
		})
	}
	records = append(records, []string{
		"", "", "", "", "Total",
		statement.TotalDebits.StringFixed(2),
		statement.TotalCredits.StringFixed(2),
		statement.Closing.Amount.StringFixed(2) + " " + string(statement.Closing.Type),
	})

	b := &bytes.Buffer{}
	if err := writeCSV(b, records); err != nil {
		return nil, "", err
	}
	return b, ledgerFilename(statement, "csv"), nil
}

// SalesRegisterCSV lists every invoice with its buyer and totals
func (s *ReportService) SalesRegisterCSV() (*bytes.Buffer, error) {
	records := [][]string{{"Invoice No.", "Date", "Party", "GSTIN", "Total Quantity", "Total Amount", "Amount in Words"}}
	for _, inv := range s.store.Invoices() {
		gstin := ""
		if inv.Party.GSTIN != nil {
			gstin = *inv.Party.GSTIN
		}
		records = append(records, []string{
			fmt.Sprintf("%d", inv.InvoiceNo),
			inv.Date,
			inv.Party.Name,
			gstin,
			inv.TotalQuantity.String(),
			inv.TotalAmount.StringFixed(2),
			inv.AmountInWords,
		})
	}
	records = append(records, []string{"", "", "", "Total", "", s.store.TotalSales().StringFixed(2), ""})

	b := &bytes.Buffer{}
	if err := writeCSV(b, records); err != nil {
		return nil, err
	}
	return b, nil
}

// writeCSV writes all records and flushes, reporting the first write error
func writeCSV(out io.Writer, records [][]string) error {
	if err := csv.NewWriter(out).WriteAll(records); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}
