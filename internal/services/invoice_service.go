package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gstledger/ledger-api/internal/models"
	"github.com/gstledger/ledger-api/pkg/logger"
)

// InvoiceService couples the invoice register with the ledger: every invoice
// it creates gets a Sales entry with the same number, and deleting an invoice
// removes that entry first.
type InvoiceService struct {
	store *AccountingStore
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(store *AccountingStore) *InvoiceService {
	return &InvoiceService{store: store}
}

// CreateInvoiceRequest is the input for a new invoice. InvoiceNo is taken
// from the register when omitted.
type CreateInvoiceRequest struct {
	InvoiceNo *int   `json:"invoice_no,omitempty"`
	PartyID   string `json:"party_id" validate:"required"`
	Date      string `json:"date" validate:"required"`
	models.InvoiceDetails
	Lines []models.InvoiceLine `json:"items" validate:"required,min=1,dive"`
}

// ReviseInvoiceRequest is a partial invoice update. When Lines is set the
// items, totals and amount in words are rebuilt from it.
type ReviseInvoiceRequest struct {
	models.UpdateInvoiceRequest
	Lines *[]models.InvoiceLine `json:"lines,omitempty"`
}

// List returns the invoice register, ascending by invoice number
func (s *InvoiceService) List() []models.Invoice {
	return s.store.Invoices()
}

// Get returns one invoice
func (s *InvoiceService) Get(id string) (models.Invoice, error) {
	inv, ok := s.store.FindInvoice(id)
	if !ok {
		return models.Invoice{}, ErrNotFound
	}
	return inv, nil
}

// NextNumber returns the number the next invoice would get
func (s *InvoiceService) NextNumber() int {
	return s.store.NextInvoiceNo()
}

// CreateInvoice builds the invoice from its lines, stores it and posts the
// paired Sales debit. If the ledger write fails the invoice is deleted again.
func (s *InvoiceService) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (models.Invoice, error) {
	req.PartyID = strings.TrimSpace(req.PartyID)
	errs := fieldErrors{}
	date, err := models.FormatDisplayDate(strings.TrimSpace(req.Date))
	if req.Date != "" && err != nil {
		errs.add("date", "must be a date in YYYY-MM-DD form")
	}
	checkLines(errs, "items", req.Lines)
	if req.InvoiceNo != nil && *req.InvoiceNo < 1 {
		errs.add("invoice_no", "must be positive")
	}
	if err := errs.merge(validateStruct(&req)); err != nil {
		return models.Invoice{}, err
	}

	party, ok := s.store.FindParty(req.PartyID)
	if !ok {
		return models.Invoice{}, ErrUnknownParty
	}

	items := models.NewInvoiceItems(req.Lines)
	totalQuantity, totalAmount := models.ComputeTotals(items)
	invoiceNo := s.store.NextInvoiceNo()
	if req.InvoiceNo != nil {
		invoiceNo = *req.InvoiceNo
	}

	invoice, err := s.store.AddInvoice(ctx, models.Invoice{
		InvoiceNo:      invoiceNo,
		Date:           date,
		PartyID:        party.ID,
		Party:          party,
		InvoiceDetails: req.InvoiceDetails,
		Items:          items,
		TotalQuantity:  totalQuantity,
		TotalAmount:    totalAmount,
		AmountInWords:  AmountInWords(totalAmount),
	})
	if err != nil {
		return models.Invoice{}, err
	}

	debit := totalAmount
	_, err = s.store.AddLedgerEntry(ctx, models.LedgerEntry{
		Date:        date,
		PartyID:     party.ID,
		Particulars: models.SalesParticulars,
		VoucherType: models.VoucherSales,
		VoucherNo:   invoiceNo,
		Debit:       &debit,
	})
	if err != nil {
		if rollbackErr := s.store.DeleteInvoice(ctx, invoice.ID); rollbackErr != nil {
			logger.Error("Failed to remove invoice after ledger write failed",
				"invoice_id", invoice.ID,
				"invoice_no", invoiceNo,
				"error", rollbackErr,
			)
			return models.Invoice{}, errors.Join(err, rollbackErr)
		}
		return models.Invoice{}, err
	}

	logger.Info("Invoice created", "invoice_id", invoice.ID, "invoice_no", invoiceNo, "total", totalAmount.StringFixed(2))
	return invoice, nil
}

// DeleteInvoice removes the paired Sales entry, then the invoice itself
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id string) error {
	invoice, ok := s.store.FindInvoice(id)
	if !ok {
		return ErrNotFound
	}
	if entry, ok := s.store.FindSalesEntry(invoice.InvoiceNo); ok {
		if err := s.store.DeleteLedgerEntry(ctx, entry.ID); err != nil {
			return err
		}
	}
	return s.store.DeleteInvoice(ctx, id)
}

// ReviseInvoice applies a partial update. The paired Sales entry follows
// changes to the number, date and total; if it cannot, the invoice is
// restored to its previous values.
func (s *InvoiceService) ReviseInvoice(ctx context.Context, id string, req ReviseInvoiceRequest) (models.Invoice, error) {
	current, ok := s.store.FindInvoice(id)
	if !ok {
		return models.Invoice{}, ErrNotFound
	}

	update := req.UpdateInvoiceRequest
	errs := fieldErrors{}
	if update.Date != nil {
		date, err := models.FormatDisplayDate(strings.TrimSpace(*update.Date))
		if err != nil {
			errs.add("date", "must be a date in YYYY-MM-DD form")
		}
		update.Date = &date
	}
	if update.InvoiceNo != nil && *update.InvoiceNo < 1 {
		errs.add("invoice_no", "must be positive")
	}
	if req.Lines != nil {
		if len(*req.Lines) == 0 {
			errs.add("lines", "must have at least 1 entries")
		}
		checkLines(errs, "lines", *req.Lines)
		for i, line := range *req.Lines {
			if strings.TrimSpace(line.Description) == "" {
				errs.add(fmt.Sprintf("lines[%d].description", i), "is required")
			}
		}
	}
	if err := errs.merge(nil); err != nil {
		return models.Invoice{}, err
	}

	if req.Lines != nil {
		items := models.NewInvoiceItems(*req.Lines)
		totalQuantity, totalAmount := models.ComputeTotals(items)
		words := AmountInWords(totalAmount)
		update.Items = &items
		update.TotalQuantity = &totalQuantity
		update.TotalAmount = &totalAmount
		update.AmountInWords = &words
	}

	if err := s.store.UpdateInvoice(ctx, id, update); err != nil {
		return models.Invoice{}, err
	}

	if entry, ok := s.store.FindSalesEntry(current.InvoiceNo); ok {
		paired := models.UpdateLedgerEntryRequest{
			Date:      update.Date,
			VoucherNo: update.InvoiceNo,
			Debit:     update.TotalAmount,
		}
		if err := s.store.UpdateLedgerEntry(ctx, entry.ID, paired); err != nil {
			if rollbackErr := s.store.UpdateInvoice(ctx, id, update.Revert(current)); rollbackErr != nil {
				logger.Error("Failed to restore invoice after ledger update failed",
					"invoice_id", id,
					"invoice_no", current.InvoiceNo,
					"error", rollbackErr,
				)
				return models.Invoice{}, errors.Join(err, rollbackErr)
			}
			return models.Invoice{}, err
		}
	}

	revised, _ := s.store.FindInvoice(id)
	return revised, nil
}

func checkLines(errs fieldErrors, field string, lines []models.InvoiceLine) {
	for i, line := range lines {
		if !line.Quantity.IsPositive() {
			errs.add(fmt.Sprintf("%s[%d].quantity", field, i), "must be greater than zero")
		}
		if !line.Rate.IsPositive() {
			errs.add(fmt.Sprintf("%s[%d].rate", field, i), "must be greater than zero")
		}
	}
}
