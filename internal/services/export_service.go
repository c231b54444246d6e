package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gstledger/ledger-api/internal/models"
	"github.com/gstledger/ledger-api/internal/storage"
	"github.com/gstledger/ledger-api/pkg/logger"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// invoiceArchiveDir is the storage subdirectory generated invoices are kept in
const invoiceArchiveDir = "invoices"

// ExportService renders invoices and ledger statements as downloadable documents
type ExportService struct {
	store   *AccountingStore
	ledger  *LedgerService
	storage *storage.LocalStorage
}

// NewExportService creates a new export service. A nil storage disables archiving.
func NewExportService(store *AccountingStore, ledger *LedgerService, storage *storage.LocalStorage) *ExportService {
	return &ExportService{store: store, ledger: ledger, storage: storage}
}

// InvoiceFilename is the download name of an invoice document
func InvoiceFilename(invoiceNo int) string {
	return fmt.Sprintf("Invoice_%d.pdf", invoiceNo)
}

// InvoicePDF renders an A4 tax invoice and archives a copy when storage is configured
func (s *ExportService) InvoicePDF(invoiceID string) ([]byte, string, error) {
	invoice, ok := s.store.FindInvoice(invoiceID)
	if !ok {
		return nil, "", ErrNotFound
	}
	company := s.store.Company()

	data, err := renderInvoicePDF(company, invoice)
	if err != nil {
		return nil, "", err
	}

	filename := InvoiceFilename(invoice.InvoiceNo)
	if s.storage != nil {
		if path, err := s.storage.Save(data, filename, invoiceArchiveDir); err != nil {
			logger.Warn("Failed to archive invoice PDF", "invoice_no", invoice.InvoiceNo, "error", err)
		} else {
			logger.Debug("Archived invoice PDF", "invoice_no", invoice.InvoiceNo, "path", path)
		}
	}
	return data, filename, nil
}

func renderInvoicePDF(company models.Company, invoice models.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	const width = 186.0
	half := width / 2

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(width, 9, "TAX INVOICE", "", 1, "C", false, 0, "")

	// Seller and invoice reference block
	top := pdf.GetY()
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(half, 6, tr(company.Name), "LT", 2, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, line := range company.Address {
		pdf.CellFormat(half, 5, tr(line), "L", 2, "L", false, 0, "")
	}
	if company.GSTIN != "" {
		pdf.CellFormat(half, 5, "GSTIN/UIN: "+company.GSTIN, "L", 2, "L", false, 0, "")
	}
	if company.State != "" {
		pdf.CellFormat(half, 5, fmt.Sprintf("State Name: %s, Code: %s", tr(company.State), company.StateCode), "L", 2, "L", false, 0, "")
	}
	sellerBottom := pdf.GetY()

	pdf.SetXY(12+half, top)
	refs := [][2]string{
		{"Invoice No.", fmt.Sprintf("%d", invoice.InvoiceNo)},
		{"Dated", invoice.Date},
		{"Delivery Note", invoice.DeliveryNote},
		{"Mode/Terms of Payment", invoice.ModeOfPayment},
		{"Reference No.", joinNonEmpty(" & ", invoice.ReferenceNo, invoice.ReferenceDate)},
		{"Other References", invoice.OtherReferences},
		{"Buyer's Order No.", joinNonEmpty(" dated ", invoice.BuyerOrderNo, invoice.BuyerOrderDate)},
		{"Dispatch Doc No.", invoice.DispatchDocNo},
		{"Delivery Note Date", invoice.DeliveryNoteDate},
		{"Dispatched through", invoice.DispatchedThrough},
		{"Destination", invoice.Destination},
		{"Terms of Delivery", invoice.TermsOfDelivery},
	}
	for _, ref := range refs {
		pdf.SetX(12 + half)
		pdf.SetFont("Arial", "", 8)
		pdf.CellFormat(half*0.45, 5, ref[0], "LTR", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "B", 8)
		pdf.CellFormat(half*0.55, 5, tr(ref[1]), "TR", 1, "L", false, 0, "")
	}
	refBottom := pdf.GetY()
	if sellerBottom > refBottom {
		refBottom = sellerBottom
	}
	pdf.SetY(refBottom)

	// Buyer block
	party := invoice.Party
	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(width, 5, "Buyer (Bill to)", "LTR", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(width, 5, tr(party.Name), "LR", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, line := range party.Address {
		pdf.CellFormat(width, 5, tr(line), "LR", 1, "L", false, 0, "")
	}
	if party.District != "" {
		pdf.CellFormat(width, 5, tr(party.District), "LR", 1, "L", false, 0, "")
	}
	if party.GSTIN != nil && *party.GSTIN != "" {
		pdf.CellFormat(width, 5, "GSTIN/UIN: "+*party.GSTIN, "LR", 1, "L", false, 0, "")
	}
	if party.State != "" {
		pdf.CellFormat(width, 5, fmt.Sprintf("State Name: %s, Code: %s", tr(party.State), party.StateCode), "LR", 1, "L", false, 0, "")
	}

	// Items table
	cols := []struct {
		title string
		width float64
		align string
	}{
		{"Sl No.", 12, "C"},
		{"Description of Goods", 74, "L"},
		{"Quantity", 28, "R"},
		{"Rate", 24, "R"},
		{"per", 14, "C"},
		{"Amount", 34, "R"},
	}
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(235, 235, 235)
	for _, c := range cols {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, item := range invoice.Items {
		values := []string{
			fmt.Sprintf("%d", item.SlNo),
			tr(item.Description),
			item.Quantity.String() + " " + item.Unit,
			models.FormatCurrency(item.Rate),
			item.Per,
			models.FormatCurrency(item.Amount),
		}
		for i, c := range cols {
			pdf.CellFormat(c.width, 6, values[i], "LR", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(cols[0].width+cols[1].width, 7, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(cols[2].width, 7, invoice.TotalQuantity.String(), "1", 0, "R", false, 0, "")
	pdf.CellFormat(cols[3].width+cols[4].width, 7, "", "1", 0, "", false, 0, "")
	pdf.CellFormat(cols[5].width, 7, "INR "+models.FormatCurrency(invoice.TotalAmount), "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(width, 5, "Amount Chargeable (in words)", "LR", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 9)
	pdf.MultiCell(width, 5, invoice.AmountInWords, "LRB", "L", false)

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(width, 5, "for "+tr(company.Name), "", 1, "R", false, 0, "")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(width, 5, "Authorised Signatory", "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "I", 7)
	pdf.CellFormat(width, 5, "This is a Computer Generated Invoice", "", 1, "C", false, 0, "")

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice %d: %w", invoice.InvoiceNo, err)
	}
	return buf.Bytes(), nil
}

// LedgerXLSX renders the ledger statement (optionally for one party) as a workbook
func (s *ExportService) LedgerXLSX(partyID string) ([]byte, string, error) {
	statement := s.ledger.Statement(partyID)

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Ledger"
	_ = f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	moneyStyle, _ := f.NewStyle(&excelize.Style{NumFmt: 4})

	title := "Ledger Statement"
	if statement.PartyName != "" {
		title += " - " + statement.PartyName
	}
	_ = f.SetCellValue(sheet, "A1", title)

	headers := []string{"Date", "Party", "Particulars", "Voucher Type", "Voucher No.", "Debit", "Credit", "Balance"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		_ = f.SetCellValue(sheet, cell, h)
	}
	_ = f.SetCellStyle(sheet, "A3", "H3", headerStyle)

	row := 4
	for _, r := range statement.Rows {
		values := []interface{}{
			r.Date,
			r.PartyName,
			r.Particulars,
			string(r.VoucherType),
			r.VoucherNo,
			nil,
			nil,
			r.Balance.String(),
		}
		if r.Debit != nil {
			values[5] = r.Debit.InexactFloat64()
		}
		if r.Credit != nil {
			values[6] = r.Credit.InexactFloat64()
		}
		for i, v := range values {
			if v == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", row), "Total")
	_ = f.SetCellValue(sheet, fmt.Sprintf("F%d", row), statement.TotalDebits.InexactFloat64())
	_ = f.SetCellValue(sheet, fmt.Sprintf("G%d", row), statement.TotalCredits.InexactFloat64())
	_ = f.SetCellValue(sheet, fmt.Sprintf("H%d", row), statement.Closing.String())
	_ = f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("H%d", row), headerStyle)
	_ = f.SetCellStyle(sheet, "F4", fmt.Sprintf("G%d", row), moneyStyle)

	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "C", 28)
	_ = f.SetColWidth(sheet, "D", "E", 14)
	_ = f.SetColWidth(sheet, "F", "H", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	return buf.Bytes(), ledgerFilename(statement, "xlsx"), nil
}

func ledgerFilename(statement LedgerStatement, ext string) string {
	if statement.PartyName == "" {
		return "Ledger." + ext
	}
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return '_'
		}
	}, statement.PartyName)
	return "Ledger_" + name + "." + ext
}

func joinNonEmpty(sep string, values ...string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}
