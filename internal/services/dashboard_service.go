package services

import (
	"github.com/gstledger/ledger-api/internal/models"
	"github.com/shopspring/decimal"
)

// recentInvoiceLimit is how many invoices the dashboard lists
const recentInvoiceLimit = 5

// DashboardSummary holds the headline figures of the business
type DashboardSummary struct {
	TotalSales     decimal.Decimal  `json:"total_sales"`
	InvoiceCount   int              `json:"invoice_count"`
	PartyCount     int              `json:"party_count"`
	AverageInvoice decimal.Decimal  `json:"average_invoice"`
	TotalDebits    decimal.Decimal  `json:"total_debits"`
	TotalCredits   decimal.Decimal  `json:"total_credits"`
	NetBalance     models.Balance   `json:"net_balance"`
	RecentInvoices []models.Invoice `json:"recent_invoices"`
}

// DashboardService derives summary figures from the snapshot
type DashboardService struct {
	store *AccountingStore
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(store *AccountingStore) *DashboardService {
	return &DashboardService{store: store}
}

// Summary computes the dashboard figures
func (s *DashboardService) Summary() DashboardSummary {
	invoices := s.store.Invoices()

	recent := make([]models.Invoice, 0, recentInvoiceLimit)
	for i := len(invoices) - 1; i >= 0 && len(recent) < recentInvoiceLimit; i-- {
		recent = append(recent, invoices[i])
	}

	return DashboardSummary{
		TotalSales:     s.store.TotalSales(),
		InvoiceCount:   len(invoices),
		PartyCount:     len(s.store.Parties()),
		AverageInvoice: s.store.AverageInvoice(),
		TotalDebits:    s.store.TotalDebits(""),
		TotalCredits:   s.store.TotalCredits(""),
		NetBalance:     s.store.NetBalance(""),
		RecentInvoices: recent,
	}
}
