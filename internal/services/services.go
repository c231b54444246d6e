package services

import (
	"github.com/gstledger/ledger-api/internal/storage"
)

// Services holds all service instances
type Services struct {
	Store     *AccountingStore
	Party     *PartyService
	Invoice   *InvoiceService
	Ledger    *LedgerService
	Dashboard *DashboardService
	Export    *ExportService
	Report    *ReportService
}

// NewServices creates all service instances around one store
func NewServices(store *AccountingStore, storage *storage.LocalStorage) *Services {
	ledgerSvc := NewLedgerService(store)

	return &Services{
		Store:     store,
		Party:     NewPartyService(store),
		Invoice:   NewInvoiceService(store),
		Ledger:    ledgerSvc,
		Dashboard: NewDashboardService(store),
		Export:    NewExportService(store, ledgerSvc, storage),
		Report:    NewReportService(store, ledgerSvc),
	}
}
