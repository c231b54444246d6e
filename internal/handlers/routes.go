package handlers

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the accounting API on v1. Every route except health
// sits behind protect.
func RegisterRoutes(v1 *gin.RouterGroup, h *Handlers, protect gin.HandlerFunc) {
	// Health check (public)
	v1.GET("/health", h.Health.Index)
	v1.GET("/states", h.Company.States)

	protected := v1.Group("")
	protected.Use(protect)
	{
		protected.GET("/dashboard", h.Dashboard.Index)
		protected.POST("/refresh", h.Dashboard.Refresh)

		protected.GET("/company", h.Company.Show)
		protected.PUT("/company", h.Company.Update)

		parties := protected.Group("/parties")
		{
			parties.GET("", h.Party.Index)
			parties.POST("", h.Party.Create)
			parties.PATCH("/:party_id", h.Party.Update)
			parties.DELETE("/:party_id", h.Party.Delete)
		}

		// Static routes first so "next_number" is not matched as :invoice_id
		invoices := protected.Group("/invoices")
		{
			invoices.GET("", h.Invoice.Index)
			invoices.POST("", h.Invoice.Create)
			invoices.GET("/next_number", h.Invoice.NextNumber)
			invoices.GET("/export.csv", h.Invoice.ExportCSV)
			invoices.GET("/:invoice_id", h.Invoice.Show)
			invoices.PATCH("/:invoice_id", h.Invoice.Update)
			invoices.DELETE("/:invoice_id", h.Invoice.Delete)
			invoices.GET("/:invoice_id/pdf", h.Invoice.PDF)
		}

		ledger := protected.Group("/ledger")
		{
			ledger.GET("", h.Ledger.Index)
			ledger.POST("", h.Ledger.Create)
			ledger.GET("/next_voucher_no", h.Ledger.NextVoucherNo)
			ledger.GET("/export.xlsx", h.Ledger.ExportXLSX)
			ledger.GET("/export.csv", h.Ledger.ExportCSV)
			ledger.PATCH("/:entry_id", h.Ledger.Update)
			ledger.DELETE("/:entry_id", h.Ledger.Delete)
		}
	}
}
