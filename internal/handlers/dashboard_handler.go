package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gstledger/ledger-api/internal/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
	store            *services.AccountingStore
}

func NewDashboardHandler(dashboardService *services.DashboardService, store *services.AccountingStore) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, store: store}
}

// @Summary Dashboard
// @Description Sales, balances and the five most recent invoices
// @Tags Dashboard
// @Produce json
// @Success 200 {object} services.DashboardSummary
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"loading": h.store.Loading(),
		"summary": h.dashboardService.Summary(),
	})
}

// @Summary Refresh Data
// @Description Reload company, parties, invoices and ledger entries from the database
// @Tags Dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Security BearerAuth
// @Router /refresh [post]
func (h *DashboardHandler) Refresh(c *gin.Context) {
	if err := h.store.RefreshData(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":         h.store.State(),
		"parties":        len(h.store.Parties()),
		"invoices":       len(h.store.Invoices()),
		"ledger_entries": len(h.store.LedgerEntries()),
	})
}
