package handlers

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/gstledger/ledger-api/internal/repository"
	"github.com/gstledger/ledger-api/internal/services"
	"github.com/gstledger/ledger-api/pkg/logger"
)

// Handlers holds all handler instances
type Handlers struct {
	Health    *HealthHandler
	Company   *CompanyHandler
	Party     *PartyHandler
	Invoice   *InvoiceHandler
	Ledger    *LedgerHandler
	Dashboard *DashboardHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(svcs.Store),
		Company:   NewCompanyHandler(svcs.Store),
		Party:     NewPartyHandler(svcs.Party),
		Invoice:   NewInvoiceHandler(svcs.Invoice, svcs.Export, svcs.Report),
		Ledger:    NewLedgerHandler(svcs.Ledger, svcs.Export, svcs.Report),
		Dashboard: NewDashboardHandler(svcs.Dashboard, svcs.Store),
	}
}

type HealthHandler struct {
	store *services.AccountingStore
}

func NewHealthHandler(store *services.AccountingStore) *HealthHandler {
	return &HealthHandler{store: store}
}

// @Summary Health Check
// @Description Checks if the API is running and reports the snapshot state
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"service":  "ledger-api",
		"version":  "1.0.0",
		"snapshot": h.store.State(),
	})
}

// persistenceMessage is what clients see for any backend failure
const persistenceMessage = "The change could not be saved. Please try again."

// respondError maps service errors onto HTTP responses
func respondError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verr.Fields})
	case errors.Is(err, services.ErrUnknownParty):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "party does not exist"})
	case errors.Is(err, repository.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "a record with the same number already exists"})
	case errors.Is(err, services.ErrLoadInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "data is already being refreshed"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	case errors.Is(err, services.ErrPersistence):
		logger.Error("Persistence failure", "path", c.FullPath(), "error", err)
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.WithScope(func(scope *sentry.Scope) {
				scope.SetTag("route", c.FullPath())
				hub.CaptureException(err)
			})
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": persistenceMessage})
	default:
		logger.Error("Unexpected error", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindError reports a malformed request body
func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
