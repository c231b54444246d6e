package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gstledger/ledger-api/internal/models"
	"github.com/gstledger/ledger-api/internal/services"
)

type LedgerHandler struct {
	ledgerService *services.LedgerService
	exportService *services.ExportService
	reportService *services.ReportService
}

func NewLedgerHandler(ledgerService *services.LedgerService, exportService *services.ExportService, reportService *services.ReportService) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
		exportService: exportService,
		reportService: reportService,
	}
}

// @Summary Ledger Statement
// @Description Ledger entries with running balance, optionally for one party
// @Tags Ledger
// @Produce json
// @Param party_id query string false "Party ID"
// @Success 200 {object} services.LedgerStatement
// @Security BearerAuth
// @Router /ledger [get]
func (h *LedgerHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, h.ledgerService.Statement(c.Query("party_id")))
}

// @Summary Next Voucher Number
// @Description The number the next voucher of a type will be given. It is not reserved.
// @Tags Ledger
// @Produce json
// @Param voucher_type query string true "Voucher type (Receipt, Payment, Sales, Purchase, Journal, Contra)"
// @Success 200 {object} map[string]int
// @Failure 400 {object} map[string]interface{}
// @Security BearerAuth
// @Router /ledger/next_voucher_no [get]
func (h *LedgerHandler) NextVoucherNo(c *gin.Context) {
	voucherType := models.VoucherType(c.Query("voucher_type"))
	n, err := h.ledgerService.NextVoucherNo(voucherType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"voucher_type": voucherType, "voucher_no": n})
}

// @Summary Post Ledger Entry
// @Description Record a debit or credit against a party
// @Tags Ledger
// @Accept json
// @Produce json
// @Param request body services.PostEntryRequest true "Entry Data"
// @Success 201 {object} models.LedgerEntry
// @Failure 400 {object} map[string]interface{}
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /ledger [post]
func (h *LedgerHandler) Create(c *gin.Context) {
	var req services.PostEntryRequest
	if err := BindNestedOrFlat(c, "entry", &req); err != nil {
		bindError(c, err)
		return
	}

	entry, err := h.ledgerService.PostEntry(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

// @Summary Update Ledger Entry
// @Description Partially update a ledger entry
// @Tags Ledger
// @Accept json
// @Produce json
// @Param entry_id path string true "Entry ID"
// @Param request body models.UpdateLedgerEntryRequest true "Fields to change"
// @Success 200 {object} models.LedgerEntry
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /ledger/{entry_id} [patch]
func (h *LedgerHandler) Update(c *gin.Context) {
	var req models.UpdateLedgerEntryRequest
	if err := BindNestedOrFlat(c, "entry", &req); err != nil {
		bindError(c, err)
		return
	}

	entry, err := h.ledgerService.EditEntry(c.Request.Context(), c.Param("entry_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

// @Summary Delete Ledger Entry
// @Tags Ledger
// @Param entry_id path string true "Entry ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /ledger/{entry_id} [delete]
func (h *LedgerHandler) Delete(c *gin.Context) {
	if err := h.ledgerService.DeleteEntry(c.Request.Context(), c.Param("entry_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Export Ledger (XLSX)
// @Tags Ledger
// @Produce application/octet-stream
// @Param party_id query string false "Party ID"
// @Success 200 {file} file
// @Security BearerAuth
// @Router /ledger/export.xlsx [get]
func (h *LedgerHandler) ExportXLSX(c *gin.Context) {
	data, filename, err := h.exportService.LedgerXLSX(c.Query("party_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// @Summary Export Ledger (CSV)
// @Tags Ledger
// @Produce text/csv
// @Param party_id query string false "Party ID"
// @Success 200 {file} file
// @Security BearerAuth
// @Router /ledger/export.csv [get]
func (h *LedgerHandler) ExportCSV(c *gin.Context) {
	buf, filename, err := h.reportService.LedgerCSV(c.Query("party_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
