package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gstledger/ledger-api/internal/services"
)

type InvoiceHandler struct {
	invoiceService *services.InvoiceService
	exportService  *services.ExportService
	reportService  *services.ReportService
}

func NewInvoiceHandler(invoiceService *services.InvoiceService, exportService *services.ExportService, reportService *services.ReportService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		exportService:  exportService,
		reportService:  reportService,
	}
}

// @Summary List Invoices
// @Description Get the invoice register in ascending invoice number order
// @Tags Invoices
// @Produce json
// @Success 200 {array} models.Invoice
// @Security BearerAuth
// @Router /invoices [get]
func (h *InvoiceHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"invoices": h.invoiceService.List()})
}

// @Summary Get Invoice
// @Description Get one invoice with its party snapshot and items
// @Tags Invoices
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {object} models.Invoice
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /invoices/{invoice_id} [get]
func (h *InvoiceHandler) Show(c *gin.Context) {
	invoice, err := h.invoiceService.Get(c.Param("invoice_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": invoice})
}

// @Summary Next Invoice Number
// @Description The number the next invoice will be given. It is not reserved.
// @Tags Invoices
// @Produce json
// @Success 200 {object} map[string]int
// @Security BearerAuth
// @Router /invoices/next_number [get]
func (h *InvoiceHandler) NextNumber(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"invoice_no": h.invoiceService.NextNumber()})
}

// @Summary Create Invoice
// @Description Create an invoice from its lines and post the paired Sales ledger debit
// @Tags Invoices
// @Accept json
// @Produce json
// @Param request body services.CreateInvoiceRequest true "Invoice Data"
// @Success 201 {object} models.Invoice
// @Failure 400 {object} map[string]interface{}
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Security BearerAuth
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req services.CreateInvoiceRequest
	if err := BindNestedOrFlat(c, "invoice", &req); err != nil {
		bindError(c, err)
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"invoice": invoice})
}

// @Summary Update Invoice
// @Description Partially update an invoice. Supplying lines rebuilds items and totals.
// @Tags Invoices
// @Accept json
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Param request body services.ReviseInvoiceRequest true "Fields to change"
// @Success 200 {object} models.Invoice
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /invoices/{invoice_id} [patch]
func (h *InvoiceHandler) Update(c *gin.Context) {
	var req services.ReviseInvoiceRequest
	if err := BindNestedOrFlat(c, "invoice", &req); err != nil {
		bindError(c, err)
		return
	}

	invoice, err := h.invoiceService.ReviseInvoice(c.Request.Context(), c.Param("invoice_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": invoice})
}

// @Summary Delete Invoice
// @Description Delete an invoice together with its paired Sales ledger entry
// @Tags Invoices
// @Param invoice_id path string true "Invoice ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /invoices/{invoice_id} [delete]
func (h *InvoiceHandler) Delete(c *gin.Context) {
	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), c.Param("invoice_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Invoice PDF
// @Description Download the tax invoice document
// @Tags Invoices
// @Produce application/pdf
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /invoices/{invoice_id}/pdf [get]
func (h *InvoiceHandler) PDF(c *gin.Context) {
	data, filename, err := h.exportService.InvoicePDF(c.Param("invoice_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

// @Summary Sales Register CSV
// @Description Download every invoice as CSV
// @Tags Invoices
// @Produce text/csv
// @Success 200 {file} file
// @Security BearerAuth
// @Router /invoices/export.csv [get]
func (h *InvoiceHandler) ExportCSV(c *gin.Context) {
	buf, err := h.reportService.SalesRegisterCSV()
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=SalesRegister.csv")
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
