package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/gstledger/ledger-api/internal/models"
	"github.com/gstledger/ledger-api/internal/services"
)

type CompanyHandler struct {
	store *services.AccountingStore
}

func NewCompanyHandler(store *services.AccountingStore) *CompanyHandler {
	return &CompanyHandler{store: store}
}

// UpdateCompanyRequest is the body of a company profile update
type UpdateCompanyRequest struct {
	Name    string   `json:"name" binding:"required,max=100"`
	Address []string `json:"address"`
	GSTIN   string   `json:"gstin" binding:"max=15"`
	State   string   `json:"state" binding:"required"`
}

// @Summary Get Company
// @Description Get the company profile printed on invoices
// @Tags Company
// @Produce json
// @Success 200 {object} models.Company
// @Security BearerAuth
// @Router /company [get]
func (h *CompanyHandler) Show(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"company": h.store.Company()})
}

// @Summary Update Company
// @Description Replace the company profile
// @Tags Company
// @Accept json
// @Produce json
// @Param request body UpdateCompanyRequest true "Company Data"
// @Success 200 {object} models.Company
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /company [put]
func (h *CompanyHandler) Update(c *gin.Context) {
	var req UpdateCompanyRequest
	if err := BindNestedOrFlat(c, "company", &req); err != nil {
		bindError(c, err)
		return
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		bindError(c, err)
		return
	}

	company := models.Company{
		Name:      strings.TrimSpace(req.Name),
		Address:   models.SplitAddress(strings.Join(req.Address, "\n")),
		GSTIN:     strings.ToUpper(strings.TrimSpace(req.GSTIN)),
		State:     strings.TrimSpace(req.State),
		StateCode: models.LookupStateCode(req.State),
	}
	if err := h.store.SetCompany(c.Request.Context(), company); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": h.store.Company()})
}

// @Summary List States
// @Description Indian states and union territories with their GST state codes
// @Tags Company
// @Produce json
// @Success 200 {array} models.State
// @Router /states [get]
func (h *CompanyHandler) States(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"states": models.States})
}
