package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gstledger/ledger-api/internal/models"
	"github.com/gstledger/ledger-api/internal/services"
)

type PartyHandler struct {
	partyService *services.PartyService
}

func NewPartyHandler(partyService *services.PartyService) *PartyHandler {
	return &PartyHandler{partyService: partyService}
}

// @Summary List Parties
// @Description Get the party directory, most recently created first
// @Tags Parties
// @Produce json
// @Success 200 {array} models.Party
// @Security BearerAuth
// @Router /parties [get]
func (h *PartyHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"parties": h.partyService.List()})
}

// @Summary Create Party
// @Description Add a customer or vendor; the state code is derived from the state name
// @Tags Parties
// @Accept json
// @Produce json
// @Param request body services.CreatePartyRequest true "Party Data"
// @Success 201 {object} models.Party
// @Failure 400 {object} map[string]interface{}
// @Failure 502 {object} map[string]string
// @Security BearerAuth
// @Router /parties [post]
func (h *PartyHandler) Create(c *gin.Context) {
	var req services.CreatePartyRequest
	if err := BindNestedOrFlat(c, "party", &req); err != nil {
		bindError(c, err)
		return
	}

	party, err := h.partyService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"party": party})
}

// @Summary Update Party
// @Description Partially update a party; only the supplied fields change
// @Tags Parties
// @Accept json
// @Produce json
// @Param party_id path string true "Party ID"
// @Param request body models.UpdatePartyRequest true "Fields to change"
// @Success 200 {object} models.Party
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /parties/{party_id} [patch]
func (h *PartyHandler) Update(c *gin.Context) {
	var req models.UpdatePartyRequest
	if err := BindNestedOrFlat(c, "party", &req); err != nil {
		bindError(c, err)
		return
	}

	party, err := h.partyService.Update(c.Request.Context(), c.Param("party_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"party": party})
}

// @Summary Delete Party
// @Description Delete a party. Invoices and ledger entries that reference it are kept.
// @Tags Parties
// @Param party_id path string true "Party ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /parties/{party_id} [delete]
func (h *PartyHandler) Delete(c *gin.Context) {
	if err := h.partyService.Delete(c.Request.Context(), c.Param("party_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
