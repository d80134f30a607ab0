package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/realtorcrm/authsvc/domain"
)

// LeadHandlers exposes the captured-leads views for realtor accounts
type LeadHandlers struct {
	leadRepo domain.LeadRepository
}

// NewLeadHandlers creates new lead handlers
func NewLeadHandlers(leadRepo domain.LeadRepository) *LeadHandlers {
	return &LeadHandlers{leadRepo: leadRepo}
}

// List returns the authenticated realtor's captured leads
func (h *LeadHandlers) List(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	leads, err := h.leadRepo.ListByRealtor(c.Request.Context(), userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load leads")
		return
	}

	respond(c, http.StatusOK, "OK", gin.H{"leads": leads})
}
