package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/realtorcrm/authsvc/domain"
)

// PolicyHandlers exposes role-to-route policy administration
type PolicyHandlers struct {
	PolicySvc domain.PolicyService
}

// PolicyRequest represents one policy rule
type PolicyRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

// List returns all stored policies
func (h *PolicyHandlers) List(c *gin.Context) {
	respond(c, http.StatusOK, "OK", gin.H{"policies": h.PolicySvc.GetPolicies()})
}

// Add stores a new policy rule
func (h *PolicyHandlers) Add(c *gin.Context) {
	var req PolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid policy payload", err.Error())
		return
	}

	if err := h.PolicySvc.AddPolicy(req.Role, req.Resource, req.Action); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to add policy")
		return
	}
	respond(c, http.StatusCreated, "Policy added", nil)
}

// Remove deletes a policy rule
func (h *PolicyHandlers) Remove(c *gin.Context) {
	var req PolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid policy payload", err.Error())
		return
	}

	if err := h.PolicySvc.RemovePolicy(req.Role, req.Resource, req.Action); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to remove policy")
		return
	}
	respond(c, http.StatusOK, "Policy removed", nil)
}
