package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/launchperks/deals-service/internal/domain"
	"github.com/launchperks/deals-service/internal/dto"
	"github.com/launchperks/deals-service/internal/service"
)

// ClaimHandler handles claim requests
type ClaimHandler struct {
	claimService service.ClaimService
	responder    *Responder
}

// NewClaimHandler creates a new claim handler
func NewClaimHandler(claimService service.ClaimService, responder *Responder) *ClaimHandler {
	return &ClaimHandler{
		claimService: claimService,
		responder:    responder,
	}
}

// Create claims a deal for the authenticated user
// POST /api/claims
func (h *ClaimHandler) Create(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		h.responder.Fail(c, domain.NewAuthenticationError("Authentication required"))
		return
	}

	var req dto.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responder.BindError(c, err)
		return
	}

	claim, err := h.claimService.Claim(c.Request.Context(), user, req.DealID)
	if err != nil {
		h.responder.Fail(c, err)
		return
	}

	h.responder.Created(c, "Deal claimed successfully", dto.ClaimData{Claim: claim})
}

// List returns the authenticated user's claims
// GET /api/claims
func (h *ClaimHandler) List(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		h.responder.Fail(c, domain.NewAuthenticationError("Authentication required"))
		return
	}

	var query dto.ClaimListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.responder.BindError(c, err)
		return
	}

	data, err := h.claimService.List(c.Request.Context(), user, &query)
	if err != nil {
		h.responder.Fail(c, err)
		return
	}

	h.responder.OK(c, "Claims retrieved successfully", data)
}

// Get returns a single claim owned by the authenticated user
// GET /api/claims/:claimId
func (h *ClaimHandler) Get(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		h.responder.Fail(c, domain.NewAuthenticationError("Authentication required"))
		return
	}

	claim, err := h.claimService.Get(c.Request.Context(), user, c.Param("claimId"))
	if err != nil {
		h.responder.Fail(c, err)
		return
	}

	h.responder.OK(c, "Claim retrieved successfully", dto.ClaimData{Claim: claim})
}

// Stats returns the authenticated user's claim statistics
// GET /api/claims/stats
func (h *ClaimHandler) Stats(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		h.responder.Fail(c, domain.NewAuthenticationError("Authentication required"))
		return
	}

	stats, err := h.claimService.Stats(c.Request.Context(), user)
	if err != nil {
		h.responder.Fail(c, err)
		return
	}

	h.responder.OK(c, "Statistics retrieved successfully", dto.ClaimStatsData{Stats: stats})
}
