package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/launchperks/deals-service/internal/dto"
	"github.com/launchperks/deals-service/internal/service"
)

// DealHandler handles deal catalog requests
type DealHandler struct {
	dealService service.DealService
	responder   *Responder
}

// NewDealHandler creates a new deal handler
func NewDealHandler(dealService service.DealService, responder *Responder) *DealHandler {
	return &DealHandler{
		dealService: dealService,
		responder:   responder,
	}
}

// List returns active deals with filtering and pagination
// GET /api/deals
func (h *DealHandler) List(c *gin.Context) {
	var query dto.DealListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.responder.BindError(c, err)
		return
	}

	data, err := h.dealService.List(c.Request.Context(), &query)
	if err != nil {
		h.responder.Fail(c, err)
		return
	}

	h.responder.OK(c, "Deals retrieved successfully", data)
}

// Get returns a single deal by ID
// GET /api/deals/:dealId
func (h *DealHandler) Get(c *gin.Context) {
	deal, err := h.dealService.Get(c.Request.Context(), c.Param("dealId"))
	if err != nil {
		h.responder.Fail(c, err)
		return
	}

	h.responder.OK(c, "Deal retrieved successfully", dto.DealData{Deal: deal})
}

// Featured returns the newest featured deals
// GET /api/deals/featured
func (h *DealHandler) Featured(c *gin.Context) {
	var query dto.LimitQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.responder.BindError(c, err)
		return
	}

	deals, err := h.dealService.Featured(c.Request.Context(), query.Limit)
	if err != nil {
		h.responder.Fail(c, err)
		return
	}

	h.responder.OK(c, "Featured deals retrieved successfully", dto.DealsData{Deals: deals})
}

// Popular returns deals ordered by claim count
// GET /api/deals/popular
func (h *DealHandler) Popular(c *gin.Context) {
	var query dto.LimitQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.responder.BindError(c, err)
		return
	}

	deals, err := h.dealService.Popular(c.Request.Context(), query.Limit)
	if err != nil {
		h.responder.Fail(c, err)
		return
	}

	h.responder.OK(c, "Popular deals retrieved successfully", dto.DealsData{Deals: deals})
}

// Categories returns per-category active deal counts
// GET /api/deals/categories
func (h *DealHandler) Categories(c *gin.Context) {
	counts, err := h.dealService.Categories(c.Request.Context())
	if err != nil {
		h.responder.Fail(c, err)
		return
	}

	h.responder.OK(c, "Categories retrieved successfully", dto.CategoriesData{Categories: counts})
}
