package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	fulfillmentapp "github.com/sellerops/backend/internal/application/fulfillment"
	"github.com/sellerops/backend/internal/domain/shared"
)

// FulfillmentHandler handles allocation and outstanding-purchase endpoints
type FulfillmentHandler struct {
	BaseHandler
	service *fulfillmentapp.FulfillmentService
}

// NewFulfillmentHandler creates a new FulfillmentHandler
func NewFulfillmentHandler(service *fulfillmentapp.FulfillmentService) *FulfillmentHandler {
	return &FulfillmentHandler{service: service}
}

// RegisterRoutes registers fulfillment routes
func (h *FulfillmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/fulfillment")
	{
		group.POST("/allocations", h.RunAllocation)
		group.GET("/outstanding", h.OutstandingPurchases)
		group.POST("/picklist", h.BuildPicklist)
	}
}

// RunAllocation runs one allocation pass over the current pending orders
// and stock snapshot, returning the per-line results and the aggregate
// feasibility report. Callers that also need the export document must reuse
// this response via the picklist endpoint rather than run a second pass.
func (h *FulfillmentHandler) RunAllocation(c *gin.Context) {
	resp, err := h.service.RunAllocation(c.Request.Context())
	if err != nil {
		h.InternalError(c, err.Error())
		return
	}
	h.Success(c, resp)
}

// OutstandingPurchases returns the netted outstanding purchase volume per
// barcode.
func (h *FulfillmentHandler) OutstandingPurchases(c *gin.Context) {
	resp, err := h.service.OutstandingPurchases(c.Request.Context())
	if err != nil {
		h.InternalError(c, err.Error())
		return
	}
	h.Success(c, resp)
}

// BuildPicklist regroups a previously returned allocation result set into
// the location-ordered export document. The result set travels in the
// request body so the document is guaranteed to match what the caller is
// already displaying.
func (h *FulfillmentHandler) BuildPicklist(c *gin.Context) {
	var run fulfillmentapp.AllocationRunResponse
	if err := c.ShouldBindJSON(&run); err != nil {
		h.BadRequest(c, "invalid allocation result payload: "+err.Error())
		return
	}
	doc, err := fulfillmentapp.BuildPicklist(&run)
	if err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			h.BadRequest(c, domainErr.Message)
			return
		}
		h.InternalError(c, err.Error())
		return
	}
	h.Success(c, doc)
}
