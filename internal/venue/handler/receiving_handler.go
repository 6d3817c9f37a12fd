package handler

import (
	"errors"

	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/receiving"
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/repository"
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/service"
	"github.com/gin-gonic/gin"
)

// ReceivingHandler exposes the goods-receipt flow.
type ReceivingHandler struct {
	svc *service.ReceivingService
}

func NewReceivingHandler(svc *service.ReceivingService) *ReceivingHandler {
	return &ReceivingHandler{svc: svc}
}

// receivingRequest carries one edit session from the client, as the
// ordered list of actions the user performed.
type receivingRequest struct {
	Actions []receiving.Action `json:"actions"`
}

// Preview
// POST /api/v1/venues/:venueId/purchase-orders/:id/receiving/preview
func (h *ReceivingHandler) Preview(c *gin.Context) {
	var req receivingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid payload: "+err.Error())
		return
	}

	result, err := h.svc.Preview(c.Request.Context(), c.Param("venueId"), c.Param("id"), req.Actions)
	if err != nil {
		h.writeError(c, err)
		return
	}
	Success(c, result)
}

// Commit
// POST /api/v1/venues/:venueId/purchase-orders/:id/receiving/commit
func (h *ReceivingHandler) Commit(c *gin.Context) {
	var req receivingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid payload: "+err.Error())
		return
	}

	result, err := h.svc.Commit(c.Request.Context(), c.Param("venueId"), c.Param("id"), GetUserID(c), req.Actions)
	if err != nil {
		h.writeError(c, err)
		return
	}
	Success(c, result)
}

// RecalculateStatus
// POST /api/v1/venues/:venueId/purchase-orders/:id/recalculate-status
func (h *ReceivingHandler) RecalculateStatus(c *gin.Context) {
	status, err := h.svc.RecalculateStatus(c.Request.Context(), c.Param("venueId"), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	Success(c, gin.H{"status": status})
}

func (h *ReceivingHandler) writeError(c *gin.Context, err error) {
	var commitErr *receiving.CommitError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		NotFound(c, "purchase order not found")
	case errors.Is(err, receiving.ErrOrderFinalized):
		Forbidden(c, "purchase order is finalized")
	case errors.As(err, &commitErr):
		// Partial failure: the client keeps its edits and retries.
		InternalError(c, commitErr.Error())
	case errors.Is(err, receiving.ErrExceedsOrdered),
		errors.Is(err, receiving.ErrNegativeQuantity),
		errors.Is(err, receiving.ErrUnknownItem):
		BadRequest(c, err.Error())
	default:
		BadRequest(c, err.Error())
	}
}
