package handler

import (
	"errors"

	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/repository"
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/service"
	"github.com/gin-gonic/gin"
)

// VenueHandler exposes venue settings.
type VenueHandler struct {
	svc *service.VenueService
}

func NewVenueHandler(svc *service.VenueService) *VenueHandler {
	return &VenueHandler{svc: svc}
}

// GetSettings
// GET /api/v1/venues/:venueId/settings
func (h *VenueHandler) GetSettings(c *gin.Context) {
	venue, err := h.svc.GetVenue(c.Request.Context(), c.Param("venueId"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "venue not found")
			return
		}
		InternalError(c, "failed to get venue: "+err.Error())
		return
	}
	Success(c, venue)
}

// UpdateSettings
// PUT /api/v1/venues/:venueId/settings
func (h *VenueHandler) UpdateSettings(c *gin.Context) {
	var req service.UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid payload: "+err.Error())
		return
	}

	venue, err := h.svc.UpdateVenue(c.Request.Context(), c.Param("venueId"), GetUserID(c), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "venue not found")
			return
		}
		InternalError(c, "failed to update venue: "+err.Error())
		return
	}
	Success(c, venue)
}
