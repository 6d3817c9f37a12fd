package handler

import (
	"fmt"
	"net/url"

	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/service"
	"github.com/gin-gonic/gin"
)

// DashboardHandler exposes the venue overview and inventory export.
type DashboardHandler struct {
	svc       *service.DashboardService
	exportSvc *service.ExportService
}

func NewDashboardHandler(svc *service.DashboardService, exportSvc *service.ExportService) *DashboardHandler {
	return &DashboardHandler{svc: svc, exportSvc: exportSvc}
}

// GetOverview
// GET /api/v1/venues/:venueId/dashboard
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	overview, err := h.svc.GetOverview(c.Request.Context(), c.Param("venueId"))
	if err != nil {
		InternalError(c, "failed to load dashboard: "+err.Error())
		return
	}
	Success(c, overview)
}

// ExportInventory
// GET /api/v1/venues/:venueId/inventory-export
func (h *DashboardHandler) ExportInventory(c *gin.Context) {
	f, fileName, err := h.exportSvc.ExportInventory(c.Request.Context(), c.Param("venueId"))
	if err != nil {
		InternalError(c, "failed to export inventory: "+err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, url.PathEscape(fileName)))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "failed to write export: "+err.Error())
	}
}
