package handler

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/repository"
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/service"
	"github.com/gin-gonic/gin"
)

// POHandler exposes the purchase order lifecycle, exports and attachments.
type POHandler struct {
	svc           *service.ProcurementService
	exportSvc     *service.ExportService
	attachmentSvc *service.AttachmentService
}

func NewPOHandler(svc *service.ProcurementService, exportSvc *service.ExportService, attachmentSvc *service.AttachmentService) *POHandler {
	return &POHandler{
		svc:           svc,
		exportSvc:     exportSvc,
		attachmentSvc: attachmentSvc,
	}
}

// ListPOs
// GET /api/v1/venues/:venueId/purchase-orders?supplier_id=xxx&status=xxx&search=xxx
func (h *POHandler) ListPOs(c *gin.Context) {
	venueID := c.Param("venueId")
	page, pageSize := GetPagination(c)
	filters := map[string]string{
		"supplier_id": c.Query("supplier_id"),
		"status":      c.Query("status"),
		"search":      c.Query("search"),
	}

	items, total, err := h.svc.ListPOs(c.Request.Context(), venueID, page, pageSize, filters)
	if err != nil {
		InternalError(c, "failed to list purchase orders: "+err.Error())
		return
	}
	Success(c, paginated(items, page, pageSize, total))
}

// GetPO
// GET /api/v1/venues/:venueId/purchase-orders/:id
func (h *POHandler) GetPO(c *gin.Context) {
	po, err := h.svc.GetPO(c.Request.Context(), c.Param("venueId"), c.Param("id"))
	if err != nil {
		NotFound(c, "purchase order not found")
		return
	}
	Success(c, po)
}

// ListActivity
// GET /api/v1/venues/:venueId/purchase-orders/:id/activity
func (h *POHandler) ListActivity(c *gin.Context) {
	page, pageSize := GetPagination(c)
	logs, total, err := h.svc.ListActivity(c.Request.Context(), c.Param("venueId"), c.Param("id"), page, pageSize)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "purchase order not found")
			return
		}
		InternalError(c, "failed to list activity: "+err.Error())
		return
	}
	Success(c, paginated(logs, page, pageSize, total))
}

// CreatePO
// POST /api/v1/venues/:venueId/purchase-orders
func (h *POHandler) CreatePO(c *gin.Context) {
	var req service.CreatePORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid payload: "+err.Error())
		return
	}

	po, err := h.svc.CreatePO(c.Request.Context(), c.Param("venueId"), GetUserID(c), &req)
	if err != nil {
		InternalError(c, "failed to create purchase order: "+err.Error())
		return
	}
	Created(c, po)
}

// UpdatePO
// PUT /api/v1/venues/:venueId/purchase-orders/:id
func (h *POHandler) UpdatePO(c *gin.Context) {
	var req service.UpdatePORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid payload: "+err.Error())
		return
	}

	po, err := h.svc.UpdatePO(c.Request.Context(), c.Param("venueId"), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "purchase order not found")
			return
		}
		BadRequest(c, "failed to update purchase order: "+err.Error())
		return
	}
	Success(c, po)
}

// UpdateFees
// PUT /api/v1/venues/:venueId/purchase-orders/:id/fees
func (h *POHandler) UpdateFees(c *gin.Context) {
	var req service.UpdateFeesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid payload: "+err.Error())
		return
	}

	po, err := h.svc.UpdateFees(c.Request.Context(), c.Param("venueId"), c.Param("id"), GetUserID(c), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "purchase order not found")
			return
		}
		BadRequest(c, "failed to update fees: "+err.Error())
		return
	}
	Success(c, po)
}

// statusChangeRequest moves an order along the status machine.
type statusChangeRequest struct {
	Status string `json:"status" binding:"required"`
}

// ChangeStatus
// POST /api/v1/venues/:venueId/purchase-orders/:id/status
func (h *POHandler) ChangeStatus(c *gin.Context) {
	var req statusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid payload: "+err.Error())
		return
	}

	po, err := h.svc.ChangeStatus(c.Request.Context(), c.Param("venueId"), c.Param("id"), req.Status, GetUserID(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "purchase order not found")
			return
		}
		BadRequest(c, "failed to change status: "+err.Error())
		return
	}
	Success(c, po)
}

// ExportPO
// GET /api/v1/venues/:venueId/purchase-orders/:id/export
func (h *POHandler) ExportPO(c *gin.Context) {
	f, fileName, err := h.exportSvc.ExportPO(c.Request.Context(), c.Param("venueId"), c.Param("id"))
	if err != nil {
		NotFound(c, "purchase order not found")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, url.PathEscape(fileName)))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "failed to write export: "+err.Error())
	}
}

// ListAttachments
// GET /api/v1/venues/:venueId/purchase-orders/:id/attachments
func (h *POHandler) ListAttachments(c *gin.Context) {
	items, err := h.attachmentSvc.List(c.Request.Context(), c.Param("venueId"), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "purchase order not found")
			return
		}
		InternalError(c, "failed to list attachments: "+err.Error())
		return
	}
	Success(c, items)
}

// UploadAttachment
// POST /api/v1/venues/:venueId/purchase-orders/:id/attachments
func (h *POHandler) UploadAttachment(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		InternalError(c, "failed to open upload: "+err.Error())
		return
	}
	defer file.Close()

	att, err := h.attachmentSvc.Upload(c.Request.Context(), c.Param("venueId"), c.Param("id"), GetUserID(c),
		file, fileHeader.Filename, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "purchase order not found")
			return
		}
		InternalError(c, "failed to upload attachment: "+err.Error())
		return
	}
	Created(c, att)
}

// DownloadAttachment
// GET /api/v1/venues/:venueId/purchase-orders/:id/attachments/:attachmentId
func (h *POHandler) DownloadAttachment(c *gin.Context) {
	object, att, err := h.attachmentSvc.Download(c.Request.Context(), c.Param("venueId"), c.Param("id"), c.Param("attachmentId"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "attachment not found")
			return
		}
		InternalError(c, "failed to download attachment: "+err.Error())
		return
	}
	defer object.Close()

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, url.PathEscape(att.FileName)))
	c.DataFromReader(200, att.FileSize, att.MimeType, object, nil)
}

// DeleteAttachment
// DELETE /api/v1/venues/:venueId/purchase-orders/:id/attachments/:attachmentId
func (h *POHandler) DeleteAttachment(c *gin.Context) {
	if err := h.attachmentSvc.Delete(c.Request.Context(), c.Param("venueId"), c.Param("id"), c.Param("attachmentId")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "attachment not found")
			return
		}
		InternalError(c, "failed to delete attachment: "+err.Error())
		return
	}
	Success(c, nil)
}
