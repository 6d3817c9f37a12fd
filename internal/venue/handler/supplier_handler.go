package handler

import (
	"errors"

	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/repository"
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/service"
	"github.com/gin-gonic/gin"
)

// SupplierHandler exposes supplier CRUD and contact management.
type SupplierHandler struct {
	svc *service.SupplierService
}

func NewSupplierHandler(svc *service.SupplierService) *SupplierHandler {
	return &SupplierHandler{svc: svc}
}

// ListSuppliers
// GET /api/v1/venues/:venueId/suppliers?category=xxx&status=xxx&search=xxx
func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	venueID := c.Param("venueId")
	page, pageSize := GetPagination(c)
	filters := map[string]string{
		"category": c.Query("category"),
		"status":   c.Query("status"),
		"search":   c.Query("search"),
	}

	items, total, err := h.svc.ListSuppliers(c.Request.Context(), venueID, page, pageSize, filters)
	if err != nil {
		InternalError(c, "failed to list suppliers: "+err.Error())
		return
	}
	Success(c, paginated(items, page, pageSize, total))
}

// GetSupplier
// GET /api/v1/venues/:venueId/suppliers/:id
func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	supplier, err := h.svc.GetSupplier(c.Request.Context(), c.Param("venueId"), c.Param("id"))
	if err != nil {
		NotFound(c, "supplier not found")
		return
	}
	Success(c, supplier)
}

// CreateSupplier
// POST /api/v1/venues/:venueId/suppliers
func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var req service.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid payload: "+err.Error())
		return
	}

	supplier, err := h.svc.CreateSupplier(c.Request.Context(), c.Param("venueId"), GetUserID(c), &req)
	if err != nil {
		InternalError(c, "failed to create supplier: "+err.Error())
		return
	}
	Created(c, supplier)
}

// UpdateSupplier
// PUT /api/v1/venues/:venueId/suppliers/:id
func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	var req service.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid payload: "+err.Error())
		return
	}

	supplier, err := h.svc.UpdateSupplier(c.Request.Context(), c.Param("venueId"), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "supplier not found")
			return
		}
		InternalError(c, "failed to update supplier: "+err.Error())
		return
	}
	Success(c, supplier)
}

// DeleteSupplier
// DELETE /api/v1/venues/:venueId/suppliers/:id
func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
	if err := h.svc.DeleteSupplier(c.Request.Context(), c.Param("venueId"), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "supplier not found")
			return
		}
		InternalError(c, "failed to delete supplier: "+err.Error())
		return
	}
	Success(c, nil)
}

// AddContact
// POST /api/v1/venues/:venueId/suppliers/:id/contacts
func (h *SupplierHandler) AddContact(c *gin.Context) {
	var req service.AddContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid payload: "+err.Error())
		return
	}

	contact, err := h.svc.AddContact(c.Request.Context(), c.Param("venueId"), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "supplier not found")
			return
		}
		InternalError(c, "failed to add contact: "+err.Error())
		return
	}
	Created(c, contact)
}

// DeleteContact
// DELETE /api/v1/venues/:venueId/suppliers/:id/contacts/:contactId
func (h *SupplierHandler) DeleteContact(c *gin.Context) {
	if err := h.svc.DeleteContact(c.Request.Context(), c.Param("venueId"), c.Param("id"), c.Param("contactId")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "supplier not found")
			return
		}
		InternalError(c, "failed to delete contact: "+err.Error())
		return
	}
	Success(c, nil)
}
