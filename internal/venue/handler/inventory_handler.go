package handler

import (
	"errors"

	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/repository"
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/service"
	"github.com/gin-gonic/gin"
)

// InventoryHandler exposes raw material CRUD and stock movements.
type InventoryHandler struct {
	svc *service.InventoryService
}

func NewInventoryHandler(svc *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// ListMaterials
// GET /api/v1/venues/:venueId/inventory?status=xxx&search=xxx&low_stock=true
func (h *InventoryHandler) ListMaterials(c *gin.Context) {
	venueID := c.Param("venueId")
	page, pageSize := GetPagination(c)
	filters := map[string]string{
		"status":    c.Query("status"),
		"search":    c.Query("search"),
		"low_stock": c.Query("low_stock"),
	}

	items, total, err := h.svc.ListMaterials(c.Request.Context(), venueID, page, pageSize, filters)
	if err != nil {
		InternalError(c, "failed to list materials: "+err.Error())
		return
	}
	Success(c, paginated(items, page, pageSize, total))
}

// GetMaterial
// GET /api/v1/venues/:venueId/inventory/:id
func (h *InventoryHandler) GetMaterial(c *gin.Context) {
	material, err := h.svc.GetMaterial(c.Request.Context(), c.Param("venueId"), c.Param("id"))
	if err != nil {
		NotFound(c, "material not found")
		return
	}
	Success(c, material)
}

// CreateMaterial
// POST /api/v1/venues/:venueId/inventory
func (h *InventoryHandler) CreateMaterial(c *gin.Context) {
	var req service.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid payload: "+err.Error())
		return
	}

	material, err := h.svc.CreateMaterial(c.Request.Context(), c.Param("venueId"), &req)
	if err != nil {
		InternalError(c, "failed to create material: "+err.Error())
		return
	}
	Created(c, material)
}

// UpdateMaterial
// PUT /api/v1/venues/:venueId/inventory/:id
func (h *InventoryHandler) UpdateMaterial(c *gin.Context) {
	var req service.UpdateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid payload: "+err.Error())
		return
	}

	material, err := h.svc.UpdateMaterial(c.Request.Context(), c.Param("venueId"), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "material not found")
			return
		}
		InternalError(c, "failed to update material: "+err.Error())
		return
	}
	Success(c, material)
}

// AdjustStock
// POST /api/v1/venues/:venueId/inventory/:id/adjust
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	var req service.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid payload: "+err.Error())
		return
	}

	txn, err := h.svc.AdjustStock(c.Request.Context(), c.Param("venueId"), c.Param("id"), GetUserID(c), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "material not found")
			return
		}
		BadRequest(c, "failed to adjust stock: "+err.Error())
		return
	}
	Success(c, txn)
}

// ListTransactions
// GET /api/v1/venues/:venueId/inventory/:id/transactions
func (h *InventoryHandler) ListTransactions(c *gin.Context) {
	page, pageSize := GetPagination(c)
	items, total, err := h.svc.ListTransactions(c.Request.Context(), c.Param("venueId"), c.Param("id"), page, pageSize)
	if err != nil {
		InternalError(c, "failed to list transactions: "+err.Error())
		return
	}
	Success(c, paginated(items, page, pageSize, total))
}
