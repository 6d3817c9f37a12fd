package handler

import (
	"errors"

	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/repository"
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/service"
	"github.com/gin-gonic/gin"
)

// MenuHandler exposes menu categories, products and modifier groups.
type MenuHandler struct {
	svc *service.MenuService
}

func NewMenuHandler(svc *service.MenuService) *MenuHandler {
	return &MenuHandler{svc: svc}
}

// ListCategories
// GET /api/v1/venues/:venueId/menu/categories
func (h *MenuHandler) ListCategories(c *gin.Context) {
	categories, err := h.svc.ListCategories(c.Request.Context(), c.Param("venueId"))
	if err != nil {
		InternalError(c, "failed to list categories: "+err.Error())
		return
	}
	Success(c, categories)
}

// CreateCategory
// POST /api/v1/venues/:venueId/menu/categories
func (h *MenuHandler) CreateCategory(c *gin.Context) {
	var req service.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid payload: "+err.Error())
		return
	}

	category, err := h.svc.CreateCategory(c.Request.Context(), c.Param("venueId"), &req)
	if err != nil {
		InternalError(c, "failed to create category: "+err.Error())
		return
	}
	Created(c, category)
}

// UpdateCategory
// PUT /api/v1/venues/:venueId/menu/categories/:id
func (h *MenuHandler) UpdateCategory(c *gin.Context) {
	var req service.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid payload: "+err.Error())
		return
	}

	category, err := h.svc.UpdateCategory(c.Request.Context(), c.Param("venueId"), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "category not found")
			return
		}
		InternalError(c, "failed to update category: "+err.Error())
		return
	}
	Success(c, category)
}

// GetProduct
// GET /api/v1/venues/:venueId/menu/products/:id
func (h *MenuHandler) GetProduct(c *gin.Context) {
	product, err := h.svc.GetProduct(c.Request.Context(), c.Param("venueId"), c.Param("id"))
	if err != nil {
		NotFound(c, "product not found")
		return
	}
	Success(c, product)
}

// CreateProduct
// POST /api/v1/venues/:venueId/menu/products
func (h *MenuHandler) CreateProduct(c *gin.Context) {
	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid payload: "+err.Error())
		return
	}

	product, err := h.svc.CreateProduct(c.Request.Context(), c.Param("venueId"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "category not found")
			return
		}
		InternalError(c, "failed to create product: "+err.Error())
		return
	}
	Created(c, product)
}

// UpdateProduct
// PUT /api/v1/venues/:venueId/menu/products/:id
func (h *MenuHandler) UpdateProduct(c *gin.Context) {
	var req service.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid payload: "+err.Error())
		return
	}

	product, err := h.svc.UpdateProduct(c.Request.Context(), c.Param("venueId"), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "product not found")
			return
		}
		InternalError(c, "failed to update product: "+err.Error())
		return
	}
	Success(c, product)
}

// DeleteProduct
// DELETE /api/v1/venues/:venueId/menu/products/:id
func (h *MenuHandler) DeleteProduct(c *gin.Context) {
	if err := h.svc.DeleteProduct(c.Request.Context(), c.Param("venueId"), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "product not found")
			return
		}
		InternalError(c, "failed to delete product: "+err.Error())
		return
	}
	Success(c, nil)
}

// ListModifierGroups
// GET /api/v1/venues/:venueId/menu/modifier-groups
func (h *MenuHandler) ListModifierGroups(c *gin.Context) {
	groups, err := h.svc.ListModifierGroups(c.Request.Context(), c.Param("venueId"))
	if err != nil {
		InternalError(c, "failed to list modifier groups: "+err.Error())
		return
	}
	Success(c, groups)
}

// CreateModifierGroup
// POST /api/v1/venues/:venueId/menu/modifier-groups
func (h *MenuHandler) CreateModifierGroup(c *gin.Context) {
	var req service.CreateModifierGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid payload: "+err.Error())
		return
	}

	group, err := h.svc.CreateModifierGroup(c.Request.Context(), c.Param("venueId"), &req)
	if err != nil {
		InternalError(c, "failed to create modifier group: "+err.Error())
		return
	}
	Created(c, group)
}

// UpdateModifierGroup
// PUT /api/v1/venues/:venueId/menu/modifier-groups/:id
func (h *MenuHandler) UpdateModifierGroup(c *gin.Context) {
	var req service.UpdateModifierGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid payload: "+err.Error())
		return
	}

	group, err := h.svc.UpdateModifierGroup(c.Request.Context(), c.Param("venueId"), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "modifier group not found")
			return
		}
		InternalError(c, "failed to update modifier group: "+err.Error())
		return
	}
	Success(c, group)
}

// AssignModifierGroup
// POST /api/v1/venues/:venueId/menu/products/:id/modifier-groups/:groupId
func (h *MenuHandler) AssignModifierGroup(c *gin.Context) {
	err := h.svc.AssignModifierGroup(c.Request.Context(), c.Param("venueId"), c.Param("id"), c.Param("groupId"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "product or modifier group not found")
			return
		}
		InternalError(c, "failed to assign modifier group: "+err.Error())
		return
	}
	Success(c, nil)
}
