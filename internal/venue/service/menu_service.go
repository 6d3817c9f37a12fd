package service

import (
	"context"

	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/entity"
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuService manages the venue menu: categories, products, modifiers.
type MenuService struct {
	menuRepo *repository.MenuRepository
}

func NewMenuService(menuRepo *repository.MenuRepository) *MenuService {
	return &MenuService{menuRepo: menuRepo}
}

// ListCategories lists categories with their products.
func (s *MenuService) ListCategories(ctx context.Context, venueID string) ([]entity.MenuCategory, error) {
	return s.menuRepo.FindCategories(ctx, venueID)
}

// CreateCategoryRequest is the category payload.
type CreateCategoryRequest struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sort_order"`
}

// CreateCategory creates a menu category.
func (s *MenuService) CreateCategory(ctx context.Context, venueID string, req *CreateCategoryRequest) (*entity.MenuCategory, error) {
	category := &entity.MenuCategory{
		ID:        uuid.New().String()[:32],
		VenueID:   venueID,
		Name:      req.Name,
		SortOrder: req.SortOrder,
		Active:    true,
	}
	if err := s.menuRepo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategoryRequest is the partial-update payload.
type UpdateCategoryRequest struct {
	Name      *string `json:"name"`
	SortOrder *int    `json:"sort_order"`
	Active    *bool   `json:"active"`
}

// UpdateCategory applies a partial update.
func (s *MenuService) UpdateCategory(ctx context.Context, venueID, id string, req *UpdateCategoryRequest) (*entity.MenuCategory, error) {
	category, err := s.menuRepo.FindCategoryByID(ctx, venueID, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}
	if req.Active != nil {
		category.Active = *req.Active
	}
	if err := s.menuRepo.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetProduct looks up a product with its modifier groups.
func (s *MenuService) GetProduct(ctx context.Context, venueID, id string) (*entity.Product, error) {
	return s.menuRepo.FindProductByID(ctx, venueID, id)
}

// CreateProductRequest is the product payload.
type CreateProductRequest struct {
	CategoryID  string          `json:"category_id" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	ImageURL    string          `json:"image_url"`
	SortOrder   int             `json:"sort_order"`
}

// CreateProduct creates a product under a category.
func (s *MenuService) CreateProduct(ctx context.Context, venueID string, req *CreateProductRequest) (*entity.Product, error) {
	if _, err := s.menuRepo.FindCategoryByID(ctx, venueID, req.CategoryID); err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:          uuid.New().String()[:32],
		VenueID:     venueID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		SortOrder:   req.SortOrder,
		Active:      true,
	}
	if err := s.menuRepo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProductRequest is the partial-update payload.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"image_url"`
	SortOrder   *int             `json:"sort_order"`
	Active      *bool            `json:"active"`
}

// UpdateProduct applies a partial update.
func (s *MenuService) UpdateProduct(ctx context.Context, venueID, id string, req *UpdateProductRequest) (*entity.Product, error) {
	product, err := s.menuRepo.FindProductByID(ctx, venueID, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.SortOrder != nil {
		product.SortOrder = *req.SortOrder
	}
	if req.Active != nil {
		product.Active = *req.Active
	}
	if err := s.menuRepo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product.
func (s *MenuService) DeleteProduct(ctx context.Context, venueID, id string) error {
	if _, err := s.menuRepo.FindProductByID(ctx, venueID, id); err != nil {
		return err
	}
	return s.menuRepo.DeleteProduct(ctx, id)
}

// ListModifierGroups lists modifier groups for a venue.
func (s *MenuService) ListModifierGroups(ctx context.Context, venueID string) ([]entity.ModifierGroup, error) {
	return s.menuRepo.FindModifierGroups(ctx, venueID)
}

// CreateModifierGroupRequest is the modifier group payload.
type CreateModifierGroupRequest struct {
	Name      string                  `json:"name" binding:"required"`
	MinSelect int                     `json:"min_select"`
	MaxSelect int                     `json:"max_select"`
	SortOrder int                     `json:"sort_order"`
	Modifiers []CreateModifierRequest `json:"modifiers"`
}

// CreateModifierRequest is one modifier inside a group.
type CreateModifierRequest struct {
	Name      string          `json:"name" binding:"required"`
	Price     decimal.Decimal `json:"price"`
	SortOrder int             `json:"sort_order"`
}

// CreateModifierGroup creates a group with its modifiers.
func (s *MenuService) CreateModifierGroup(ctx context.Context, venueID string, req *CreateModifierGroupRequest) (*entity.ModifierGroup, error) {
	group := &entity.ModifierGroup{
		ID:        uuid.New().String()[:32],
		VenueID:   venueID,
		Name:      req.Name,
		MinSelect: req.MinSelect,
		MaxSelect: req.MaxSelect,
		SortOrder: req.SortOrder,
	}
	for i, m := range req.Modifiers {
		sortOrder := m.SortOrder
		if sortOrder == 0 {
			sortOrder = i + 1
		}
		group.Modifiers = append(group.Modifiers, entity.Modifier{
			ID:        uuid.New().String()[:32],
			GroupID:   group.ID,
			Name:      m.Name,
			Price:     m.Price,
			SortOrder: sortOrder,
			Active:    true,
		})
	}
	if err := s.menuRepo.CreateModifierGroup(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// UpdateModifierGroupRequest carries partial modifier group updates.
type UpdateModifierGroupRequest struct {
	Name      *string `json:"name"`
	MinSelect *int    `json:"min_select"`
	MaxSelect *int    `json:"max_select"`
	SortOrder *int    `json:"sort_order"`
}

// UpdateModifierGroup applies partial updates to a group.
func (s *MenuService) UpdateModifierGroup(ctx context.Context, venueID, id string, req *UpdateModifierGroupRequest) (*entity.ModifierGroup, error) {
	group, err := s.menuRepo.FindModifierGroupByID(ctx, venueID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.MinSelect != nil {
		group.MinSelect = *req.MinSelect
	}
	if req.MaxSelect != nil {
		group.MaxSelect = *req.MaxSelect
	}
	if req.SortOrder != nil {
		group.SortOrder = *req.SortOrder
	}

	if err := s.menuRepo.UpdateModifierGroup(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// AssignModifierGroup links a modifier group to a product, both within
// the same venue.
func (s *MenuService) AssignModifierGroup(ctx context.Context, venueID, productID, groupID string) error {
	if _, err := s.menuRepo.FindProductByID(ctx, venueID, productID); err != nil {
		return err
	}
	if _, err := s.menuRepo.FindModifierGroupByID(ctx, venueID, groupID); err != nil {
		return err
	}
	return s.menuRepo.AssignModifierGroup(ctx, productID, groupID)
}
