package service

import (
	"context"
	"fmt"

	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/entity"
	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryService manages raw materials and stock movements.
type InventoryService struct {
	inventoryRepo *repository.InventoryRepository
	logRepo       *repository.ActivityLogRepository
}

func NewInventoryService(inventoryRepo *repository.InventoryRepository, logRepo *repository.ActivityLogRepository) *InventoryService {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		logRepo:       logRepo,
	}
}

// ListMaterials lists raw materials for a venue.
func (s *InventoryService) ListMaterials(ctx context.Context, venueID string, page, pageSize int, filters map[string]string) ([]entity.RawMaterial, int64, error) {
	return s.inventoryRepo.FindAll(ctx, venueID, page, pageSize, filters)
}

// GetMaterial looks up one raw material within a venue.
func (s *InventoryService) GetMaterial(ctx context.Context, venueID, id string) (*entity.RawMaterial, error) {
	return s.inventoryRepo.FindByID(ctx, venueID, id)
}

// CreateMaterialRequest is the create payload.
type CreateMaterialRequest struct {
	SKU        string          `json:"sku" binding:"required"`
	Name       string          `json:"name" binding:"required"`
	Unit       string          `json:"unit"`
	Stock      decimal.Decimal `json:"stock"`
	MinStock   decimal.Decimal `json:"min_stock"`
	SupplierID *string         `json:"supplier_id"`
}

// CreateMaterial creates a raw material.
func (s *InventoryService) CreateMaterial(ctx context.Context, venueID string, req *CreateMaterialRequest) (*entity.RawMaterial, error) {
	if req.Stock.IsNegative() || req.MinStock.IsNegative() {
		return nil, fmt.Errorf("stock levels cannot be negative")
	}

	material := &entity.RawMaterial{
		ID:         uuid.New().String()[:32],
		VenueID:    venueID,
		SKU:        req.SKU,
		Name:       req.Name,
		Unit:       req.Unit,
		Stock:      req.Stock,
		MinStock:   req.MinStock,
		SupplierID: req.SupplierID,
		Status:     "active",
	}
	if material.Unit == "" {
		material.Unit = "kg"
	}

	if err := s.inventoryRepo.Create(ctx, material); err != nil {
		return nil, err
	}
	return material, nil
}

// UpdateMaterialRequest is the partial-update payload.
type UpdateMaterialRequest struct {
	Name       *string          `json:"name"`
	Unit       *string          `json:"unit"`
	MinStock   *decimal.Decimal `json:"min_stock"`
	SupplierID *string          `json:"supplier_id"`
	Status     *string          `json:"status"`
}

// UpdateMaterial applies a partial update. Stock is never set directly;
// use AdjustStock so every movement leaves a transaction row.
func (s *InventoryService) UpdateMaterial(ctx context.Context, venueID, id string, req *UpdateMaterialRequest) (*entity.RawMaterial, error) {
	material, err := s.inventoryRepo.FindByID(ctx, venueID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		material.Name = *req.Name
	}
	if req.Unit != nil {
		material.Unit = *req.Unit
	}
	if req.MinStock != nil {
		material.MinStock = *req.MinStock
	}
	if req.SupplierID != nil {
		material.SupplierID = req.SupplierID
	}
	if req.Status != nil {
		material.Status = *req.Status
	}

	if err := s.inventoryRepo.Update(ctx, material); err != nil {
		return nil, err
	}
	return material, nil
}

// AdjustStockRequest is the manual adjustment payload.
type AdjustStockRequest struct {
	Delta  decimal.Decimal `json:"delta" binding:"required"`
	Reason string          `json:"reason" binding:"required"`
}

// AdjustStock applies a manual stock correction.
func (s *InventoryService) AdjustStock(ctx context.Context, venueID, materialID, userID string, req *AdjustStockRequest) (*entity.InventoryTransaction, error) {
	material, err := s.inventoryRepo.FindByID(ctx, venueID, materialID)
	if err != nil {
		return nil, err
	}
	if material.Stock.Add(req.Delta).IsNegative() {
		return nil, fmt.Errorf("adjustment would drive stock below zero")
	}

	txn, err := s.inventoryRepo.AdjustStock(ctx, venueID, materialID, entity.TxnTypeAdjustment, req.Delta, nil, req.Reason, userID)
	if err != nil {
		return nil, err
	}

	s.logRepo.LogActivity(ctx, venueID, "inventory", materialID, material.SKU,
		"stock_adjustment", "", "", req.Reason, userID)
	return txn, nil
}

// ListTransactions lists stock movements for a material within a venue.
func (s *InventoryService) ListTransactions(ctx context.Context, venueID, materialID string, page, pageSize int) ([]entity.InventoryTransaction, int64, error) {
	if _, err := s.inventoryRepo.FindByID(ctx, venueID, materialID); err != nil {
		return nil, 0, err
	}
	return s.inventoryRepo.FindTransactions(ctx, materialID, page, pageSize)
}
