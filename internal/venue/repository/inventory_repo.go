package repository

import (
	"context"
	"errors"

	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/entity"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InventoryRepository persists raw materials and stock transactions.
type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// FindAll lists raw materials for a venue.
func (r *InventoryRepository) FindAll(ctx context.Context, venueID string, page, pageSize int, filters map[string]string) ([]entity.RawMaterial, int64, error) {
	var items []entity.RawMaterial
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.RawMaterial{}).Where("venue_id = ?", venueID)

	if status := filters["status"]; status != "" {
		query = query.Where("status = ?", status)
	}
	if search := filters["search"]; search != "" {
		query = query.Where("name ILIKE ? OR sku ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if filters["low_stock"] == "true" {
		query = query.Where("stock < min_stock")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("name ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

// FindByID looks up a raw material, scoped to the venue.
func (r *InventoryRepository) FindByID(ctx context.Context, venueID, id string) (*entity.RawMaterial, error) {
	var material entity.RawMaterial
	err := r.db.WithContext(ctx).Where("id = ? AND venue_id = ?", id, venueID).First(&material).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &material, nil
}

// Create creates a raw material.
func (r *InventoryRepository) Create(ctx context.Context, material *entity.RawMaterial) error {
	return r.db.WithContext(ctx).Create(material).Error
}

// Update saves a raw material.
func (r *InventoryRepository) Update(ctx context.Context, material *entity.RawMaterial) error {
	return r.db.WithContext(ctx).Save(material).Error
}

// AdjustStock applies a signed stock delta and records the transaction in
// one database transaction.
func (r *InventoryRepository) AdjustStock(ctx context.Context, venueID, materialID, txnType string, delta decimal.Decimal, poItemID *string, reason, userID string) (*entity.InventoryTransaction, error) {
	var txn *entity.InventoryTransaction
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var material entity.RawMaterial
		if err := tx.Where("id = ? AND venue_id = ?", materialID, venueID).First(&material).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		material.Stock = material.Stock.Add(delta)
		if err := tx.Save(&material).Error; err != nil {
			return err
		}

		txn = &entity.InventoryTransaction{
			ID:            uuid.New().String()[:32],
			VenueID:       venueID,
			RawMaterialID: materialID,
			Type:          txnType,
			Quantity:      delta,
			StockAfter:    material.Stock,
			POItemID:      poItemID,
			Reason:        reason,
			CreatedBy:     userID,
		}
		return tx.Create(txn).Error
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// FindTransactions lists stock movements for a material.
func (r *InventoryRepository) FindTransactions(ctx context.Context, materialID string, page, pageSize int) ([]entity.InventoryTransaction, int64, error) {
	var items []entity.InventoryTransaction
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.InventoryTransaction{}).
		Where("raw_material_id = ?", materialID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}
