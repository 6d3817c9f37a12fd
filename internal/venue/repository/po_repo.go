package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PORepository persists purchase orders and line items.
type PORepository struct {
	db *gorm.DB
}

func NewPORepository(db *gorm.DB) *PORepository {
	return &PORepository{db: db}
}

// FindAll lists purchase orders for a venue.
func (r *PORepository) FindAll(ctx context.Context, venueID string, page, pageSize int, filters map[string]string) ([]entity.PurchaseOrder, int64, error) {
	var items []entity.PurchaseOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.PurchaseOrder{}).Where("venue_id = ?", venueID)

	if supplierID := filters["supplier_id"]; supplierID != "" {
		query = query.Where("supplier_id = ?", supplierID)
	}
	if status := filters["status"]; status != "" {
		query = query.Where("status = ?", status)
	}
	if search := filters["search"]; search != "" {
		query = query.Where("po_code ILIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Preload("Supplier").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

// FindByID looks up a purchase order with supplier and ordered line items.
// Lookups are scoped to the venue so an order id from another venue reads
// as not found.
func (r *PORepository) FindByID(ctx context.Context, venueID, id string) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Where("id = ? AND venue_id = ?", id, venueID).
		First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &po, nil
}

// Create creates a purchase order with its items.
func (r *PORepository) Create(ctx context.Context, po *entity.PurchaseOrder) error {
	return r.db.WithContext(ctx).Create(po).Error
}

// Update saves a purchase order.
func (r *PORepository) Update(ctx context.Context, po *entity.PurchaseOrder) error {
	return r.db.WithContext(ctx).Save(po).Error
}

// UpdateItemReceipt sets the persisted receive status and quantity of one
// line item. The write is absolute (not additive) so a retried commit is
// idempotent. The ordered-quantity bound is re-checked against the stored
// row before writing.
func (r *PORepository) UpdateItemReceipt(ctx context.Context, itemID, status string, qty decimal.Decimal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item entity.POItem
		if err := tx.Where("id = ?", itemID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if qty.IsNegative() || qty.GreaterThan(item.QuantityOrdered) {
			return fmt.Errorf("receipt quantity %s out of range for item %s (ordered %s)",
				qty, itemID, item.QuantityOrdered)
		}

		item.ReceiveStatus = status
		item.QuantityReceived = qty
		return tx.Save(&item).Error
	})
}

// UpdateStatus moves a purchase order to a new status, stamping the
// received date on arrival at received.
func (r *PORepository) UpdateStatus(ctx context.Context, id, status string) error {
	updates := map[string]interface{}{"status": status, "updated_at": time.Now()}
	if status == entity.POStatusReceived {
		now := time.Now()
		updates["received_date"] = &now
	}
	return r.db.WithContext(ctx).
		Model(&entity.PurchaseOrder{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// GenerateCode produces PO codes PO-{year}-{4 digits}.
func (r *PORepository) GenerateCode(ctx context.Context) (string, error) {
	year := time.Now().Format("2006")
	prefix := fmt.Sprintf("PO-%s-", year)

	var maxCode string
	err := r.db.WithContext(ctx).
		Model(&entity.PurchaseOrder{}).
		Select("COALESCE(MAX(po_code), '')").
		Where("po_code LIKE ?", prefix+"%").
		Scan(&maxCode).Error
	if err != nil {
		return "", err
	}

	var seq int
	if maxCode != "" {
		fmt.Sscanf(maxCode, "PO-"+year+"-%04d", &seq)
	}
	seq++
	return fmt.Sprintf("PO-%s-%04d", year, seq), nil
}
