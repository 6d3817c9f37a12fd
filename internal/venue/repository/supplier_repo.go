package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/entity"
	"gorm.io/gorm"
)

// SupplierRepository persists suppliers and their contacts.
type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

// FindAll lists suppliers for a venue with optional filters.
func (r *SupplierRepository) FindAll(ctx context.Context, venueID string, page, pageSize int, filters map[string]string) ([]entity.Supplier, int64, error) {
	var items []entity.Supplier
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Supplier{}).Where("venue_id = ?", venueID)

	if category := filters["category"]; category != "" {
		query = query.Where("category = ?", category)
	}
	if status := filters["status"]; status != "" {
		query = query.Where("status = ?", status)
	}
	if search := filters["search"]; search != "" {
		query = query.Where("name ILIKE ? OR code ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Preload("Contacts").
		Order("name ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

// FindByID looks up a supplier with contacts, scoped to the venue.
func (r *SupplierRepository) FindByID(ctx context.Context, venueID, id string) (*entity.Supplier, error) {
	var supplier entity.Supplier
	err := r.db.WithContext(ctx).
		Preload("Contacts").
		Where("id = ? AND venue_id = ?", id, venueID).
		First(&supplier).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &supplier, nil
}

// Create creates a supplier.
func (r *SupplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	return r.db.WithContext(ctx).Create(supplier).Error
}

// Update saves a supplier.
func (r *SupplierRepository) Update(ctx context.Context, supplier *entity.Supplier) error {
	return r.db.WithContext(ctx).Save(supplier).Error
}

// Delete removes a supplier and its contacts.
func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("supplier_id = ?", id).Delete(&entity.SupplierContact{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.Supplier{}).Error
	})
}

// AddContact creates a supplier contact.
func (r *SupplierRepository) AddContact(ctx context.Context, contact *entity.SupplierContact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

// DeleteContact removes a supplier contact, scoped to its supplier.
func (r *SupplierRepository) DeleteContact(ctx context.Context, supplierID, contactID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND supplier_id = ?", contactID, supplierID).
		Delete(&entity.SupplierContact{}).Error
}

// GenerateCode produces supplier codes SUP-{year}-{4 digits}.
func (r *SupplierRepository) GenerateCode(ctx context.Context) (string, error) {
	year := time.Now().Format("2006")
	prefix := fmt.Sprintf("SUP-%s-", year)

	var maxCode string
	err := r.db.WithContext(ctx).
		Model(&entity.Supplier{}).
		Select("COALESCE(MAX(code), '')").
		Where("code LIKE ?", prefix+"%").
		Scan(&maxCode).Error
	if err != nil {
		return "", err
	}

	var seq int
	if maxCode != "" {
		fmt.Sscanf(maxCode, "SUP-"+year+"-%04d", &seq)
	}
	seq++
	return fmt.Sprintf("SUP-%s-%04d", year, seq), nil
}
