package repository

import (
	"context"
	"errors"

	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/entity"
	"gorm.io/gorm"
)

// AttachmentRepository persists purchase order attachment metadata. The
// file bytes live in object storage.
type AttachmentRepository struct {
	db *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

// Create records an uploaded attachment.
func (r *AttachmentRepository) Create(ctx context.Context, att *entity.POAttachment) error {
	return r.db.WithContext(ctx).Create(att).Error
}

// FindByPO lists attachments of a purchase order.
func (r *AttachmentRepository) FindByPO(ctx context.Context, poID string) ([]entity.POAttachment, error) {
	var items []entity.POAttachment
	err := r.db.WithContext(ctx).
		Where("po_id = ?", poID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// FindByID looks up one attachment, scoped to its purchase order.
func (r *AttachmentRepository) FindByID(ctx context.Context, poID, id string) (*entity.POAttachment, error) {
	var att entity.POAttachment
	err := r.db.WithContext(ctx).Where("id = ? AND po_id = ?", id, poID).First(&att).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &att, nil
}

// Delete removes an attachment record.
func (r *AttachmentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.POAttachment{}).Error
}
