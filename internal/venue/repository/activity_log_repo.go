package repository

import (
	"context"

	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityLogRepository persists the audit trail.
type ActivityLogRepository struct {
	db *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

// Create creates an activity log entry.
func (r *ActivityLogRepository) Create(ctx context.Context, log *entity.ActivityLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()[:32]
	}
	return r.db.WithContext(ctx).Create(log).Error
}

// FindByEntity lists log entries for one entity, newest first.
func (r *ActivityLogRepository) FindByEntity(ctx context.Context, entityType, entityID string, page, pageSize int) ([]entity.ActivityLog, int64, error) {
	var items []entity.ActivityLog
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ActivityLog{}).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID)

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

// LogActivity writes an audit record, ignoring errors. Audit writes must
// never fail the operation they describe.
func (r *ActivityLogRepository) LogActivity(ctx context.Context, venueID, entityType, entityID, entityCode, action, fromStatus, toStatus, content, operatorID string) {
	log := &entity.ActivityLog{
		ID:         uuid.New().String()[:32],
		VenueID:    venueID,
		EntityType: entityType,
		EntityID:   entityID,
		EntityCode: entityCode,
		Action:     action,
		FromStatus: fromStatus,
		ToStatus:   toStatus,
		Content:    content,
		OperatorID: operatorID,
	}
	r.db.WithContext(ctx).Create(log)
}
