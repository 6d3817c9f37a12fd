package entity

import "time"

// ActivityLog is an append-only audit record for venue operations.
type ActivityLog struct {
	ID         string `json:"id" gorm:"primaryKey;size:32"`
	VenueID    string `json:"venue_id" gorm:"size:32;not null;index"`
	EntityType string `json:"entity_type" gorm:"size:50;not null"` // purchase_order/supplier/inventory
	EntityID   string `json:"entity_id" gorm:"size:32;not null;index"`
	EntityCode string `json:"entity_code" gorm:"size:32"`

	Action     string `json:"action" gorm:"size:50;not null"` // receive_commit/status_change/fees_update/...
	FromStatus string `json:"from_status" gorm:"size:20"`
	ToStatus   string `json:"to_status" gorm:"size:20"`
	Content    string `json:"content" gorm:"size:500"`

	OperatorID string    `json:"operator_id" gorm:"size:32"`
	CreatedAt  time.Time `json:"created_at"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
