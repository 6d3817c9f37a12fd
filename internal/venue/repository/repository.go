package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Repositories bundles all venue repositories.
type Repositories struct {
	Venue       *VenueRepository
	Supplier    *SupplierRepository
	Inventory   *InventoryRepository
	Menu        *MenuRepository
	PO          *PORepository
	Attachment  *AttachmentRepository
	ActivityLog *ActivityLogRepository
}

// NewRepositories creates the repository bundle.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Venue:       NewVenueRepository(db),
		Supplier:    NewSupplierRepository(db),
		Inventory:   NewInventoryRepository(db),
		Menu:        NewMenuRepository(db),
		PO:          NewPORepository(db),
		Attachment:  NewAttachmentRepository(db),
		ActivityLog: NewActivityLogRepository(db),
	}
}
